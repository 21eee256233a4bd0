package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubmission(t *testing.T) {
	sub := NewSubmission()

	assert.NotEmpty(t, sub.ID)
	assert.Equal(t, SubmissionReceived, sub.Status)
	assert.False(t, sub.CreatedAt.IsZero())
	assert.True(t, sub.CompletedAt.IsZero())
}

func TestSubmission_HappyPath(t *testing.T) {
	sub := NewSubmission()

	require.NoError(t, sub.Advance(SubmissionValidating))
	require.NoError(t, sub.Advance(SubmissionSubmitting))
	require.NoError(t, sub.Advance(SubmissionSucceeded))

	assert.Equal(t, SubmissionSucceeded, sub.Status)
	assert.False(t, sub.CompletedAt.IsZero())
}

func TestSubmission_FailureFromValidating(t *testing.T) {
	sub := NewSubmission()

	require.NoError(t, sub.Advance(SubmissionValidating))
	require.NoError(t, sub.Advance(SubmissionFailed))

	assert.Equal(t, SubmissionFailed, sub.Status)
	assert.False(t, sub.CompletedAt.IsZero())
}

func TestSubmission_IllegalTransitions(t *testing.T) {
	tests := []struct {
		name string
		from SubmissionStatus
		to   SubmissionStatus
	}{
		{"skip validating", SubmissionReceived, SubmissionSubmitting},
		{"succeed without submitting", SubmissionValidating, SubmissionSucceeded},
		{"fail before validating", SubmissionReceived, SubmissionFailed},
		{"leave terminal success", SubmissionSucceeded, SubmissionValidating},
		{"leave terminal failure", SubmissionFailed, SubmissionSubmitting},
		{"backwards", SubmissionSubmitting, SubmissionValidating},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := NewSubmission()
			sub.Status = tt.from

			err := sub.Advance(tt.to)

			assert.Error(t, err)
			assert.Equal(t, tt.from, sub.Status)
		})
	}
}

func TestSubmissionStatus_IsTerminal(t *testing.T) {
	assert.True(t, SubmissionSucceeded.IsTerminal())
	assert.True(t, SubmissionFailed.IsTerminal())
	assert.False(t, SubmissionReceived.IsTerminal())
	assert.False(t, SubmissionValidating.IsTerminal())
	assert.False(t, SubmissionSubmitting.IsTerminal())
}

func TestSubmissionStatus_IsValid(t *testing.T) {
	assert.True(t, SubmissionValidating.IsValid())
	assert.False(t, SubmissionStatus("queued").IsValid())
	assert.False(t, SubmissionStatus("").IsValid())
}
