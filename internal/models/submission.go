package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SubmissionStatus is the explicit submission lifecycle state. Modeling the
// lifecycle as one enumerated state (rather than a set of booleans) makes
// combinations like "submitting and succeeded" unrepresentable.
type SubmissionStatus string

const (
	SubmissionReceived   SubmissionStatus = "received"
	SubmissionValidating SubmissionStatus = "validating"
	SubmissionSubmitting SubmissionStatus = "submitting"
	SubmissionSucceeded  SubmissionStatus = "succeeded"
	SubmissionFailed     SubmissionStatus = "failed"
)

// legalTransitions holds the allowed lifecycle edges
var legalTransitions = map[SubmissionStatus][]SubmissionStatus{
	SubmissionReceived:   {SubmissionValidating},
	SubmissionValidating: {SubmissionSubmitting, SubmissionFailed},
	SubmissionSubmitting: {SubmissionSucceeded, SubmissionFailed},
}

// IsValid reports whether s is a known status
func (s SubmissionStatus) IsValid() bool {
	switch s {
	case SubmissionReceived, SubmissionValidating, SubmissionSubmitting, SubmissionSucceeded, SubmissionFailed:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions are allowed
func (s SubmissionStatus) IsTerminal() bool {
	return s == SubmissionSucceeded || s == SubmissionFailed
}

// CanTransitionTo reports whether the edge s -> next is legal
func (s SubmissionStatus) CanTransitionTo(next SubmissionStatus) bool {
	for _, allowed := range legalTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Submission tracks one registration attempt through its lifecycle. It is
// held in memory for the duration of the request only.
type Submission struct {
	ID          string
	Status      SubmissionStatus
	Message     string
	CreatedAt   time.Time
	CompletedAt time.Time
}

// NewSubmission creates a submission in the received state
func NewSubmission() *Submission {
	return &Submission{
		ID:        uuid.NewString(),
		Status:    SubmissionReceived,
		CreatedAt: time.Now().UTC(),
	}
}

// Advance moves the submission to next, rejecting illegal transitions
func (s *Submission) Advance(next SubmissionStatus) error {
	if !s.Status.CanTransitionTo(next) {
		return fmt.Errorf("illegal submission transition %s -> %s", s.Status, next)
	}
	s.Status = next
	if next.IsTerminal() {
		s.CompletedAt = time.Now().UTC()
	}
	return nil
}
