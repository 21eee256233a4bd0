package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/arshitenyt-bit/kootaah-theater/config"
	"github.com/arshitenyt-bit/kootaah-theater/internal/models"
	"github.com/arshitenyt-bit/kootaah-theater/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Submission: config.SubmissionConfig{
			UploadDelayMillis: 0,
			MaxFileSizeMB:     10,
		},
	}
}

func boolPtr(v bool) *bool { return &v }

func validRequest() *models.RegisterPlayRequest {
	return &models.RegisterPlayRequest{
		DirectorName:   "Maria Petrova",
		PlaywrightName: "Anton Chekhov",
		DirectorPhone:  "+7 900 123-45-67",
		PlayTitle:      "The Seagull",
		ScriptFile: &models.FileUpload{
			Data:        "JVBERi0xLjQ=",
			FileName:    "seagull.pdf",
			ContentType: "application/pdf",
		},
	}
}

func TestSubmitRegistration_Success(t *testing.T) {
	mockGen := new(MockGenerator)
	mockGen.On("Generate", mock.Anything, "Maria Petrova", "The Seagull").
		Return("Congratulations, Maria! The Seagull is registered for the festival.", nil)

	service := services.NewRegistrationService(testConfig(), mockGen)

	resp, err := service.SubmitRegistration(context.Background(), validRequest())

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.RegistrationID)
	assert.Contains(t, resp.Message, "Congratulations")
	assert.Empty(t, resp.Errors)
	mockGen.AssertExpectations(t)
}

func TestSubmitRegistration_ValidationFailureSkipsGenerator(t *testing.T) {
	mockGen := new(MockGenerator)
	service := services.NewRegistrationService(testConfig(), mockGen)

	req := validRequest()
	req.PlayTitle = "   "
	req.ScriptFile = nil

	resp, err := service.SubmitRegistration(context.Background(), req)

	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "Please correct the highlighted fields", resp.Error)
	assert.Len(t, resp.Errors, 2)
	assert.Contains(t, resp.Errors, "playTitle")
	assert.Contains(t, resp.Errors, "scriptFile")
	mockGen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitRegistration_ConditionalPermissionError(t *testing.T) {
	mockGen := new(MockGenerator)
	service := services.NewRegistrationService(testConfig(), mockGen)

	req := validRequest()
	req.IsDirectorPlaywright = boolPtr(false)

	resp, err := service.SubmitRegistration(context.Background(), req)

	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Errors, "authorPermissionFile")
}

func TestSubmitRegistration_GeneratorFailure(t *testing.T) {
	mockGen := new(MockGenerator)
	mockGen.On("Generate", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("generator unavailable"))

	service := services.NewRegistrationService(testConfig(), mockGen)

	resp, err := service.SubmitRegistration(context.Background(), validRequest())

	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "Your registration could not be completed. Please try again.", resp.Error)
	assert.Empty(t, resp.Errors)
	assert.Empty(t, resp.RegistrationID)

	// One attempt only, no retry
	mockGen.AssertNumberOfCalls(t, "Generate", 1)
}

func TestSubmitRegistration_RefusesConcurrentSubmission(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	mockGen := new(MockGenerator)
	mockGen.On("Generate", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			close(started)
			<-release
		}).
		Return("Congratulations!", nil)

	service := services.NewRegistrationService(testConfig(), mockGen)

	type result struct {
		resp *models.RegisterPlayResponse
		err  error
	}
	firstDone := make(chan result, 1)
	go func() {
		resp, err := service.SubmitRegistration(context.Background(), validRequest())
		firstDone <- result{resp, err}
	}()

	<-started

	// Second submission while the first is in flight
	resp, err := service.SubmitRegistration(context.Background(), validRequest())
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "already in progress")

	close(release)
	first := <-firstDone
	require.NoError(t, first.err)
	assert.True(t, first.resp.Success)
}

func TestSubmitRegistration_UploadDelayElapses(t *testing.T) {
	cfg := testConfig()
	cfg.Submission.UploadDelayMillis = 30

	mockGen := new(MockGenerator)
	mockGen.On("Generate", mock.Anything, mock.Anything, mock.Anything).
		Return("Congratulations!", nil)

	service := services.NewRegistrationService(cfg, mockGen)

	start := time.Now()
	resp, err := service.SubmitRegistration(context.Background(), validRequest())

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestSubmitRegistration_ContextCanceledDuringUpload(t *testing.T) {
	cfg := testConfig()
	cfg.Submission.UploadDelayMillis = 5000

	mockGen := new(MockGenerator)
	service := services.NewRegistrationService(cfg, mockGen)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	resp, err := service.SubmitRegistration(ctx, validRequest())

	require.Error(t, err)
	assert.Nil(t, resp)
	mockGen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
}

func TestValidateRegistration_Valid(t *testing.T) {
	service := services.NewRegistrationService(testConfig(), new(MockGenerator))

	resp := service.ValidateRegistration(context.Background(), validRequest())

	assert.True(t, resp.Valid)
	assert.Empty(t, resp.Errors)
}

func TestValidateRegistration_ReportsAllErrors(t *testing.T) {
	service := services.NewRegistrationService(testConfig(), new(MockGenerator))

	resp := service.ValidateRegistration(context.Background(), &models.RegisterPlayRequest{
		IsDirectorPlaywright: boolPtr(false),
	})

	assert.False(t, resp.Valid)
	assert.Len(t, resp.Errors, 6)
}
