package services

import (
	"context"
	"sync"
	"time"

	"github.com/arshitenyt-bit/kootaah-theater/config"
	"github.com/arshitenyt-bit/kootaah-theater/internal/models"
	"github.com/arshitenyt-bit/kootaah-theater/pkg/greeting"
	"github.com/arshitenyt-bit/kootaah-theater/pkg/logger"
	"github.com/arshitenyt-bit/kootaah-theater/pkg/metrics"
	"github.com/arshitenyt-bit/kootaah-theater/pkg/tracing"
	"go.uber.org/zap"
)

const (
	msgValidationFailed = "Please correct the highlighted fields"
	msgGeneratorFailed  = "Your registration could not be completed. Please try again."
	msgBusy             = "Another submission is already in progress. Please wait for it to finish."
)

// RegistrationService orchestrates play registration submissions: validate,
// wait out the upload window, request the confirmation message, and report
// the outcome.
type RegistrationService struct {
	config  *config.Config
	greeter greeting.Generator

	// mu admits at most one submission in flight
	mu sync.Mutex
}

// NewRegistrationService creates a new registration service instance
func NewRegistrationService(cfg *config.Config, greeter greeting.Generator) *RegistrationService {
	return &RegistrationService{
		config:  cfg,
		greeter: greeter,
	}
}

// SubmitRegistration handles the complete submission flow. Business failures
// (validation errors, generator failure, busy) come back as an unsuccessful
// response with a nil error; a non-nil error means something unexpected broke.
func (s *RegistrationService) SubmitRegistration(ctx context.Context, req *models.RegisterPlayRequest) (*models.RegisterPlayResponse, error) {
	ctx, span := tracing.StartSpan(ctx, "registration.submit")
	defer span.End()

	if !s.mu.TryLock() {
		metrics.PlayRegistrations.WithLabelValues("busy").Inc()
		logger.Warn("Submission refused: another submission in flight")
		return &models.RegisterPlayResponse{
			Success: false,
			Error:   msgBusy,
		}, nil
	}
	defer s.mu.Unlock()

	sub := models.NewSubmission()
	if err := sub.Advance(models.SubmissionValidating); err != nil {
		return nil, err
	}

	// Replays the request through the form store, so the selection guards
	// run before the pure validator and all errors accumulate
	reg, fieldErrors := req.ToForm()
	if len(fieldErrors) > 0 {
		if err := sub.Advance(models.SubmissionFailed); err != nil {
			return nil, err
		}
		for field := range fieldErrors {
			metrics.RegistrationValidationErrors.WithLabelValues(string(field)).Inc()
		}
		metrics.PlayRegistrations.WithLabelValues("validation_failed").Inc()
		logger.Info("Registration blocked by validation",
			zap.String("submission_id", sub.ID),
			zap.Int("error_count", len(fieldErrors)))
		return &models.RegisterPlayResponse{
			Success: false,
			Error:   msgValidationFailed,
			Errors:  models.FieldErrors(fieldErrors),
		}, nil
	}

	if err := sub.Advance(models.SubmissionSubmitting); err != nil {
		return nil, err
	}

	// Fixed delay modeling the script upload. No cancellation besides
	// context expiry once submission has begun.
	if err := s.waitUploadWindow(ctx); err != nil {
		metrics.PlayRegistrations.WithLabelValues("canceled").Inc()
		return nil, err
	}

	message, err := s.greeter.Generate(ctx, reg.DirectorName, reg.PlayTitle)
	if err != nil {
		if advErr := sub.Advance(models.SubmissionFailed); advErr != nil {
			return nil, advErr
		}
		metrics.PlayRegistrations.WithLabelValues("generator_failed").Inc()
		logger.Error("Confirmation message generation failed",
			zap.Error(err),
			zap.String("submission_id", sub.ID),
			zap.String("play_title", reg.PlayTitle))
		// Entered data is never stored here, so the client keeps it and
		// can retry without re-typing
		return &models.RegisterPlayResponse{
			Success: false,
			Error:   msgGeneratorFailed,
		}, nil
	}

	sub.Message = message
	if err := sub.Advance(models.SubmissionSucceeded); err != nil {
		return nil, err
	}

	metrics.PlayRegistrations.WithLabelValues("success").Inc()
	logger.Info("Play registration succeeded",
		zap.String("submission_id", sub.ID),
		zap.String("play_title", reg.PlayTitle),
		zap.Duration("elapsed", sub.CompletedAt.Sub(sub.CreatedAt)))

	return &models.RegisterPlayResponse{
		Success:        true,
		Message:        message,
		RegistrationID: sub.ID,
	}, nil
}

// ValidateRegistration is the dry-run used by the form for inline feedback:
// guards plus validator, no orchestration, no external calls.
func (s *RegistrationService) ValidateRegistration(ctx context.Context, req *models.RegisterPlayRequest) *models.ValidatePlayResponse {
	_, span := tracing.StartSpan(ctx, "registration.validate")
	defer span.End()

	_, fieldErrors := req.ToForm()
	return &models.ValidatePlayResponse{
		Valid:  len(fieldErrors) == 0,
		Errors: models.FieldErrors(fieldErrors),
	}
}

// waitUploadWindow blocks for the configured fixed delay or until the
// request context expires
func (s *RegistrationService) waitUploadWindow(ctx context.Context) error {
	delay := time.Duration(s.config.Submission.UploadDelayMillis) * time.Millisecond
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
