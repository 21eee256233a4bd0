package services

import (
	"context"

	"github.com/arshitenyt-bit/kootaah-theater/internal/models"
)

// RegistrationServiceInterface defines the interface for play registration
// operations
type RegistrationServiceInterface interface {
	SubmitRegistration(ctx context.Context, req *models.RegisterPlayRequest) (*models.RegisterPlayResponse, error)
	ValidateRegistration(ctx context.Context, req *models.RegisterPlayRequest) *models.ValidatePlayResponse
}

// Ensure services implement their interfaces
var _ RegistrationServiceInterface = (*RegistrationService)(nil)
