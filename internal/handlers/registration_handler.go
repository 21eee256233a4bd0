package handlers

import (
	"net/http"

	"github.com/arshitenyt-bit/kootaah-theater/internal/models"
	"github.com/arshitenyt-bit/kootaah-theater/internal/services"
	"github.com/gin-gonic/gin"
)

// RegistrationHandler handles play registration endpoints
type RegistrationHandler struct {
	service services.RegistrationServiceInterface
}

// NewRegistrationHandler creates a new registration handler
func NewRegistrationHandler(service services.RegistrationServiceInterface) *RegistrationHandler {
	return &RegistrationHandler{service: service}
}

// RegisterPlay handles POST /api/v1/registrations
func (h *RegistrationHandler) RegisterPlay(c *gin.Context) {
	var req models.RegisterPlayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrors := ParseValidationErrors(err)
		respondErrorWithDetails(c, http.StatusBadRequest, "Validation failed", validationErrors, err)
		return
	}

	resp, err := h.service.SubmitRegistration(c.Request.Context(), &req)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Internal server error", err)
		return
	}

	// Field-level failures are a client error; other business failures
	// (generator down, busy) come back 200 with success=false so the form
	// can show the notice and keep the entered data
	if !resp.Success && len(resp.Errors) > 0 {
		c.JSON(http.StatusBadRequest, resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ValidatePlay handles POST /api/v1/registrations/validate
func (h *RegistrationHandler) ValidatePlay(c *gin.Context) {
	var req models.RegisterPlayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrors := ParseValidationErrors(err)
		respondErrorWithDetails(c, http.StatusBadRequest, "Validation failed", validationErrors, err)
		return
	}

	c.JSON(http.StatusOK, h.service.ValidateRegistration(c.Request.Context(), &req))
}
