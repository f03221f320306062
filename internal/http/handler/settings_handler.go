package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/craftwise/proposal-api/internal/auth"
	"github.com/craftwise/proposal-api/internal/domain"
	"github.com/craftwise/proposal-api/internal/service"
	"go.uber.org/zap"
)

// SettingsHandler handles account-level settings, currently the SOW
// document number prefix
type SettingsHandler struct {
	numberingService *service.NumberingService
	logger           *zap.Logger
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(numberingService *service.NumberingService, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{
		numberingService: numberingService,
		logger:           logger,
	}
}

// GetSowPrefix godoc
// @Summary Get SOW prefix
// @Description Get the account's document number prefix and whether it is locked
// @Tags Settings
// @Produce json
// @Success 200 {object} domain.PrefixDTO
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Router /settings/sow-prefix [get]
func (h *SettingsHandler) GetSowPrefix(w http.ResponseWriter, r *http.Request) {
	userCtx, ok := auth.FromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	prefix, err := h.numberingService.GetPrefix(r.Context(), userCtx.AccountID)
	if err != nil {
		h.logger.Error("failed to get sow prefix", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get SOW prefix")
		return
	}

	respondJSON(w, http.StatusOK, prefix)
}

// SetSowPrefix godoc
// @Summary Set SOW prefix
// @Description Set the account's document number prefix. Once the prefix has been used on an issued number it locks and can no longer change.
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body domain.SetPrefixRequest true "Prefix"
// @Success 200 {object} domain.PrefixDTO
// @Failure 400 {object} domain.APIError "Invalid prefix"
// @Failure 409 {object} domain.APIError "Prefix is locked"
// @Security BearerAuth
// @Router /settings/sow-prefix [put]
func (h *SettingsHandler) SetSowPrefix(w http.ResponseWriter, r *http.Request) {
	userCtx, ok := auth.FromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req domain.SetPrefixRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: malformed JSON")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	prefix, err := h.numberingService.SetPrefix(r.Context(), userCtx.AccountID, req.Prefix)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPrefix):
			respondWithError(w, http.StatusBadRequest, "Prefix must be 1-10 letters, digits, dashes or underscores")
		case errors.Is(err, service.ErrPrefixLocked):
			respondWithError(w, http.StatusConflict, "Prefix is locked and can no longer be changed")
		default:
			h.logger.Error("failed to set sow prefix", zap.Error(err))
			respondWithError(w, http.StatusInternalServerError, "Failed to set SOW prefix")
		}
		return
	}

	respondJSON(w, http.StatusOK, prefix)
}
