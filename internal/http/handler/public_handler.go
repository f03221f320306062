package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/craftwise/proposal-api/internal/domain"
	"github.com/craftwise/proposal-api/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// PublicHandler handles the recipient-facing proposal routes reached through
// the share token. Responses never reveal whether a token ever existed.
type PublicHandler struct {
	lifecycleService *service.LifecycleService
	logger           *zap.Logger
}

// NewPublicHandler creates a new PublicHandler
func NewPublicHandler(lifecycleService *service.LifecycleService, logger *zap.Logger) *PublicHandler {
	return &PublicHandler{
		lifecycleService: lifecycleService,
		logger:           logger,
	}
}

// ViewProposal godoc
// @Summary View proposal by share token
// @Description Resolves a proposal through its share token for the public page. The first genuine recipient visit marks the proposal as viewed; owner previews do not.
// @Tags Public
// @Produce json
// @Param token path string true "Share token"
// @Success 200 {object} domain.ProposalDTO "Proposal with visibility settings applied"
// @Failure 404 {object} domain.APIError "Unknown token"
// @Router /p/{token} [get]
func (h *PublicHandler) ViewProposal(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	proposal, err := h.lifecycleService.ViewByToken(r.Context(), token)
	if err != nil {
		h.handlePublicError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, proposal)
}

// SignProposal godoc
// @Summary Sign proposal
// @Description Records the recipient's signature and accepts the proposal. Exactly one signature ever succeeds per proposal.
// @Tags Public
// @Accept json
// @Produce json
// @Param token path string true "Share token"
// @Param request body domain.SignProposalRequest true "Signature data"
// @Success 200 {object} domain.ProposalDTO "Accepted proposal"
// @Failure 400 {object} domain.APIError "Invalid body, terms not accepted, or signature image missing"
// @Failure 404 {object} domain.APIError "Unknown token"
// @Failure 409 {object} domain.APIError "Already signed or not open for signing"
// @Failure 410 {object} domain.APIError "Proposal expired"
// @Router /p/{token}/sign [post]
func (h *PublicHandler) SignProposal(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	var req domain.SignProposalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: malformed JSON")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	proposal, err := h.lifecycleService.Sign(r.Context(), token, &req)
	if err != nil {
		h.handlePublicError(w, err)
		return
	}

	h.logger.Info("proposal signed via public route",
		zap.String("proposal_id", proposal.ID.String()),
	)

	respondJSON(w, http.StatusOK, proposal)
}

// DeclineProposal godoc
// @Summary Decline proposal
// @Description Records the recipient turning the proposal down.
// @Tags Public
// @Produce json
// @Param token path string true "Share token"
// @Success 200 {object} domain.ProposalDTO "Declined proposal"
// @Failure 404 {object} domain.APIError "Unknown token"
// @Failure 409 {object} domain.APIError "Not open for a response"
// @Failure 410 {object} domain.APIError "Proposal expired"
// @Router /p/{token}/decline [post]
func (h *PublicHandler) DeclineProposal(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	proposal, err := h.lifecycleService.Decline(r.Context(), token)
	if err != nil {
		h.handlePublicError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, proposal)
}

// handlePublicError maps service errors to recipient-facing responses.
// Details stay deliberately generic on this surface.
func (h *PublicHandler) handlePublicError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrProposalNotFound):
		respondWithError(w, http.StatusNotFound, "Proposal not found")
	case errors.Is(err, service.ErrProposalExpired):
		respondWithError(w, http.StatusGone, "This proposal has expired")
	case errors.Is(err, service.ErrAlreadySigned):
		respondWithError(w, http.StatusConflict, "This proposal has already been signed")
	case errors.Is(err, service.ErrInvalidTransition):
		respondWithError(w, http.StatusConflict, "This proposal is not open for a response")
	case errors.Is(err, service.ErrSigningDisabled):
		respondWithError(w, http.StatusConflict, "This proposal does not accept signatures")
	case errors.Is(err, service.ErrTermsNotAccepted):
		respondWithError(w, http.StatusBadRequest, "Terms must be accepted to sign")
	case errors.Is(err, service.ErrSignatureRequired):
		respondWithError(w, http.StatusBadRequest, "A signature image is required")
	default:
		h.logger.Error("public proposal operation failed", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
