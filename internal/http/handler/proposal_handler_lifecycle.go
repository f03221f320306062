package handler

// This file contains lifecycle and cloning handlers for the ProposalHandler.
// Includes:
// - Send
// - Explicit status changes (on hold, manual accept or decline)
// - Cloning proposals and templates

import (
	"encoding/json"
	"net/http"

	"github.com/craftwise/proposal-api/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SendProposal godoc
// @Summary Send proposal
// @Description Marks a proposal as sent. Resending from sent or viewed resets the recipient-facing state.
// @Tags Proposals
// @Produce json
// @Param id path string true "Proposal ID"
// @Success 200 {object} domain.ProposalDTO "Updated proposal"
// @Failure 400 {object} domain.APIError "Invalid proposal ID or template"
// @Failure 404 {object} domain.APIError "Proposal not found"
// @Failure 409 {object} domain.APIError "Proposal not in a sendable status"
// @Security BearerAuth
// @Router /proposals/{id}/send [post]
func (h *ProposalHandler) SendProposal(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid proposal ID: must be a valid UUID")
		return
	}

	proposal, err := h.lifecycleService.Send(r.Context(), id)
	if err != nil {
		h.handleProposalError(w, err, id)
		return
	}

	respondJSON(w, http.StatusOK, proposal)
}

// SetProposalStatus godoc
// @Summary Set proposal status
// @Description Applies an explicit status change, for putting a proposal on hold or recording an outcome agreed out of band. Viewed and expired are system-managed and cannot be set.
// @Tags Proposals
// @Accept json
// @Produce json
// @Param id path string true "Proposal ID"
// @Param request body domain.SetStatusRequest true "Target status"
// @Success 200 {object} domain.ProposalDTO "Updated proposal"
// @Failure 400 {object} domain.APIError "Invalid proposal ID, body, or target status"
// @Failure 404 {object} domain.APIError "Proposal not found"
// @Security BearerAuth
// @Router /proposals/{id}/status [put]
func (h *ProposalHandler) SetProposalStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid proposal ID: must be a valid UUID")
		return
	}

	var req domain.SetStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: malformed JSON")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	proposal, err := h.lifecycleService.SetStatus(r.Context(), id, domain.ProposalStatus(req.Status))
	if err != nil {
		h.handleProposalError(w, err, id)
		return
	}

	respondJSON(w, http.StatusOK, proposal)
}

// CloneProposal godoc
// @Summary Clone proposal
// @Description Copies a proposal or template into a fresh draft with its own token and document number. Lifecycle history and signatures are not carried over.
// @Tags Proposals
// @Accept json
// @Produce json
// @Param id path string true "Proposal ID"
// @Param request body domain.CloneProposalRequest true "Clone options"
// @Success 201 {object} domain.ProposalDTO "Created copy"
// @Failure 400 {object} domain.APIError "Invalid proposal ID or body"
// @Failure 404 {object} domain.APIError "Proposal not found"
// @Security BearerAuth
// @Router /proposals/{id}/clone [post]
func (h *ProposalHandler) CloneProposal(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid proposal ID: must be a valid UUID")
		return
	}

	var req domain.CloneProposalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: malformed JSON")
		return
	}

	proposal, err := h.proposalService.Clone(r.Context(), id, &req)
	if err != nil {
		h.handleProposalError(w, err, id)
		return
	}

	h.logger.Info("proposal cloned",
		zap.String("source_id", id.String()),
		zap.String("clone_id", proposal.ID.String()),
	)

	w.Header().Set("Location", "/api/v1/proposals/"+proposal.ID.String())
	respondJSON(w, http.StatusCreated, proposal)
}
