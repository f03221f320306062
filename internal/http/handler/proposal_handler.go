package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/craftwise/proposal-api/internal/domain"
	"github.com/craftwise/proposal-api/internal/repository"
	"github.com/craftwise/proposal-api/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProposalHandler handles HTTP requests for proposals and templates
type ProposalHandler struct {
	proposalService  *service.ProposalService
	lifecycleService *service.LifecycleService
	logger           *zap.Logger
}

// NewProposalHandler creates a new ProposalHandler
func NewProposalHandler(proposalService *service.ProposalService, lifecycleService *service.LifecycleService, logger *zap.Logger) *ProposalHandler {
	return &ProposalHandler{
		proposalService:  proposalService,
		lifecycleService: lifecycleService,
		logger:           logger,
	}
}

// ListProposals godoc
// @Summary List proposals
// @Description Get paginated list of proposals with optional filters
// @Tags Proposals
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page" default(20)
// @Param status query string false "Filter by status" Enums(draft, sent, viewed, on_hold, accepted, declined, expired)
// @Param isTemplate query bool false "Filter templates or proposals"
// @Param search query string false "Search by title or client name"
// @Param contactId query string false "Filter by contact ID"
// @Param sortBy query string false "Sort option" Enums(created_desc, created_asc, title_asc, number_desc)
// @Success 200 {object} domain.PaginatedResponse
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Router /proposals [get]
func (h *ProposalHandler) ListProposals(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 200 {
		pageSize = 200
	}

	filters := &repository.ProposalFilters{
		Search: r.URL.Query().Get("search"),
	}

	if status := r.URL.Query().Get("status"); status != "" {
		st := domain.ProposalStatus(status)
		if !st.IsValid() {
			respondWithError(w, http.StatusBadRequest, "Invalid status: must be one of draft, sent, viewed, on_hold, accepted, declined, expired")
			return
		}
		filters.Status = &st
	}

	if isTemplate := r.URL.Query().Get("isTemplate"); isTemplate != "" {
		v, err := strconv.ParseBool(isTemplate)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid isTemplate: must be true or false")
			return
		}
		filters.IsTemplate = &v
	}

	if contactID := r.URL.Query().Get("contactId"); contactID != "" {
		id, err := uuid.Parse(contactID)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid contactId: must be a valid UUID")
			return
		}
		filters.ContactID = &id
	}

	sortBy := repository.ProposalSortByCreatedDesc
	if s := r.URL.Query().Get("sortBy"); s != "" {
		sortBy = repository.ProposalSortOption(s)
	}

	result, err := h.proposalService.List(r.Context(), page, pageSize, filters, sortBy)
	if err != nil {
		h.logger.Error("failed to list proposals", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list proposals")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// GetProposal godoc
// @Summary Get proposal
// @Description Get a proposal by ID with sections, line items, totals and signature state
// @Tags Proposals
// @Produce json
// @Param id path string true "Proposal ID"
// @Success 200 {object} domain.ProposalDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /proposals/{id} [get]
func (h *ProposalHandler) GetProposal(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid proposal ID: must be a valid UUID")
		return
	}

	proposal, err := h.proposalService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProposalNotFound) {
			respondWithError(w, http.StatusNotFound, "Proposal not found")
			return
		}
		h.logger.Error("failed to get proposal", zap.Error(err), zap.String("proposal_id", id.String()))
		respondWithError(w, http.StatusInternalServerError, "Failed to get proposal")
		return
	}

	respondJSON(w, http.StatusOK, proposal)
}

// CreateProposal godoc
// @Summary Create proposal
// @Description Create a new proposal or template
// @Tags Proposals
// @Accept json
// @Produce json
// @Param request body domain.CreateProposalRequest true "Proposal data"
// @Success 201 {object} domain.ProposalDTO
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Router /proposals [post]
func (h *ProposalHandler) CreateProposal(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateProposalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: malformed JSON")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	proposal, err := h.proposalService.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrContactNotFound) {
			respondWithError(w, http.StatusBadRequest, "Contact not found")
			return
		}
		h.logger.Error("failed to create proposal", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to create proposal")
		return
	}

	w.Header().Set("Location", "/api/v1/proposals/"+proposal.ID.String())
	respondJSON(w, http.StatusCreated, proposal)
}

// UpdateProposal godoc
// @Summary Update proposal
// @Description Update an editable proposal or template. Sections and line items are replaced wholesale.
// @Tags Proposals
// @Accept json
// @Produce json
// @Param id path string true "Proposal ID"
// @Param request body domain.UpdateProposalRequest true "Proposal data"
// @Success 200 {object} domain.ProposalDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Security BearerAuth
// @Router /proposals/{id} [put]
func (h *ProposalHandler) UpdateProposal(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid proposal ID: must be a valid UUID")
		return
	}

	var req domain.UpdateProposalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: malformed JSON")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	proposal, err := h.proposalService.Update(r.Context(), id, &req)
	if err != nil {
		h.handleProposalError(w, err, id)
		return
	}

	respondJSON(w, http.StatusOK, proposal)
}

// DeleteProposal godoc
// @Summary Delete proposal
// @Description Delete a proposal. Its document number is never reissued.
// @Tags Proposals
// @Param id path string true "Proposal ID"
// @Success 204 "No Content"
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /proposals/{id} [delete]
func (h *ProposalHandler) DeleteProposal(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid proposal ID: must be a valid UUID")
		return
	}

	if err := h.proposalService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrProposalNotFound) {
			respondWithError(w, http.StatusNotFound, "Proposal not found")
			return
		}
		h.logger.Error("failed to delete proposal", zap.Error(err), zap.String("proposal_id", id.String()))
		respondWithError(w, http.StatusInternalServerError, "Failed to delete proposal")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetStatusCounts godoc
// @Summary Get proposal status counts
// @Description Get per-status proposal counts for the account dashboard
// @Tags Proposals
// @Produce json
// @Success 200 {object} map[string]int64
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Router /proposals/status-counts [get]
func (h *ProposalHandler) GetStatusCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.proposalService.StatusCounts(r.Context())
	if err != nil {
		h.logger.Error("failed to count proposals", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to count proposals")
		return
	}

	respondJSON(w, http.StatusOK, counts)
}

// handleProposalError maps service errors to HTTP responses
func (h *ProposalHandler) handleProposalError(w http.ResponseWriter, err error, id uuid.UUID) {
	switch {
	case errors.Is(err, service.ErrProposalNotFound):
		respondWithError(w, http.StatusNotFound, "Proposal not found")
	case errors.Is(err, service.ErrEditNotAllowed):
		respondWithError(w, http.StatusConflict, "Proposal can no longer be edited in its current status")
	case errors.Is(err, service.ErrContactNotFound):
		respondWithError(w, http.StatusBadRequest, "Contact not found")
	case errors.Is(err, service.ErrTemplateLifecycle):
		respondWithError(w, http.StatusBadRequest, "Templates have no lifecycle")
	case errors.Is(err, service.ErrInvalidTransition):
		respondWithError(w, http.StatusConflict, "Status transition not allowed from the current status")
	case errors.Is(err, service.ErrInvalidStatus):
		respondWithError(w, http.StatusBadRequest, "Requested status cannot be set directly")
	default:
		h.logger.Error("proposal operation failed", zap.Error(err), zap.String("proposal_id", id.String()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
