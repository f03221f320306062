package handler

import (
	"net/http"
	"strconv"

	"github.com/craftwise/proposal-api/internal/auth"
	"github.com/craftwise/proposal-api/internal/reviews"
	"go.uber.org/zap"
)

// ReviewsHandler exposes review excerpts from the reviews database for the
// proposal section editor. Returns 503 when the connection is not configured.
type ReviewsHandler struct {
	client *reviews.Client
	logger *zap.Logger
}

// NewReviewsHandler creates a new ReviewsHandler
func NewReviewsHandler(client *reviews.Client, logger *zap.Logger) *ReviewsHandler {
	return &ReviewsHandler{
		client: client,
		logger: logger,
	}
}

// ListExcerpts godoc
// @Summary List review excerpts
// @Description Get published review excerpts for the account, for embedding into a reviews section. Excerpts are snapshotted into the section at save time.
// @Tags Reviews
// @Produce json
// @Param limit query int false "Maximum excerpts to return" default(10)
// @Success 200 {array} domain.ReviewExcerpt
// @Failure 500 {object} domain.APIError
// @Failure 503 {object} domain.APIError "Reviews database not configured"
// @Security BearerAuth
// @Router /reviews/excerpts [get]
func (h *ReviewsHandler) ListExcerpts(w http.ResponseWriter, r *http.Request) {
	if !h.client.IsEnabled() {
		respondWithError(w, http.StatusServiceUnavailable, "Reviews database not configured")
		return
	}

	userCtx, ok := auth.FromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 {
		limit = 10
	}

	excerpts, err := h.client.FetchExcerpts(r.Context(), userCtx.AccountID.String(), limit)
	if err != nil {
		h.logger.Error("failed to fetch review excerpts", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to fetch review excerpts")
		return
	}

	respondJSON(w, http.StatusOK, excerpts)
}
