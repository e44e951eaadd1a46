package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sambafall/missmister-api/internal/api/handler/v1/response"
	"github.com/sambafall/missmister-api/internal/domain"
)

type CandidateService interface {
	Candidates(ctx context.Context, category *domain.Category) ([]domain.Candidate, error)
}

type CandidateHandler struct {
	svc CandidateService
}

func NewCandidateHandler(svc CandidateService) *CandidateHandler {
	return &CandidateHandler{
		svc: svc,
	}
}

// HandleListCandidates godoc
// @Summary      List all candidates
// @Description  Candidates ordered by category then numeric suffix
// @Tags         candidates
// @Produce      json
// @Success      200  {array}   domain.Candidate
// @Failure      500  {object}  response.Err
// @Router       /candidates [get]
func (h *CandidateHandler) HandleListCandidates(ctx *gin.Context) {
	candidates, err := h.svc.Candidates(ctx.Request.Context(), nil)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("v1.HandleListCandidates -> h.svc.Candidates -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, candidates)
}

// HandleListCandidatesByCategory godoc
// @Summary      List candidates in one category
// @Tags         candidates
// @Produce      json
// @Param        category  path      string  true  "miss or mister"
// @Success      200       {array}   domain.Candidate
// @Failure      500       {object}  response.Err
// @Router       /candidates/{category} [get]
func (h *CandidateHandler) HandleListCandidatesByCategory(ctx *gin.Context) {
	// An unknown category simply yields an empty roster.
	category := domain.Category(ctx.Param("category"))

	candidates, err := h.svc.Candidates(ctx.Request.Context(), &category)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("v1.HandleListCandidatesByCategory -> h.svc.Candidates -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, candidates)
}
