package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sambafall/missmister-api/internal/api/handler/v1/response"
	"github.com/sambafall/missmister-api/internal/domain"
)

type StatsService interface {
	Ranking(ctx context.Context, category *domain.Category) ([]domain.RankedCandidate, error)
	Stats(ctx context.Context) (domain.Stats, error)
}

type StatsHandler struct {
	svc StatsService
}

func NewStatsHandler(svc StatsService) *StatsHandler {
	return &StatsHandler{
		svc: svc,
	}
}

// HandleRanking godoc
// @Summary      Current standings
// @Description  Candidates by tally descending, names breaking ties; rank_position is the row number
// @Tags         stats
// @Produce      json
// @Success      200  {array}   domain.RankedCandidate
// @Failure      500  {object}  response.Err
// @Router       /ranking [get]
func (h *StatsHandler) HandleRanking(ctx *gin.Context) {
	ranking, err := h.svc.Ranking(ctx.Request.Context(), nil)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("v1.HandleRanking -> h.svc.Ranking -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, ranking)
}

// HandleRankingByCategory godoc
// @Summary      Standings within one category
// @Tags         stats
// @Produce      json
// @Param        category  path      string  true  "miss or mister"
// @Success      200       {array}   domain.RankedCandidate
// @Failure      500       {object}  response.Err
// @Router       /ranking/{category} [get]
func (h *StatsHandler) HandleRankingByCategory(ctx *gin.Context) {
	category := domain.Category(ctx.Param("category"))

	ranking, err := h.svc.Ranking(ctx.Request.Context(), &category)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("v1.HandleRankingByCategory -> h.svc.Ranking -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, ranking)
}

// HandleStats godoc
// @Summary      Aggregate counters
// @Description  Candidate and vote totals, transactions by status, deadline info
// @Tags         stats
// @Produce      json
// @Success      200  {object}  domain.Stats
// @Failure      500  {object}  response.Err
// @Router       /stats [get]
func (h *StatsHandler) HandleStats(ctx *gin.Context) {
	stats, err := h.svc.Stats(ctx.Request.Context())
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("v1.HandleStats -> h.svc.Stats -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
