package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sambafall/missmister-api/internal/api/handler/v1/request"
	"github.com/sambafall/missmister-api/internal/api/handler/v1/response"
	"github.com/sambafall/missmister-api/internal/domain"
	"github.com/sambafall/missmister-api/internal/service"
)

type VoteService interface {
	SubmitVote(ctx context.Context, candidateID, paymentMethod, code string, voteCount int) (domain.Transaction, error)
	CheckCode(ctx context.Context, code string) (domain.Transaction, bool, error)
}

type VoteHandler struct {
	svc VoteService
}

func NewVoteHandler(svc VoteService) *VoteHandler {
	return &VoteHandler{
		svc: svc,
	}
}

// HandleSubmitVote godoc
// @Summary      Submit a vote purchase
// @Description  Records a mobile-money vote purchase as a pending transaction
// @Tags         votes
// @Accept       json
// @Produce      json
// @Param        request  body      request.SubmitVoteRequest  true  "vote details"
// @Success      201      {object}  response.SubmitVote
// @Failure      400      {object}  response.Err
// @Failure      409      {object}  response.DuplicateCode
// @Failure      500      {object}  response.Err
// @Router       /vote [post]
func (h *VoteHandler) HandleSubmitVote(ctx *gin.Context) {
	var req request.SubmitVoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	// A missing vote_count means a single vote, as the mobile clients send.
	if req.VoteCount == 0 {
		req.VoteCount = 1
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.SubmitVote(ctx.Request.Context(), req.CandidateID, req.PaymentMethod, req.TransactionCode, req.VoteCount)
	if err != nil {
		var duplicate *service.DuplicateCodeError
		switch {
		case errors.As(err, &duplicate):
			ctx.JSON(http.StatusConflict, response.NewDuplicateCode(duplicate.Existing))
		case errors.Is(err, service.ErrVotingClosed):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrVotingClosed))
		case errors.Is(err, service.ErrInvalidVoteCount):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidVoteCount))
		case errors.Is(err, service.ErrCandidateNotFound):
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("unknown candidate %q", req.CandidateID)))
		default:
			response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("v1.HandleSubmitVote -> h.svc.SubmitVote -> %w", err)))
		}
		return
	}

	ctx.JSON(http.StatusCreated, response.SubmitVote{
		Message:       "transaction recorded, awaiting validation",
		TransactionID: created.ID,
	})
}

// HandleCheckTransaction godoc
// @Summary      Check a transaction code
// @Description  Reports whether a code has already been used, case-insensitively
// @Tags         votes
// @Produce      json
// @Param        code  path      string  true  "transaction code"
// @Success      200   {object}  response.CheckTransaction
// @Failure      500   {object}  response.Err
// @Router       /check-transaction/{code} [get]
func (h *VoteHandler) HandleCheckTransaction(ctx *gin.Context) {
	code := ctx.Param("code")

	transaction, exists, err := h.svc.CheckCode(ctx.Request.Context(), code)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("v1.HandleCheckTransaction -> h.svc.CheckCode -> %w", err)))
		return
	}

	if !exists {
		ctx.JSON(http.StatusOK, response.CheckTransaction{Exists: false})
		return
	}

	ctx.JSON(http.StatusOK, response.CheckTransaction{
		Exists:      true,
		Transaction: &transaction,
	})
}
