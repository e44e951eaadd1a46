package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sambafall/missmister-api/internal/api/handler/v1/response"
	"github.com/sambafall/missmister-api/internal/domain"
	"github.com/sambafall/missmister-api/internal/service"
)

type AdminVoteService interface {
	PendingTransactions(ctx context.Context) ([]domain.Transaction, error)
	ValidateTransaction(ctx context.Context, id uint) error
	RejectTransaction(ctx context.Context, id uint) error
}

type AdminHandler struct {
	svc AdminVoteService
}

func NewAdminHandler(svc AdminVoteService) *AdminHandler {
	return &AdminHandler{
		svc: svc,
	}
}

// HandleListPending godoc
// @Summary      List pending transactions
// @Description  Review queue, most recent first, with candidate display data
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Transaction
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/transactions/pending [get]
func (h *AdminHandler) HandleListPending(ctx *gin.Context) {
	transactions, err := h.svc.PendingTransactions(ctx.Request.Context())
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("v1.HandleListPending -> h.svc.PendingTransactions -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, transactions)
}

// HandleValidate godoc
// @Summary      Validate a pending transaction
// @Description  Credits the candidate tally and marks the transaction validated
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "transaction ID"
// @Success      200  {object}  response.Message
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/transactions/{id}/validate [post]
func (h *AdminHandler) HandleValidate(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid transaction ID: %w", err)))
		return
	}

	if err = h.svc.ValidateTransaction(ctx.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, service.ErrTransactionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("pending transaction", "id", id))
			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("v1.HandleValidate -> h.svc.ValidateTransaction -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, response.Message{Message: "transaction validated"})
}

// HandleReject godoc
// @Summary      Reject a pending transaction
// @Description  Discards the transaction; no tally effect
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "transaction ID"
// @Success      200  {object}  response.Message
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/transactions/{id}/reject [post]
func (h *AdminHandler) HandleReject(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid transaction ID: %w", err)))
		return
	}

	if err = h.svc.RejectTransaction(ctx.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, service.ErrTransactionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("pending transaction", "id", id))
			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("v1.HandleReject -> h.svc.RejectTransaction -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, response.Message{Message: "transaction rejected"})
}
