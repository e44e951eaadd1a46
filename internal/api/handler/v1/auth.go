package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sambafall/missmister-api/internal/api/handler/v1/request"
	"github.com/sambafall/missmister-api/internal/api/handler/v1/response"
	"github.com/sambafall/missmister-api/internal/service"
)

type AuthService interface {
	Login(password string) (string, error)
}

type AuthHandler struct {
	svc AuthService
}

func NewAuthHandler(svc AuthService) *AuthHandler {
	return &AuthHandler{
		svc: svc,
	}
}

// HandleLogin godoc
// @Summary      Admin login
// @Description  Exchanges the shared admin password for a short-lived token
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request  body      request.LoginRequest  true  "credentials"
// @Success      200      {object}  response.Login
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Router       /admin/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	var req request.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	token, err := h.svc.Login(req.Password)
	if err != nil {
		if errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrUnauthorized(service.ErrWrongPassword))
			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, response.Login{
		Message: "login successful",
		Token:   token,
	})
}
