package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sambafall/missmister-api/internal/api/handler/v1/response"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{
		db: db,
	}
}

// HandleHealthcheck godoc
// @Summary      Liveness and database probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.Health
// @Failure      500  {object}  response.Health
// @Router       /health [get]
func (h *HealthHandler) HandleHealthcheck(ctx *gin.Context) {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx.Request.Context())
	}
	if err != nil {
		zap.L().Error("healthcheck failed", zap.Error(fmt.Errorf("v1.HandleHealthcheck -> %w", err)))
		ctx.JSON(http.StatusInternalServerError, response.Health{
			Status:   "unhealthy",
			Database: "disconnected",
		})
		return
	}

	ctx.JSON(http.StatusOK, response.Health{
		Status:   "healthy",
		Database: "connected",
	})
}
