package v1

import (
	"go-jobcrawler-backend/internal/delivery/http/response"
	"go-jobcrawler-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthUC usecase.HealthUsecase
}

func NewHealthHandler(r *gin.RouterGroup, healthUC usecase.HealthUsecase) {
	handler := &HealthHandler{healthUC: healthUC}

	r.GET("/health", handler.Check)
	r.GET("/health/deps", handler.Dependencies)
}

// Check godoc
// @Summary      Health check
// @Description  Static availability probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	response.OK(c, h.healthUC.Check(c))
}

// Dependencies godoc
// @Summary      Dependency health
// @Description  Reports database and redis reachability
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health/deps [get]
func (h *HealthHandler) Dependencies(c *gin.Context) {
	response.OK(c, h.healthUC.Dependencies(c))
}
