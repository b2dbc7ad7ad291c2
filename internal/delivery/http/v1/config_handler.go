package v1

import (
	"go-jobcrawler-backend/internal/delivery/http/response"
	"go-jobcrawler-backend/internal/domain"
	"go-jobcrawler-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ConfigHandler struct {
	configUC domain.ConfigUsecase
}

func NewConfigHandler(r *gin.RouterGroup, configUC domain.ConfigUsecase) {
	handler := &ConfigHandler{configUC: configUC}

	r.GET("/config", handler.Get)
	r.POST("/config", handler.Update)
}

// Get godoc
// @Summary      Get current configuration
// @Description  Global job-search settings plus all active profiles
// @Tags         config
// @Produce      json
// @Success      200  {object}  domain.ConfigSnapshot
// @Failure      500  {object}  response.ErrorBody
// @Router       /config [get]
func (h *ConfigHandler) Get(c *gin.Context) {
	snapshot, err := h.configUC.GetConfig(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, snapshot)
}

// UpdateConfigResponse is the POST /config reply body.
type UpdateConfigResponse struct {
	Message      string           `json:"message"`
	Profiles     []domain.Profile `json:"profiles"`
	UpdatedCount int              `json:"updated_count"`
}

// Update godoc
// @Summary      Update job search configuration
// @Description  Creates or updates a preference profile per receiver email
// @Tags         config
// @Accept       json
// @Produce      json
// @Param        body  body      domain.UpdateConfigInput  true  "Configuration form"
// @Success      200   {object}  UpdateConfigResponse
// @Failure      400   {object}  response.ErrorBody
// @Failure      500   {object}  response.ErrorBody
// @Router       /config [post]
func (h *ConfigHandler) Update(c *gin.Context) {
	var input domain.UpdateConfigInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}

	result, err := h.configUC.UpdateConfig(c, &input)
	if err != nil {
		c.Error(err)
		return
	}

	response.OK(c, UpdateConfigResponse{
		Message:      "Configuration updated successfully",
		Profiles:     result.Profiles,
		UpdatedCount: result.UpdatedCount,
	})
}
