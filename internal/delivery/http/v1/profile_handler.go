package v1

import (
	"go-jobcrawler-backend/internal/delivery/http/response"
	"go-jobcrawler-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(r *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	profiles := r.Group("/profiles")
	{
		profiles.GET("", handler.List)
		profiles.GET("/:email", handler.Get)
	}
}

// ProfileListResponse wraps the active profile list.
type ProfileListResponse struct {
	Profiles []domain.Profile `json:"profiles"`
}

// List godoc
// @Summary      List user profiles
// @Description  All active job-search preference profiles
// @Tags         profiles
// @Produce      json
// @Success      200  {object}  ProfileListResponse
// @Failure      500  {object}  response.ErrorBody
// @Router       /profiles [get]
func (h *ProfileHandler) List(c *gin.Context) {
	profiles, err := h.profileUC.ListActiveProfiles(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, ProfileListResponse{Profiles: profiles})
}

// Get godoc
// @Summary      Get a user profile
// @Description  Single profile lookup by email
// @Tags         profiles
// @Produce      json
// @Param        email  path      string  true  "Profile email"
// @Success      200    {object}  domain.Profile
// @Failure      404    {object}  response.ErrorBody
// @Failure      500    {object}  response.ErrorBody
// @Router       /profiles/{email} [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.profileUC.GetProfile(c, c.Param("email"))
	if err != nil {
		c.Error(err)
		return
	}
	response.OK(c, profile)
}
