package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moneta-finance/backend/internal/auth"
	"github.com/moneta-finance/backend/internal/httputil"
	"github.com/moneta-finance/backend/internal/models"
)

// RegisterProfileRoutes registers the routes for the profile with
// the RouterGroup that is passed.
func RegisterProfileRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsProfile)
	r.GET("", GetProfile)
	r.PATCH("", UpdateProfile)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Profile
// @Security		BearerAuth
// @Success		204
// @Router			/v1/profile [options]
func OptionsProfile(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Get profile
// @Description	Returns the profile of the user. An empty profile is created when the user has none.
// @Tags			Profile
// @Security		BearerAuth
// @Produce		json
// @Success		200	{object}	ProfileResponse
// @Failure		500	{object}	ProfileResponse
// @Router			/v1/profile [get]
func GetProfile(c *gin.Context) {
	profile, err := models.ProfileFor(models.DB, auth.UserID(c))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &s,
		})
		return
	}

	data := newProfile(c, profile)
	c.JSON(http.StatusOK, ProfileResponse{Data: &data})
}

// @Summary		Update profile
// @Description	Updates the profile of the user. Only values to be updated need to be specified.
// @Tags			Profile
// @Security		BearerAuth
// @Accept			json
// @Produce		json
// @Success		200		{object}	ProfileResponse
// @Failure		400		{object}	ProfileResponse
// @Failure		500		{object}	ProfileResponse
// @Param			profile	body		ProfileEditable	true	"Profile"
// @Router			/v1/profile [patch]
func UpdateProfile(c *gin.Context) {
	profile, err := models.ProfileFor(models.DB, auth.UserID(c))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &s,
		})
		return
	}

	editable := newProfileEditable(profile)
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &s,
		})
		return
	}

	updated := editable.model()
	updated.DefaultModel = profile.DefaultModel
	updated.UserID = profile.UserID

	err = models.DB.Save(&updated).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &s,
		})
		return
	}

	data := newProfile(c, updated)
	c.JSON(http.StatusOK, ProfileResponse{Data: &data})
}
