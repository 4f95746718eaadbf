package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moneta-finance/backend/internal/auth"
	"github.com/moneta-finance/backend/internal/httputil"
	"github.com/moneta-finance/backend/internal/importer"
	"github.com/moneta-finance/backend/internal/models"
)

var backendVersion string

func RegisterExportRoutes(r *gin.RouterGroup, version string) {
	backendVersion = version

	{
		r.OPTIONS("", OptionsExport)
		r.GET("", GetExport)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Security		BearerAuth
// @Success		204
// @Router			/v1/export [options]
func OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export
// @Description	Exports all resources of the user. The export can be imported with the import endpoint.
// @Tags			Export
// @Security		BearerAuth
// @Produce		json
// @Success		200	{object}	importer.Document
// @Failure		500	{object}	httputil.HTTPError
// @Router			/v1/export [get]
func GetExport(c *gin.Context) {
	doc, err := importer.Export(models.DB, auth.UserID(c), backendVersion)
	if err != nil {
		c.JSON(status(err), httputil.HTTPError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, doc)
}
