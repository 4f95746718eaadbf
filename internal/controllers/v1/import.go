package v1

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moneta-finance/backend/internal/auth"
	"github.com/moneta-finance/backend/internal/httputil"
	"github.com/moneta-finance/backend/internal/importer"
	"github.com/moneta-finance/backend/internal/models"
)

type ImportResponse struct {
	Data    *importer.Summary `json:"data"`                                           // Number of imported resources per type
	Error   *string           `json:"error" example:"the import document is invalid"` // The error, if any occurred
	Details []string          `json:"details,omitempty"`                              // All problems found in the document
}

func RegisterImportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsImport)
	r.POST("", Import)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Security		BearerAuth
// @Success		204
// @Router			/v1/import [options]
func OptionsImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Import
// @Description	Imports a document created by the export endpoint. All resources get new IDs, categories
// @Description	are merged with existing ones of the same type and name. Either everything is imported or nothing.
// @Tags			Import
// @Security		BearerAuth
// @Accept			json
// @Produce		json
// @Success		201			{object}	ImportResponse
// @Failure		400			{object}	ImportResponse
// @Failure		422			{object}	ImportResponse
// @Failure		500			{object}	ImportResponse
// @Param			document	body		importer.Document	true	"Export document"
// @Router			/v1/import [post]
func Import(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ImportResponse{
			Error: &s,
		})
		return
	}

	doc, err := importer.Parse(body)
	if err != nil {
		s := err.Error()
		r := ImportResponse{Error: &s}

		var validationErr *importer.ValidationError
		if errors.As(err, &validationErr) {
			r.Details = validationErr.Details
		}

		c.JSON(status(err), r)
		return
	}

	summary, err := importer.Import(models.DB, auth.UserID(c), doc)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusCreated, ImportResponse{Data: &summary})
}
