package v1

import (
	"errors"
	"net/http"

	"github.com/moneta-finance/backend/internal/importer"
	"github.com/moneta-finance/backend/internal/models"
)

// status returns the appropriate status for an error
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, importer.ErrDocumentInvalid):
		return http.StatusUnprocessableEntity
	}

	return http.StatusBadRequest
}

var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
	errPresetUnknown       = errors.New("there is no card color preset with this ID")
	errSourceTypeFilter    = errors.New("the sourceType filter must be 'card' or 'bank'")
	errTypeFilter          = errors.New("the type filter must be 'expense' or 'income'")
	errInvoicePaidAmount   = errors.New("the paid amount must not be negative")
)

// Invoice errors
var (
	errInvoiceImmutable = errors.New("the card and the month of an invoice cannot be changed")
)
