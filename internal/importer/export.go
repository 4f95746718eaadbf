// Package importer exports all data of a user into one JSON document
// and imports such documents again.
package importer

import (
	"time"

	"github.com/google/uuid"
	"github.com/moneta-finance/backend/internal/models"
	"gorm.io/gorm"
)

// Clacks keeps the name of Sir Terry Pratchett alive in every export.
const Clacks = "GNU Terry Pratchett"

// Data holds all resources of a user.
type Data struct {
	Profile       *models.Profile       `json:"profile"`
	Banks         []models.Bank         `json:"banks"`
	Cards         []models.Card         `json:"cards"`
	Categories    []models.Category     `json:"categories"`
	Transactions  []models.Transaction  `json:"transactions"`
	Invoices      []models.CardInvoice  `json:"invoices"`
	CategoryRules []models.CategoryRule `json:"categoryRules"`
}

// Document is the format of exports and imports.
type Document struct {
	Version      string    `json:"version" example:"1.0.0"`                         // Version of the backend that created the export
	CreationTime time.Time `json:"creationTime" example:"2024-05-01T12:00:00.000Z"` // Time the export was created
	Clacks       string    `json:"clacks" example:"GNU Terry Pratchett"`
	Data         Data      `json:"data"`
}

// Export collects all resources owned by userID.
func Export(db *gorm.DB, userID uuid.UUID, version string) (Document, error) {
	doc := Document{
		Version:      version,
		CreationTime: time.Now().In(time.UTC),
		Clacks:       Clacks,
		Data: Data{
			Banks:         []models.Bank{},
			Cards:         []models.Card{},
			Categories:    []models.Category{},
			Transactions:  []models.Transaction{},
			Invoices:      []models.CardInvoice{},
			CategoryRules: []models.CategoryRule{},
		},
	}

	var profiles []models.Profile
	err := db.Where(&models.Profile{UserID: userID}).Limit(1).Find(&profiles).Error
	if err != nil {
		return Document{}, err
	}
	if len(profiles) == 1 {
		doc.Data.Profile = &profiles[0]
	}

	for _, resources := range []any{
		&doc.Data.Banks,
		&doc.Data.Cards,
		&doc.Data.Categories,
		&doc.Data.Transactions,
		&doc.Data.Invoices,
		&doc.Data.CategoryRules,
	} {
		err = models.Scope(db, userID).Order("created_at ASC").Find(resources).Error
		if err != nil {
			return Document{}, err
		}
	}

	return doc, nil
}
