package importer

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/moneta-finance/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrUnknownReference = errors.New("the document references a resource that is not part of it")

// Summary counts the resources created by an import.
type Summary struct {
	Profile       bool `json:"profile" example:"true"` // Whether the profile was updated
	Banks         int  `json:"banks" example:"2"`
	Cards         int  `json:"cards" example:"1"`
	Categories    int  `json:"categories" example:"12"` // Categories that did not exist before
	Transactions  int  `json:"transactions" example:"147"`
	Invoices      int  `json:"invoices" example:"5"`
	CategoryRules int  `json:"categoryRules" example:"3"`
}

// Parse validates the raw document and decodes it.
func Parse(body []byte) (Document, error) {
	err := Validate(body)
	if err != nil {
		return Document{}, err
	}

	var doc Document
	err = json.Unmarshal(body, &doc)
	if err != nil {
		return Document{}, &ValidationError{Details: []string{err.Error()}}
	}

	return doc, nil
}

// Import creates all resources of the document for userID.
//
// All resources get new IDs, references between them are remapped.
// Categories are merged with existing categories of the same type and name.
// Either everything is imported or nothing.
func Import(db *gorm.DB, userID uuid.UUID, doc Document) (Summary, error) {
	var summary Summary
	owned := models.Owned{UserID: userID}

	// Start a transaction so we can roll back all created resources if an error occurs
	tx := db.Begin()

	if doc.Data.Profile != nil {
		profile, err := models.ProfileFor(tx, userID)
		if err != nil {
			tx.Rollback()
			return Summary{}, err
		}

		imported := *doc.Data.Profile
		imported.DefaultModel = profile.DefaultModel
		imported.UserID = userID

		err = tx.Save(&imported).Error
		if err != nil {
			tx.Rollback()
			return Summary{}, fmt.Errorf("profile: %w", err)
		}
		summary.Profile = true
	}

	banks := make(map[uuid.UUID]uuid.UUID)
	for _, bank := range doc.Data.Banks {
		oldID := bank.ID
		bank.DefaultModel = models.DefaultModel{}
		bank.Owned = owned

		err := tx.Create(&bank).Error
		if err != nil {
			tx.Rollback()
			return Summary{}, fmt.Errorf("bank %s: %w", oldID, err)
		}
		banks[oldID] = bank.ID
		summary.Banks++
	}

	cards := make(map[uuid.UUID]uuid.UUID)
	for _, card := range doc.Data.Cards {
		oldID := card.ID
		card.DefaultModel = models.DefaultModel{}
		card.Owned = owned

		err := tx.Create(&card).Error
		if err != nil {
			tx.Rollback()
			return Summary{}, fmt.Errorf("card %s: %w", oldID, err)
		}
		cards[oldID] = card.ID
		summary.Cards++
	}

	categories := make(map[uuid.UUID]uuid.UUID)
	for _, category := range doc.Data.Categories {
		oldID := category.ID

		var existing []models.Category
		err := models.Scope(tx, userID).
			Where(&models.Category{Type: category.Type, Name: category.Name}).
			Limit(1).
			Find(&existing).Error
		if err != nil {
			tx.Rollback()
			return Summary{}, err
		}

		if len(existing) == 1 {
			categories[oldID] = existing[0].ID
			continue
		}

		category.DefaultModel = models.DefaultModel{}
		category.UserID = userID

		err = tx.Create(&category).Error
		if err != nil {
			tx.Rollback()
			return Summary{}, fmt.Errorf("category %s: %w", oldID, err)
		}
		categories[oldID] = category.ID
		summary.Categories++
	}

	accounts := map[models.SourceType]map[uuid.UUID]uuid.UUID{
		models.SourceBank: banks,
		models.SourceCard: cards,
	}

	for _, transaction := range doc.Data.Transactions {
		oldID := transaction.ID
		transaction.DefaultModel = models.DefaultModel{}
		transaction.Owned = owned
		transaction.Category = nil

		var err error
		transaction.CategoryID, err = remap(categories, transaction.CategoryID)
		if err == nil {
			transaction.SourceID, err = remap(accounts[transaction.SourceType], transaction.SourceID)
		}
		if err == nil {
			transaction.DestinationID, err = remap(accounts[transaction.DestinationType], transaction.DestinationID)
		}
		if err != nil {
			tx.Rollback()
			return Summary{}, fmt.Errorf("transaction %s: %w", oldID, err)
		}

		err = tx.Omit(clause.Associations).Create(&transaction).Error
		if err != nil {
			tx.Rollback()
			return Summary{}, fmt.Errorf("transaction %s: %w", oldID, err)
		}
		summary.Transactions++
	}

	for _, invoice := range doc.Data.Invoices {
		oldID := invoice.ID
		cardID, ok := cards[invoice.CardID]
		if !ok {
			tx.Rollback()
			return Summary{}, fmt.Errorf("invoice %s: %w", oldID, ErrUnknownReference)
		}

		invoice.DefaultModel = models.DefaultModel{}
		invoice.Owned = owned
		invoice.CardID = cardID

		err := tx.Omit(clause.Associations).Create(&invoice).Error
		if err != nil {
			tx.Rollback()
			return Summary{}, fmt.Errorf("invoice %s: %w", oldID, err)
		}
		summary.Invoices++
	}

	for _, rule := range doc.Data.CategoryRules {
		oldID := rule.ID
		categoryID, ok := categories[rule.CategoryID]
		if !ok {
			tx.Rollback()
			return Summary{}, fmt.Errorf("category rule %s: %w", oldID, ErrUnknownReference)
		}

		rule.DefaultModel = models.DefaultModel{}
		rule.Owned = owned
		rule.CategoryID = categoryID

		err := tx.Omit(clause.Associations).Create(&rule).Error
		if err != nil {
			tx.Rollback()
			return Summary{}, fmt.Errorf("category rule %s: %w", oldID, err)
		}
		summary.CategoryRules++
	}

	err := tx.Commit().Error
	if err != nil {
		return Summary{}, err
	}

	return summary, nil
}

// remap translates a reference to an ID of the document into the ID
// of the created resource.
func remap(ids map[uuid.UUID]uuid.UUID, id *uuid.UUID) (*uuid.UUID, error) {
	if id == nil || *id == uuid.Nil {
		return nil, nil
	}

	newID, ok := ids[*id]
	if !ok {
		return nil, ErrUnknownReference
	}

	return &newID, nil
}
