package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/moneta-finance/backend/internal/categorydisplay"
	"gorm.io/gorm"
)

// Category groups transactions of one type.
type Category struct {
	DefaultModel
	UserID    uuid.UUID       `json:"-" gorm:"uniqueIndex:category_user_type_name"`
	Type      TransactionType `json:"type" gorm:"uniqueIndex:category_user_type_name"`
	Name      string          `json:"name" gorm:"uniqueIndex:category_user_type_name"`
	Icon      string          `json:"icon"`
	Color     string          `json:"color"`
	IsDefault bool            `json:"isDefault"`
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Icon = strings.TrimSpace(c.Icon)
	c.Color = strings.TrimSpace(c.Color)

	if c.Name == "" {
		return ErrCategoryNameEmpty
	}

	if !c.Type.valid() {
		return ErrTransactionTypeInvalid
	}

	if c.Color != "" && !hexColor.MatchString(c.Color) {
		return ErrColorInvalid
	}

	return nil
}

// Display returns the name, icon and color to show for the category.
func (c *Category) Display() categorydisplay.Info {
	if c == nil {
		return categorydisplay.Display(nil)
	}

	return categorydisplay.Display(&categorydisplay.Category{
		Name:      c.Name,
		Icon:      c.Icon,
		Color:     c.Color,
		IsDefault: c.IsDefault,
	})
}

func seeds(t TransactionType) []categorydisplay.Seed {
	if t == TypeIncome {
		return categorydisplay.DefaultIncome()
	}
	return categorydisplay.DefaultExpense()
}

// EnsureCategories creates the default categories of type t
// for the user if the user has no category of that type.
func EnsureCategories(db *gorm.DB, userID uuid.UUID, t TransactionType) error {
	var count int64
	err := Scope(db, userID).Model(&Category{}).Where("type = ?", t).Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	_, err = SeedCategories(db, userID, t)
	return err
}

// SeedCategories creates all default categories of type t that the user
// does not have yet. Existing categories are matched by their normalized
// name, so names with broken encoding are recognized.
func SeedCategories(db *gorm.DB, userID uuid.UUID, t TransactionType) ([]Category, error) {
	var existing []Category
	err := Scope(db, userID).Where("type = ?", t).Find(&existing).Error
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(existing))
	for _, c := range existing {
		known[categorydisplay.Key(c.Name)] = true
	}

	created := make([]Category, 0)
	for _, seed := range seeds(t) {
		if known[categorydisplay.Key(seed.Name)] {
			continue
		}

		category := Category{
			UserID:    userID,
			Type:      t,
			Name:      seed.Name,
			Icon:      seed.Icon,
			Color:     seed.Color,
			IsDefault: true,
		}

		err := db.Create(&category).Error
		if err != nil {
			return created, err
		}
		created = append(created, category)
	}

	return created, nil
}
