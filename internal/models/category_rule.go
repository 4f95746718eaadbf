package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
)

// CategoryRule assigns a category to new transactions whose
// description matches a glob pattern.
type CategoryRule struct {
	DefaultModel
	Owned
	Priority   uint      `json:"priority"`
	Match      string    `json:"match"`
	CategoryID uuid.UUID `json:"categoryId"`
	Category   Category  `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

func (r *CategoryRule) BeforeSave(tx *gorm.DB) error {
	r.Match = strings.TrimSpace(r.Match)
	if r.Match == "" {
		return ErrCategoryRuleMatchEmpty
	}

	return Scope(tx, r.UserID).First(&Category{}, "id = ?", r.CategoryID).Error
}

// Matches reports whether the description matches the rule. Matching
// ignores case and surrounding whitespace.
func (r CategoryRule) Matches(description string) bool {
	return glob.Glob(strings.ToLower(r.Match), strings.ToLower(strings.TrimSpace(description)))
}

// MatchCategory returns the category of the first rule of the user, by
// priority, that matches the description and has a category of type t.
// It returns nil if no rule matches.
func MatchCategory(db *gorm.DB, userID uuid.UUID, t TransactionType, description string) (*uuid.UUID, error) {
	var rules []CategoryRule
	err := Scope(db, userID).
		Preload("Category").
		Order("priority ASC, created_at ASC").
		Find(&rules).Error
	if err != nil {
		return nil, err
	}

	for _, rule := range rules {
		if rule.Category.Type != t {
			continue
		}

		if rule.Matches(description) {
			id := rule.CategoryID
			return &id, nil
		}
	}

	return nil, nil
}
