package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/moneta-finance/backend/internal/models"
	"github.com/moneta-finance/backend/internal/presets"
	"github.com/shopspring/decimal"
)

type CardEditable struct {
	CardBrand         models.CardBrand `json:"cardBrand" example:"visa"`                             // Brand of the card. One of visa, mastercard, amex or elo
	CardNickname      string           `json:"cardNickname" example:"Roxinho"`                       // Nickname of the card
	CardNumberLast4   string           `json:"cardNumberLast4" example:"4242" default:""`            // Last four digits of the card number
	CardholderName    string           `json:"cardholderName" example:"MARIA SILVA" default:""`      // Name printed on the card. Stored in upper case
	CardColor         string           `json:"cardColor" example:"#f4c95d"`                          // Accent color
	CardGradientStart string           `json:"cardGradientStart" example:"#5f17c5"`                  // Start color of the card gradient
	CardGradientEnd   string           `json:"cardGradientEnd" example:"#a854ff"`                    // End color of the card gradient
	CreditLimit       *decimal.Decimal `json:"creditLimit" example:"5000" minimum:"0"`               // Credit limit of the card
	ExpirationMonth   *int             `json:"expirationMonth" example:"8" minimum:"1" maximum:"12"` // Month the card expires
	ExpirationYear    *int             `json:"expirationYear" example:"2029"`                        // Year the card expires
	BillingDueDay     *int             `json:"billingDueDay" example:"10" minimum:"1" maximum:"31"`  // Day of the month the invoice is due
	PresetID          string           `json:"presetId,omitempty" example:"nubank"`                  // ID of a color preset. Overrides the colors when set
}

// model returns the database resource for the editable fields.
// The colors of the preset are applied if PresetID is set.
func (editable CardEditable) model() (models.Card, error) {
	card := models.Card{
		CardBrand:         editable.CardBrand,
		CardNickname:      editable.CardNickname,
		CardNumberLast4:   editable.CardNumberLast4,
		CardholderName:    editable.CardholderName,
		CardColor:         editable.CardColor,
		CardGradientStart: editable.CardGradientStart,
		CardGradientEnd:   editable.CardGradientEnd,
		CreditLimit:       editable.CreditLimit,
		ExpirationMonth:   editable.ExpirationMonth,
		ExpirationYear:    editable.ExpirationYear,
		BillingDueDay:     editable.BillingDueDay,
	}

	if editable.PresetID != "" {
		preset, ok := presets.ByID(editable.PresetID)
		if !ok {
			return models.Card{}, fmt.Errorf("%w: '%s'", errPresetUnknown, editable.PresetID)
		}
		card.ApplyPreset(preset)
	}

	return card, nil
}

func newCardEditable(model models.Card) CardEditable {
	return CardEditable{
		CardBrand:         model.CardBrand,
		CardNickname:      model.CardNickname,
		CardNumberLast4:   model.CardNumberLast4,
		CardholderName:    model.CardholderName,
		CardColor:         model.CardColor,
		CardGradientStart: model.CardGradientStart,
		CardGradientEnd:   model.CardGradientEnd,
		CreditLimit:       model.CreditLimit,
		ExpirationMonth:   model.ExpirationMonth,
		ExpirationYear:    model.ExpirationYear,
		BillingDueDay:     model.BillingDueDay,
	}
}

type CardLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/cards/4ad3e4c5-8e2a-4a3e-bb0f-2f1a9bf3c1de"`                       // The card itself
	Invoices     string `json:"invoices" example:"https://example.com/api/v1/invoices?card=4ad3e4c5-8e2a-4a3e-bb0f-2f1a9bf3c1de"`           // Invoices of the card
	Invoice      string `json:"invoice" example:"https://example.com/api/v1/cards/4ad3e4c5-8e2a-4a3e-bb0f-2f1a9bf3c1de/invoices/YYYY-MM"`   // Invoice of a month. The placeholder YYYY-MM must be replaced with the month
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?source=4ad3e4c5-8e2a-4a3e-bb0f-2f1a9bf3c1de"` // Expenses paid with the card
}

// Card is the API representation of a credit card.
type Card struct {
	models.DefaultModel
	CardEditable
	Links CardLinks `json:"links"`
}

func newCard(c *gin.Context, model models.Card) Card {
	url := c.GetString(string(models.DBContextURL))

	return Card{
		DefaultModel: model.DefaultModel,
		CardEditable: newCardEditable(model),
		Links: CardLinks{
			Self:         fmt.Sprintf("%s/v1/cards/%s", url, model.ID),
			Invoices:     fmt.Sprintf("%s/v1/invoices?card=%s", url, model.ID),
			Invoice:      fmt.Sprintf("%s/v1/cards/%s/invoices/YYYY-MM", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?source=%s", url, model.ID),
		},
	}
}

type CardListResponse struct {
	Data       []Card      `json:"data"`                                                          // List of cards
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CardCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []CardResponse `json:"data"`                                                          // List of created cards
}

func (r *CardCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, CardResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CardResponse struct {
	Data  *Card   `json:"data"`                                                          // Data for the card
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this card
}

type CardQueryFilter struct {
	CardBrand       string `form:"brand"`                        // By brand
	CardNickname    string `form:"nickname" filterField:"false"` // Fuzzy filter for the nickname
	CardNumberLast4 string `form:"last4"`                        // By the last four digits
	Search          string `form:"search" filterField:"false"`   // By string in nickname or cardholder name
	Offset          uint   `form:"offset" filterField:"false"`   // The offset of the first card returned. Defaults to 0.
	Limit           int    `form:"limit" filterField:"false"`    // Maximum number of cards to return. Defaults to 50.
}

func (f CardQueryFilter) model() models.Card {
	return models.Card{
		CardBrand:       models.CardBrand(f.CardBrand),
		CardNumberLast4: f.CardNumberLast4,
	}
}

type PresetListResponse struct {
	Data []presets.Preset `json:"data"` // List of color presets
}
