package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Uniqueness
var (
	ErrCategoryNameNotUnique = errors.New("the category name must be unique for the type of category")
	ErrInvoiceNotUnique      = errors.New("there already is an invoice for this card and month")
	ErrProfileNotUnique      = errors.New("there already is a profile for this user")
)

// Transactions
var (
	ErrTransactionTypeInvalid   = errors.New("the type must be 'expense' or 'income'")
	ErrAmountNotPositive        = errors.New("the amount must be greater than zero")
	ErrDescriptionTooShort      = errors.New("the description must be at least 3 characters long")
	ErrInstallmentsInvalid      = errors.New("the number of installments must be at least 1")
	ErrInstallmentNumberInvalid = errors.New("the installment number must be between 0 and the number of installments")
	ErrSourceTypeInvalid        = errors.New("the source type must be 'card' or 'bank'")
	ErrSourceIncomplete         = errors.New("the source type and source ID must either both be set or both be empty")
	ErrDestinationIncomplete    = errors.New("the destination type and destination ID must either both be set or both be empty")
	ErrCategoryTypeMismatch     = errors.New("the category must have the same type as the transaction")
)

// Cards and banks
var (
	ErrCardBrandInvalid       = errors.New("the card brand must be one of visa, mastercard, amex or elo")
	ErrCardNicknameEmpty      = errors.New("the card nickname must not be empty")
	ErrCardLast4Invalid       = errors.New("the last digits of the card number must be exactly 4 digits")
	ErrColorInvalid           = errors.New("colors must be hex codes in the format #rrggbb")
	ErrCreditLimitNegative    = errors.New("the credit limit must not be negative")
	ErrExpirationMonthInvalid = errors.New("the expiration month must be between 1 and 12")
	ErrExpirationYearInvalid  = errors.New("the expiration year must have four digits")
	ErrBillingDueDayInvalid   = errors.New("the billing due day must be between 1 and 31")
	ErrBankNameEmpty          = errors.New("the bank name must not be empty")
	ErrLogoURLInvalid         = errors.New("the logo URL must be an absolute http or https URL")
)

// Categories and rules
var (
	ErrCategoryNameEmpty      = errors.New("the category name must not be empty")
	ErrCategoryRuleMatchEmpty = errors.New("the match pattern of a category rule must not be empty")
)

// Invoices and profiles
var (
	ErrPaymentNotPositive = errors.New("the payment amount must be greater than zero")
	ErrCPFInvalid         = errors.New("the CPF must consist of 11 digits")
	ErrStateInvalid       = errors.New("the state must be a two letter abbreviation")
	ErrZipInvalid         = errors.New("the zip code must consist of 8 digits")
)
