package importer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

var ErrDocumentInvalid = errors.New("the import document is invalid")

// ValidationError lists all violations of the import schema.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrDocumentInvalid, strings.Join(e.Details, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrDocumentInvalid
}

const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["version", "data"],
  "properties": {
    "version": {"type": "string"},
    "creationTime": {"type": "string"},
    "clacks": {"type": "string"},
    "data": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "profile": {"type": ["object", "null"]},
        "banks": {"type": ["array", "null"], "items": {"$ref": "#/definitions/bank"}},
        "cards": {"type": ["array", "null"], "items": {"$ref": "#/definitions/card"}},
        "categories": {"type": ["array", "null"], "items": {"$ref": "#/definitions/category"}},
        "transactions": {"type": ["array", "null"], "items": {"$ref": "#/definitions/transaction"}},
        "invoices": {"type": ["array", "null"], "items": {"$ref": "#/definitions/invoice"}},
        "categoryRules": {"type": ["array", "null"], "items": {"$ref": "#/definitions/categoryRule"}}
      }
    }
  },
  "definitions": {
    "id": {"type": "string", "pattern": "^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$"},
    "optionalId": {
      "oneOf": [
        {"type": "null"},
        {"$ref": "#/definitions/id"}
      ]
    },
    "amount": {"type": ["string", "number"], "pattern": "^-?[0-9]+(\\.[0-9]+)?$"},
    "transactionType": {"enum": ["expense", "income"]},
    "sourceType": {"enum": ["", "card", "bank"]},
    "bank": {
      "type": "object",
      "required": ["id", "bankName"],
      "properties": {
        "id": {"$ref": "#/definitions/id"},
        "bankName": {"type": "string", "minLength": 1}
      }
    },
    "card": {
      "type": "object",
      "required": ["id", "cardBrand", "cardNickname"],
      "properties": {
        "id": {"$ref": "#/definitions/id"},
        "cardBrand": {"enum": ["visa", "mastercard", "amex", "elo"]},
        "cardNickname": {"type": "string", "minLength": 1}
      }
    },
    "category": {
      "type": "object",
      "required": ["id", "name", "type"],
      "properties": {
        "id": {"$ref": "#/definitions/id"},
        "name": {"type": "string", "minLength": 1},
        "type": {"$ref": "#/definitions/transactionType"}
      }
    },
    "transaction": {
      "type": "object",
      "required": ["id", "type", "amount", "description", "transactionDate"],
      "properties": {
        "id": {"$ref": "#/definitions/id"},
        "type": {"$ref": "#/definitions/transactionType"},
        "amount": {"$ref": "#/definitions/amount"},
        "description": {"type": "string"},
        "transactionDate": {"type": "string"},
        "categoryId": {"$ref": "#/definitions/optionalId"},
        "sourceType": {"$ref": "#/definitions/sourceType"},
        "sourceId": {"$ref": "#/definitions/optionalId"},
        "destinationType": {"$ref": "#/definitions/sourceType"},
        "destinationId": {"$ref": "#/definitions/optionalId"},
        "installments": {"type": "integer", "minimum": 1},
        "installmentNumber": {"type": ["integer", "null"], "minimum": 0}
      }
    },
    "invoice": {
      "type": "object",
      "required": ["id", "cardId", "month"],
      "properties": {
        "id": {"$ref": "#/definitions/id"},
        "cardId": {"$ref": "#/definitions/id"},
        "month": {"type": "string", "pattern": "^[0-9]{4}-[0-9]{2}$"},
        "totalAmount": {"$ref": "#/definitions/amount"},
        "paidAmount": {"$ref": "#/definitions/amount"}
      }
    },
    "categoryRule": {
      "type": "object",
      "required": ["id", "match", "categoryId"],
      "properties": {
        "id": {"$ref": "#/definitions/id"},
        "match": {"type": "string", "minLength": 1},
        "categoryId": {"$ref": "#/definitions/id"},
        "priority": {"type": "integer", "minimum": 0}
      }
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(documentSchema)

// Validate checks the raw document against the import schema.
func Validate(body []byte) error {
	schema, err := gojsonschema.NewSchema(schemaLoader)
	if err != nil {
		return fmt.Errorf("loading the import schema failed: %w", err)
	}

	res, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return &ValidationError{Details: []string{err.Error()}}
	}

	if !res.Valid() {
		details := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			details = append(details, e.String())
		}
		return &ValidationError{Details: details}
	}

	return nil
}
