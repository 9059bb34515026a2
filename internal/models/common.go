// internal/models/common.go
package models

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/javajoker/imi-inventory/internal/utils"
)

// Item is anything that can report how much stock it holds and what that stock is worth.
type Item interface {
	TotalQuantity() int
	TotalPrice() decimal.Decimal
}

// Violation classes. Every *ValidationError unwraps to one of them.
var (
	ErrType  = errors.New("type violation")
	ErrValue = errors.New("value violation")
)

var (
	ErrInsufficientStock = errors.Wrap(ErrValue, "insufficient stock")
	ErrNonPositivePrice  = errors.New("price must be positive")
	ErrStalePriceChange  = errors.New("price changed since the change was proposed")
	ErrPriceChangeClosed = errors.New("price change already committed or aborted")
)

// ValidationError names the offending field of a rejected construction or mutation.
type ValidationError struct {
	Field   string
	Kind    error
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func typeError(field, message string) error {
	return &ValidationError{Field: field, Kind: ErrType, Message: message}
}

func valueError(field, message string) error {
	return &ValidationError{Field: field, Kind: ErrValue, Message: message}
}

// validate runs struct tag validation and converts the first failure into a *ValidationError.
func validate(s interface{}) error {
	err := utils.ValidateStruct(s)
	if err == nil {
		return nil
	}
	if fieldErrs := utils.GetValidationErrors(err); len(fieldErrs) > 0 {
		first := fieldErrs[0]
		return valueError(first.Field, first.Message)
	}
	return errors.Wrap(err, "validate")
}

// Kind discriminates the concrete product variants.
type Kind string

const (
	KindProduct    Kind = "product"
	KindSmartphone Kind = "smartphone"
	KindLawnGrass  Kind = "lawn_grass"
)

// CurrencyLabel is printed after every price.
const CurrencyLabel = "руб"
