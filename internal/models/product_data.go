// internal/models/product_data.go
package models

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// ProductData is the raw field set a product is built from or merged with.
type ProductData struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"decimal_gt=0"`
	Quantity    int             `json:"quantity" validate:"gte=0"`
}

// ParseProductData converts a loosely typed record into ProductData.
// Missing or mistyped fields fail with ErrType; ranges are checked later, on construction.
func ParseProductData(raw map[string]interface{}) (ProductData, error) {
	var data ProductData

	name, err := stringField(raw, "name")
	if err != nil {
		return data, err
	}
	description, err := stringField(raw, "description")
	if err != nil {
		return data, err
	}
	price, err := numberField(raw, "price")
	if err != nil {
		return data, err
	}
	quantity, err := integerField(raw, "quantity")
	if err != nil {
		return data, err
	}

	data.Name = name
	data.Description = description
	data.Price = price
	data.Quantity = quantity
	return data, nil
}

func stringField(raw map[string]interface{}, field string) (string, error) {
	v, ok := raw[field]
	if !ok {
		return "", typeError(field, field+" is required")
	}
	s, ok := v.(string)
	if !ok {
		return "", typeError(field, fmt.Sprintf("%s must be a string, got %T", field, v))
	}
	return s, nil
}

func numberField(raw map[string]interface{}, field string) (decimal.Decimal, error) {
	v, ok := raw[field]
	if !ok {
		return decimal.Decimal{}, typeError(field, field+" is required")
	}
	switch n := v.(type) {
	case decimal.Decimal:
		return n, nil
	case float64:
		return decimal.NewFromFloat(n), nil
	case float32:
		return decimal.NewFromFloat32(n), nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int32:
		return decimal.NewFromInt32(n), nil
	case int64:
		return decimal.NewFromInt(n), nil
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		if err != nil {
			return decimal.Decimal{}, typeError(field, field+" must be a number")
		}
		return d, nil
	default:
		return decimal.Decimal{}, typeError(field, fmt.Sprintf("%s must be a number, got %T", field, v))
	}
}

// integerField accepts integral float64 values because that is how JSON numbers decode into interface{}.
func integerField(raw map[string]interface{}, field string) (int, error) {
	v, ok := raw[field]
	if !ok {
		return 0, typeError(field, field+" is required")
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, typeError(field, fmt.Sprintf("%s must be an integer, got %v", field, n))
		}
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, typeError(field, fmt.Sprintf("%s must be an integer, got %s", field, n))
		}
		return int(i), nil
	default:
		return 0, typeError(field, fmt.Sprintf("%s must be an integer, got %T", field, v))
	}
}
