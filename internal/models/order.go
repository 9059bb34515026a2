// internal/models/order.go
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order takes stock from a product it does not own. Its total is fixed when it is created.
type Order struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	product    *Product
	quantity   int
	totalPrice decimal.Decimal
}

func NewOrder(product *Product, quantity int) (*Order, error) {
	if product == nil {
		return nil, typeError("product", "an order needs a product")
	}
	if quantity <= 0 {
		return nil, valueError("quantity", "quantity must be greater than 0")
	}

	unitPrice, err := product.take(quantity)
	if err != nil {
		return nil, err
	}

	return &Order{
		ID:         uuid.New(),
		CreatedAt:  time.Now().UTC(),
		product:    product,
		quantity:   quantity,
		totalPrice: unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}, nil
}

func (o *Order) Product() *Product {
	return o.product
}

func (o *Order) Quantity() int {
	return o.quantity
}

func (o *Order) TotalQuantity() int {
	return o.quantity
}

func (o *Order) TotalPrice() decimal.Decimal {
	return o.totalPrice
}
