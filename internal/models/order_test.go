package models

import (
	"testing"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	p, err := NewProduct("Яблоко", "Красное яблоко", decimal.NewFromInt(80), 15)
	require.NoError(t, err)

	order, err := NewOrder(p, 5)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, order.ID)
	assert.Same(t, p, order.Product())
	assert.Equal(t, 5, order.Quantity())
	assert.Equal(t, 10, p.Quantity())
	assert.True(t, order.TotalPrice().Equal(decimal.NewFromInt(400)))

	var item Item = order
	assert.Equal(t, 5, item.TotalQuantity())
}

func TestNewOrder_TotalIsFrozen(t *testing.T) {
	p, err := NewProduct("Банан", "Желтый банан", decimal.NewFromInt(50), 20)
	require.NoError(t, err)

	order, err := NewOrder(p, 2)
	require.NoError(t, err)

	change, err := p.ProposePrice(decimal.NewFromInt(75))
	require.NoError(t, err)
	require.NoError(t, change.Commit())

	assert.True(t, order.TotalPrice().Equal(decimal.NewFromInt(100)))
}

func TestNewOrder_Violations(t *testing.T) {
	p, err := NewProduct("P", "D", decimal.NewFromInt(10), 3)
	require.NoError(t, err)

	tests := []struct {
		name     string
		product  *Product
		quantity int
		want     error
	}{
		{"nil product", nil, 1, ErrType},
		{"zero quantity", p, 0, ErrValue},
		{"negative quantity", p, -2, ErrValue},
		{"insufficient stock", p, 4, ErrInsufficientStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := NewOrder(tt.product, tt.quantity)
			assert.Nil(t, order)
			assert.True(t, errors.Is(err, tt.want))
		})
	}

	assert.Equal(t, 3, p.Quantity())
}

func TestNewOrder_InsufficientStockIsValueViolation(t *testing.T) {
	p, err := NewProduct("P", "D", decimal.NewFromInt(10), 1)
	require.NoError(t, err)

	_, err = NewOrder(p, 2)
	assert.True(t, errors.Is(err, ErrValue))

	order, err := NewOrder(p, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Quantity())
	assert.True(t, order.TotalPrice().Equal(decimal.NewFromInt(10)))
}
