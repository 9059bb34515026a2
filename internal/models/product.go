// internal/models/product.go
package models

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Product is a stock-keeping entry identified by its exact name.
// Price and quantity are guarded so readers never see a half-applied update.
type Product struct {
	Name        string
	Description string

	spec Spec

	mu       sync.RWMutex
	price    decimal.Decimal
	quantity int
}

func NewProduct(name, description string, price decimal.Decimal, quantity int) (*Product, error) {
	return NewProductFromData(ProductData{
		Name:        name,
		Description: description,
		Price:       price,
		Quantity:    quantity,
	})
}

func NewProductFromData(data ProductData) (*Product, error) {
	if err := validate(&data); err != nil {
		return nil, err
	}

	return &Product{
		Name:        data.Name,
		Description: data.Description,
		price:       data.Price,
		quantity:    data.Quantity,
	}, nil
}

// Kind reports the concrete variant; plain products have no spec.
func (p *Product) Kind() Kind {
	if p.spec == nil {
		return KindProduct
	}
	return p.spec.Kind()
}

func (p *Product) Spec() Spec {
	return p.spec
}

func (p *Product) Price() decimal.Decimal {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.price
}

func (p *Product) Quantity() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.quantity
}

// AddQuantity restocks the product. Negative amounts are rejected and nothing changes.
func (p *Product) AddQuantity(n int) error {
	if n < 0 {
		return valueError("quantity", "quantity must be at least 0")
	}

	p.mu.Lock()
	p.quantity += n
	p.mu.Unlock()
	return nil
}

func (p *Product) TotalQuantity() int {
	return p.Quantity()
}

func (p *Product) TotalPrice() decimal.Decimal {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.price.Mul(decimal.NewFromInt(int64(p.quantity)))
}

// Add returns the combined stock value of p and other. Both must be the same kind.
func (p *Product) Add(other *Product) (decimal.Decimal, error) {
	if other == nil {
		return decimal.Decimal{}, typeError("other", "cannot add nil product")
	}
	if p.Kind() != other.Kind() {
		return decimal.Decimal{}, typeError("other",
			fmt.Sprintf("cannot add %s to %s", other.Kind(), p.Kind()))
	}
	return p.TotalPrice().Add(other.TotalPrice()), nil
}

// take removes n units from stock and returns the unit price at that instant.
func (p *Product) take(n int) (decimal.Decimal, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if n > p.quantity {
		return decimal.Decimal{}, errors.Wrapf(ErrInsufficientStock, "requested %d, in stock %d", n, p.quantity)
	}
	p.quantity -= n
	return p.price, nil
}

// ProposePrice starts a two-phase price change. Non-positive prices are refused outright.
func (p *Product) ProposePrice(price decimal.Decimal) (*PriceChange, error) {
	if !price.IsPositive() {
		return nil, ErrNonPositivePrice
	}
	return &PriceChange{product: p, from: p.Price(), to: price}, nil
}

func (p *Product) String() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return fmt.Sprintf("%s, %s %s. Остаток: %d шт.", p.Name, FormatPrice(p.price), CurrencyLabel, p.quantity)
}

func (p *Product) GoString() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return fmt.Sprintf("Product(name=%q, price=%s, quantity=%d)", p.Name, FormatPrice(p.price), p.quantity)
}

// PriceChange is a pending price update. A decrease should be confirmed before Commit.
type PriceChange struct {
	product *Product
	from    decimal.Decimal
	to      decimal.Decimal

	mu     sync.Mutex
	closed bool
}

func (c *PriceChange) From() decimal.Decimal { return c.from }
func (c *PriceChange) To() decimal.Decimal   { return c.to }

func (c *PriceChange) NeedsConfirmation() bool {
	return c.to.LessThan(c.from)
}

// Commit applies the change unless the product price moved after ProposePrice.
func (c *PriceChange) Commit() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrPriceChangeClosed
	}
	c.closed = true

	p := c.product
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.price.Equal(c.from) {
		return ErrStalePriceChange
	}
	p.price = c.to
	return nil
}

func (c *PriceChange) Abort() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
}

// FormatPrice renders a price with at least one fractional digit: 80 -> "80.0", 19.99 -> "19.99".
func FormatPrice(d decimal.Decimal) string {
	s := d.String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
