// internal/models/category.go
package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Category owns an ordered list of products. The list is only reachable through copies.
type Category struct {
	Name        string
	Description string

	counters *Counters
	products []*Product
}

func NewCategory(counters *Counters, name, description string, products []*Product) (*Category, error) {
	if counters == nil {
		return nil, typeError("counters", "counters are required")
	}
	for i, p := range products {
		if p == nil {
			return nil, typeError("products", fmt.Sprintf("products[%d] is not a product", i))
		}
	}

	owned := make([]*Product, len(products))
	copy(owned, products)

	counters.addCategory(len(owned))

	return &Category{
		Name:        name,
		Description: description,
		counters:    counters,
		products:    owned,
	}, nil
}

func (c *Category) AddProduct(p *Product) error {
	if p == nil {
		return typeError("product", "only products can be added to a category")
	}
	c.products = append(c.products, p)
	c.counters.addProduct()
	return nil
}

func (c *Category) GetProducts() []*Product {
	out := make([]*Product, len(c.products))
	copy(out, c.products)
	return out
}

// Products renders one line per product, each terminated by a newline.
func (c *Category) Products() string {
	var b strings.Builder
	for _, p := range c.products {
		b.WriteString(p.String())
		b.WriteByte('\n')
	}
	return b.String()
}

func (c *Category) TotalQuantity() int {
	total := 0
	for _, p := range c.products {
		total += p.Quantity()
	}
	return total
}

func (c *Category) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, p := range c.products {
		total = total.Add(p.TotalPrice())
	}
	return total
}

func (c *Category) String() string {
	return fmt.Sprintf("%s, количество продуктов на складе: %d шт.", c.Name, c.TotalQuantity())
}

func (c *Category) GoString() string {
	return fmt.Sprintf("Category(name=%q, products=%d)", c.Name, len(c.products))
}
