package models

import (
	"fmt"
	"strings"
	"testing"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CategoryTestSuite struct {
	suite.Suite
	counters *Counters
}

func (suite *CategoryTestSuite) SetupTest() {
	if suite.counters == nil {
		suite.counters = NewCounters()
	}
	suite.counters.Reset()
}

func (suite *CategoryTestSuite) product(name string, price int64, quantity int) *Product {
	p, err := NewProduct(name, "Desc", decimal.NewFromInt(price), quantity)
	suite.Require().NoError(err)
	return p
}

func (suite *CategoryTestSuite) TestValidInitialization() {
	p1 := suite.product("P1", 10, 1)
	p2 := suite.product("P2", 20, 2)

	c, err := NewCategory(suite.counters, "Cat", "Desc", []*Product{p1, p2})
	suite.Require().NoError(err)

	suite.Equal("Cat", c.Name)
	suite.Equal("Desc", c.Description)
	suite.Len(strings.Split(strings.TrimSpace(c.Products()), "\n"), 2)
	suite.Equal(int64(1), suite.counters.CategoryCount())
	suite.Equal(int64(2), suite.counters.ProductCount())
}

func (suite *CategoryTestSuite) TestNilProductsRejected() {
	p1 := suite.product("P1", 10, 1)

	_, err := NewCategory(suite.counters, "Name", "Desc", []*Product{p1, nil})
	suite.True(errors.Is(err, ErrType))
	suite.Equal(int64(0), suite.counters.CategoryCount())
	suite.Equal(int64(0), suite.counters.ProductCount())

	_, err = NewCategory(nil, "Name", "Desc", nil)
	suite.True(errors.Is(err, ErrType))
}

func (suite *CategoryTestSuite) TestConstructorCopiesInput() {
	p1 := suite.product("P1", 10, 1)
	input := []*Product{p1}

	c, err := NewCategory(suite.counters, "Cat", "Desc", input)
	suite.Require().NoError(err)

	input[0] = suite.product("Other", 1, 1)
	suite.Same(p1, c.GetProducts()[0])
}

func (suite *CategoryTestSuite) TestAddProductIncreasesCount() {
	p1 := suite.product("Prod1", 10, 5)
	c, err := NewCategory(suite.counters, "Cat1", "DescCat", []*Product{p1})
	suite.Require().NoError(err)

	p2 := suite.product("Prod2", 20, 3)
	suite.Require().NoError(c.AddProduct(p2))

	suite.Contains(c.GetProducts(), p2)
	suite.Equal(int64(2), suite.counters.ProductCount())
}

func (suite *CategoryTestSuite) TestAddNilProduct() {
	c, err := NewCategory(suite.counters, "Cat1", "DescCat", nil)
	suite.Require().NoError(err)

	err = c.AddProduct(nil)
	suite.True(errors.Is(err, ErrType))
	suite.Equal(int64(0), suite.counters.ProductCount())
	suite.Empty(c.GetProducts())
}

func (suite *CategoryTestSuite) TestDuplicateNamesAreKept() {
	c, err := NewCategory(suite.counters, "Cat", "Desc", []*Product{suite.product("Same", 10, 1)})
	suite.Require().NoError(err)
	suite.Require().NoError(c.AddProduct(suite.product("Same", 20, 2)))

	suite.Len(c.GetProducts(), 2)
	suite.Equal(3, c.TotalQuantity())
}

func (suite *CategoryTestSuite) TestGetProductsReturnsCopy() {
	p1 := suite.product("Prod1", 10, 5)
	c, err := NewCategory(suite.counters, "Cat1", "DescCat", []*Product{p1})
	suite.Require().NoError(err)

	products := c.GetProducts()
	products = append(products, suite.product("Prod2", 20, 3))
	products[0] = nil

	suite.Len(products, 2)
	suite.Len(c.GetProducts(), 1)
	suite.Same(p1, c.GetProducts()[0])
}

func (suite *CategoryTestSuite) TestCountersIgnoreReads() {
	c, err := NewCategory(suite.counters, "Cat", "Desc", []*Product{suite.product("P", 1, 1)})
	suite.Require().NoError(err)

	_ = c.GetProducts()
	_ = c.Products()
	_ = c.String()
	_ = c.TotalPrice()

	suite.Equal(int64(1), suite.counters.CategoryCount())
	suite.Equal(int64(1), suite.counters.ProductCount())
}

func (suite *CategoryTestSuite) TestCategoryCountIncrementsOnCreation() {
	_, err := NewCategory(suite.counters, "Cat1", "DescCat", []*Product{suite.product("Prod1", 10, 5)})
	suite.Require().NoError(err)
	_, err = NewCategory(suite.counters, "Cat2", "DescCat2", nil)
	suite.Require().NoError(err)

	suite.Equal(int64(2), suite.counters.CategoryCount())
	suite.Equal(int64(1), suite.counters.ProductCount())
}

func (suite *CategoryTestSuite) TestProductsRendering() {
	apple := suite.product("Яблоко", 80, 15)
	banana := suite.product("Банан", 50, 20)

	c, err := NewCategory(suite.counters, "Фрукты", "Свежие фрукты", []*Product{apple, banana})
	suite.Require().NoError(err)

	expected := "Яблоко, 80.0 руб. Остаток: 15 шт.\n" + "Банан, 50.0 руб. Остаток: 20 шт.\n"
	suite.Equal(expected, c.Products())
}

func (suite *CategoryTestSuite) TestProductsRenderingEmpty() {
	c, err := NewCategory(suite.counters, "Пустая категория", "Нет товаров", nil)
	suite.Require().NoError(err)
	suite.Equal("", c.Products())
}

func (suite *CategoryTestSuite) TestStringAndTotals() {
	c, err := NewCategory(suite.counters, "TestCat", "DescCat", []*Product{
		suite.product("A", 100, 2),
		suite.product("B", 200, 3),
	})
	suite.Require().NoError(err)

	suite.Equal("TestCat, количество продуктов на складе: 5 шт.", c.String())
	suite.Equal(5, c.TotalQuantity())
	suite.True(c.TotalPrice().Equal(decimal.NewFromInt(800)))
	suite.Equal(`Category(name="TestCat", products=2)`, fmt.Sprintf("%#v", c))
}

func TestCategorySuite(t *testing.T) {
	suite.Run(t, new(CategoryTestSuite))
}
