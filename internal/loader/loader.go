// internal/loader/loader.go
package loader

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/javajoker/imi-inventory/internal/models"
	"github.com/javajoker/imi-inventory/internal/utils"
)

// ErrStructure marks a catalog document with missing or mistyped fields.
var ErrStructure = errors.New("malformed catalog document")

type categoryRecord struct {
	Name        *string         `json:"name" yaml:"name" validate:"required"`
	Description *string         `json:"description" yaml:"description" validate:"required"`
	Products    []productRecord `json:"products" yaml:"products" validate:"required,dive"`
}

type productRecord struct {
	Name        *string  `json:"name" yaml:"name" validate:"required"`
	Description *string  `json:"description" yaml:"description" validate:"required"`
	Price       *float64 `json:"price" yaml:"price" validate:"required"`
	Quantity    *int     `json:"quantity" yaml:"quantity" validate:"required"`
	Kind        string   `json:"kind" yaml:"kind" validate:"omitempty,oneof=product smartphone lawn_grass"`

	Efficiency        float64 `json:"efficiency" yaml:"efficiency"`
	Model             string  `json:"model" yaml:"model"`
	Memory            int     `json:"memory" yaml:"memory"`
	Color             string  `json:"color" yaml:"color"`
	Country           string  `json:"country" yaml:"country"`
	GerminationPeriod int     `json:"germination_period" yaml:"germination_period"`
}

// LoadCategoriesFromJSON reads the catalog at path and builds one category per record.
func LoadCategoriesFromJSON(path string, counters *models.Counters) ([]*models.Category, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open catalog %s", path)
	}
	defer f.Close()

	categories, err := DecodeCategories(f, counters)
	if err != nil {
		return nil, errors.Wrapf(err, "load catalog %s", path)
	}
	return categories, nil
}

// DecodeCategories parses a JSON catalog document.
func DecodeCategories(r io.Reader, counters *models.Counters) ([]*models.Category, error) {
	dec := json.NewDecoder(r)

	var records []categoryRecord
	if err := dec.Decode(&records); err != nil {
		if isReadError(err) {
			return nil, errors.Wrap(err, "read catalog")
		}
		return nil, errors.Wrap(structureError(err.Error()), "decode catalog")
	}

	var trailing json.RawMessage
	if err := dec.Decode(&trailing); !errors.Is(err, io.EOF) {
		if err != nil && isReadError(err) {
			return nil, errors.Wrap(err, "read catalog")
		}
		return nil, errors.Wrap(structureError("unexpected data after the category list"), "decode catalog")
	}
	return buildCategories(records, counters)
}

// buildCategories creates every product before the first category, so a failed
// load leaves the counters untouched.
func buildCategories(records []categoryRecord, counters *models.Counters) ([]*models.Category, error) {
	if records == nil {
		return nil, structureError("catalog must be a list of categories")
	}

	productLists := make([][]*models.Product, len(records))
	for i := range records {
		if err := utils.ValidateStruct(&records[i]); err != nil {
			return nil, structureError(describe(i, err))
		}

		products := make([]*models.Product, 0, len(records[i].Products))
		for j, rec := range records[i].Products {
			p, err := rec.build()
			if err != nil {
				return nil, errors.Wrapf(err, "categories[%d].products[%d]", i, j)
			}
			products = append(products, p)
		}
		productLists[i] = products
	}

	categories := make([]*models.Category, 0, len(records))
	for i, rec := range records {
		c, err := models.NewCategory(counters, *rec.Name, *rec.Description, productLists[i])
		if err != nil {
			return nil, errors.Wrapf(err, "categories[%d]", i)
		}
		categories = append(categories, c)
	}
	return categories, nil
}

func (r productRecord) build() (*models.Product, error) {
	data := models.ProductData{
		Name:        *r.Name,
		Description: *r.Description,
		Price:       decimal.NewFromFloat(*r.Price),
		Quantity:    *r.Quantity,
	}

	switch models.Kind(r.Kind) {
	case models.KindSmartphone:
		return models.NewSmartphone(data, models.SmartphoneSpec{
			Efficiency: r.Efficiency,
			Model:      r.Model,
			Memory:     r.Memory,
			Color:      r.Color,
		})
	case models.KindLawnGrass:
		return models.NewLawnGrass(data, models.LawnGrassSpec{
			Country:           r.Country,
			GerminationPeriod: r.GerminationPeriod,
			Color:             r.Color,
		})
	default:
		return models.NewProductFromData(data)
	}
}

func structureError(detail string) error {
	return errors.Wrap(ErrStructure, detail)
}

// describe turns the first validation failure into "categories[i].products[j].price is required".
func describe(index int, err error) string {
	fieldErrs := utils.GetValidationErrors(err)
	if len(fieldErrs) == 0 {
		return fmt.Sprintf("categories[%d]: %v", index, err)
	}
	first := fieldErrs[0]
	ns := first.Namespace
	if dot := strings.IndexByte(ns, '.'); dot >= 0 {
		ns = ns[dot+1:]
	}
	return fmt.Sprintf("categories[%d].%s: %s", index, ns, first.Message)
}

func isReadError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return false
	}
	return !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF)
}
