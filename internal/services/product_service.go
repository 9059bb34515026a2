// internal/services/product_service.go
package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/imi-inventory/internal/models"
)

type ProductService struct {
	pricing *PricingService
	logger  logrus.FieldLogger
}

func NewProductService(pricing *PricingService, logger logrus.FieldLogger) *ProductService {
	return &ProductService{
		pricing: pricing,
		logger:  logger,
	}
}

// NewProduct merges data into the product of the same name in products, or appends a new one.
// A merge adds the quantity and then runs the new price through the price policy, so the
// list never gains a second entry for a name it already holds.
func (s *ProductService) NewProduct(ctx context.Context, data models.ProductData, products *[]*models.Product) (*models.Product, error) {
	if products == nil {
		return nil, &models.ValidationError{Field: "products", Kind: models.ErrType, Message: "products list is required"}
	}

	for _, existing := range *products {
		if existing == nil || existing.Name != data.Name {
			continue
		}

		if err := existing.AddQuantity(data.Quantity); err != nil {
			return nil, err
		}
		outcome := s.pricing.SetPrice(ctx, existing, data.Price)

		s.logger.WithFields(logrus.Fields{
			"product":      existing.Name,
			"added":        data.Quantity,
			"quantity":     existing.Quantity(),
			"price":        existing.Price().String(),
			"price_change": outcome.String(),
		}).Info("Merged product into existing entry")
		return existing, nil
	}

	product, err := models.NewProductFromData(data)
	if err != nil {
		return nil, err
	}
	*products = append(*products, product)

	s.logger.WithFields(logrus.Fields{
		"product":  product.Name,
		"quantity": product.Quantity(),
		"price":    product.Price().String(),
	}).Info("Product created")
	return product, nil
}

// NewProductFromMap is NewProduct for loosely typed records; mistyped fields fail with models.ErrType.
func (s *ProductService) NewProductFromMap(ctx context.Context, raw map[string]interface{}, products *[]*models.Product) (*models.Product, error) {
	data, err := models.ParseProductData(raw)
	if err != nil {
		return nil, err
	}
	return s.NewProduct(ctx, data, products)
}
