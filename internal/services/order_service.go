// internal/services/order_service.go
package services

import (
	"github.com/sirupsen/logrus"

	"github.com/javajoker/imi-inventory/internal/models"
)

type OrderService struct {
	logger logrus.FieldLogger
}

func NewOrderService(logger logrus.FieldLogger) *OrderService {
	return &OrderService{logger: logger}
}

func (s *OrderService) PlaceOrder(product *models.Product, quantity int) (*models.Order, error) {
	order, err := models.NewOrder(product, quantity)
	if err != nil {
		entry := s.logger.WithError(err).WithField("quantity", quantity)
		if product != nil {
			entry = entry.WithField("product", product.Name)
		}
		entry.Warn("Order rejected")
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"order_id":    order.ID.String(),
		"product":     product.Name,
		"quantity":    quantity,
		"total_price": order.TotalPrice().String(),
		"stock_left":  product.Quantity(),
	}).Info("Order placed")
	return order, nil
}
