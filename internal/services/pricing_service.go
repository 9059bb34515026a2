// internal/services/pricing_service.go
package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/imi-inventory/internal/config"
	"github.com/javajoker/imi-inventory/internal/i18n"
	"github.com/javajoker/imi-inventory/internal/models"
)

type PriceOutcome int

const (
	PriceApplied PriceOutcome = iota
	PriceRejected
	PriceDeclined
)

func (o PriceOutcome) String() string {
	switch o {
	case PriceApplied:
		return "applied"
	case PriceRejected:
		return "rejected"
	case PriceDeclined:
		return "declined"
	default:
		return "unknown"
	}
}

// PricingService applies the price policy: non-positive prices are refused, decreases
// need confirmation, increases go through. Refusals are reported, never returned as errors.
type PricingService struct {
	confirmer Confirmer
	notifier  Notifier
	logger    logrus.FieldLogger
	locale    string
	timeout   time.Duration
}

func NewPricingService(cfg *config.Config, confirmer Confirmer, notifier Notifier, logger logrus.FieldLogger) *PricingService {
	s := &PricingService{
		confirmer: confirmer,
		notifier:  notifier,
		logger:    logger,
		locale:    i18n.DefaultLocale,
	}
	if cfg != nil {
		if cfg.I18n.DefaultLocale != "" {
			s.locale = cfg.I18n.DefaultLocale
		}
		s.timeout = cfg.Pricing.ConfirmTimeoutDuration()
	}
	return s
}

func (s *PricingService) SetPrice(ctx context.Context, product *models.Product, price decimal.Decimal) PriceOutcome {
	fields := logrus.Fields{
		"product":   product.Name,
		"new_price": price.String(),
	}

	change, err := product.ProposePrice(price)
	if err != nil {
		s.logger.WithFields(fields).WithError(err).Debug("Price change refused")
		s.notifier.Notify(i18n.T(s.locale, i18n.KeyPriceNonPositive))
		return PriceRejected
	}
	fields["old_price"] = change.From().String()

	if change.NeedsConfirmation() && !s.confirm(ctx, change) {
		change.Abort()
		s.logger.WithFields(fields).Info("Price decrease declined")
		s.notifier.Notify(i18n.T(s.locale, i18n.KeyPriceChangeCancelled))
		return PriceDeclined
	}

	if err := change.Commit(); err != nil {
		s.logger.WithFields(fields).WithError(err).Warn("Price change not applied")
		s.notifier.Notify(i18n.T(s.locale, i18n.KeyPriceChangeCancelled))
		return PriceDeclined
	}

	s.logger.WithFields(fields).Debug("Price updated")
	return PriceApplied
}

func (s *PricingService) confirm(ctx context.Context, change *models.PriceChange) bool {
	if s.confirmer == nil {
		return false
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	prompt := i18n.T(s.locale, i18n.KeyPriceDecreasePrompt,
		models.FormatPrice(change.From()), models.FormatPrice(change.To()))
	return s.confirmer.Confirm(ctx, prompt)
}
