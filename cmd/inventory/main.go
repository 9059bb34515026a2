// cmd/inventory/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/imi-inventory/internal/config"
	"github.com/javajoker/imi-inventory/internal/i18n"
	"github.com/javajoker/imi-inventory/internal/loader"
	"github.com/javajoker/imi-inventory/internal/models"
	"github.com/javajoker/imi-inventory/internal/services"
	"github.com/javajoker/imi-inventory/internal/utils"
)

func main() {
	// Initialize i18n
	if err := i18n.Initialize(); err != nil {
		logrus.Fatal("Failed to initialize i18n: ", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	logger := utils.NewLogger(cfg.Environment, cfg.LogLevel)
	lang := cfg.I18n.DefaultLocale

	// Ctrl-C cancels a pending confirmation instead of leaving it blocked
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	counters := models.NewCounters()
	categories, err := loader.LoadCategories(cfg.Catalog.Path, counters)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load catalog")
	}
	logger.WithField("categories", len(categories)).Info("Catalog loaded")

	for _, cat := range categories {
		fmt.Println(cat.Name, cat.Description)
		for _, prod := range cat.GetProducts() {
			fmt.Println("  ", prod.Name, "-", models.FormatPrice(prod.Price()))
		}
	}
	fmt.Println(i18n.T(lang, i18n.KeyReportCategoryCount, counters.CategoryCount()))
	fmt.Println(i18n.T(lang, i18n.KeyReportProductCount, counters.ProductCount()))
	fmt.Println()

	notifier := services.NewNotificationService(logger, os.Stdout)
	confirmer := services.NewConsoleConfirmer(os.Stdin, os.Stdout)
	pricing := services.NewPricingService(cfg, confirmer, notifier, logger)
	productService := services.NewProductService(pricing, logger)
	orderService := services.NewOrderService(logger)

	if err := runDemo(ctx, counters, productService, orderService); err != nil {
		logger.WithError(err).Fatal("Demo failed")
	}
}

func runDemo(ctx context.Context, counters *models.Counters, productService *services.ProductService, orderService *services.OrderService) error {
	apple, err := models.NewProduct("Яблоко", "Красное яблоко", decimal.NewFromInt(80), 15)
	if err != nil {
		return err
	}
	banana, err := models.NewProduct("Банан", "Желтый банан", decimal.NewFromInt(50), 20)
	if err != nil {
		return err
	}

	fruits, err := models.NewCategory(counters, "Фрукты", "Свежие фрукты", []*models.Product{apple, banana})
	if err != nil {
		return err
	}
	fmt.Print(fruits.Products())
	fmt.Println(fruits)

	products := []*models.Product{apple}

	updates := []models.ProductData{
		{Name: "Яблоко", Description: "Свежее яблоко", Price: decimal.NewFromInt(85), Quantity: 10},
		{Name: "Банан", Description: "Желтый банан", Price: decimal.NewFromInt(50), Quantity: 20},
		{Name: "Яблоко", Description: "Свежее яблоко", Price: decimal.NewFromInt(70), Quantity: 5},
	}
	for _, data := range updates {
		if _, err := productService.NewProduct(ctx, data, &products); err != nil {
			return err
		}
	}
	for _, p := range products {
		fmt.Printf("%#v\n", p)
	}

	order, err := orderService.PlaceOrder(apple, 3)
	if err != nil {
		return err
	}
	fmt.Println(order.ID, models.FormatPrice(order.TotalPrice()), models.CurrencyLabel)
	fmt.Println(fruits)
	return nil
}
