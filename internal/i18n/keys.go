// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Pricing
	KeyPriceNonPositive     = "price.non_positive"
	KeyPriceChangeCancelled = "price.change_cancelled"
	KeyPriceDecreasePrompt  = "price.decrease_prompt"

	// Reports
	KeyReportCategoryCount = "report.category_count"
	KeyReportProductCount  = "report.product_count"
)
