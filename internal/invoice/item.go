package invoice

import "github.com/shopspring/decimal"

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// LineItem is a single billable entry on an invoice
type LineItem struct {
	Name    string          `json:"name"`
	Price   decimal.Decimal `json:"price"`
	TaxRate decimal.Decimal `json:"tax_rate"` // 0.1 means 10%
}

// Total returns the line amount at the given whole-number discount
// percentage. Tax is charged on the discounted price, not the list price.
func (li LineItem) Total(discountPercent decimal.Decimal) decimal.Decimal {
	discounted := li.Price.Mul(one.Sub(discountPercent.Div(hundred)))
	return discounted.Add(discounted.Mul(li.TaxRate))
}

// Total sums the line totals of items at the given whole-number discount
// percentage. Out-of-range discounts are not rejected: 150 yields a
// negative total.
func Total(items []LineItem, discountPercent decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Total(discountPercent))
	}
	return total
}
