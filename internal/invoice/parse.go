package invoice

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseItem parses a "name:price:tax" item spec as given on the command line.
// Price and tax are split off from the right so the name may contain colons.
func ParseItem(spec string) (string, decimal.Decimal, decimal.Decimal, error) {
	spec = strings.TrimSpace(spec)

	taxIdx := strings.LastIndex(spec, ":")
	if taxIdx == -1 {
		return "", decimal.Zero, decimal.Zero, fmt.Errorf("item %q: expected name:price:tax", spec)
	}
	priceIdx := strings.LastIndex(spec[:taxIdx], ":")
	if priceIdx == -1 {
		return "", decimal.Zero, decimal.Zero, fmt.Errorf("item %q: expected name:price:tax", spec)
	}

	name := strings.TrimSpace(spec[:priceIdx])
	if name == "" {
		return "", decimal.Zero, decimal.Zero, fmt.Errorf("item %q: name is empty", spec)
	}

	price, err := decimal.NewFromString(strings.TrimSpace(spec[priceIdx+1 : taxIdx]))
	if err != nil {
		return "", decimal.Zero, decimal.Zero, fmt.Errorf("parsing price of %q: %w", name, err)
	}

	tax, err := decimal.NewFromString(strings.TrimSpace(spec[taxIdx+1:]))
	if err != nil {
		return "", decimal.Zero, decimal.Zero, fmt.Errorf("parsing tax of %q: %w", name, err)
	}

	return name, price, tax, nil
}

// ParseDiscount parses a whole-number discount percentage such as "20"
func ParseDiscount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing discount: %w", err)
	}
	return d, nil
}
