package invoice

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
)

var _ = Describe("Total", func() {
	DescribeTable("with no discount equals the sum of price plus tax",
		func(items []LineItem) {
			expected := decimal.Zero
			for _, item := range items {
				expected = expected.Add(item.Price).Add(item.Price.Mul(item.TaxRate))
			}
			Expect(Total(items, decimal.Zero).Equal(expected)).To(BeTrue())
		},
		Entry("no items", []LineItem{}),
		Entry("one untaxed item", []LineItem{
			{Name: "Fear Tax", Price: dec("340"), TaxRate: dec("0")},
		}),
		Entry("mixed tax rates", []LineItem{
			{Name: "34 floor building", Price: dec("3400"), TaxRate: dec("0.1")},
			{Name: "Equipment Rental", Price: dec("1000"), TaxRate: dec("0.1")},
			{Name: "Fear Tax", Price: dec("340"), TaxRate: dec("0")},
		}),
		Entry("fractional prices", []LineItem{
			{Name: "Paper", Price: dec("0.99"), TaxRate: dec("0.075")},
			{Name: "Ink", Price: dec("19.95"), TaxRate: dec("0.2")},
		}),
		Entry("a negative price", []LineItem{
			{Name: "Credit", Price: dec("-25"), TaxRate: dec("0.1")},
		}),
	)

	DescribeTable("with a full discount is zero",
		func(tax string) {
			items := []LineItem{{Name: "Anything", Price: dec("999.99"), TaxRate: dec(tax)}}
			Expect(Total(items, dec("100")).IsZero()).To(BeTrue())
		},
		Entry("no tax", "0"),
		Entry("ten percent", "0.1"),
		Entry("tax above one", "1.5"),
	)

	It("should not modify the items", func() {
		items := []LineItem{{Name: "Consulting", Price: dec("100"), TaxRate: dec("0.1")}}
		Total(items, dec("50"))
		Expect(items[0].Price.String()).To(Equal("100"))
	})
})

var _ = Describe("LineItem", func() {
	Describe("Total", func() {
		var (
			item     LineItem
			discount decimal.Decimal
			total    decimal.Decimal
		)

		JustBeforeEach(func() {
			total = item.Total(discount)
		})

		When("the item is the demo building at 20% off", func() {
			BeforeEach(func() {
				item = LineItem{Name: "34 floor building", Price: dec("3400"), TaxRate: dec("0.1")}
				discount = dec("20")
			})

			It("should tax the discounted price", func() {
				Expect(total.String()).To(Equal("2992"))
			})
		})

		When("the item is untaxed", func() {
			BeforeEach(func() {
				item = LineItem{Name: "Fear Tax", Price: dec("340"), TaxRate: dec("0")}
				discount = dec("20")
			})

			It("should return the discounted price", func() {
				Expect(total.String()).To(Equal("272"))
			})
		})
	})
})
