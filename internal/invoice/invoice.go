package invoice

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IDGenerator generates unique IDs for invoices
type IDGenerator interface {
	Generate() string
}

// TimeSource provides the current time
type TimeSource interface {
	Now() time.Time
}

// defaultIDGenerator generates random UUIDs
type defaultIDGenerator struct{}

func (g *defaultIDGenerator) Generate() string {
	return uuid.NewString()
}

// defaultTimeSource provides the current time
type defaultTimeSource struct{}

func (t *defaultTimeSource) Now() time.Time {
	return time.Now()
}

// Party is one side of an invoice
type Party struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
}

// Invoice represents an invoice for a collection of services rendered to a recipient.
// It is meant for a single owner; callers must serialize concurrent mutation.
type Invoice struct {
	id        string
	sender    Party
	recipient Party
	createdAt time.Time
	items     []LineItem
	cost      decimal.Decimal
	comments  []string
}

// New creates a new Invoice with a random ID, stamped with the current time
func New(sender, recipient Party) *Invoice {
	return NewWithDeps(sender, recipient, &defaultIDGenerator{}, &defaultTimeSource{})
}

// NewWithDeps creates a new Invoice with custom dependencies for testing
func NewWithDeps(sender, recipient Party, idGen IDGenerator, timeSrc TimeSource) *Invoice {
	return &Invoice{
		id:        idGen.Generate(),
		sender:    sender,
		recipient: recipient,
		createdAt: timeSrc.Now(),
		cost:      decimal.Zero,
	}
}

func (inv *Invoice) ID() string           { return inv.id }
func (inv *Invoice) Sender() Party        { return inv.sender }
func (inv *Invoice) Recipient() Party     { return inv.recipient }
func (inv *Invoice) CreatedAt() time.Time { return inv.createdAt }

// Cost returns the total stored by the most recent CalculateTotal call.
// It is not refreshed when items are added afterwards.
func (inv *Invoice) Cost() decimal.Decimal { return inv.cost }

// Items returns a copy of the line items in the order they were added
func (inv *Invoice) Items() []LineItem {
	items := make([]LineItem, len(inv.items))
	copy(items, inv.items)
	return items
}

// AddItem appends a line item. tax is a fraction, 0.1 for 10%.
// Nothing is validated; a negative price is accepted as is.
func (inv *Invoice) AddItem(name string, price, tax decimal.Decimal) {
	inv.items = append(inv.items, LineItem{
		Name:    name,
		Price:   price,
		TaxRate: tax,
	})
}

// CalculateTotal sums the items at the given whole-number discount
// percentage, stores the result as the invoice cost and returns it.
func (inv *Invoice) CalculateTotal(discountPercent decimal.Decimal) decimal.Decimal {
	inv.cost = Total(inv.items, discountPercent)
	return inv.cost
}

// AddComment appends a comment to the invoice
func (inv *Invoice) AddComment(comment string) {
	inv.comments = append(inv.comments, comment)
}

// Comments returns a copy of the comments in the order they were added
func (inv *Invoice) Comments() []string {
	comments := make([]string, len(inv.comments))
	copy(comments, inv.comments)
	return comments
}

// GetComments returns all comments, one per line
func (inv *Invoice) GetComments() string {
	return strings.Join(inv.comments, "\n")
}
