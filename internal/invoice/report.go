package invoice

import (
	"fmt"
	"io"
)

// WriteReport writes the stored total followed by the comments.
// The total is whatever the last CalculateTotal call left behind.
func (inv *Invoice) WriteReport(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Total: %s\n", inv.cost.String()); err != nil {
		return fmt.Errorf("writing total: %w", err)
	}
	if _, err := fmt.Fprintf(w, "Comments:\n%s\n", inv.GetComments()); err != nil {
		return fmt.Errorf("writing comments: %w", err)
	}
	return nil
}
