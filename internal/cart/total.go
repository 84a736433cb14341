package cart

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Subtotal computes unitPrice*qty for a line. Prices travel as NUMERIC
// strings, so arithmetic goes through decimal instead of floats.
func Subtotal(unitPrice string, qty int) (string, error) {
	p, err := decimal.NewFromString(unitPrice)
	if err != nil {
		return "", fmt.Errorf("bad price %q: %w", unitPrice, err)
	}
	return p.Mul(decimal.NewFromInt(int64(qty))).StringFixed(2), nil
}

// BuildView fills per-line subtotals and the cart total.
func BuildView(cartID string, lines []Line) (*View, error) {
	total := decimal.Zero
	for i := range lines {
		p, err := decimal.NewFromString(lines[i].UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("bad price %q: %w", lines[i].UnitPrice, err)
		}
		sub := p.Mul(decimal.NewFromInt(int64(lines[i].Quantity)))
		lines[i].Subtotal = sub.StringFixed(2)
		total = total.Add(sub)
	}
	if lines == nil {
		lines = []Line{}
	}
	return &View{CartID: cartID, Lines: lines, Total: total.StringFixed(2)}, nil
}
