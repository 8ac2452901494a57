package domain

import "github.com/shopspring/decimal"

// TaxBracket maps an inclusive age range to a price multiplier.
type TaxBracket struct {
	From       int             `json:"from"`
	To         int             `json:"to"`
	Multiplier decimal.Decimal `json:"multiplier"`
}

// Contains reports whether age falls inside [From, To].
func (b TaxBracket) Contains(age int) bool {
	return age >= b.From && age <= b.To
}
