package pricing

import (
	"fmt"

	"carrental-backend/internal/domain"

	"github.com/shopspring/decimal"
)

// DefaultTaxBrackets returns the standard age table. Ranges are inclusive on
// both ends and contiguous from 18 to 100.
func DefaultTaxBrackets() []domain.TaxBracket {
	return []domain.TaxBracket{
		{From: 18, To: 25, Multiplier: decimal.RequireFromString("1.1")},
		{From: 26, To: 30, Multiplier: decimal.RequireFromString("1.5")},
		{From: 31, To: 100, Multiplier: decimal.RequireFromString("1.3")},
	}
}

// FindBracket returns the first bracket in declaration order containing age.
func FindBracket(brackets []domain.TaxBracket, age int) (domain.TaxBracket, error) {
	for _, b := range brackets {
		if b.Contains(age) {
			return b, nil
		}
	}
	return domain.TaxBracket{}, fmt.Errorf("age %d: %w", age, domain.ErrUnratedAge)
}

// Total computes dailyPrice * multiplier * days without rounding.
func Total(dailyPrice, multiplier decimal.Decimal, days int) decimal.Decimal {
	base := dailyPrice.Mul(multiplier)
	return base.Mul(decimal.NewFromInt(int64(days)))
}

// ValidateBrackets checks that every bracket is well formed and that no two
// brackets overlap.
func ValidateBrackets(brackets []domain.TaxBracket) error {
	if len(brackets) == 0 {
		return fmt.Errorf("at least one tax bracket is required")
	}
	for i, b := range brackets {
		if b.From < 0 || b.To < b.From {
			return fmt.Errorf("tax bracket %d: invalid range %d-%d", i, b.From, b.To)
		}
		if !b.Multiplier.IsPositive() {
			return fmt.Errorf("tax bracket %d: multiplier must be positive", i)
		}
		for j := 0; j < i; j++ {
			prev := brackets[j]
			if b.From <= prev.To && prev.From <= b.To {
				return fmt.Errorf("tax bracket %d overlaps bracket %d", i, j)
			}
		}
	}
	return nil
}
