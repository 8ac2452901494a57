package pricing

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const digits = "0123456789"

var maxIntPart = decimal.NewFromInt(math.MaxInt64)

// Formatter renders monetary amounts as "<symbol> <number>" using the
// locale's separators and the currency's standard number of decimals.
type Formatter struct {
	printer *message.Printer
	unit    currency.Unit
	symbol  string
	point   string
	group   string
	scale   int32
}

// NewFormatter builds a formatter for a BCP 47 locale and an ISO 4217 code.
func NewFormatter(locale, code string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("invalid currency %q: %w", code, err)
	}
	scale, _ := currency.Standard.Rounding(unit)

	p := message.NewPrinter(tag)
	return &Formatter{
		printer: p,
		unit:    unit,
		symbol:  symbolFor(p, unit),
		point:   separator(p.Sprint(number.Decimal(1.5, number.Scale(1))), "."),
		group:   separator(p.Sprint(number.Decimal(1234, number.Scale(0))), ","),
		scale:   int32(scale),
	}, nil
}

// symbolFor takes the locale's symbol from a rendered zero amount, which
// x/text prints as "<symbol> <number>".
func symbolFor(p *message.Printer, unit currency.Unit) string {
	rendered := p.Sprint(currency.Symbol(unit.Amount(0)))
	if sym, _, ok := strings.Cut(rendered, " "); ok && sym != "" {
		return sym
	}
	return unit.String()
}

func separator(rendered, fallback string) string {
	if sep := strings.Trim(rendered, digits); sep != "" {
		return sep
	}
	return fallback
}

// Format rounds half away from zero to the currency scale. The amount never
// passes through float64.
func (f *Formatter) Format(amount decimal.Decimal) string {
	rounded := amount.Round(f.scale)
	abs := rounded.Abs()

	var b strings.Builder
	b.WriteString(f.symbol)
	b.WriteByte(' ')
	if rounded.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString(f.integer(abs))
	if f.scale > 0 {
		_, frac, _ := strings.Cut(abs.StringFixed(f.scale), ".")
		b.WriteString(f.point)
		b.WriteString(frac)
	}
	return b.String()
}

func (f *Formatter) integer(abs decimal.Decimal) string {
	if abs.LessThanOrEqual(maxIntPart) {
		return f.printer.Sprint(number.Decimal(abs.IntPart(), number.Scale(0)))
	}
	// Beyond int64: group the digit string directly.
	s := abs.Truncate(0).String()
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteString(f.group)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Currency reports the ISO code.
func (f *Formatter) Currency() string {
	return f.unit.String()
}
