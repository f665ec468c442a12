package grants

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// AmountFormatter renders funding figures as dollar strings with locale
// grouping, e.g. "1234567.8" -> "$1,234,567.8".
type AmountFormatter struct {
	printer *message.Printer
}

func NewAmountFormatter(locale language.Tag) *AmountFormatter {
	return &AmountFormatter{
		printer: message.NewPrinter(locale),
	}
}

// Format returns nil for a missing, empty or non-numeric figure.
func (f *AmountFormatter) Format(raw *string) *string {
	if raw == nil {
		return nil
	}

	value := strings.TrimSpace(*raw)
	if value == "" {
		return nil
	}

	n, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return nil
	}

	// Keep every fraction digit the figure carries; the locale pattern
	// would otherwise round to three.
	var opts []number.Option
	if digits := fractionDigits(n); digits > 0 {
		opts = append(opts, number.MaxFractionDigits(digits))
	}

	formatted := "$" + f.printer.Sprintf("%v", number.Decimal(n, opts...))
	return &formatted
}

func fractionDigits(n float64) int {
	s := strconv.FormatFloat(math.Abs(n), 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}
