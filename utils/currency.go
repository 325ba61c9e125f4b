package utils

import (
	"fmt"
	"strings"
)

// FormatSoles formats an amount as Peruvian soles, e.g. "S/ 1,234.50".
func FormatSoles(amount float64) string {
	formatted := fmt.Sprintf("%.2f", amount)

	parts := strings.Split(formatted, ".")
	integerPart := parts[0]
	decimalPart := parts[1]

	negative := false
	if strings.HasPrefix(integerPart, "-") {
		negative = true
		integerPart = integerPart[1:]
	}

	// Thousands separator
	var result []string
	for i := len(integerPart); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		result = append([]string{integerPart[start:i]}, result...)
	}

	joined := strings.Join(result, ",") + "." + decimalPart
	if negative {
		return "S/ -" + joined
	}
	return "S/ " + joined
}
