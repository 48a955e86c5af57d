package paychangu

import (
	"strings"

	"github.com/shopspring/decimal"
)

type field struct {
	key   string
	value any
}

func required(key string, value any) field {
	return field{key: key, value: value}
}

// validateRequired reports the first field, in argument order, whose value is
// absent or a blank string. Zero numbers count as present.
func validateRequired(fields ...field) error {
	for _, f := range fields {
		if isMissing(f.value) {
			return missingParameter(f.key)
		}
	}
	return nil
}

func isMissing(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case *string:
		return v == nil || strings.TrimSpace(*v) == ""
	case decimal.NullDecimal:
		return !v.Valid
	case *decimal.Decimal:
		return v == nil
	default:
		return false
	}
}
