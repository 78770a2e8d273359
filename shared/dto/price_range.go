package dto

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// PriceRangeAll is the literal meaning "no price constraint".
const PriceRangeAll = "all"

var ErrInvalidPriceRange = errors.New("invalid price range, expected \"min-max\", \"min-\" or \"all\"")

// PriceRange is the structured form of the "min-max" filter encoding used by
// the room listing. Max is nil for the open-ended "min-" form. The zero value
// (no bounds) means no constraint.
type PriceRange struct {
	Min *int
	Max *int
}

// ParsePriceRange parses the compact wire encoding: "min-max", "min-" (at
// least min, no upper bound) or "all". Malformed encodings are rejected
// rather than silently matching nothing.
func ParsePriceRange(encoded string) (PriceRange, error) {
	var priceRange PriceRange

	if encoded == "" || encoded == PriceRangeAll {
		return priceRange, nil
	}

	minPart, maxPart, found := strings.Cut(encoded, "-")
	if !found || minPart == "" {
		return priceRange, ErrInvalidPriceRange
	}

	minValue, err := strconv.Atoi(minPart)
	if err != nil || minValue < 0 {
		return priceRange, ErrInvalidPriceRange
	}

	priceRange.Min = &minValue

	if maxPart != "" {
		maxValue, err := strconv.Atoi(maxPart)
		if err != nil || maxValue < minValue {
			return priceRange, ErrInvalidPriceRange
		}

		priceRange.Max = &maxValue
	}

	return priceRange, nil
}

// String renders the range back to its wire encoding.
func (p PriceRange) String() string {
	switch {
	case p.Min == nil:
		return PriceRangeAll
	case p.Max == nil:
		return fmt.Sprintf("%d-", *p.Min)
	default:
		return fmt.Sprintf("%d-%d", *p.Min, *p.Max)
	}
}

// Filters expands the range into threshold filters on the given column.
func (p PriceRange) Filters(field, table string) []any {
	filters := []any{}

	if p.Min != nil {
		filters = append(filters, Filter{
			ArgName:  field + "_min",
			Field:    field,
			Value:    *p.Min,
			Operator: FilterOperatorGreaterEq,
			Table:    table,
		})
	}

	if p.Max != nil {
		filters = append(filters, Filter{
			ArgName:  field + "_max",
			Field:    field,
			Value:    *p.Max,
			Operator: FilterOperatorLessEq,
			Table:    table,
		})
	}

	return filters
}
