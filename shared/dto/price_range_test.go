package dto_test

import (
	"errors"
	"testing"

	"madison/shared/dto"
)

func intPtr(v int) *int {
	return &v
}

func TestParsePriceRange(t *testing.T) {
	tests := []struct {
		name     string
		encoded  string
		expected dto.PriceRange
		wantErr  bool
	}{
		{
			name:     "bounded range",
			encoded:  "20000-50000",
			expected: dto.PriceRange{Min: intPtr(20000), Max: intPtr(50000)},
		},
		{
			name:     "open ended range",
			encoded:  "50000-",
			expected: dto.PriceRange{Min: intPtr(50000)},
		},
		{
			name:     "all keyword",
			encoded:  "all",
			expected: dto.PriceRange{},
		},
		{
			name:     "empty string means no constraint",
			encoded:  "",
			expected: dto.PriceRange{},
		},
		{
			name:    "missing separator",
			encoded: "20000",
			wantErr: true,
		},
		{
			name:    "missing minimum",
			encoded: "-50000",
			wantErr: true,
		},
		{
			name:    "non numeric minimum",
			encoded: "abc-50000",
			wantErr: true,
		},
		{
			name:    "non numeric maximum",
			encoded: "20000-xyz",
			wantErr: true,
		},
		{
			name:    "maximum below minimum",
			encoded: "50000-20000",
			wantErr: true,
		},
		{
			name:    "negative minimum",
			encoded: "-100-200",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dto.ParsePriceRange(tt.encoded)

			if tt.wantErr {
				if !errors.Is(err, dto.ErrInvalidPriceRange) {
					t.Fatalf("expected ErrInvalidPriceRange, got %v", err)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !rangeEqual(got, tt.expected) {
				t.Errorf("expected %s, got %s", tt.expected.String(), got.String())
			}
		})
	}
}

func TestPriceRange_String(t *testing.T) {
	tests := []struct {
		name       string
		priceRange dto.PriceRange
		expected   string
	}{
		{name: "no bounds", priceRange: dto.PriceRange{}, expected: "all"},
		{name: "open ended", priceRange: dto.PriceRange{Min: intPtr(50000)}, expected: "50000-"},
		{name: "bounded", priceRange: dto.PriceRange{Min: intPtr(20000), Max: intPtr(50000)}, expected: "20000-50000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.priceRange.String(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestPriceRange_Filters(t *testing.T) {
	priceRange := dto.PriceRange{Min: intPtr(20000), Max: intPtr(50000)}

	filters := priceRange.Filters("price", "rooms")
	if len(filters) != 2 {
		t.Fatalf("expected 2 filters, got %d", len(filters))
	}

	minFilter, ok := filters[0].(dto.Filter)
	if !ok {
		t.Fatalf("expected dto.Filter, got %T", filters[0])
	}

	if minFilter.Operator != dto.FilterOperatorGreaterEq || minFilter.Value != 20000 {
		t.Errorf("unexpected minimum filter: %+v", minFilter)
	}

	maxFilter, ok := filters[1].(dto.Filter)
	if !ok {
		t.Fatalf("expected dto.Filter, got %T", filters[1])
	}

	if maxFilter.Operator != dto.FilterOperatorLessEq || maxFilter.Value != 50000 {
		t.Errorf("unexpected maximum filter: %+v", maxFilter)
	}

	if got := (dto.PriceRange{}).Filters("price", "rooms"); len(got) != 0 {
		t.Errorf("expected no filters for an unbounded range, got %d", len(got))
	}
}

func rangeEqual(a, b dto.PriceRange) bool {
	return a.String() == b.String()
}
