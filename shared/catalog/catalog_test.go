package catalog_test

import (
	"testing"

	"madison/shared/catalog"
)

type item struct {
	name  string
	price int
}

func sampleItems() []item {
	return []item{
		{name: "standard", price: 20000},
		{name: "vip", price: 35000},
		{name: "suite", price: 50000},
		{name: "luxe", price: 65000},
		{name: "duplex", price: 80000},
	}
}

func TestFilter(t *testing.T) {
	priceAtLeast := func(min int) catalog.Predicate[item] {
		return func(i item) bool { return i.price >= min }
	}

	priceAtMost := func(max int) catalog.Predicate[item] {
		return func(i item) bool { return i.price <= max }
	}

	tests := []struct {
		name       string
		predicates []catalog.Predicate[item]
		expected   []string
	}{
		{
			name:       "no predicates returns everything",
			predicates: nil,
			expected:   []string{"standard", "vip", "suite", "luxe", "duplex"},
		},
		{
			name:       "single predicate keeps original order",
			predicates: []catalog.Predicate[item]{priceAtLeast(35000)},
			expected:   []string{"vip", "suite", "luxe", "duplex"},
		},
		{
			name:       "predicates combine as AND",
			predicates: []catalog.Predicate[item]{priceAtLeast(35000), priceAtMost(65000)},
			expected:   []string{"vip", "suite", "luxe"},
		},
		{
			name:       "nil predicate is skipped",
			predicates: []catalog.Predicate[item]{nil, priceAtMost(20000)},
			expected:   []string{"standard"},
		},
		{
			name:       "nothing matches",
			predicates: []catalog.Predicate[item]{priceAtLeast(100000)},
			expected:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.Filter(sampleItems(), tt.predicates...)

			if len(got) != len(tt.expected) {
				t.Fatalf("expected %d items, got %d", len(tt.expected), len(got))
			}

			for i, name := range tt.expected {
				if got[i].name != name {
					t.Errorf("position %d: expected %q, got %q", i, name, got[i].name)
				}
			}
		})
	}
}

func TestFilterDoesNotMutateSource(t *testing.T) {
	source := sampleItems()

	catalog.Filter(source, func(i item) bool { return i.price > 50000 })

	if len(source) != 5 || source[0].name != "standard" {
		t.Error("expected source slice to be untouched")
	}
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name           string
		records        []item
		pageSize       int
		pageNumber     int
		expectedNames  []string
		expectedPage   int
		expectedTotal  int
	}{
		{
			name:          "first page",
			records:       sampleItems(),
			pageSize:      2,
			pageNumber:    1,
			expectedNames: []string{"standard", "vip"},
			expectedPage:  1,
			expectedTotal: 3,
		},
		{
			name:          "last partial page",
			records:       sampleItems(),
			pageSize:      2,
			pageNumber:    3,
			expectedNames: []string{"duplex"},
			expectedPage:  3,
			expectedTotal: 3,
		},
		{
			name:          "page past the end clamps to the last page",
			records:       sampleItems(),
			pageSize:      2,
			pageNumber:    99,
			expectedNames: []string{"duplex"},
			expectedPage:  3,
			expectedTotal: 3,
		},
		{
			name:          "page below one clamps to the first page",
			records:       sampleItems(),
			pageSize:      2,
			pageNumber:    0,
			expectedNames: []string{"standard", "vip"},
			expectedPage:  1,
			expectedTotal: 3,
		},
		{
			name:          "empty collection still reports one page",
			records:       []item{},
			pageSize:      6,
			pageNumber:    1,
			expectedNames: []string{},
			expectedPage:  1,
			expectedTotal: 1,
		},
		{
			name:          "everything fits on one page",
			records:       sampleItems(),
			pageSize:      10,
			pageNumber:    1,
			expectedNames: []string{"standard", "vip", "suite", "luxe", "duplex"},
			expectedPage:  1,
			expectedTotal: 1,
		},
		{
			name:          "non positive page size falls back to one per page",
			records:       sampleItems(),
			pageSize:      0,
			pageNumber:    2,
			expectedNames: []string{"vip"},
			expectedPage:  2,
			expectedTotal: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := catalog.Paginate(tt.records, tt.pageSize, tt.pageNumber)

			if page.PageNumber != tt.expectedPage {
				t.Errorf("expected page number %d, got %d", tt.expectedPage, page.PageNumber)
			}

			if page.TotalPages != tt.expectedTotal {
				t.Errorf("expected %d total pages, got %d", tt.expectedTotal, page.TotalPages)
			}

			if len(page.Records) != len(tt.expectedNames) {
				t.Fatalf("expected %d records, got %d", len(tt.expectedNames), len(page.Records))
			}

			for i, name := range tt.expectedNames {
				if page.Records[i].name != name {
					t.Errorf("position %d: expected %q, got %q", i, name, page.Records[i].name)
				}
			}
		})
	}
}
