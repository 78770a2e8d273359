package shared_test

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"madison/shared"
	"madison/shared/constant"
	"madison/shared/dto"
)

func boolPtr(b bool) *bool {
	return &b
}

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{name: "empty string returns nil", input: "", expected: nil},
		{name: "true", input: "true", expected: boolPtr(true)},
		{name: "false", input: "false", expected: boolPtr(false)},
		{name: "numeric one", input: "1", expected: boolPtr(true)},
		{name: "numeric zero", input: "0", expected: boolPtr(false)},
		{name: "single letter true", input: "t", expected: boolPtr(true)},
		{name: "single letter false", input: "f", expected: boolPtr(false)},
		{name: "uppercase true", input: "TRUE", expected: boolPtr(true)},
		{name: "uppercase false", input: "FALSE", expected: boolPtr(false)},
		{name: "garbage returns nil", input: "oui", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			switch {
			case tt.expected == nil:
				if result != nil {
					t.Errorf("expected nil, got %v", *result)
				}
			case result == nil:
				t.Errorf("expected %v, got nil", *tt.expected)
			case *result != *tt.expected:
				t.Errorf("expected %v, got %v", *tt.expected, *result)
			}
		})
	}
}

func TestConvertStringToInt(t *testing.T) {
	if value, err := shared.ConvertStringToInt("45000"); err != nil || value != 45000 {
		t.Errorf("expected 45000 with no error, got %d, %v", value, err)
	}

	if _, err := shared.ConvertStringToInt("quarante"); err == nil {
		t.Error("expected an error for a non-numeric string")
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "empty collection still has one page", total: 0, limit: 6, expected: 1},
		{name: "zero limit collapses to one page", total: 40, limit: 0, expected: 1},
		{name: "negative limit collapses to one page", total: 40, limit: -6, expected: 1},
		{name: "exact division", total: 12, limit: 6, expected: 2},
		{name: "remainder adds a page", total: 13, limit: 6, expected: 3},
		{name: "single item", total: 1, limit: 6, expected: 1},
		{name: "everything on one page", total: 5, limit: 6, expected: 1},
		{name: "large collection", total: 1000000, limit: 7, expected: 142858},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := shared.CalculateTotalPage(tt.total, tt.limit); result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type roomPatch struct {
		Name      string `db:"name"`
		Price     int    `db:"price"`
		Capacity  int    `db:"capacity"`
		Notes     string
		Secret    string `db:"-"`
		Untracked string `db:""`
	}

	tests := []struct {
		name     string
		data     any
		username string
		expected map[string]any
	}{
		{
			name: "populated fields only",
			data: roomPatch{
				Name:      "Chambre VIP",
				Price:     45000,
				Capacity:  0,
				Notes:     "no db tag",
				Untracked: "empty db tag",
			},
			username: "manager",
			expected: map[string]any{
				"name":  "Chambre VIP",
				"price": 45000,
			},
		},
		{
			name:     "zero struct produces only audit fields",
			data:     roomPatch{},
			username: "manager",
			expected: map[string]any{},
		},
		{
			name:     "single field",
			data:     roomPatch{Price: 60000},
			username: "admin",
			expected: map[string]any{"price": 60000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.TransformFields(tt.data, tt.username)

			if _, ok := result[constant.FieldModifiedAt].(time.Time); !ok {
				t.Error("expected modified_at to be set to a time.Time")
			}

			if result[constant.FieldModifiedBy] != tt.username {
				t.Errorf("expected modified_by %s, got %v", tt.username, result[constant.FieldModifiedBy])
			}

			for key, want := range tt.expected {
				if got, exists := result[key]; !exists {
					t.Errorf("expected field %s to exist", key)
				} else if !reflect.DeepEqual(got, want) {
					t.Errorf("expected field %s to be %v, got %v", key, want, got)
				}
			}

			for key := range result {
				if key == constant.FieldModifiedAt || key == constant.FieldModifiedBy || key == "-" {
					continue
				}

				if _, want := tt.expected[key]; !want {
					t.Errorf("unexpected field %s in result", key)
				}
			}
		})
	}
}

func TestTransformFieldsWithPointers(t *testing.T) {
	type availabilityPatch struct {
		Available *bool `db:"available"`
		Promo     *bool `db:"promo"`
	}

	available := false

	result := shared.TransformFields(availabilityPatch{Available: &available}, "reception")

	got, exists := result["available"]
	if !exists {
		t.Fatal("expected available to be included even when pointing at false")
	}

	if ptr, ok := got.(*bool); !ok || *ptr != false {
		t.Errorf("expected *bool false, got %v", got)
	}

	if _, exists := result["promo"]; exists {
		t.Error("expected nil pointer field to be skipped")
	}
}

func TestFilterByID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		fieldID string
		table   string
	}{
		{name: "booking by id", id: "booking-id-123", fieldID: "id", table: "bookings"},
		{name: "room without table qualifier", id: "room-1", fieldID: "id", table: ""},
		{name: "blog post by slug column", id: "offre-speciale-juin", fieldID: "slug", table: "blog_posts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.FilterByID(tt.id, tt.fieldID, tt.table)

			if len(result.Filters) != 1 {
				t.Fatalf("expected 1 filter, got %d", len(result.Filters))
			}

			filter, ok := result.Filters[0].(dto.Filter)
			if !ok {
				t.Fatalf("expected dto.Filter, got %T", result.Filters[0])
			}

			if filter.Field != tt.fieldID || filter.Value != tt.id || filter.Table != tt.table {
				t.Errorf("unexpected filter %+v", filter)
			}

			if filter.Operator != dto.FilterOperatorEq {
				t.Errorf("expected operator %s, got %s", dto.FilterOperatorEq, filter.Operator)
			}
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	key := shared.BuildCacheKey("room:get", "room-1")
	if key != "room:get:room-1" {
		t.Errorf("unexpected cache key %s", key)
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 2, Limit: 6, SortBy: "price", SortDir: dto.SortDirAsc}
	filter := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "type", Value: "vip", Operator: dto.FilterOperatorEq},
		},
	}

	key := shared.BuildCacheKeyWithQuery("rooms", params, filter)

	if !strings.HasPrefix(key, "rooms:2:6:price:ASC:") {
		t.Errorf("expected key to encode the pagination params, got %s", key)
	}

	otherFilter := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "type", Value: "suite", Operator: dto.FilterOperatorEq},
		},
	}

	if key == shared.BuildCacheKeyWithQuery("rooms", params, otherFilter) {
		t.Error("expected distinct filters to produce distinct keys")
	}
}
