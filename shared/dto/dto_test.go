package dto_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"madison/shared/constant"
	"madison/shared/dto"
	"madison/shared/model"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC)

	source := model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "reception",
		ModifiedBy: "manager",
	}

	metadata := &dto.Metadata{}
	metadata.FromModel(source)

	if metadata.CreatedAt != createdAt.Format(constant.DateFormat) {
		t.Errorf("expected CreatedAt %s, got %s", createdAt.Format(constant.DateFormat), metadata.CreatedAt)
	}

	if metadata.ModifiedAt != modifiedAt.Format(constant.DateFormat) {
		t.Errorf("expected ModifiedAt %s, got %s", modifiedAt.Format(constant.DateFormat), metadata.ModifiedAt)
	}

	if metadata.CreatedBy != "reception" {
		t.Errorf("expected CreatedBy 'reception', got %s", metadata.CreatedBy)
	}

	if metadata.ModifiedBy != "manager" {
		t.Errorf("expected ModifiedBy 'manager', got %s", metadata.ModifiedBy)
	}
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		rawQuery       string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:           "all parameters set",
			rawQuery:       "page=2&limit=20&sort_by=price&sort_dir=ASC",
			defaultRequest: false,
			expected:       dto.QueryParams{Page: 2, Limit: 20, SortBy: "price", SortDir: "ASC"},
		},
		{
			name:           "defaults applied when empty",
			rawQuery:       "",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:           "no defaults when disabled",
			rawQuery:       "",
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
		{
			name:           "non-numeric page falls back to default",
			rawQuery:       "page=abc",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:           "page below one falls back to default",
			rawQuery:       "page=0",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:           "negative limit falls back to default",
			rawQuery:       "limit=-6",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:           "partial parameters keep defaults for the rest",
			rawQuery:       "page=3&sort_by=name",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: 3, Limit: constant.DefaultValueLimit, SortBy: "name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, "http://example.com/v1/rooms?"+tt.rawQuery, nil)
			if err != nil {
				t.Fatalf("failed to create request: %v", err)
			}

			params := &dto.QueryParams{}
			params.FromRequest(req, tt.defaultRequest)

			if *params != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, *params)
			}
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name       string
		filter     dto.Filter
		wantClause string
		wantArgs   map[string]any
	}{
		{
			name:       "equality on room type",
			filter:     dto.Filter{Field: "type", Value: "vip", Operator: dto.FilterOperatorEq},
			wantClause: "type = :type",
			wantArgs:   map[string]any{"type": "vip"},
		},
		{
			name:       "case-insensitive substring on name",
			filter:     dto.Filter{Field: "name", Value: "chambre", Operator: dto.FilterOperatorLike},
			wantClause: "LOWER(name) LIKE LOWER(:name)",
			wantArgs:   map[string]any{"name": "%chambre%"},
		},
		{
			name:       "price lower bound",
			filter:     dto.Filter{Field: "price", Value: 30000, Operator: dto.FilterOperatorGreaterEq},
			wantClause: "price >= :price",
			wantArgs:   map[string]any{"price": 30000},
		},
		{
			name:       "price upper bound with explicit arg name",
			filter:     dto.Filter{ArgName: "price_max", Field: "price", Value: 60000, Operator: dto.FilterOperatorLessEq},
			wantClause: "price <= :price_max",
			wantArgs:   map[string]any{"price_max": 60000},
		},
		{
			name:       "table-qualified column",
			filter:     dto.Filter{Table: "bookings", Field: "status", Value: "pending", Operator: dto.FilterOperatorEq},
			wantClause: "bookings.status = :status",
			wantArgs:   map[string]any{"status": "pending"},
		},
		{
			name:       "in over a slice of statuses",
			filter:     dto.Filter{Field: "status", Value: []string{"pending", "confirmed"}, Operator: dto.FilterOperatorIn},
			wantClause: "status IN (:status_0, :status_1)",
			wantArgs:   map[string]any{"status_0": "pending", "status_1": "confirmed"},
		},
		{
			name:       "unknown operator produces nothing",
			filter:     dto.Filter{Field: "status", Value: "pending", Operator: "between"},
			wantClause: "",
			wantArgs:   map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, args := tt.filter.GetWhereClause()

			if strings.TrimSpace(clause) != tt.wantClause {
				t.Errorf("expected clause %q, got %q", tt.wantClause, strings.TrimSpace(clause))
			}

			if len(args) != len(tt.wantArgs) {
				t.Fatalf("expected %d args, got %d", len(tt.wantArgs), len(args))
			}

			for key, want := range tt.wantArgs {
				if args[key] != want {
					t.Errorf("expected arg %s=%v, got %v", key, want, args[key])
				}
			}
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "available", Value: true, Operator: dto.FilterOperatorEq},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{Field: "type", Value: "suite", Operator: dto.FilterOperatorEq, ArgName: "type_suite"},
					dto.Filter{Field: "type", Value: "vip", Operator: dto.FilterOperatorEq, ArgName: "type_vip"},
				},
			},
		},
	}

	clause, args := group.GetWhereClause()

	if !strings.Contains(clause, "available = :available") {
		t.Errorf("expected availability predicate in %q", clause)
	}

	if !strings.Contains(clause, "type = :type_suite OR type = :type_vip") {
		t.Errorf("expected nested OR group in %q", clause)
	}

	if len(args) != 3 {
		t.Errorf("expected 3 bound args, got %d", len(args))
	}

	emptyGroup := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	clause, args = emptyGroup.GetWhereClause()
	if clause != "" || len(args) != 0 {
		t.Errorf("expected empty group to produce no clause, got %q with %d args", clause, len(args))
	}
}

func TestSortDirectionConstants(t *testing.T) {
	if dto.SortDirAsc != "ASC" {
		t.Errorf("expected SortDirAsc to be 'ASC', got %s", dto.SortDirAsc)
	}

	if dto.SortDirDesc != "DESC" {
		t.Errorf("expected SortDirDesc to be 'DESC', got %s", dto.SortDirDesc)
	}
}
