package dto

import (
	"fmt"
	"maps"
	"reflect"
	"strings"
)

const (
	FilterOperatorEq        = "eq"
	FilterOperatorLike      = "like"
	FilterOperatorIn        = "in"
	FilterOperatorLessEq    = "less_eq"
	FilterOperatorGreaterEq = "greater_eq"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

// Filter is a single column predicate rendered as a named-parameter WHERE
// fragment. ArgName overrides the bind name when the same field appears more
// than once in a query.
type Filter struct {
	ArgName  string
	Field    string
	Value    any
	Operator string `validate:"required,oneof=eq like in less_eq greater_eq"`
	Table    string
}

func (f *Filter) column() string {
	if f.Table == "" {
		return f.Field
	}

	return f.Table + "." + f.Field
}

func (f *Filter) argKey() string {
	if f.ArgName == "" {
		return f.Field
	}

	return f.ArgName
}

func (f *Filter) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	column := f.column()
	key := f.argKey()

	switch f.Operator {
	case FilterOperatorEq:
		args[key] = f.Value

		return fmt.Sprintf("%s = :%s", column, key), args
	case FilterOperatorLike:
		args[key] = fmt.Sprintf("%%%s%%", f.Value)

		return fmt.Sprintf("LOWER(%s) LIKE LOWER(:%s) ", column, key), args
	case FilterOperatorLessEq:
		args[key] = f.Value

		return fmt.Sprintf("%s <= :%s", column, key), args
	case FilterOperatorGreaterEq:
		args[key] = f.Value

		return fmt.Sprintf("%s >= :%s", column, key), args
	case FilterOperatorIn:
		return f.inClause(column, key, args)
	default:
		return "", args
	}
}

// inClause expands slice values into one named parameter per element.
func (f *Filter) inClause(column, key string, args map[string]any) (string, map[string]any) {
	val := reflect.ValueOf(f.Value)

	switch val.Type().Kind() {
	case reflect.Array, reflect.Slice:
		named := make([]string, val.Len())

		for idx := range val.Len() {
			elemKey := fmt.Sprintf("%s_%d", key, idx)
			args[elemKey] = val.Index(idx).Interface()
			named[idx] = ":" + elemKey
		}

		return fmt.Sprintf("%s IN (%s) ", column, strings.Join(named, ", ")), args
	default:
		return fmt.Sprintf("%s IN (%s) ", column, f.Value), args
	}
}

// FilterGroup combines filters and nested groups with a single boolean
// operator.
type FilterGroup struct {
	Filters  []any
	Operator string
}

func (f *FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	clauses := []string{}

	for _, filter := range f.Filters {
		var where string

		var arg map[string]any

		switch fill := filter.(type) {
		case Filter:
			where, arg = fill.GetWhereClause()
		case FilterGroup:
			where, arg = fill.GetWhereClause()
		default:
			continue
		}

		clauses = append(clauses, where)
		maps.Copy(args, arg)
	}

	if len(clauses) == 0 {
		return "", args
	}

	return fmt.Sprintf("(%s)", strings.Join(clauses, " "+f.Operator+" ")), args
}
