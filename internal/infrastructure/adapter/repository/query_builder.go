package repository

import (
	"fmt"
	"math"
	"sort"
	"strings"

	errs "github.com/amirhossein-jamali/smores-api/internal/domain/error"
	"github.com/amirhossein-jamali/smores-api/internal/domain/search"
)

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func qualified(table, column string) string {
	return quoteIdent(table) + "." + quoteIdent(column)
}

// buildConditions renders every filter of q as one WHERE clause with ?
// placeholders. Filters are ANDed; the alternatives inside a filter are ORed.
func buildConditions(res *search.Resource, filters []search.Condition) (string, []any, error) {
	var clauses []string
	var args []any

	for _, cond := range filters {
		clause, condArgs, err := buildCondition(res, cond)
		if err != nil {
			return "", nil, err
		}
		if clause == "" {
			continue
		}
		clauses = append(clauses, clause)
		args = append(args, condArgs...)
	}
	return strings.Join(clauses, " AND "), args, nil
}

func buildCondition(res *search.Resource, cond search.Condition) (string, []any, error) {
	var parts []string
	var args []any

	for _, name := range cond.Fields {
		table, field, ok := res.Column(name)
		if !ok {
			return "", nil, errs.NewValidationError("Invalid search parameters", errs.CodeUnknownField,
				map[string]string{name: fmt.Sprintf("%s has no field %q", res.Name, name)}).
				WithCause(errs.ErrUnknownField)
		}
		col := qualified(table, field.Name)
		for _, term := range cond.Terms {
			sql, termArgs, err := buildTerm(col, field, term)
			if err != nil {
				return "", nil, err
			}
			parts = append(parts, sql)
			args = append(args, termArgs...)
		}
	}

	switch len(parts) {
	case 0:
		return "", nil, nil
	case 1:
		return parts[0], args, nil
	default:
		return "(" + strings.Join(parts, " OR ") + ")", args, nil
	}
}

func buildTerm(col string, field search.Field, term search.Term) (string, []any, error) {
	switch term.Op {
	case search.OpNull:
		if term.Negate {
			return col + " IS NOT NULL", nil, nil
		}
		return col + " IS NULL", nil, nil
	case search.OpLike:
		op := "ILIKE"
		if term.Negate {
			op = "NOT ILIKE"
		}
		return fmt.Sprintf("CAST(%s AS TEXT) %s ?", col, op), []any{term.Value}, nil
	}

	value, err := field.Convert(term.Value)
	if err != nil {
		return "", nil, err
	}

	var op string
	switch term.Op {
	case search.OpEq:
		op = "="
		if term.Negate {
			op = "<>"
		}
	case search.OpGt:
		op = ">"
	case search.OpGte:
		op = ">="
	case search.OpLt:
		op = "<"
	case search.OpLte:
		op = "<="
	default:
		return "", nil, fmt.Errorf("%w: operator %q", errs.ErrInvalidQuery, term.Op)
	}

	sql := fmt.Sprintf("%s %s ?", col, op)
	if term.Negate && term.Op != search.OpEq {
		sql = "NOT (" + sql + ")"
	}
	return sql, []any{value}, nil
}

// buildOrder renders the ORDER BY list; rows default to ascending key order
func buildOrder(res *search.Resource, keys []search.SortKey) string {
	var parts []string
	for _, key := range keys {
		table, field, ok := res.Column(key.Field)
		if !ok {
			continue
		}
		dir := "ASC"
		if key.Desc {
			dir = "DESC"
		}
		parts = append(parts, qualified(table, field.Name)+" "+dir)
	}
	if len(parts) == 0 {
		return qualified(res.Table, res.Key) + " ASC"
	}
	return strings.Join(parts, ", ")
}

// insertStatement renders an INSERT of record into table with the columns in
// sorted order. A non-empty returning column appends RETURNING.
func insertStatement(table string, record search.Record, returning string) (string, []any) {
	cols := sortedKeys(record)

	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(quoteIdent(table))

	args := make([]any, 0, len(cols))
	if len(cols) == 0 {
		sb.WriteString(" DEFAULT VALUES")
	} else {
		quoted := make([]string, len(cols))
		marks := make([]string, len(cols))
		for i, col := range cols {
			quoted[i] = quoteIdent(col)
			marks[i] = "?"
			args = append(args, record[col])
		}
		sb.WriteString(" (" + strings.Join(quoted, ",") + ") VALUES (" + strings.Join(marks, ",") + ")")
	}

	if returning != "" {
		sb.WriteString(" RETURNING " + quoteIdent(returning))
	}
	return sb.String(), args
}

func sortedKeys(record search.Record) []string {
	keys := make([]string, 0, len(record))
	for key := range record {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// coerceRecord converts JSON decoded values into the types of their columns.
// Strings are parsed for non text columns and whole floats become integers.
func coerceRecord(fields []search.Field, record search.Record) error {
	invalid := make(map[string]string)

	for key, value := range record {
		field, ok := fieldByName(fields, key)
		if !ok || value == nil {
			continue
		}
		switch v := value.(type) {
		case string:
			if field.Type == search.TypeString {
				continue
			}
			if v == "" {
				record[key] = nil
				continue
			}
			converted, err := field.Convert(v)
			if err != nil {
				invalid[key] = fmt.Sprintf("%q is not a valid value", v)
				continue
			}
			record[key] = converted
		case float64:
			if field.Type != search.TypeInt {
				continue
			}
			if v != math.Trunc(v) {
				invalid[key] = "must be a whole number"
				continue
			}
			record[key] = int64(v)
		}
	}

	if len(invalid) > 0 {
		return errs.NewValidationError("Could not save record", errs.CodeInvalidRequest, invalid)
	}
	return nil
}

func fieldByName(fields []search.Field, name string) (search.Field, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	return search.Field{}, false
}

func hasField(fields []search.Field, name string) bool {
	_, ok := fieldByName(fields, name)
	return ok
}
