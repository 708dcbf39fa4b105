package search

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	errs "github.com/amirhossein-jamali/smores-api/internal/domain/error"
)

// Operator is the comparison applied by a filter term
type Operator string

const (
	OpEq   Operator = "eq"
	OpLike Operator = "like"
	OpGt   Operator = "gt"
	OpGte  Operator = "gte"
	OpLt   Operator = "lt"
	OpLte  Operator = "lte"
	OpNull Operator = "null"
)

// Query string keys that are not filters
const (
	ParamPage    = "page"
	ParamPerPage = "per_page"
	ParamLimit   = "limit"
	ParamOffset  = "offset"
	ParamWith    = "with"
	ParamSort    = "sort"

	// OrSeparator joins alternatives in filter keys and values
	OrSeparator = "||"

	WithAll  = "all"
	WithNone = "none"
)

// Term is one alternative of a filter value
type Term struct {
	Op     Operator
	Value  string
	Negate bool
}

// Condition matches a row when any field matches any term
type Condition struct {
	Fields []string
	Terms  []Term
}

// SortKey orders results by a field
type SortKey struct {
	Field string
	Desc  bool
}

// Limits bounds page sizes
type Limits struct {
	Default int
	Max     int
}

// DefaultLimits applies when no configuration is given
var DefaultLimits = Limits{Default: 50, Max: 500}

// Query is a parsed list request
type Query struct {
	Page     int
	Limit    int
	Offset   int
	Filters  []Condition
	Sort     []SortKey
	With     []string
	WithAll  bool
	WithNone bool
}

// Parse turns request query parameters into a Query. Field names are not
// checked here; see Resource.Validate.
func Parse(values url.Values, limits Limits) (*Query, error) {
	if limits.Default <= 0 {
		limits = DefaultLimits
	}

	q := &Query{Page: 1, Limit: limits.Default}

	page, err := intParam(values, ParamPage)
	if err != nil {
		return nil, err
	}
	if page != nil {
		if *page < 1 {
			return nil, invalidParam(ParamPage, "page must be 1 or greater")
		}
		q.Page = *page
	}

	// per_page wins over its alias when both are sent
	for _, key := range []string{ParamLimit, ParamPerPage} {
		limit, err := intParam(values, key)
		if err != nil {
			return nil, err
		}
		if limit == nil {
			continue
		}
		if *limit < 1 {
			return nil, invalidParam(key, key+" must be 1 or greater")
		}
		q.Limit = *limit
	}
	if limits.Max > 0 && q.Limit > limits.Max {
		q.Limit = limits.Max
	}

	q.Offset = (q.Page - 1) * q.Limit
	offset, err := intParam(values, ParamOffset)
	if err != nil {
		return nil, err
	}
	if offset != nil {
		if *offset < 0 {
			return nil, invalidParam(ParamOffset, "offset cannot be negative")
		}
		q.Offset = *offset
	}

	for _, name := range splitList(last(values, ParamWith)) {
		switch strings.ToLower(name) {
		case WithAll:
			q.WithAll = true
		case WithNone:
			q.WithNone = true
		default:
			q.With = appendUnique(q.With, name)
		}
	}

	for _, name := range splitList(last(values, ParamSort)) {
		key := SortKey{Field: name}
		if strings.HasPrefix(name, "-") {
			key = SortKey{Field: strings.TrimPrefix(name, "-"), Desc: true}
		}
		if key.Field == "" {
			continue
		}
		q.Sort = append(q.Sort, key)
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		if isReserved(key) {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fields := splitOr(key)
		if len(fields) == 0 {
			continue
		}
		q.Filters = append(q.Filters, Condition{
			Fields: fields,
			Terms:  parseTerms(last(values, key)),
		})
	}

	return q, nil
}

// ParseWith reads only the relation list, for single record requests
func ParseWith(values url.Values) *Query {
	q, err := Parse(url.Values{ParamWith: values[ParamWith]}, DefaultLimits)
	if err != nil {
		return &Query{Page: 1, Limit: DefaultLimits.Default}
	}
	return q
}

func parseTerms(raw string) []Term {
	parts := strings.Split(raw, OrSeparator)
	terms := make([]Term, 0, len(parts))
	for _, part := range parts {
		terms = append(terms, parseTerm(part))
	}
	return terms
}

func parseTerm(value string) Term {
	var term Term
	if strings.HasPrefix(value, "!") {
		term.Negate = true
		value = value[1:]
	}

	if strings.EqualFold(value, "null") {
		term.Op = OpNull
		return term
	}

	for _, p := range []struct {
		prefix string
		op     Operator
	}{
		{">=", OpGte},
		{"<=", OpLte},
		{">", OpGt},
		{"<", OpLt},
	} {
		if strings.HasPrefix(value, p.prefix) {
			term.Op = p.op
			term.Value = strings.TrimPrefix(value, p.prefix)
			return term
		}
	}

	if strings.Contains(value, "*") {
		term.Op = OpLike
		term.Value = LikePattern(value)
		return term
	}

	term.Op = OpEq
	term.Value = value
	return term
}

// LikePattern escapes LIKE metacharacters and turns * into %
func LikePattern(value string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`, `*`, `%`)
	return replacer.Replace(value)
}

func isReserved(key string) bool {
	switch key {
	case ParamPage, ParamPerPage, ParamLimit, ParamOffset, ParamWith, ParamSort:
		return true
	}
	// cache busters such as jQuery's "_"
	return strings.HasPrefix(key, "_")
}

func intParam(values url.Values, key string) (*int, error) {
	raw := strings.TrimSpace(last(values, key))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, invalidParam(key, fmt.Sprintf("%s must be a whole number, got %q", key, raw))
	}
	return &n, nil
}

func invalidParam(key, message string) error {
	return errs.NewValidationError("Invalid search parameters", errs.CodeInvalidQuery, map[string]string{key: message}).
		WithCause(errs.ErrInvalidQuery)
}

func last(values url.Values, key string) string {
	v := values[key]
	if len(v) == 0 {
		return ""
	}
	return v[len(v)-1]
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func splitOr(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, OrSeparator) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func appendUnique(list []string, value string) []string {
	for _, v := range list {
		if v == value {
			return list
		}
	}
	return append(list, value)
}
