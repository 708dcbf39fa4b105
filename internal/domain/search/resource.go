package search

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/smores-api/internal/domain/error"
)

// FieldType drives how filter values are converted before binding
type FieldType int

const (
	TypeString FieldType = iota
	TypeInt
	TypeDecimal
	TypeBool
	TypeTime
	TypeDate
)

// Field is a column exposed by a resource
type Field struct {
	Name     string
	Type     FieldType
	ReadOnly bool
	Hidden   bool
}

// ReadOnlyField marks the field as not writable by clients
func (f Field) ReadOnlyField() Field {
	f.ReadOnly = true
	return f
}

// HiddenField marks the field as never selected nor filterable
func (f Field) HiddenField() Field {
	f.Hidden = true
	return f
}

// Convert parses a filter value into the Go type bound for the column
func (f Field) Convert(value string) (any, error) {
	value = strings.TrimSpace(value)

	switch f.Type {
	case TypeInt:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, f.invalid(value, "a whole number")
		}
		return n, nil
	case TypeDecimal:
		n, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, f.invalid(value, "a number")
		}
		return n, nil
	case TypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, f.invalid(value, "true or false")
		}
		return b, nil
	case TypeTime, TypeDate:
		if t, err := time.Parse(time.RFC3339, value); err == nil {
			return t, nil
		}
		t, err := time.Parse(time.DateOnly, value)
		if err != nil {
			return nil, f.invalid(value, "a date formatted YYYY-MM-DD")
		}
		return t, nil
	default:
		return value, nil
	}
}

func (f Field) invalid(value, expected string) error {
	return errs.NewValidationError("Invalid search parameters", errs.CodeInvalidQuery, map[string]string{
		f.Name: fmt.Sprintf("%q is not %s", value, expected),
	}).WithCause(errs.ErrInvalidQuery)
}

// Field constructors used by the catalog
func String(name string) Field  { return Field{Name: name, Type: TypeString} }
func Int(name string) Field     { return Field{Name: name, Type: TypeInt} }
func Decimal(name string) Field { return Field{Name: name, Type: TypeDecimal} }
func Bool(name string) Field    { return Field{Name: name, Type: TypeBool} }
func Time(name string) Field    { return Field{Name: name, Type: TypeTime} }
func Date(name string) Field    { return Field{Name: name, Type: TypeDate} }

// RelationKind describes how two resources are linked
type RelationKind int

const (
	BelongsTo RelationKind = iota
	HasMany
	ManyToMany
)

func (k RelationKind) String() string {
	switch k {
	case BelongsTo:
		return "belongsTo"
	case HasMany:
		return "hasMany"
	case ManyToMany:
		return "manyToMany"
	default:
		return "unknown"
	}
}

// Through is the join table of a many to many relation
type Through struct {
	Table      string
	LocalKey   string
	ForeignKey string
}

// Relation is a named link to another resource, loadable with ?with=
//
// BelongsTo: LocalField holds the target's ForeignField.
// HasMany: the target's ForeignField holds this row's LocalField.
// ManyToMany: Through links LocalField to the target's ForeignField.
type Relation struct {
	Name         string
	Target       string
	Kind         RelationKind
	LocalField   string
	ForeignField string
	Through      *Through
}

// Parent is the shared row a resource extends one to one, such as the users
// row behind an attendee. Its columns are selected and searched inline.
type Parent struct {
	Table      string
	Key        string
	ForeignKey string
	Fields     []Field
}

// Resource describes a table exposed by the API
type Resource struct {
	Name       string
	Singular   string
	Table      string
	Key        string
	Parent     *Parent
	Fields     []Field
	Relations  []Relation
	AlwaysWith []string

	// EmployeesOnly limits every route of the resource to employee sessions
	EmployeesOnly bool
	// Redact, when set, rewrites each row before it leaves the repository
	Redact func(Record)
}

// Column resolves a visible field name to its owning table and column
func (r *Resource) Column(name string) (table string, field Field, ok bool) {
	if r.Parent != nil {
		for _, f := range r.Parent.Fields {
			if f.Name == name && !f.Hidden {
				return r.Parent.Table, f, true
			}
		}
	}
	for _, f := range r.Fields {
		if f.Name == name && !f.Hidden {
			return r.Table, f, true
		}
	}
	return "", Field{}, false
}

// Relation returns the named relation
func (r *Resource) Relation(name string) (Relation, bool) {
	for _, rel := range r.Relations {
		if rel.Name == name {
			return rel, true
		}
	}
	return Relation{}, false
}

// Validate checks that every name in q is declared and every value converts
func (r *Resource) Validate(q *Query) error {
	unknown := make(map[string]string)

	for _, cond := range q.Filters {
		for _, name := range cond.Fields {
			_, field, ok := r.Column(name)
			if !ok {
				unknown[name] = fmt.Sprintf("%s has no field %q", r.Name, name)
				continue
			}
			for _, term := range cond.Terms {
				if term.Op == OpNull || term.Op == OpLike {
					continue
				}
				if _, err := field.Convert(term.Value); err != nil {
					return err
				}
			}
		}
	}

	for _, key := range q.Sort {
		if _, _, ok := r.Column(key.Field); !ok {
			unknown[key.Field] = fmt.Sprintf("%s cannot be sorted by %q", r.Name, key.Field)
		}
	}

	for _, name := range q.With {
		if _, ok := r.Relation(name); !ok {
			unknown[name] = fmt.Sprintf("%s has no relation %q", r.Name, name)
		}
	}

	if len(unknown) > 0 {
		return errs.NewValidationError("Invalid search parameters", errs.CodeUnknownField, unknown).
			WithCause(errs.ErrUnknownField)
	}
	return nil
}

// Includes lists the relations to eager load for q
func (r *Resource) Includes(q *Query) []Relation {
	if q == nil {
		q = &Query{}
	}
	if q.WithAll {
		return r.Relations
	}

	var names []string
	if !q.WithNone {
		names = append(names, r.AlwaysWith...)
	}
	for _, name := range q.With {
		names = appendUnique(names, name)
	}

	out := make([]Relation, 0, len(names))
	for _, name := range names {
		if rel, ok := r.Relation(name); ok {
			out = append(out, rel)
		}
	}
	return out
}

// Sanitize keeps the keys of a client record that clients may write.
// Unknown and read-only keys are dropped.
func (r *Resource) Sanitize(record Record) Record {
	out := make(Record, len(record))
	for key, value := range record {
		if key == r.Key {
			continue
		}
		if r.Parent != nil {
			if f, ok := findField(r.Parent.Fields, key); ok {
				if !f.ReadOnly {
					out[key] = value
				}
				continue
			}
		}
		if f, ok := findField(r.Fields, key); ok && !f.ReadOnly {
			out[key] = value
		}
	}
	return out
}

// Split routes the columns of a record to the resource table and its parent
// table. Keys and unknown columns are dropped.
func (r *Resource) Split(record Record) (own Record, parent Record) {
	own = make(Record)
	parent = make(Record)

	for key, value := range record {
		if key == r.Key {
			continue
		}
		if r.Parent != nil {
			if _, ok := findField(r.Parent.Fields, key); ok {
				if key != r.Parent.Key {
					parent[key] = value
				}
				continue
			}
		}
		if _, ok := findField(r.Fields, key); ok {
			own[key] = value
		}
	}
	return own, parent
}

// Present applies the resource's redaction to a loaded row
func (r *Resource) Present(record Record) Record {
	if r.Redact != nil {
		r.Redact(record)
	}
	return record
}

// SelectColumns lists the qualified columns selected for a row
func (r *Resource) SelectColumns() []string {
	var cols []string
	if r.Parent != nil {
		for _, f := range r.Parent.Fields {
			if !f.Hidden {
				cols = append(cols, fmt.Sprintf("%q.%q", r.Parent.Table, f.Name))
			}
		}
	}
	for _, f := range r.Fields {
		if f.Hidden || (r.Parent != nil && f.Name == "id") {
			continue
		}
		cols = append(cols, fmt.Sprintf("%q.%q", r.Table, f.Name))
	}
	return cols
}

func findField(fields []Field, name string) (Field, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
