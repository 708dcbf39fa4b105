package search

// Record is one row keyed by column name
type Record map[string]any

// Included is a related collection returned next to the main rows
type Included struct {
	Name string
	Rows []Record
}

// Result is the outcome of a search
type Result struct {
	Rows     []Record
	Total    int64
	Included []Included
}

// Include appends rows to the named collection, skipping rows already present
func (r *Result) Include(name, key string, rows []Record) {
	var target *Included
	for i := range r.Included {
		if r.Included[i].Name == name {
			target = &r.Included[i]
			break
		}
	}
	if target == nil {
		r.Included = append(r.Included, Included{Name: name, Rows: []Record{}})
		target = &r.Included[len(r.Included)-1]
	}

	seen := make(map[any]struct{}, len(target.Rows))
	for _, row := range target.Rows {
		seen[normalizeKey(row[key])] = struct{}{}
	}
	for _, row := range rows {
		id := normalizeKey(row[key])
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		target.Rows = append(target.Rows, row)
	}
}

// normalizeKey folds the integer types drivers return into one comparable value
func normalizeKey(v any) any {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int32:
		return int64(n)
	case uint:
		return int64(n)
	case uint32:
		return int64(n)
	case uint64:
		return int64(n)
	case []byte:
		return string(n)
	default:
		return v
	}
}

// KeyOf normalizes a key value read from a record
func KeyOf(v any) any {
	return normalizeKey(v)
}
