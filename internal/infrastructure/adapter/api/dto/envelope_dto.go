package dto

import (
	"github.com/amirhossein-jamali/smores-api/internal/domain/search"
)

// Meta describes the page carried by an envelope
type Meta struct {
	TotalRecordCount    int64  `json:"total_record_count"`
	ReturnedRecordCount int    `json:"returned_record_count"`
	Page                int    `json:"page"`
	PerPage             int    `json:"per_page"`
	StopwatchMS         *int64 `json:"stopwatch_ms,omitempty"`
	DBQueryCount        *int64 `json:"db_query_count,omitempty"`
}

// Envelope is a response keyed by resource name plus a meta block
type Envelope map[string]any

// NewListEnvelope renders a search result under the plural resource name
func NewListEnvelope(res *search.Resource, result *search.Result, q *search.Query) Envelope {
	rows := nonNil(result.Rows)
	env := Envelope{res.Name: rows}
	addIncluded(env, result)

	page, perPage := 1, len(rows)
	if q != nil {
		page, perPage = q.Page, q.Limit
	}
	env.SetMeta(Meta{
		TotalRecordCount:    result.Total,
		ReturnedRecordCount: len(rows),
		Page:                page,
		PerPage:             perPage,
	})
	return env
}

// NewRecordEnvelope renders a single row under the singular resource name
func NewRecordEnvelope(res *search.Resource, result *search.Result) Envelope {
	rows := nonNil(result.Rows)
	env := Envelope{res.Singular: rows}
	addIncluded(env, result)

	env.SetMeta(Meta{
		TotalRecordCount:    int64(len(rows)),
		ReturnedRecordCount: len(rows),
		Page:                1,
		PerPage:             len(rows),
	})
	return env
}

// SetMeta replaces the meta block
func (e Envelope) SetMeta(meta Meta) {
	e["meta"] = []Meta{meta}
}

// Meta returns the meta block, if any
func (e Envelope) Meta() (Meta, bool) {
	metas, ok := e["meta"].([]Meta)
	if !ok || len(metas) == 0 {
		return Meta{}, false
	}
	return metas[0], true
}

func addIncluded(env Envelope, result *search.Result) {
	for _, inc := range result.Included {
		if _, taken := env[inc.Name]; taken {
			continue
		}
		env[inc.Name] = nonNil(inc.Rows)
	}
}

func nonNil(rows []search.Record) []search.Record {
	if rows == nil {
		return []search.Record{}
	}
	return rows
}
