package repository

import (
	"context"
	"fmt"

	errs "github.com/amirhossein-jamali/smores-api/internal/domain/error"
	"github.com/amirhossein-jamali/smores-api/internal/domain/search"
)

// include loads every relation into result
func (r *ResourceRepository) include(ctx context.Context, res *search.Resource, result *search.Result, relations []search.Relation) error {
	for _, rel := range relations {
		target, ok := r.catalog.Lookup(rel.Target)
		if !ok {
			return fmt.Errorf("%w: relation %s.%s targets unknown resource %s",
				errs.ErrInternalServer, res.Name, rel.Name, rel.Target)
		}

		var err error
		switch rel.Kind {
		case search.BelongsTo:
			err = r.includeBelongsTo(ctx, rel, target, result)
		case search.HasMany:
			err = r.includeHasMany(ctx, rel, target, result)
		case search.ManyToMany:
			err = r.includeManyToMany(ctx, rel, target, result)
		}
		if err != nil {
			r.logger.Error("Failed to eager load relation", map[string]any{
				"resource": res.Name,
				"relation": rel.Name,
				"kind":     rel.Kind.String(),
				"error":    err.Error(),
			})
			return err
		}
	}
	return nil
}

func (r *ResourceRepository) includeBelongsTo(ctx context.Context, rel search.Relation, target *search.Resource, result *search.Result) error {
	key := recordKey(target)
	ids := collectKeys(result.Rows, rel.LocalField)

	rows, err := r.selectWhereIn(ctx, target, rel.ForeignField, ids)
	if err != nil {
		return err
	}
	result.Include(rel.Name, key, rows)
	return nil
}

func (r *ResourceRepository) includeHasMany(ctx context.Context, rel search.Relation, target *search.Resource, result *search.Result) error {
	key := recordKey(target)
	ids := collectKeys(result.Rows, rel.LocalField)

	rows, err := r.selectWhereIn(ctx, target, rel.ForeignField, ids)
	if err != nil {
		return err
	}

	children := make(map[any][]any)
	for _, row := range rows {
		owner := search.KeyOf(row[rel.ForeignField])
		children[owner] = append(children[owner], row[key])
	}
	attachIDs(result.Rows, rel.LocalField, target.Singular+"_ids", children)

	result.Include(rel.Name, key, rows)
	return nil
}

func (r *ResourceRepository) includeManyToMany(ctx context.Context, rel search.Relation, target *search.Resource, result *search.Result) error {
	key := recordKey(target)
	through := rel.Through
	ids := collectKeys(result.Rows, rel.LocalField)

	var links []map[string]any
	if len(ids) > 0 {
		err := r.db.WithContext(ctx).
			Table(through.Table).
			Select([]string{quoteIdent(through.LocalKey), quoteIdent(through.ForeignKey)}).
			Where(quoteIdent(through.LocalKey)+" IN ?", ids).
			Find(&links).Error
		if err != nil {
			return MapError(err, "load "+through.Table)
		}
	}

	children := make(map[any][]any)
	var targetIDs []any
	seen := make(map[any]struct{})
	for _, link := range links {
		local := search.KeyOf(link[through.LocalKey])
		foreign := search.KeyOf(link[through.ForeignKey])
		children[local] = append(children[local], foreign)
		if _, dup := seen[foreign]; !dup {
			seen[foreign] = struct{}{}
			targetIDs = append(targetIDs, foreign)
		}
	}
	attachIDs(result.Rows, rel.LocalField, target.Singular+"_ids", children)

	rows, err := r.selectWhereIn(ctx, target, rel.ForeignField, targetIDs)
	if err != nil {
		return err
	}
	result.Include(rel.Name, key, rows)
	return nil
}

// selectWhereIn loads the target rows whose field is one of ids
func (r *ResourceRepository) selectWhereIn(ctx context.Context, target *search.Resource, field string, ids []any) ([]search.Record, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	table, f, ok := target.Column(field)
	if !ok {
		return nil, fmt.Errorf("%w: %s has no field %s", errs.ErrInternalServer, target.Name, field)
	}

	var rows []map[string]any
	err := r.scope(ctx, target).
		Select(target.SelectColumns()).
		Where(qualified(table, f.Name)+" IN ?", ids).
		Order(qualified(target.Table, target.Key) + " ASC").
		Find(&rows).Error
	if err != nil {
		return nil, MapError(err, "load "+target.Name)
	}
	return toRecords(target, rows), nil
}

// recordKey is the column identifying rows of res in responses
func recordKey(res *search.Resource) string {
	if _, _, ok := res.Column("id"); ok {
		return "id"
	}
	return res.Key
}

func collectKeys(rows []search.Record, field string) []any {
	var out []any
	seen := make(map[any]struct{})
	for _, row := range rows {
		v, ok := row[field]
		if !ok || v == nil {
			continue
		}
		k := search.KeyOf(v)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

func attachIDs(rows []search.Record, localField, name string, children map[any][]any) {
	for _, row := range rows {
		ids := children[search.KeyOf(row[localField])]
		if ids == nil {
			ids = []any{}
		}
		row[name] = ids
	}
}
