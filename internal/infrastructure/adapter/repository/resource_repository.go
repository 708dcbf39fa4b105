package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/smores-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/smores-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/smores-api/internal/domain/search"
)

// ResourceRepository implements persistence.ResourceRepository for every
// resource declared in the catalog
type ResourceRepository struct {
	db           *gorm.DB
	catalog      *search.Catalog
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewResourceRepository creates a new ResourceRepository instance
func NewResourceRepository(db *gorm.DB, catalog *search.Catalog, timeProvider coreport.TimeProvider, logger coreport.Logger) *ResourceRepository {
	return &ResourceRepository{
		db:           db,
		catalog:      catalog,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// scope selects from the resource table joined with its parent table
func (r *ResourceRepository) scope(ctx context.Context, res *search.Resource) *gorm.DB {
	tx := r.db.WithContext(ctx).Table(res.Table)
	if p := res.Parent; p != nil {
		tx = tx.Joins(fmt.Sprintf("JOIN %s ON %s = %s",
			quoteIdent(p.Table), qualified(p.Table, p.Key), qualified(res.Table, p.ForeignKey)))
	}
	return tx
}

// Search returns one page of rows matching q plus the eager loaded relations
func (r *ResourceRepository) Search(ctx context.Context, res *search.Resource, q *search.Query) (*search.Result, error) {
	if q == nil {
		q = &search.Query{Page: 1, Limit: search.DefaultLimits.Default}
	}

	where, args, err := buildConditions(res, q.Filters)
	if err != nil {
		return nil, err
	}

	base := r.scope(ctx, res)
	if where != "" {
		base = base.Where(where, args...)
	}
	base = base.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, MapError(err, "count "+res.Name)
	}

	var rows []map[string]any
	query := base.Select(res.SelectColumns()).Order(buildOrder(res, q.Sort))
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}
	if q.Offset > 0 {
		query = query.Offset(q.Offset)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, MapError(err, "search "+res.Name)
	}

	result := &search.Result{Rows: toRecords(res, rows), Total: total}

	r.logger.Debug("Resource search executed", map[string]any{
		"resource": res.Name,
		"total":    total,
		"returned": len(result.Rows),
		"filters":  len(q.Filters),
	})

	if err := r.include(ctx, res, result, res.Includes(q)); err != nil {
		return nil, err
	}
	return result, nil
}

// Get returns the row with the given key and the relations requested by q
func (r *ResourceRepository) Get(ctx context.Context, res *search.Resource, id uint64, q *search.Query) (*search.Result, error) {
	var rows []map[string]any
	err := r.scope(ctx, res).
		Select(res.SelectColumns()).
		Where(qualified(res.Table, res.Key)+" = ?", id).
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return nil, MapError(err, "get "+res.Name)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s %d: %w", res.Singular, id, errs.ErrNotFound)
	}

	result := &search.Result{Rows: toRecords(res, rows), Total: 1}
	if err := r.include(ctx, res, result, res.Includes(q)); err != nil {
		return nil, err
	}
	return result, nil
}

// Create inserts the record and returns the new key. Resources with a parent
// get the parent row first and share its key.
func (r *ResourceRepository) Create(ctx context.Context, res *search.Resource, record search.Record) (uint64, error) {
	own, parent := res.Split(record)
	now := r.timeProvider.Now()
	db := r.db.WithContext(ctx)

	if err := coerceRecord(res.Fields, own); err != nil {
		return 0, err
	}
	stamp(res.Fields, own, now, true)

	if res.Parent == nil {
		return r.insertReturning(db, res.Table, res.Key, own)
	}

	if err := coerceRecord(res.Parent.Fields, parent); err != nil {
		return 0, err
	}
	stamp(res.Parent.Fields, parent, now, true)

	id, err := r.insertReturning(db, res.Parent.Table, res.Parent.Key, parent)
	if err != nil {
		return 0, err
	}

	own[res.Parent.ForeignKey] = id
	sql, args := insertStatement(res.Table, own, "")
	if err := db.Exec(sql, args...).Error; err != nil {
		return 0, MapError(err, "create "+res.Name)
	}

	r.logger.Debug("Resource created", map[string]any{
		"resource": res.Name,
		"id":       id,
	})
	return id, nil
}

func (r *ResourceRepository) insertReturning(db *gorm.DB, table, key string, record search.Record) (uint64, error) {
	sql, args := insertStatement(table, record, key)

	var id uint64
	if err := db.Raw(sql, args...).Scan(&id).Error; err != nil {
		return 0, MapError(err, "insert into "+table)
	}
	return id, nil
}

// Update changes the writable columns of record on the given row
func (r *ResourceRepository) Update(ctx context.Context, res *search.Resource, id uint64, record search.Record) error {
	own, parent := res.Split(record)
	now := r.timeProvider.Now()
	db := r.db.WithContext(ctx)

	if err := coerceRecord(res.Fields, own); err != nil {
		return err
	}
	if res.Parent != nil {
		if err := coerceRecord(res.Parent.Fields, parent); err != nil {
			return err
		}
	}

	var count int64
	if err := db.Table(res.Table).Where(qualified(res.Table, res.Key)+" = ?", id).Count(&count).Error; err != nil {
		return MapError(err, "find "+res.Name)
	}
	if count == 0 {
		return fmt.Errorf("%s %d: %w", res.Singular, id, errs.ErrNotFound)
	}

	if len(own) > 0 {
		stamp(res.Fields, own, now, false)
		err := db.Table(res.Table).Where(qualified(res.Table, res.Key)+" = ?", id).Updates(map[string]any(own)).Error
		if err != nil {
			return MapError(err, "update "+res.Name)
		}
	}

	if res.Parent != nil && len(parent) > 0 {
		stamp(res.Parent.Fields, parent, now, false)
		p := res.Parent
		err := db.Table(p.Table).Where(qualified(p.Table, p.Key)+" = ?", id).Updates(map[string]any(parent)).Error
		if err != nil {
			return MapError(err, "update "+p.Table)
		}
	}
	return nil
}

// Delete removes the row, then its parent row
func (r *ResourceRepository) Delete(ctx context.Context, res *search.Resource, id uint64) error {
	db := r.db.WithContext(ctx)

	result := db.Exec(fmt.Sprintf("DELETE FROM %s WHERE %s = ?", quoteIdent(res.Table), quoteIdent(res.Key)), id)
	if result.Error != nil {
		return MapError(result.Error, "delete "+res.Name)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%s %d: %w", res.Singular, id, errs.ErrNotFound)
	}

	if p := res.Parent; p != nil {
		err := db.Exec(fmt.Sprintf("DELETE FROM %s WHERE %s = ?", quoteIdent(p.Table), quoteIdent(p.Key)), id).Error
		if err != nil {
			return MapError(err, "delete "+p.Table)
		}
	}

	r.logger.Debug("Resource deleted", map[string]any{
		"resource": res.Name,
		"id":       id,
	})
	return nil
}

// stamp sets the timestamp columns the resource declares
func stamp(fields []search.Field, record search.Record, now time.Time, create bool) {
	if create && hasField(fields, "created_at") {
		record["created_at"] = now
	}
	if hasField(fields, "updated_at") {
		record["updated_at"] = now
	}
}

// toRecords converts scanned rows into records with JSON friendly values
func toRecords(res *search.Resource, rows []map[string]any) []search.Record {
	out := make([]search.Record, 0, len(rows))
	for _, row := range rows {
		for key, value := range row {
			if b, ok := value.([]byte); ok {
				value = string(b)
			}
			if s, ok := value.(string); ok {
				if _, field, found := res.Column(key); found && field.Type == search.TypeDecimal {
					if f, err := strconv.ParseFloat(s, 64); err == nil {
						value = f
					}
				}
			}
			row[key] = value
		}
		out = append(out, res.Present(search.Record(row)))
	}
	return out
}
