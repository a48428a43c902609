package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"xgrowth-backend/internal/database/models"
	"xgrowth-backend/internal/metrics"
	"xgrowth-backend/internal/pipeline"
	"xgrowth-backend/internal/query"

	"github.com/goccy/go-json"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrUnknownCollection is returned for collections that were never registered
var ErrUnknownCollection = errors.New("unknown collection")

type scope = func(*gorm.DB) *gorm.DB

type collection struct {
	table   string
	columns map[string]bool
	load    func(tx *gorm.DB) ([]query.Document, error)
}

func (c collection) hasColumns(fields []string) bool {
	for _, f := range fields {
		if !c.columns[f] {
			return false
		}
	}
	return true
}

// AggregateRepository runs pipelines over stored collections. The leading
// filter, sort and paging stages run in SQL when they only touch columns; the
// remaining stages run in memory, with lookups batched per stage.
type AggregateRepository struct {
	db          *gorm.DB
	collections map[string]collection
}

// Ensure AggregateRepository implements AggregateRepositoryInterface and serves lookups
var (
	_ AggregateRepositoryInterface = (*AggregateRepository)(nil)
	_ pipeline.Source              = (*AggregateRepository)(nil)
)

// NewAggregateRepository creates a pipeline executor over every document collection
func NewAggregateRepository(db *gorm.DB) (*AggregateRepository, error) {
	r := &AggregateRepository{db: db, collections: map[string]collection{}}
	regs := []error{
		register[models.Organization](r),
		register[models.OrganizationType](r),
		register[models.CompanyProfile](r),
		register[models.CompanyRelation](r),
		register[models.User](r),
		register[models.Category](r),
		register[models.LookupValue](r),
		register[models.Post](r),
		register[models.PostRating](r),
		register[models.PostPin](r),
		register[models.Brief](r),
	}
	if err := errors.Join(regs...); err != nil {
		return nil, fmt.Errorf("failed to register collections: %w", err)
	}
	return r, nil
}

// register exposes the table of model T as a collection named after the table
func register[T any](r *AggregateRepository) error {
	stmt := &gorm.Statement{DB: r.db}
	if err := stmt.Parse(new(T)); err != nil {
		return err
	}
	columns := make(map[string]bool, len(stmt.Schema.DBNames))
	for _, name := range stmt.Schema.DBNames {
		columns[name] = true
	}
	r.collections[stmt.Schema.Table] = collection{
		table:   stmt.Schema.Table,
		columns: columns,
		load: func(tx *gorm.DB) ([]query.Document, error) {
			var rows []T
			if err := tx.Find(&rows).Error; err != nil {
				return nil, err
			}
			return toDocuments(rows)
		},
	}
	return nil
}

// toDocuments converts typed rows to documents through their JSON form
func toDocuments[T any](rows []T) ([]query.Document, error) {
	raw, err := json.Marshal(rows)
	if err != nil {
		return nil, err
	}
	var docs []query.Document
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// Aggregate runs p over collection
func (r *AggregateRepository) Aggregate(ctx context.Context, name string, p pipeline.Pipeline) ([]query.Document, error) {
	start := time.Now()
	defer func() { metrics.RecordAggregation(name, time.Since(start)) }()

	if err := p.Validate(); err != nil {
		return nil, err
	}
	c, ok := r.collections[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCollection, name)
	}

	scopes, rest := pushDown(name, c, p)
	docs, err := c.load(r.db.WithContext(ctx).Scopes(scopes...))
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", name, err)
	}
	return pipeline.Run(ctx, rest, docs, r)
}

// Count counts the documents of collection matching filter
func (r *AggregateRepository) Count(ctx context.Context, name string, filter query.Expr) (int64, error) {
	c, ok := r.collections[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCollection, name)
	}
	tx := r.db.WithContext(ctx).Table(c.table)
	if filter != nil {
		if !c.hasColumns(query.Fields(filter)) {
			return 0, fmt.Errorf("%w: filter on %s", query.ErrUnsupportedField, name)
		}
		where, err := query.ToClause(filter)
		if err != nil {
			return 0, err
		}
		tx = tx.Where(where)
	}
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// Find serves pipeline lookups with one IN query
func (r *AggregateRepository) Find(ctx context.Context, name, field string, values []any) ([]query.Document, error) {
	c, ok := r.collections[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCollection, name)
	}
	if !c.columns[field] {
		return nil, fmt.Errorf("%w: %s.%s", query.ErrUnsupportedField, name, field)
	}
	return c.load(r.db.WithContext(ctx).Where(clause.IN{Column: clause.Column{Name: field}, Values: values}))
}

// pushDown splits p into SQL scopes for its leading column-only stages and
// the stages left to run in memory
func pushDown(name string, c collection, p pipeline.Pipeline) ([]scope, pipeline.Pipeline) {
	var scopes []scope
	i := 0

	for ; i < len(p); i++ {
		m, ok := p[i].(pipeline.Match)
		if !ok || !c.hasColumns(query.Fields(m.Filter)) {
			break
		}
		where, err := query.ToClause(m.Filter)
		if err != nil {
			break
		}
		scopes = append(scopes, func(tx *gorm.DB) *gorm.DB { return tx.Where(where) })
		metrics.RecordPushDown(name, m.Name())
	}

	if i < len(p) {
		if s, ok := p[i].(pipeline.Sort); ok && sortable(c, s) {
			order := make([]clause.OrderByColumn, len(s.Keys))
			for k, key := range s.Keys {
				order[k] = clause.OrderByColumn{Column: clause.Column{Name: key.Field}, Desc: key.Desc}
			}
			scopes = append(scopes, func(tx *gorm.DB) *gorm.DB {
				return tx.Order(clause.OrderBy{Columns: order})
			})
			metrics.RecordPushDown(name, s.Name())
			i++
		}
	}

	if i < len(p) {
		if s, ok := p[i].(pipeline.Skip); ok {
			scopes = append(scopes, func(tx *gorm.DB) *gorm.DB { return tx.Offset(s.N) })
			metrics.RecordPushDown(name, s.Name())
			i++
		}
	}
	if i < len(p) {
		if l, ok := p[i].(pipeline.Limit); ok {
			scopes = append(scopes, func(tx *gorm.DB) *gorm.DB { return tx.Limit(l.N) })
			metrics.RecordPushDown(name, l.Name())
			i++
		}
	}

	return scopes, p[i:]
}

// sortable reports whether SQL ordering agrees with the in-memory one.
// Collated keys compare by locale and stay in memory.
func sortable(c collection, s pipeline.Sort) bool {
	for _, k := range s.Keys {
		if k.Collated || !c.columns[k.Field] {
			return false
		}
	}
	return true
}
