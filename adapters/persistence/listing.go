package persistence

import (
	"context"
	"sort"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/portfolio-api/internal/domain/listing"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

// tableSpec maps the API field names of one collection onto SQL.
type tableSpec struct {
	resource string
	from     string
	columns  []string
	search   []string
	// filters and orderings map API field names to qualified columns.
	filters   map[string]string
	orderings map[string]string
	// defaultOrder is used when the query asks for no ordering.
	defaultOrder []string
	idColumn     string
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// searchTerms splits on whitespace and commas, the same way the search box does.
func searchTerms(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

func (t tableSpec) where(q listing.Query) sq.And {
	where := sq.And{}

	fields := make([]string, 0, len(q.Filters))
	for f := range q.Filters {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		col, ok := t.filters[f]
		if !ok {
			continue
		}
		v := q.Filters[f]
		if id, isID := v.(uuid.UUID); isID {
			v = id.String()
		}
		where = append(where, sq.Eq{col: v})
	}

	for _, term := range searchTerms(q.Search) {
		pattern := "%" + likeEscaper.Replace(term) + "%"
		anyColumn := sq.Or{}
		for _, col := range t.search {
			anyColumn = append(anyColumn, sq.ILike{col: pattern})
		}
		where = append(where, anyColumn)
	}
	return where
}

func (t tableSpec) orderBy(q listing.Query) []string {
	var terms []string
	for _, o := range q.Ordering {
		col, ok := t.orderings[o.Field]
		if !ok {
			continue
		}
		if o.Desc {
			terms = append(terms, col+" DESC")
		} else {
			terms = append(terms, col+" ASC")
		}
	}
	if len(terms) == 0 {
		terms = append(terms, t.defaultOrder...)
	}
	return append(terms, t.idColumn+" ASC")
}

func (t tableSpec) selectAll() sq.SelectBuilder {
	return psql.Select(t.columns...).From(t.from)
}

// list runs the count and page queries for q and scans every row with scan.
func list[T any](ctx context.Context, db *pgxpool.Pool, t tableSpec, q listing.Query, scan func(pgx.Row) (*T, error)) ([]*T, int, error) {
	where := t.where(q)

	countSQL, countArgs, err := psql.Select("COUNT(*)").From(t.from).Where(where).ToSql()
	if err != nil {
		return nil, 0, apperror.NewInternal("failed to build "+t.resource+" count query", err)
	}
	var total int
	if err := db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, apperror.NewInternal("failed to count "+t.resource+" rows", err)
	}

	builder := t.selectAll().Where(where).OrderBy(t.orderBy(q)...)
	if q.Limit > 0 {
		builder = builder.Limit(uint64(q.Limit)).Offset(uint64(q.Offset))
	}
	listSQL, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, apperror.NewInternal("failed to build "+t.resource+" list query", err)
	}

	rows, err := db.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, 0, apperror.NewInternal("failed to query "+t.resource+" rows", err)
	}
	defer rows.Close()

	items := make([]*T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, 0, apperror.NewInternal("failed to scan "+t.resource+" row", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperror.NewInternal("error iterating "+t.resource+" rows", err)
	}
	return items, total, nil
}

// findOne selects a single row matching cond.
func findOne[T any](ctx context.Context, db *pgxpool.Pool, t tableSpec, cond sq.Sqlizer, key string, scan func(pgx.Row) (*T, error)) (*T, error) {
	query, args, err := t.selectAll().Where(cond).ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build "+t.resource+" query", err)
	}
	item, err := scan(db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, mapReadError(err, t.resource, key)
	}
	return item, nil
}

func deleteByID(ctx context.Context, db *pgxpool.Pool, table, resource string, id uuid.UUID) error {
	tag, err := db.Exec(ctx, "DELETE FROM "+table+" WHERE id = $1", id)
	if err != nil {
		return apperror.NewInternal("failed to delete "+resource, err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound(resource, id.String())
	}
	return nil
}
