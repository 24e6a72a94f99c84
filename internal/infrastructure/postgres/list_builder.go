package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/sportsconnect/sportsconnect-api/internal/domain/listing"
)

// builtList holds the two statements of a list request. countSQL is run with
// countArgs and listSQL with listArgs; both share the same WHERE clause.
type builtList struct {
	countSQL  string
	countArgs []any
	listSQL   string
	listArgs  []any
}

// buildList translates list params into a filtered count and a filtered,
// ordered, paginated select. Identifiers come from the static spec only.
func buildList(spec listing.Spec, p listing.Params) (builtList, error) {
	var (
		conds []string
		args  []any
	)
	if !p.Filter.IsNone() {
		ids, err := bindIDs(spec.IDKind, p.Filter.Values)
		if err != nil {
			return builtList{}, err
		}
		args = append(args, ids)
		conds = append(conds, fmt.Sprintf("%s = ANY($%d)", spec.IDColumn, len(args)))
	}
	if p.Search != "" && len(spec.SearchColumns) > 0 {
		args = append(args, p.Search)
		ors := make([]string, len(spec.SearchColumns))
		for i, col := range spec.SearchColumns {
			ors[i] = fmt.Sprintf("strpos(%s, $%d) > 0", col, len(args))
		}
		conds = append(conds, "("+strings.Join(ors, " OR ")+")")
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	orderCol := p.Order.Column
	if orderCol == "" {
		orderCol = spec.IDColumn
	}
	orderBy := fmt.Sprintf(" ORDER BY %s %s", orderCol, p.Order.Direction())
	if orderCol != spec.IDColumn {
		orderBy += ", " + spec.IDColumn + " ASC"
	}

	listArgs := make([]any, len(args), len(args)+2)
	copy(listArgs, args)
	listArgs = append(listArgs, p.Offset)
	page := fmt.Sprintf(" OFFSET $%d", len(listArgs))
	if p.Limit != listing.Unlimited {
		listArgs = append(listArgs, p.Limit)
		page += fmt.Sprintf(" LIMIT $%d", len(listArgs))
	}

	return builtList{
		countSQL:  "SELECT COUNT(*) FROM " + spec.Table + where,
		countArgs: args,
		listSQL:   "SELECT " + strings.Join(spec.Columns, ", ") + " FROM " + spec.Table + where + orderBy + page,
		listArgs:  listArgs,
	}, nil
}

func bindIDs(kind listing.IDKind, values []string) (any, error) {
	if kind == listing.IDText {
		return values, nil
	}
	return listing.Int64s(values)
}

// runList executes a built list: the total is counted before paging.
func runList[T any](ctx context.Context, db DBTX, spec listing.Spec, p listing.Params, scan func(pgx.Row) (T, error)) (listing.Page[T], error) {
	q, err := buildList(spec, p)
	if err != nil {
		return listing.Page[T]{}, err
	}
	var total int
	if err := db.QueryRow(ctx, q.countSQL, q.countArgs...).Scan(&total); err != nil {
		return listing.Page[T]{}, fmt.Errorf("count %s: %w", spec.Table, err)
	}
	rows, err := db.Query(ctx, q.listSQL, q.listArgs...)
	if err != nil {
		return listing.Page[T]{}, fmt.Errorf("list %s: %w", spec.Table, err)
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		it, err := scan(rows)
		if err != nil {
			return listing.Page[T]{}, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return listing.Page[T]{}, err
	}
	return listing.Page[T]{Items: items, Total: total}, nil
}
