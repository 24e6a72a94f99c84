package listing

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownOrderColumn = errors.New("unknown order column")
	ErrInvalidOrder       = errors.New("invalid order")
)

// DefaultOrder is used when the client sends no order parameter.
const DefaultOrder = "id.asc"

// Order is a resolved "<column>.<asc|desc>" pair. Column is the SQL column.
type Order struct {
	Column string
	Desc   bool
}

func (o Order) Direction() string {
	if o.Desc {
		return "DESC"
	}
	return "ASC"
}

// ParseOrder resolves raw against the allow-list of the entity.
func ParseOrder(raw string, allowed map[string]string) (Order, error) {
	if strings.TrimSpace(raw) == "" {
		raw = DefaultOrder
	}
	name, dir, ok := strings.Cut(raw, ".")
	if !ok {
		return Order{}, fmt.Errorf("%w: %q, want <column>.<asc|desc>", ErrInvalidOrder, raw)
	}
	col, found := allowed[name]
	if !found {
		return Order{}, fmt.Errorf("%w: %q", ErrUnknownOrderColumn, name)
	}
	switch strings.ToLower(dir) {
	case "asc":
		return Order{Column: col}, nil
	case "desc":
		return Order{Column: col, Desc: true}, nil
	default:
		return Order{}, fmt.Errorf("%w: direction %q, want asc or desc", ErrInvalidOrder, dir)
	}
}
