package listing

import (
	"errors"
	"fmt"
)

const (
	DefaultLimit = 10
	MaxLimit     = 1000
	// Unlimited disables LIMIT; only public read-only lists accept it.
	Unlimited = -1
)

var ErrInvalidPage = errors.New("invalid pagination")

// IDKind tells the SQL layer how to bind id filter values.
type IDKind int

const (
	IDText IDKind = iota
	IDBigint
)

// Spec is the static list configuration of one entity.
type Spec struct {
	Table         string
	Columns       []string
	IDColumn      string
	IDKind        IDKind
	OrderColumns  map[string]string
	SearchColumns []string
}

// Params is a validated list request.
type Params struct {
	Filter Filter
	Limit  int
	Offset int
	Order  Order
	Search string
}

// Raw carries the list query parameters as received.
type Raw struct {
	ID     string
	Limit  int
	Offset int
	Order  string
	Q      string
}

// DefaultRaw returns the defaults applied to absent parameters.
func DefaultRaw() Raw {
	return Raw{ID: NoID, Limit: DefaultLimit, Offset: 0, Order: DefaultOrder}
}

// Parse validates r against spec. allowUnlimited permits limit -1.
func Parse(r Raw, spec Spec, allowUnlimited bool) (Params, error) {
	f, err := ParseFilter(r.ID)
	if err != nil {
		return Params{}, err
	}
	if f.IsSingle() {
		return Params{Filter: f}, nil
	}
	if r.Offset < 0 {
		return Params{}, fmt.Errorf("%w: offset must be >= 0", ErrInvalidPage)
	}
	switch {
	case r.Limit == Unlimited && allowUnlimited:
	case r.Limit < 1 || r.Limit > MaxLimit:
		return Params{}, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidPage, MaxLimit)
	}
	o, err := ParseOrder(r.Order, spec.OrderColumns)
	if err != nil {
		return Params{}, err
	}
	search := ""
	if r.Q != "" {
		search = SearchValue(r.Q)
	}
	return Params{Filter: f, Limit: r.Limit, Offset: r.Offset, Order: o, Search: search}, nil
}

// Page is one page of results plus the count of all matching rows.
type Page[T any] struct {
	Items []T
	Total int
}
