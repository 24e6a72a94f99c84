// Package listing parses the query parameters shared by every admin list
// endpoint: the id selector, search term, ordering and pagination.
package listing

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// NoID is the id selector value meaning "list mode".
const NoID = "-1"

var ErrInvalidFilter = errors.New("invalid id filter")

// FilterKind tags the variant held by a Filter.
type FilterKind int

const (
	FilterNone FilterKind = iota
	FilterEquals
	FilterIn
)

// Filter is a parsed id selector: None, Equals(value) or In(values).
type Filter struct {
	Kind   FilterKind
	Values []string
}

func None() Filter               { return Filter{Kind: FilterNone} }
func Equals(v string) Filter     { return Filter{Kind: FilterEquals, Values: []string{v}} }
func In(values ...string) Filter { return Filter{Kind: FilterIn, Values: values} }

func (f Filter) IsNone() bool   { return f.Kind == FilterNone }
func (f Filter) IsSingle() bool { return f.Kind == FilterEquals }

// Value returns the id of an Equals filter.
func (f Filter) Value() string {
	if len(f.Values) == 0 {
		return ""
	}
	return f.Values[0]
}

// ParseFilter decodes "-1", "eq.<id>" and "in.(<id1>,<id2>,...)".
func ParseFilter(raw string) (Filter, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == NoID {
		return None(), nil
	}
	op, val, ok := strings.Cut(raw, ".")
	if !ok {
		return Filter{}, fmt.Errorf("%w: %q has no operator", ErrInvalidFilter, raw)
	}
	switch op {
	case "eq":
		val = strings.TrimSpace(val)
		if val == "" {
			return Filter{}, fmt.Errorf("%w: empty id", ErrInvalidFilter)
		}
		return Equals(val), nil
	case "in":
		if !strings.HasPrefix(val, "(") || !strings.HasSuffix(val, ")") {
			return Filter{}, fmt.Errorf("%w: in list must be wrapped in parentheses", ErrInvalidFilter)
		}
		inner := val[1 : len(val)-1]
		parts := strings.Split(inner, ",")
		values := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p == "" {
				return Filter{}, fmt.Errorf("%w: empty id in list", ErrInvalidFilter)
			}
			values = append(values, p)
		}
		return In(values...), nil
	default:
		return Filter{}, fmt.Errorf("%w: unsupported operator %q", ErrInvalidFilter, op)
	}
}

// SearchValue returns the value half of a "<operator>.<value>" search term.
// A term without an operator is used as is.
func SearchValue(q string) string {
	if _, val, ok := strings.Cut(q, "."); ok {
		return val
	}
	return q
}

// Int64s parses numeric ids of bigint keyed tables.
func Int64s(values []string) ([]int64, error) {
	ids := make([]int64, 0, len(values))
	for _, v := range values {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: id %q is not a number", ErrInvalidFilter, v)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
