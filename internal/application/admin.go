package application

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/sportsconnect/sportsconnect-api/internal/domain/listing"
	repo "github.com/sportsconnect/sportsconnect-api/internal/domain/repository"
)

// deleteEach deletes ids in order. The first missing id stops the loop with
// NotFound; rows deleted before it stay deleted.
func deleteEach[K comparable](ctx context.Context, ids []K, what string, del func(context.Context, K) error) error {
	for _, id := range ids {
		if err := del(ctx, id); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return NewError(KindNotFound, fmt.Sprintf("%s with id: %v does not exist", what, id))
			}
			return err
		}
	}
	return nil
}

func requireFilter(f listing.Filter) error {
	if f.IsNone() {
		return NewError(KindBadRequest, "an id filter (eq. or in.) is required")
	}
	return nil
}

// filterInt64s converts every id of f up front, so a malformed id rejects
// the request before anything is deleted.
func filterInt64s(f listing.Filter) ([]int64, error) {
	if err := requireFilter(f); err != nil {
		return nil, err
	}
	ids, err := listing.Int64s(f.Values)
	if err != nil {
		return nil, NewError(KindBadRequest, err.Error())
	}
	return ids, nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, NewError(KindBadRequest, fmt.Sprintf("invalid id %q", raw))
	}
	return id, nil
}

// orNotFound converts a repository miss into the caller-facing NotFound.
func orNotFound(err error, what string) error {
	if errors.Is(err, repo.ErrNotFound) {
		return notFound(what)
	}
	return err
}

// badList wraps list parameter failures produced by the SQL layer.
func badList(err error) error {
	if errors.Is(err, listing.ErrInvalidFilter) {
		return WrapError(KindBadRequest, "invalid list parameters", err)
	}
	return err
}
