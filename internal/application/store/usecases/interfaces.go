package usecases

import "context"

// CategoryChecker reports which of the given category ids do not exist.
type CategoryChecker interface {
	MissingIDs(ctx context.Context, ids []uint) ([]uint, error)
}
