package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

type contextKey string

const operatorIDKey contextKey = "operator_id"

// ErrOperatorNotFound is returned when the request carries no authenticated
// operator.
var ErrOperatorNotFound = errors.New("operator_id not found in context")

// OperatorIDFromCtx returns the authenticated operator of the request.
func OperatorIDFromCtx(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctx.Value(operatorIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, ErrOperatorNotFound
	}
	return id, nil
}

// WithOperatorID attaches the authenticated operator to ctx.
func WithOperatorID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, operatorIDKey, id)
}
