package contextx

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// UserID is the authenticated caller, taken from the token subject.
type UserID uuid.UUID

type contextKeyUserID struct{}

func (u UserID) String() string {
	return uuid.UUID(u).String()
}

func WithUserID(ctx context.Context, userID UserID) context.Context {
	return context.WithValue(ctx, contextKeyUserID{}, userID)
}

func UserIDFromContext(ctx context.Context) (UserID, error) {
	userID, ok := ctx.Value(contextKeyUserID{}).(UserID)
	if !ok {
		return UserID{}, fmt.Errorf("user id: %w", ErrNoValue)
	}

	return userID, nil
}
