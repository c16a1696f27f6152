package contextx

import (
	"context"
	"fmt"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type contextKeyUserRole struct{}

func (u UserRole) String() string {
	return string(u)
}

func WithUserRole(ctx context.Context, role UserRole) context.Context {
	return context.WithValue(ctx, contextKeyUserRole{}, role)
}

func UserRoleFromContext(ctx context.Context) (UserRole, error) {
	role, ok := ctx.Value(contextKeyUserRole{}).(UserRole)
	if !ok {
		return "", fmt.Errorf("user role: %w", ErrNoValue)
	}

	return role, nil
}
