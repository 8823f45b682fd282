// Package enrich attaches human-readable user names to records that store
// only a foreign identifier. Lookups are best effort: a missing user never
// fails the parent read, it degrades to a placeholder.
package enrich

import (
	"context"

	"p2pshare/internal/domain"
)

// UserPlaceholder is substituted when the referenced user cannot be found.
const UserPlaceholder = "Utilisateur"

type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

func DisplayName(ctx context.Context, users UserReader, id int64) string {
	u, err := users.GetByID(ctx, id)
	if err != nil || u == nil {
		return UserPlaceholder
	}
	return u.DisplayName()
}
