// Package store is the progress-ledger persistence layer. The engines treat
// the user directory as the single source of truth and always re-read a
// record immediately before mutating it; these interfaces make that contract
// substitutable with an in-memory fake for tests.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"learnhub/models"
)

// ErrNotFound is returned when a record is absent. Callers in the core treat
// absence as a soft condition, never a fatal error.
var ErrNotFound = errors.New("store: not found")

// UserRepository is the canonical user directory, keyed by id. There is no
// separate "session user" copy; the session references a directory entry by
// id, so the two can never diverge.
type UserRepository interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetByReferralCode matches codes as case-insensitive tokens.
	GetByReferralCode(ctx context.Context, code string) (*models.User, error)
	Save(ctx context.Context, user *models.User) error
	// TopByXP returns up to limit users ordered by XP descending.
	TopByXP(ctx context.Context, limit int64) ([]models.User, error)
}

// ForumRepository exposes the aggregate counts the badge predicates read.
type ForumRepository interface {
	CountTopicsByAuthor(ctx context.Context, authorID primitive.ObjectID) (int, error)
	TotalLikesForAuthor(ctx context.Context, authorID primitive.ObjectID) (int, error)
}

// NotificationRepository stores tray notifications such as "Level Up".
type NotificationRepository interface {
	Add(ctx context.Context, n *models.Notification) error
	ListForUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.Notification, error)
}
