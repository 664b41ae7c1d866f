package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the aggregate root of the gamification state. Level is always
// derived from XP via the leveling package, never set independently.
type User struct {
	ID             primitive.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	Email          string               `bson:"email" json:"email"`
	DisplayName    string               `bson:"displayName" json:"displayName"`
	PasswordHash   string               `bson:"passwordHash" json:"-"`
	AvatarURL      string               `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	XP             int                  `bson:"xp" json:"xp"`
	Level          int                  `bson:"level" json:"level"`
	Streak         int                  `bson:"streak" json:"streak"`
	LastLoginDate  string               `bson:"lastLoginDate" json:"lastLoginDate"` // YYYY-MM-DD, local
	Badges         []string             `bson:"badges" json:"badges"`
	EquippedBadge  string               `bson:"equippedBadge,omitempty" json:"equippedBadge,omitempty"`
	ActivityLogs   []ActivityLogEntry   `bson:"activityLogs" json:"activityLogs"` // newest first
	ReferralCode   string               `bson:"referralCode" json:"referralCode"`
	ReferredBy     primitive.ObjectID   `bson:"referredBy,omitempty" json:"referredBy,omitempty"`
	InvitedFriends []primitive.ObjectID `bson:"invitedFriends,omitempty" json:"invitedFriends,omitempty"`
	CreatedAt      time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// HasBadge reports whether the user already owns the given badge.
func (u *User) HasBadge(badgeID string) bool {
	for _, b := range u.Badges {
		if b == badgeID {
			return true
		}
	}
	return false
}
