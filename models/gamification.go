package models

import "time"

// ActivityType tags an activity log entry. The tag is informational and
// never branches engine behavior.
type ActivityType string

const (
	ActivityLogin    ActivityType = "login"
	ActivityLesson   ActivityType = "lesson"
	ActivityQuiz     ActivityType = "quiz"
	ActivityBadge    ActivityType = "badge"
	ActivityReferral ActivityType = "referral"
)

// ActivityLogEntry is an append-only record of an XP-affecting event.
// Entries are immutable once prepended to the user's log.
type ActivityLogEntry struct {
	Date     string       `bson:"date" json:"date"` // YYYY-MM-DD
	XPEarned int          `bson:"xpEarned" json:"xpEarned"`
	Type     ActivityType `bson:"type" json:"type"`
	Detail   string       `bson:"detail" json:"detail"`
}

// BadgeRarity is used only for display styling.
type BadgeRarity string

const (
	RarityCommon    BadgeRarity = "common"
	RarityRare      BadgeRarity = "rare"
	RarityEpic      BadgeRarity = "epic"
	RarityLegendary BadgeRarity = "legendary"
)

// Badge action categories. EvaluateBadges only considers badges whose
// category matches the triggering action.
const (
	CategoryPost    = "post"
	CategoryComment = "comment"
	CategoryTime    = "time"
	CategoryLike    = "like"

	// Display-only categories: progress is estimated for these badges but
	// they are never unlocked through EvaluateBadges.
	CategoryStreak   = "streak"
	CategoryReferral = "referral"
)

// BadgeDef describes a badge in the static catalog. The catalog is never
// mutated at runtime.
type BadgeDef struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Icon        string      `json:"icon"`
	Description string      `json:"description"`
	XPBonus     int         `json:"xpBonus"`
	Rarity      BadgeRarity `json:"rarity"`
	Category    string      `json:"category"`
	Goal        int         `json:"goal,omitempty"` // target count for numeric predicates
}

// Gamification event types relayed to the UI shell.
const (
	EventBadgeUnlocked = "badge_unlocked"
	EventLevelUp       = "level_up"
	EventUserUpdated   = "user_updated"
)

// GamificationEvent is published on the in-process bus and broadcast to
// connected WebSocket clients.
type GamificationEvent struct {
	Type      string    `json:"type"`
	UserID    string    `json:"userId"`
	Badge     *BadgeDef `json:"badge,omitempty"`
	Level     int       `json:"level,omitempty"`
	User      *User     `json:"user,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
