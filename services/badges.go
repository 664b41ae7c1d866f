package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"learnhub/models"
)

// badgeCatalog is the static badge catalog. Streak and referral badges are
// display-only: progress is estimated for them but EvaluateBadges never
// unlocks them.
var badgeCatalog = []models.BadgeDef{
	{
		ID:          "night_owl",
		Name:        "Night Owl",
		Icon:        "🦉",
		Description: "Stay active between 10 PM and 4 AM",
		XPBonus:     50,
		Rarity:      models.RarityRare,
		Category:    models.CategoryTime,
	},
	{
		ID:          "topic_starter",
		Name:        "Topic Starter",
		Icon:        "📝",
		Description: "Start 3 forum topics",
		XPBonus:     100,
		Rarity:      models.RarityCommon,
		Category:    models.CategoryPost,
		Goal:        3,
	},
	{
		ID:          "helpful_hand",
		Name:        "Helpful Hand",
		Icon:        "🤝",
		Description: "Collect 10 likes across your forum topics",
		XPBonus:     150,
		Rarity:      models.RarityRare,
		Category:    models.CategoryLike,
		Goal:        10,
	},
	{
		ID:          "week_warrior",
		Name:        "Week Warrior",
		Icon:        "🔥",
		Description: "Log in 7 days in a row",
		XPBonus:     100,
		Rarity:      models.RarityEpic,
		Category:    models.CategoryStreak,
		Goal:        7,
	},
	{
		ID:          "month_master",
		Name:        "Month Master",
		Icon:        "🏆",
		Description: "Log in 30 days in a row",
		XPBonus:     500,
		Rarity:      models.RarityLegendary,
		Category:    models.CategoryStreak,
		Goal:        30,
	},
	{
		ID:          "friend_bringer",
		Name:        "Friend Bringer",
		Icon:        "💌",
		Description: "Invite a friend with your referral code",
		XPBonus:     200,
		Rarity:      models.RarityEpic,
		Category:    models.CategoryReferral,
		Goal:        1,
	},
}

// BadgeCatalog returns the static catalog for display.
func BadgeCatalog() []models.BadgeDef {
	return badgeCatalog
}

// FindBadge looks a badge up by id. It returns nil for unknown ids.
func FindBadge(badgeID string) *models.BadgeDef {
	for i := range badgeCatalog {
		if badgeCatalog[i].ID == badgeID {
			return &badgeCatalog[i]
		}
	}
	return nil
}

// EvaluateBadges checks whether any locked badge bound to the given action
// category is newly satisfied. At most one badge is unlocked per call; the
// unlock adds the bonus XP, recomputes the level and emits the
// badge-unlocked signal. A nil badge means nothing happened.
func (s *GamificationService) EvaluateBadges(ctx context.Context, userID primitive.ObjectID, category string) (*models.BadgeDef, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range badgeCatalog {
		badge := &badgeCatalog[i]
		if badge.Category != category || user.HasBadge(badge.ID) {
			continue
		}
		satisfied, err := s.predicateSatisfied(ctx, user, badge)
		if err != nil {
			return nil, err
		}
		if !satisfied {
			continue
		}
		if err := s.unlockBadge(ctx, user, badge); err != nil {
			return nil, err
		}
		return badge, nil
	}
	return nil, nil
}

func (s *GamificationService) predicateSatisfied(ctx context.Context, user *models.User, badge *models.BadgeDef) (bool, error) {
	switch badge.Category {
	case models.CategoryTime:
		hour := s.now().Hour()
		return hour >= 22 || hour < 4, nil
	case models.CategoryPost:
		topics, err := s.forum.CountTopicsByAuthor(ctx, user.ID)
		if err != nil {
			return false, err
		}
		return topics >= badge.Goal, nil
	case models.CategoryLike:
		likes, err := s.forum.TotalLikesForAuthor(ctx, user.ID)
		if err != nil {
			return false, err
		}
		return likes >= badge.Goal, nil
	}
	return false, nil
}

func (s *GamificationService) unlockBadge(ctx context.Context, user *models.User, badge *models.BadgeDef) error {
	user.Badges = append(user.Badges, badge.ID)
	user.XP += badge.XPBonus
	leveledUp := s.applyLevel(user)
	s.prependLog(user, models.ActivityLogEntry{
		Date:     s.today(),
		XPEarned: badge.XPBonus,
		Type:     models.ActivityBadge,
		Detail:   "Unlocked badge: " + badge.Name,
	})

	if err := s.users.Save(ctx, user); err != nil {
		return err
	}

	s.bus.Publish(models.GamificationEvent{
		Type:      models.EventBadgeUnlocked,
		UserID:    user.ID.Hex(),
		Badge:     badge,
		Timestamp: s.now(),
	})
	if leveledUp {
		s.notifyLevelUp(ctx, user)
	}
	s.publishUserUpdated(user)
	return nil
}

// EstimateBadgeProgress reports how close the user is to a badge as a
// percentage in [0,100]. Owned badges report 100, badges without a numeric
// predicate report a fixed placeholder, unknown ids report 0. The function
// is read-only and never mutates state.
func (s *GamificationService) EstimateBadgeProgress(ctx context.Context, user *models.User, badgeID string) int {
	badge := FindBadge(badgeID)
	if badge == nil {
		return 0
	}
	if user.HasBadge(badge.ID) {
		return 100
	}

	switch badge.Category {
	case models.CategoryPost:
		topics, err := s.forum.CountTopicsByAuthor(ctx, user.ID)
		if err != nil {
			return 0
		}
		return progressRatio(topics, badge.Goal)
	case models.CategoryLike:
		likes, err := s.forum.TotalLikesForAuthor(ctx, user.ID)
		if err != nil {
			return 0
		}
		return progressRatio(likes, badge.Goal)
	case models.CategoryStreak:
		return progressRatio(user.Streak, badge.Goal)
	case models.CategoryReferral:
		if len(user.InvitedFriends) > 0 {
			return 100
		}
		return 0
	}
	// No numeric predicate (time-of-day badges): fixed placeholder.
	return 50
}

func progressRatio(current, goal int) int {
	if goal <= 0 {
		return 0
	}
	pct := current * 100 / goal
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}
