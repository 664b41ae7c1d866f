package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"learnhub/leveling"
	"learnhub/models"
)

// GrantXP adds lesson XP to the user, recomputes the level, prepends an
// activity-log entry and emits the user-updated (and possibly level-up)
// signals. XP never decreases through this path: a non-positive amount is a
// no-op that returns the user unchanged.
func (s *GamificationService) GrantXP(ctx context.Context, userID primitive.ObjectID, amount int, reason string) (*models.User, error) {
	return s.grantXP(ctx, userID, amount, reason, models.ActivityLesson)
}

// GrantQuizXP is GrantXP with a quiz-typed activity entry. The type tag is
// informational only.
func (s *GamificationService) GrantQuizXP(ctx context.Context, userID primitive.ObjectID, amount int, reason string) (*models.User, error) {
	return s.grantXP(ctx, userID, amount, reason, models.ActivityQuiz)
}

func (s *GamificationService) grantXP(ctx context.Context, userID primitive.ObjectID, amount int, reason string, activity models.ActivityType) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if amount <= 0 {
		return user, nil
	}

	user.XP += amount
	leveledUp := s.applyLevel(user)
	s.prependLog(user, models.ActivityLogEntry{
		Date:     s.today(),
		XPEarned: amount,
		Type:     activity,
		Detail:   reason,
	})

	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	if leveledUp {
		s.notifyLevelUp(ctx, user)
	}
	s.publishUserUpdated(user)
	return user, nil
}

// applyLevel recomputes the derived level from XP. It returns true when the
// level increased.
func (s *GamificationService) applyLevel(user *models.User) bool {
	newLevel := leveling.LevelForXP(user.XP)
	if newLevel > user.Level {
		user.Level = newLevel
		return true
	}
	user.Level = newLevel
	return false
}

// notifyLevelUp appends the "Level Up" tray notification and emits the
// level-up signal. Every XP-increasing path goes through this, including
// badge bonuses and daily-login rewards.
func (s *GamificationService) notifyLevelUp(ctx context.Context, user *models.User) {
	_ = s.notifications.Add(ctx, &models.Notification{
		UserID:  user.ID,
		Title:   "Level Up",
		Message: fmt.Sprintf("You reached level %d!", user.Level),
	})
	s.bus.Publish(models.GamificationEvent{
		Type:      models.EventLevelUp,
		UserID:    user.ID.Hex(),
		Level:     user.Level,
		Timestamp: s.now(),
	})
}

func (s *GamificationService) publishUserUpdated(user *models.User) {
	s.bus.Publish(models.GamificationEvent{
		Type:      models.EventUserUpdated,
		UserID:    user.ID.Hex(),
		User:      user,
		Timestamp: s.now(),
	})
}

// prependLog inserts the entry at the head of the activity log; the log is
// ordered newest-first and unbounded.
func (s *GamificationService) prependLog(user *models.User, entry models.ActivityLogEntry) {
	user.ActivityLogs = append([]models.ActivityLogEntry{entry}, user.ActivityLogs...)
}

// GetUser reads a user from the directory.
func (s *GamificationService) GetUser(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	return s.users.GetByID(ctx, userID)
}

// GetUserByEmail reads a user from the directory by email.
func (s *GamificationService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.users.GetByEmail(ctx, email)
}

// Leaderboard returns the top users ordered by XP.
func (s *GamificationService) Leaderboard(ctx context.Context, limit int64) ([]models.User, error) {
	return s.users.TopByXP(ctx, limit)
}

// Notifications lists the newest tray notifications for a user.
func (s *GamificationService) Notifications(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.Notification, error) {
	return s.notifications.ListForUser(ctx, userID, limit)
}

// EquipBadge sets the user's displayed badge. The badge must already be
// unlocked.
func (s *GamificationService) EquipBadge(ctx context.Context, userID primitive.ObjectID, badgeID string) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if badgeID != "" && !user.HasBadge(badgeID) {
		return nil, fmt.Errorf("badge %q is not unlocked", badgeID)
	}
	user.EquippedBadge = badgeID
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	s.publishUserUpdated(user)
	return user, nil
}
