package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"learnhub/models"
)

// ProcessDailyLogin grants the daily login bonus at most once per local
// calendar day. A gap of exactly one day extends the streak, anything
// longer resets it to 1. The returned xpEarned is 0 when the login was
// already processed today.
func (s *GamificationService) ProcessDailyLogin(ctx context.Context, userID primitive.ObjectID) (*models.User, int, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	today := s.today()
	if user.LastLoginDate == today {
		return user, 0, nil
	}

	switch calendarDaysBetween(user.LastLoginDate, today) {
	case 1:
		user.Streak++
	default:
		user.Streak = 1
	}

	xpEarned := 20 + user.Streak
	user.XP += xpEarned
	user.LastLoginDate = today
	leveledUp := s.applyLevel(user)
	s.prependLog(user, models.ActivityLogEntry{
		Date:     today,
		XPEarned: xpEarned,
		Type:     models.ActivityLogin,
		Detail:   fmt.Sprintf("Daily login: 20 base + %d streak bonus", user.Streak),
	})

	if err := s.users.Save(ctx, user); err != nil {
		return nil, 0, err
	}

	if leveledUp {
		s.notifyLevelUp(ctx, user)
	}
	s.publishUserUpdated(user)
	return user, xpEarned, nil
}

// calendarDaysBetween returns the whole-day difference between two
// YYYY-MM-DD dates. A malformed or empty "from" date is treated as an
// arbitrarily old one, which resets the streak.
func calendarDaysBetween(from, to string) int {
	a, err := time.Parse("2006-01-02", from)
	if err != nil {
		return 1 << 20
	}
	b, err := time.Parse("2006-01-02", to)
	if err != nil {
		return 1 << 20
	}
	return int(b.Sub(a).Hours() / 24)
}
