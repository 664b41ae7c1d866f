package services

import (
	"time"

	"learnhub/events"
	"learnhub/store"
)

// GamificationService owns every mutation of the gamification state: XP
// grants, badge unlocks, streak processing and referral registration. Each
// operation re-reads the user from the directory immediately before
// mutating it, so back-to-back calls never clobber each other's writes.
type GamificationService struct {
	users         store.UserRepository
	forum         store.ForumRepository
	notifications store.NotificationRepository
	bus           *events.Bus
	now           func() time.Time
}

func NewGamificationService(users store.UserRepository, forum store.ForumRepository, notifications store.NotificationRepository, bus *events.Bus) *GamificationService {
	return &GamificationService{
		users:         users,
		forum:         forum,
		notifications: notifications,
		bus:           bus,
		now:           time.Now,
	}
}

// WithClock overrides the service clock. Tests use it to pin the local hour
// and calendar date.
func (s *GamificationService) WithClock(now func() time.Time) *GamificationService {
	s.now = now
	return s
}

var gamificationService *GamificationService

// InitGamificationService wires the process-wide service instance.
func InitGamificationService(users store.UserRepository, forum store.ForumRepository, notifications store.NotificationRepository, bus *events.Bus) {
	gamificationService = NewGamificationService(users, forum, notifications, bus)
}

// GetGamificationService returns the process-wide service instance.
func GetGamificationService() *GamificationService {
	return gamificationService
}

// today returns the current local calendar date as YYYY-MM-DD.
func (s *GamificationService) today() string {
	return s.now().Format("2006-01-02")
}
