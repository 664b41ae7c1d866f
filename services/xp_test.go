package services

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"learnhub/events"
	"learnhub/models"
	"learnhub/store"
)

// testHarness wires a service over in-memory stores with a pinned clock and
// an event recorder.
type testHarness struct {
	svc    *GamificationService
	users  *store.MemoryUserStore
	forum  *store.MemoryForumStore
	events *[]models.GamificationEvent
}

func newHarness(t *testing.T, now time.Time) *testHarness {
	t.Helper()
	users := store.NewMemoryUserStore()
	forum := store.NewMemoryForumStore()
	notifications := store.NewMemoryNotificationStore()
	bus := events.NewBus()

	var recorded []models.GamificationEvent
	bus.Subscribe(func(evt models.GamificationEvent) {
		recorded = append(recorded, evt)
	})

	svc := NewGamificationService(users, forum, notifications, bus).WithClock(func() time.Time { return now })
	return &testHarness{svc: svc, users: users, forum: forum, events: &recorded}
}

func (h *testHarness) seedUser(t *testing.T, xp, level, streak int, lastLogin string) *models.User {
	t.Helper()
	user := &models.User{
		ID:            primitive.NewObjectID(),
		Email:         "learner@example.com",
		DisplayName:   "Learner",
		XP:            xp,
		Level:         level,
		Streak:        streak,
		LastLoginDate: lastLogin,
		Badges:        []string{},
		ReferralCode:  "LEAR0001",
	}
	if err := h.users.Save(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func (h *testHarness) eventTypes() []string {
	var types []string
	for _, evt := range *h.events {
		types = append(types, evt.Type)
	}
	return types
}

func noon() time.Time {
	return time.Date(2024, 6, 10, 12, 0, 0, 0, time.Local)
}

func TestGrantXPAddsAmountAndLogs(t *testing.T) {
	h := newHarness(t, noon())
	user := h.seedUser(t, 0, 1, 1, "2024-06-10")

	updated, err := h.svc.GrantXP(context.Background(), user.ID, 50, "Completed lesson: Intro to Go")
	if err != nil {
		t.Fatalf("GrantXP: %v", err)
	}
	if updated.XP != 50 {
		t.Errorf("xp = %d, want 50", updated.XP)
	}
	if updated.Level != 1 {
		t.Errorf("level = %d, want 1 (50 XP stays clamped at level 1)", updated.Level)
	}
	if len(updated.ActivityLogs) != 1 {
		t.Fatalf("expected 1 activity log entry, got %d", len(updated.ActivityLogs))
	}
	entry := updated.ActivityLogs[0]
	if entry.Type != models.ActivityLesson || entry.XPEarned != 50 || entry.Date != "2024-06-10" {
		t.Errorf("unexpected log entry: %+v", entry)
	}

	// No level-up signal when level stays 1.
	for _, evt := range *h.events {
		if evt.Type == models.EventLevelUp {
			t.Error("unexpected level_up event for xp=50")
		}
	}
}

func TestGrantXPEmitsLevelUpAtBoundary(t *testing.T) {
	h := newHarness(t, noon())
	user := h.seedUser(t, 9900, 9, 1, "2024-06-10")

	updated, err := h.svc.GrantXP(context.Background(), user.ID, 200, "Completed lesson: Channels")
	if err != nil {
		t.Fatalf("GrantXP: %v", err)
	}
	if updated.XP != 10100 {
		t.Errorf("xp = %d, want 10100", updated.XP)
	}
	if updated.Level != 10 {
		t.Errorf("level = %d, want 10", updated.Level)
	}

	sawLevelUp := false
	for _, evt := range *h.events {
		if evt.Type == models.EventLevelUp {
			sawLevelUp = true
			if evt.Level != 10 {
				t.Errorf("level_up carried %d, want 10", evt.Level)
			}
		}
	}
	if !sawLevelUp {
		t.Error("expected level_up event")
	}
}

func TestGrantXPNonPositiveIsNoOp(t *testing.T) {
	h := newHarness(t, noon())
	user := h.seedUser(t, 300, 1, 1, "2024-06-10")

	for _, amount := range []int{0, -10} {
		updated, err := h.svc.GrantXP(context.Background(), user.ID, amount, "bogus")
		if err != nil {
			t.Fatalf("GrantXP(%d): %v", amount, err)
		}
		if updated.XP != 300 {
			t.Errorf("GrantXP(%d) changed xp to %d", amount, updated.XP)
		}
		if len(updated.ActivityLogs) != 0 {
			t.Errorf("GrantXP(%d) appended a log entry", amount)
		}
	}
	if len(*h.events) != 0 {
		t.Errorf("no-op grants published %d events", len(*h.events))
	}
}

func TestGrantXPRereadsPersistedState(t *testing.T) {
	h := newHarness(t, noon())
	user := h.seedUser(t, 0, 1, 1, "2024-06-10")

	// Two sequential grants must both be observed; the second read sees the
	// first write.
	if _, err := h.svc.GrantXP(context.Background(), user.ID, 30, "first"); err != nil {
		t.Fatal(err)
	}
	updated, err := h.svc.GrantXP(context.Background(), user.ID, 20, "second")
	if err != nil {
		t.Fatal(err)
	}
	if updated.XP != 50 {
		t.Errorf("xp = %d, want 50 after sequential grants", updated.XP)
	}
	if len(updated.ActivityLogs) != 2 || updated.ActivityLogs[0].Detail != "second" {
		t.Errorf("activity log not newest-first: %+v", updated.ActivityLogs)
	}
}

func TestEquipBadgeRequiresOwnership(t *testing.T) {
	h := newHarness(t, noon())
	user := h.seedUser(t, 0, 1, 1, "2024-06-10")

	if _, err := h.svc.EquipBadge(context.Background(), user.ID, "night_owl"); err == nil {
		t.Error("equipping an unowned badge should fail")
	}

	user.Badges = []string{"night_owl"}
	if err := h.users.Save(context.Background(), user); err != nil {
		t.Fatal(err)
	}
	updated, err := h.svc.EquipBadge(context.Background(), user.ID, "night_owl")
	if err != nil {
		t.Fatalf("EquipBadge: %v", err)
	}
	if updated.EquippedBadge != "night_owl" {
		t.Errorf("equippedBadge = %q, want night_owl", updated.EquippedBadge)
	}
}
