package services

import (
	"context"
	"testing"

	"learnhub/models"
)

func TestDailyLoginIdempotentSameDay(t *testing.T) {
	h := newHarness(t, noon()) // 2024-06-10
	user := h.seedUser(t, 100, 1, 4, "2024-06-10")

	updated, xpEarned, err := h.svc.ProcessDailyLogin(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("ProcessDailyLogin: %v", err)
	}
	if xpEarned != 0 {
		t.Errorf("xpEarned = %d, want 0 for same-day login", xpEarned)
	}
	if updated.XP != 100 || updated.Streak != 4 {
		t.Errorf("same-day login mutated user: xp=%d streak=%d", updated.XP, updated.Streak)
	}
	if len(*h.events) != 0 {
		t.Error("same-day login published events")
	}
}

func TestDailyLoginExtendsStreakAfterOneDay(t *testing.T) {
	h := newHarness(t, noon())
	user := h.seedUser(t, 100, 1, 4, "2024-06-09")

	updated, xpEarned, err := h.svc.ProcessDailyLogin(context.Background(), user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if updated.Streak != 5 {
		t.Errorf("streak = %d, want 5", updated.Streak)
	}
	if xpEarned != 25 { // 20 base + 5 streak
		t.Errorf("xpEarned = %d, want 25", xpEarned)
	}
	if updated.XP != 125 {
		t.Errorf("xp = %d, want 125", updated.XP)
	}
	if updated.LastLoginDate != "2024-06-10" {
		t.Errorf("lastLoginDate = %s, want 2024-06-10", updated.LastLoginDate)
	}
	if updated.ActivityLogs[0].Type != models.ActivityLogin {
		t.Errorf("expected login-typed log entry, got %s", updated.ActivityLogs[0].Type)
	}
}

func TestDailyLoginResetsStreakAfterGap(t *testing.T) {
	h := newHarness(t, noon())
	user := h.seedUser(t, 100, 1, 12, "2024-06-05")

	updated, xpEarned, err := h.svc.ProcessDailyLogin(context.Background(), user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if updated.Streak != 1 {
		t.Errorf("streak = %d, want reset to 1", updated.Streak)
	}
	if xpEarned != 21 {
		t.Errorf("xpEarned = %d, want 21", xpEarned)
	}
}

func TestDailyLoginSecondCallIsNoOp(t *testing.T) {
	h := newHarness(t, noon())
	user := h.seedUser(t, 100, 1, 4, "2024-06-09")

	if _, _, err := h.svc.ProcessDailyLogin(context.Background(), user.ID); err != nil {
		t.Fatal(err)
	}
	updated, xpEarned, err := h.svc.ProcessDailyLogin(context.Background(), user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if xpEarned != 0 {
		t.Errorf("second login same day granted %d xp", xpEarned)
	}
	if updated.XP != 125 || updated.Streak != 5 {
		t.Errorf("second login mutated user: xp=%d streak=%d", updated.XP, updated.Streak)
	}
}

func TestDailyLoginEmitsLevelUpWhenCrossingBoundary(t *testing.T) {
	// 20 + streak tips the user over a level threshold; the level-up signal
	// must fire from this path too.
	h := newHarness(t, noon())
	user := h.seedUser(t, 390, 1, 4, "2024-06-09") // +25 -> 415, level 2

	updated, _, err := h.svc.ProcessDailyLogin(context.Background(), user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if updated.Level != 2 {
		t.Errorf("level = %d, want 2", updated.Level)
	}
	sawLevelUp := false
	for _, evt := range *h.events {
		if evt.Type == models.EventLevelUp && evt.Level == 2 {
			sawLevelUp = true
		}
	}
	if !sawLevelUp {
		t.Error("expected level_up event from daily login path")
	}
}

func TestDailyLoginHandlesCorruptLastLoginDate(t *testing.T) {
	h := newHarness(t, noon())
	user := h.seedUser(t, 0, 1, 9, "not-a-date")

	updated, xpEarned, err := h.svc.ProcessDailyLogin(context.Background(), user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if updated.Streak != 1 {
		t.Errorf("streak = %d, want 1 after corrupt date", updated.Streak)
	}
	if xpEarned != 21 {
		t.Errorf("xpEarned = %d, want 21", xpEarned)
	}
}

func TestCalendarDaysBetween(t *testing.T) {
	cases := []struct {
		from, to string
		want     int
	}{
		{"2024-06-09", "2024-06-10", 1},
		{"2024-06-01", "2024-06-10", 9},
		{"2023-12-31", "2024-01-01", 1},
		{"2024-02-28", "2024-03-01", 2}, // leap year
	}
	for _, c := range cases {
		if got := calendarDaysBetween(c.from, c.to); got != c.want {
			t.Errorf("calendarDaysBetween(%s, %s) = %d, want %d", c.from, c.to, got, c.want)
		}
	}
}
