package events

import (
	"testing"

	"learnhub/models"
)

func TestBusFanOut(t *testing.T) {
	bus := NewBus()

	var first, second []string
	bus.Subscribe(func(evt models.GamificationEvent) {
		first = append(first, evt.Type)
	})
	bus.Subscribe(func(evt models.GamificationEvent) {
		second = append(second, evt.Type)
	})

	bus.Publish(models.GamificationEvent{Type: models.EventLevelUp})
	bus.Publish(models.GamificationEvent{Type: models.EventUserUpdated})

	for _, got := range [][]string{first, second} {
		if len(got) != 2 || got[0] != models.EventLevelUp || got[1] != models.EventUserUpdated {
			t.Errorf("subscriber received %v, want [level_up user_updated]", got)
		}
	}
}

func TestBusNoSubscribers(t *testing.T) {
	bus := NewBus()
	// Publishing with no subscribers must not panic.
	bus.Publish(models.GamificationEvent{Type: models.EventBadgeUnlocked})
}
