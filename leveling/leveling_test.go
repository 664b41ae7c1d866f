package leveling

import "testing"

func TestLevelForXPClampsToOne(t *testing.T) {
	for _, xp := range []int{0, 1, 50, 99, 399} {
		if got := LevelForXP(xp); got != 1 {
			t.Errorf("LevelForXP(%d) = %d, want 1", xp, got)
		}
	}

	if got := LevelForXP(-10); got != 1 {
		t.Errorf("LevelForXP(-10) = %d, want 1", got)
	}
}

func TestLevelForXPMonotonic(t *testing.T) {
	prev := LevelForXP(0)
	for xp := 1; xp <= 50000; xp += 7 {
		cur := LevelForXP(xp)
		if cur < prev {
			t.Fatalf("LevelForXP not monotonic: LevelForXP(%d) = %d < %d", xp, cur, prev)
		}
		prev = cur
	}
}

func TestLevelBoundaryExact(t *testing.T) {
	for level := 1; level <= 100; level++ {
		threshold := XPThresholdForLevel(level)
		if got := LevelForXP(threshold); got != level {
			t.Errorf("LevelForXP(XPThresholdForLevel(%d)) = %d, want %d", level, got, level)
		}
		if level >= 2 {
			if got := LevelForXP(threshold - 1); got != level-1 {
				t.Errorf("LevelForXP(%d) = %d, want %d", threshold-1, got, level-1)
			}
		}
	}
}

func TestKnownValues(t *testing.T) {
	cases := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{50, 1},
		{100, 1},
		{400, 2},
		{500, 2},
		{900, 3},
		{9900, 9},
		{10000, 10},
		{10100, 10},
	}
	for _, c := range cases {
		if got := LevelForXP(c.xp); got != c.want {
			t.Errorf("LevelForXP(%d) = %d, want %d", c.xp, got, c.want)
		}
	}
}
