package budget

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestCompletedYears(t *testing.T) {
	asOf := date(2026, time.September, 1)

	tests := []struct {
		name  string
		start time.Time
		want  int
	}{
		{"same day", asOf, 0},
		{"one day ago", date(2026, time.August, 31), 0},
		{"anniversary today", date(2024, time.September, 1), 2},
		{"day before anniversary", date(2024, time.September, 2), 1},
		{"day after anniversary", date(2024, time.August, 31), 2},
		{"ten years", date(2016, time.September, 1), 10},
		{"future start", date(2027, time.January, 1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompletedYears(tt.start, asOf))
		})
	}
}

func TestCalculateAccrual(t *testing.T) {
	asOf := date(2026, time.September, 1)

	t.Run("nil start date accrues nothing", func(t *testing.T) {
		assert.Equal(t, int64(0), CalculateAccrual(nil, 75000, 25000, asOf))
	})

	t.Run("future start date accrues nothing", func(t *testing.T) {
		start := datePtr(2027, time.January, 1)
		assert.Equal(t, int64(0), CalculateAccrual(start, 75000, 25000, asOf))
	})

	t.Run("initial plus increment per completed year", func(t *testing.T) {
		// Two completed years: 75000 + 2*25000
		start := datePtr(2024, time.June, 15)
		assert.Equal(t, int64(125000), CalculateAccrual(start, 75000, 25000, asOf))
	})

	t.Run("monotonically non-decreasing in elapsed years", func(t *testing.T) {
		prev := int64(-1)
		for years := 0; years <= 15; years++ {
			start := date(2026-years, time.March, 1)
			got := CalculateAccrual(&start, 75000, 25000, asOf)
			assert.GreaterOrEqual(t, got, prev)
			prev = got
		}
	})
}

func TestResolveTimeline(t *testing.T) {
	asOf := date(2026, time.September, 1)

	newRule := func(from time.Time, initial, increment int64) BudgetRule {
		r, err := NewBudgetRule(from, initial, increment)
		require.NoError(t, err)
		return *r
	}

	t.Run("nil start date yields empty timeline", func(t *testing.T) {
		assert.Nil(t, ResolveTimeline(nil, nil, nil, asOf))
	})

	t.Run("falls back to defaults without rules", func(t *testing.T) {
		start := datePtr(2024, time.September, 1)
		entries := ResolveTimeline(start, nil, nil, asOf)
		require.Len(t, entries, 3)
		assert.Equal(t, DefaultInitialCents, entries[0].AmountCents)
		assert.Equal(t, TimelineSourceDefault, entries[0].Source)
		assert.Equal(t, DefaultYearlyIncrementCents, entries[1].AmountCents)
		assert.Equal(t, DefaultInitialCents+2*DefaultYearlyIncrementCents, entries[2].CumulativeCents)
	})

	t.Run("latest applicable global rule wins", func(t *testing.T) {
		start := datePtr(2023, time.January, 10)
		rules := []BudgetRule{
			newRule(date(2020, time.January, 1), 50000, 10000),
			newRule(date(2024, time.January, 1), 80000, 30000),
		}
		entries := ResolveTimeline(start, rules, nil, asOf)
		require.Len(t, entries, 4)
		// Year 0 anchored 2023-01-10: only the 2020 rule applies.
		assert.Equal(t, int64(50000), entries[0].AmountCents)
		assert.Equal(t, TimelineSourceGlobal, entries[0].Source)
		// Year 1 anchored 2024-01-10: the 2024 rule has taken over.
		assert.Equal(t, int64(30000), entries[1].AmountCents)
	})

	t.Run("override window beats global rules", func(t *testing.T) {
		start := datePtr(2023, time.June, 1)
		rules := []BudgetRule{newRule(date(2020, time.January, 1), 50000, 10000)}
		until := date(2024, time.December, 31)
		override, err := NewUserBudgetOverride(uuid.New(), date(2024, time.January, 1), &until, 90000, 40000, "relocation package")
		require.NoError(t, err)

		entries := ResolveTimeline(start, rules, []UserBudgetOverride{*override}, asOf)
		require.Len(t, entries, 4)
		assert.Equal(t, TimelineSourceGlobal, entries[0].Source)
		assert.Equal(t, TimelineSourceOverride, entries[1].Source)
		assert.Equal(t, int64(40000), entries[1].AmountCents)
		// Third anchor falls after the override window expires.
		assert.Equal(t, TimelineSourceGlobal, entries[2].Source)
	})

	t.Run("cumulative total equals sum of per-year amounts", func(t *testing.T) {
		start := datePtr(2019, time.April, 20)
		rules := []BudgetRule{
			newRule(date(2018, time.January, 1), 60000, 20000),
			newRule(date(2022, time.July, 1), 75000, 25000),
		}
		entries := ResolveTimeline(start, rules, nil, asOf)
		require.NotEmpty(t, entries)

		var sum int64
		for _, e := range entries {
			sum += e.AmountCents
		}
		assert.Equal(t, sum, entries[len(entries)-1].CumulativeCents)
	})
}
