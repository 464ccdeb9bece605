package budget

import (
	"time"
)

// TimelineSource tags how an accrual year was resolved
type TimelineSource string

const (
	TimelineSourceOverride TimelineSource = "override"
	TimelineSourceGlobal   TimelineSource = "global"
	TimelineSourceDefault  TimelineSource = "default"
)

// TimelineEntry is one accrual year in an employee's budget timeline
type TimelineEntry struct {
	Year            int            `json:"year"`
	AnchorDate      time.Time      `json:"anchor_date"`
	AmountCents     int64          `json:"amount_cents"`
	CumulativeCents int64          `json:"cumulative_cents"`
	Source          TimelineSource `json:"source"`
}

// CompletedYears returns the number of whole calendar years elapsed between
// start and asOf. Anniversaries are calendar-aware: an employee started on
// 2022-03-15 completes year one on 2023-03-15, not after 365 days.
func CompletedYears(start, asOf time.Time) int {
	if start.After(asOf) {
		return 0
	}
	years := asOf.Year() - start.Year()
	if years < 0 {
		return 0
	}
	if start.AddDate(years, 0, 0).After(asOf) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// CalculateAccrual computes accrued budget as initial plus one increment per
// completed year. A nil or future start date accrues nothing.
func CalculateAccrual(startDate *time.Time, initialCents, yearlyIncrementCents int64, asOf time.Time) int64 {
	if startDate == nil || startDate.After(asOf) {
		return 0
	}
	return initialCents + int64(CompletedYears(*startDate, asOf))*yearlyIncrementCents
}

// ResolveTimeline produces one entry per accrual year from the start date up
// to asOf. Per year-anchor date, resolution priority is: an override whose
// window contains the anchor, then the global rule with the greatest
// effective_from on or before the anchor, then the built-in default. The
// first anchor grants the resolved initial amount; later anchors grant the
// yearly increment. Entries carry a running cumulative total.
func ResolveTimeline(startDate *time.Time, rules []BudgetRule, overrides []UserBudgetOverride, asOf time.Time) []TimelineEntry {
	if startDate == nil || startDate.After(asOf) {
		return nil
	}

	years := CompletedYears(*startDate, asOf)
	entries := make([]TimelineEntry, 0, years+1)
	var cumulative int64

	for year := 0; year <= years; year++ {
		anchor := startDate.AddDate(year, 0, 0)
		initial, increment, source := resolveRates(anchor, rules, overrides)

		amount := increment
		if year == 0 {
			amount = initial
		}
		cumulative += amount

		entries = append(entries, TimelineEntry{
			Year:            year,
			AnchorDate:      anchor,
			AmountCents:     amount,
			CumulativeCents: cumulative,
			Source:          source,
		})
	}
	return entries
}

// resolveRates picks the accrual rates in effect at the anchor date
func resolveRates(anchor time.Time, rules []BudgetRule, overrides []UserBudgetOverride) (initial, increment int64, source TimelineSource) {
	// Overrides win. When windows overlap, the one starting latest applies.
	var winner *UserBudgetOverride
	for i := range overrides {
		o := &overrides[i]
		if !o.Covers(anchor) {
			continue
		}
		if winner == nil || o.EffectiveFrom.After(winner.EffectiveFrom) {
			winner = o
		}
	}
	if winner != nil {
		return winner.InitialCents, winner.YearlyIncrementCents, TimelineSourceOverride
	}

	var rule *BudgetRule
	for i := range rules {
		r := &rules[i]
		if !r.AppliesAt(anchor) {
			continue
		}
		if rule == nil || r.EffectiveFrom.After(rule.EffectiveFrom) {
			rule = r
		}
	}
	if rule != nil {
		return rule.InitialCents, rule.YearlyIncrementCents, TimelineSourceGlobal
	}

	return DefaultInitialCents, DefaultYearlyIncrementCents, TimelineSourceDefault
}
