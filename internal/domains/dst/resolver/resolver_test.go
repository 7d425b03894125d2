package resolver_test

import (
	"testing"
	"time"
	"worldclock/internal/domains/dst/model"
	"worldclock/internal/domains/dst/resolver"

	"github.com/stretchr/testify/assert"
)

func newTable() *model.RuleTable {
	return &model.RuleTable{
		TimezoneToRegion: map[string]string{
			"EST":  "north_america",
			"MST":  "north_america",
			"AEST": "australia",
			"AWST": "australia",
			"NZST": "new_zealand",
			"GHO":  "ghost",
			"BAD":  "malformed",
		},
		Regions: map[string]model.Rule{
			"north_america": {
				Start:      model.MonthSpec{Month: 3},
				End:        model.MonthSpec{Month: 11},
				Exceptions: []string{"MST"},
			},
			"australia": {
				Start:      model.MonthSpec{Month: 10},
				End:        model.MonthSpec{Month: 4},
				Exceptions: []string{"AWST"},
			},
			"new_zealand": {
				Start: model.MonthSpec{Month: 9},
				End:   model.MonthSpec{Month: 4},
			},
			"malformed": {
				Start: model.MonthSpec{Month: 0},
				End:   model.MonthSpec{Month: 13},
			},
		},
	}
}

func at(month time.Month) time.Time {
	return time.Date(2025, month, 15, 12, 0, 0, 0, time.UTC)
}

func TestIsDSTActive_NorthernRange(t *testing.T) {
	table := newTable()

	for month := time.January; month <= time.December; month++ {
		want := month >= time.March && month <= time.November
		assert.Equal(t, want, resolver.IsDSTActive(table, "EST", at(month)), "month %d", month)
	}
}

func TestIsDSTActive_SouthernWrap(t *testing.T) {
	table := newTable()

	for month := time.January; month <= time.December; month++ {
		want := month >= time.October || month <= time.April
		assert.Equal(t, want, resolver.IsDSTActive(table, "AEST", at(month)), "month %d", month)
	}
}

func TestIsDSTActive_Inactive(t *testing.T) {
	tests := []struct {
		name     string
		table    *model.RuleTable
		timezone string
	}{
		{name: "table not loaded", table: nil, timezone: "EST"},
		{name: "unknown timezone", table: newTable(), timezone: "UTC"},
		{name: "region missing", table: newTable(), timezone: "GHO"},
		{name: "northern exception", table: newTable(), timezone: "MST"},
		{name: "southern exception", table: newTable(), timezone: "AWST"},
		{name: "malformed months", table: newTable(), timezone: "BAD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for month := time.January; month <= time.December; month++ {
				assert.False(t, resolver.IsDSTActive(tt.table, tt.timezone, at(month)))
			}
		})
	}
}

func TestIsDSTActive_IgnoresDayAndYear(t *testing.T) {
	table := newTable()

	assert.True(t, resolver.IsDSTActive(table, "EST", time.Date(1999, time.March, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, resolver.IsDSTActive(table, "EST", time.Date(2031, time.November, 30, 23, 59, 0, 0, time.UTC)))
	assert.False(t, resolver.IsDSTActive(table, "EST", time.Date(2025, time.February, 28, 23, 59, 0, 0, time.UTC)))
}

func TestEffectiveOffset(t *testing.T) {
	table := newTable()

	tests := []struct {
		name     string
		base     float64
		timezone string
		ref      time.Time
		want     float64
	}{
		{name: "northern summer", base: -5, timezone: "EST", ref: at(time.July), want: -4},
		{name: "northern winter", base: -5, timezone: "EST", ref: at(time.January), want: -5},
		{name: "exception keeps base", base: -7, timezone: "MST", ref: at(time.July), want: -7},
		{name: "unknown timezone keeps base", base: 5.5, timezone: "IST", ref: at(time.July), want: 5.5},
		{name: "fractional base", base: 9.5, timezone: "NZST", ref: at(time.December), want: 10.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolver.EffectiveOffset(table, tt.base, tt.timezone, tt.ref)
			assert.InDelta(t, tt.want, got, 1e-9)

			active := resolver.IsDSTActive(table, tt.timezone, tt.ref)
			if active {
				assert.InDelta(t, tt.base+1, got, 1e-9)
			} else {
				assert.InDelta(t, tt.base, got, 1e-9)
			}
		})
	}
}

func TestTimeInTimezone_AEST(t *testing.T) {
	table := newTable()

	summer := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)
	got := resolver.TimeInTimezone(table, 10, "AEST", summer)

	assert.True(t, resolver.IsDSTActive(table, "AEST", summer))
	assert.True(t, got.Equal(summer))
	assert.Equal(t, 11, got.Hour())

	_, offset := got.Zone()
	assert.Equal(t, 11*3600, offset)

	winter := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	got = resolver.TimeInTimezone(table, 10, "AEST", winter)

	assert.False(t, resolver.IsDSTActive(table, "AEST", winter))
	assert.Equal(t, 10, got.Hour())
}

func TestTimeInTimezone_Idempotent(t *testing.T) {
	table := newTable()
	ref := time.Date(2025, time.August, 1, 18, 30, 0, 0, time.UTC)

	first := resolver.TimeInTimezone(table, -5, "EST", ref)
	second := resolver.TimeInTimezone(table, -5, "EST", ref)

	assert.Equal(t, first, second)
	assert.Equal(t, "14:30", first.Format("15:04"))
}

func TestZone(t *testing.T) {
	_, offset := time.Date(2025, time.January, 1, 0, 0, 0, 0, resolver.Zone("ACST", 9.5)).Zone()
	assert.Equal(t, 9*3600+1800, offset)

	name, offset := time.Date(2025, time.January, 1, 0, 0, 0, 0, resolver.Zone("NST", -3.5)).Zone()
	assert.Equal(t, "NST", name)
	assert.Equal(t, -(3*3600 + 1800), offset)
}
