// Package resolver decides whether daylight saving time applies to a timezone
// on a given date and derives the effective UTC offset.
//
// Every function is pure: the rule table and the reference instant are passed in.
// Only the calendar month of the reference instant, in its own location, is used.
// Transitions inside a month (for example the second Sunday of March) are not modeled.
package resolver

import (
	"math"
	"time"
	"worldclock/internal/domains/dst/model"
	"worldclock/shared/constant"
)

// IsDSTActive reports whether DST is in effect for timezone in the month of ref.
// A nil table, an unknown timezone, a missing region, a malformed rule and an
// exception all resolve to false.
func IsDSTActive(table *model.RuleTable, timezone string, ref time.Time) bool {
	_, rule, ok := table.Lookup(timezone)
	if !ok || !rule.Valid() || rule.IsException(timezone) {
		return false
	}

	month := int(ref.Month())

	if rule.Wraps() {
		return month >= rule.Start.Month || month <= rule.End.Month
	}

	return month >= rule.Start.Month && month <= rule.End.Month
}

// EffectiveOffset returns base shifted by one hour when DST is active.
func EffectiveOffset(table *model.RuleTable, base float64, timezone string, ref time.Time) float64 {
	if IsDSTActive(table, timezone, ref) {
		return base + constant.DSTShiftInHours
	}

	return base
}

// TimeInTimezone re-expresses ref at the effective offset of timezone. The
// instant is unchanged; only the wall clock reading moves.
func TimeInTimezone(table *model.RuleTable, base float64, timezone string, ref time.Time) time.Time {
	return ref.In(Zone(timezone, EffectiveOffset(table, base, timezone, ref)))
}

// Zone builds a fixed zone named name for a fractional hour offset.
func Zone(name string, offset float64) *time.Location {
	return time.FixedZone(name, int(math.Round(offset*constant.SecondsPerHour)))
}
