package model

import (
	"fmt"
	"slices"
	"sort"
)

const (
	EntityName = "dst_rules"

	MinMonth = 1
	MaxMonth = 12
)

type MonthSpec struct {
	Month int `json:"month" yaml:"month"`
}

type Rule struct {
	Start      MonthSpec `json:"start"                yaml:"start"`
	End        MonthSpec `json:"end"                  yaml:"end"`
	Exceptions []string  `json:"exceptions,omitempty" yaml:"exceptions,omitempty"`
}

// Valid reports whether both months are in 1..12.
func (r Rule) Valid() bool {
	return validMonth(r.Start.Month) && validMonth(r.End.Month)
}

func (r Rule) IsException(timezone string) bool {
	return slices.Contains(r.Exceptions, timezone)
}

// Wraps reports whether the DST period crosses the year boundary (southern hemisphere).
func (r Rule) Wraps() bool {
	return r.Start.Month > r.End.Month
}

// RuleTable maps timezone identifiers to DST regions. It is immutable once loaded.
type RuleTable struct {
	TimezoneToRegion map[string]string `json:"timezone_to_region" yaml:"timezone_to_region"`
	Regions          map[string]Rule   `json:"regions"            yaml:"regions"`
}

// Lookup returns the region and rule for a timezone. ok is false when either is missing.
func (t *RuleTable) Lookup(timezone string) (region string, rule Rule, ok bool) {
	if t == nil {
		return "", Rule{}, false
	}

	region, ok = t.TimezoneToRegion[timezone]
	if !ok {
		return "", Rule{}, false
	}

	rule, ok = t.Regions[region]

	return region, rule, ok
}

// Validate lists the inconsistencies of the table. Problems never reject the table.
func (t *RuleTable) Validate() []string {
	if t == nil {
		return nil
	}

	var problems []string

	timezones := make([]string, 0, len(t.TimezoneToRegion))
	for timezone := range t.TimezoneToRegion {
		timezones = append(timezones, timezone)
	}

	sort.Strings(timezones)

	for _, timezone := range timezones {
		region := t.TimezoneToRegion[timezone]
		if _, ok := t.Regions[region]; !ok {
			problems = append(problems, fmt.Sprintf("timezone %s references missing region %s", timezone, region))
		}
	}

	regions := make([]string, 0, len(t.Regions))
	for region := range t.Regions {
		regions = append(regions, region)
	}

	sort.Strings(regions)

	for _, region := range regions {
		if rule := t.Regions[region]; !rule.Valid() {
			problems = append(problems, fmt.Sprintf("region %s has months outside %d..%d (start %d, end %d)",
				region, MinMonth, MaxMonth, rule.Start.Month, rule.End.Month))
		}
	}

	return problems
}

func validMonth(month int) bool {
	return month >= MinMonth && month <= MaxMonth
}
