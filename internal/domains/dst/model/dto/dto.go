package dto

import (
	"net/http"
	"strconv"
	"time"
	"worldclock/internal/domains/dst/model"
	"worldclock/shared/constant"
	"worldclock/shared/failure"
)

type StatusRequest struct {
	Timezone string  `json:"timezone" validate:"required,notblank"`
	Date     string  `json:"date"     validate:"omitempty,isodate"`
	Offset   float64 `json:"offset"   validate:"gte=-14,lte=14"`
}

// FromRequest reads the status query string. An unparsable offset is a bad request.
func (s *StatusRequest) FromRequest(r *http.Request) error {
	query := r.URL.Query()

	s.Timezone = query.Get(constant.RequestParamTimezone)
	s.Date = query.Get(constant.RequestParamDate)

	if offset := query.Get(constant.RequestParamOffset); offset != "" {
		value, err := strconv.ParseFloat(offset, 64)
		if err != nil {
			return failure.BadRequestFromString("offset must be a number of hours") //nolint:wrapcheck
		}

		s.Offset = value
	}

	return nil
}

type StatusResponse struct {
	Timezone        string  `json:"timezone"`
	Region          string  `json:"region"`
	DSTActive       bool    `json:"dst_active"`
	BaseOffset      float64 `json:"base_offset"`
	EffectiveOffset float64 `json:"effective_offset"`
	Time            string  `json:"time"`
}

func (s *StatusResponse) FromResolved(timezone, region string, active bool, base, effective float64, at time.Time) {
	s.Timezone = timezone
	s.Region = region
	s.DSTActive = active
	s.BaseOffset = base
	s.EffectiveOffset = effective
	s.Time = at.Format(constant.DateFormat)
}

type RuleResponse struct {
	StartMonth int      `json:"start_month"`
	EndMonth   int      `json:"end_month"`
	Exceptions []string `json:"exceptions"`
	Wraps      bool     `json:"wraps"`
}

type RulesResponse struct {
	TimezoneToRegion map[string]string       `json:"timezone_to_region"`
	Regions          map[string]RuleResponse `json:"regions"`
	Warnings         []string                `json:"warnings,omitempty"`
}

func (r *RulesResponse) FromModel(table *model.RuleTable) {
	r.TimezoneToRegion = make(map[string]string, len(table.TimezoneToRegion))
	for timezone, region := range table.TimezoneToRegion {
		r.TimezoneToRegion[timezone] = region
	}

	r.Regions = make(map[string]RuleResponse, len(table.Regions))
	for region, rule := range table.Regions {
		exceptions := rule.Exceptions
		if exceptions == nil {
			exceptions = []string{}
		}

		r.Regions[region] = RuleResponse{
			StartMonth: rule.Start.Month,
			EndMonth:   rule.End.Month,
			Exceptions: exceptions,
			Wraps:      rule.Wraps(),
		}
	}

	r.Warnings = table.Validate()
}
