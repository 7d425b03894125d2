package dto

import (
	"strings"
	"time"
	catalogModel "worldclock/internal/domains/catalog/model"
	"worldclock/shared/constant"
)

const (
	ModeCurrent = "current"
	ModeCustom  = "custom"
)

type ConvertRequest struct {
	From string `json:"from" validate:"required,notblank"`
	To   string `json:"to"   validate:"required,notblank"`
	Time string `json:"time" validate:"omitempty,clock"`
	Date string `json:"date" validate:"omitempty,isodate"`
	Swap bool   `json:"swap"`
}

// Normalize trims the fields and applies the swap flag.
func (c *ConvertRequest) Normalize() {
	c.From = strings.TrimSpace(c.From)
	c.To = strings.TrimSpace(c.To)
	c.Time = strings.TrimSpace(c.Time)
	c.Date = strings.TrimSpace(c.Date)

	if c.Swap {
		c.From, c.To = c.To, c.From
		c.Swap = false
	}
}

func (c *ConvertRequest) Mode() string {
	if c.Time == "" {
		return ModeCurrent
	}

	return ModeCustom
}

type SideResponse struct {
	Abbr       string  `json:"abbr"`
	Label      string  `json:"label"`
	BaseOffset float64 `json:"base_offset"`
	Offset     float64 `json:"offset"`
	DSTActive  bool    `json:"dst_active"`
	Time       string  `json:"time"`
	Date       string  `json:"date"`
}

func (s *SideResponse) FromLocation(location catalogModel.Location, offset float64, active bool, at time.Time) {
	s.Abbr = location.Abbr
	s.Label = location.Label()
	s.BaseOffset = location.Offset
	s.Offset = offset
	s.DSTActive = active
	s.Time = at.Format(constant.DisplayFormat)
	s.Date = at.Format(constant.DayFormat)
}

type ConvertResponse struct {
	Mode            string       `json:"mode"`
	From            SideResponse `json:"from"`
	To              SideResponse `json:"to"`
	DifferenceHours float64      `json:"difference_hours"`
	DayShift        int          `json:"day_shift"`
}
