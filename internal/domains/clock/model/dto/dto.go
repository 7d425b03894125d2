package dto

import (
	"time"
	colleagueDto "worldclock/internal/domains/colleague/model/dto"
	"worldclock/shared/constant"
)

const (
	EventTick   = "tick"
	EventMode   = "mode"
	EventAdd    = colleagueDto.EventAdd
	EventRemove = colleagueDto.EventRemove

	ModeCurrent = "current"
	ModeCustom  = "custom"
)

type CardResponse struct {
	Index     int     `json:"index"`
	Name      string  `json:"name"`
	Time      string  `json:"time"`
	Location  string  `json:"location"`
	Timezone  string  `json:"timezone"`
	DSTActive bool    `json:"dst_active"`
	Offset    float64 `json:"offset"`
}

type BoardResponse struct {
	LocalTime  string         `json:"local_time"`
	Timezone   string         `json:"timezone"`
	RenderedAt time.Time      `json:"rendered_at"`
	Colleagues []CardResponse `json:"colleagues"`
}

func (b *BoardResponse) SetLocal(now time.Time) {
	b.LocalTime = now.Format(constant.DisplayFormat)
	b.Timezone = now.Location().String()
	b.RenderedAt = now
}

// StreamMessage is pushed to clock stream clients on every named event.
type StreamMessage struct {
	Event string         `json:"event"`
	Mode  string         `json:"mode"`
	Index *int           `json:"index,omitempty"`
	Board *BoardResponse `json:"board,omitempty"`
}

// ClientMessage switches a stream between the live clock and a frozen custom view.
type ClientMessage struct {
	Event string `json:"event" validate:"required,oneof=mode"`
	Mode  string `json:"mode"  validate:"required,oneof=custom current"`
}
