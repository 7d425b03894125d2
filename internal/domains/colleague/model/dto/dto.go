package dto

import (
	"strings"
	"time"
	catalogModel "worldclock/internal/domains/catalog/model"
	"worldclock/internal/domains/colleague/model"

	"github.com/google/uuid"
)

const (
	EventAdd    = "add"
	EventRemove = "remove"
)

type AddColleagueRequest struct {
	Name     string `json:"name"     validate:"required,notblank,max=255"`
	Location string `json:"location" validate:"required,notblank"`
}

// ToModel copies the selected catalog entry onto a new colleague.
func (a *AddColleagueRequest) ToModel(location catalogModel.Location, now time.Time) model.Colleague {
	return model.Colleague{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(a.Name),
		Timezone:  location.Abbr,
		Offset:    location.Offset,
		City:      location.City,
		Country:   location.Country,
		Emoji:     location.Emoji,
		CreatedAt: now,
	}
}

type ColleagueResponse struct {
	Index     int       `json:"index"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Timezone  string    `json:"timezone"`
	Offset    float64   `json:"offset"`
	City      string    `json:"city"`
	Country   string    `json:"country"`
	Emoji     string    `json:"emoji"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *ColleagueResponse) FromModel(index int, colleague model.Colleague) {
	r.Index = index
	r.ID = colleague.ID
	r.Name = colleague.Name
	r.Timezone = colleague.Timezone
	r.Offset = colleague.Offset
	r.City = colleague.City
	r.Country = colleague.Country
	r.Emoji = colleague.Emoji
	r.Location = colleague.Location()
	r.CreatedAt = colleague.CreatedAt
}

type GetColleaguesResponse struct {
	Colleagues []ColleagueResponse `json:"colleagues"`
	TotalData  int                 `json:"total_data"`
}

func (r *GetColleaguesResponse) FromModels(models []model.Colleague) {
	r.TotalData = len(models)

	r.Colleagues = make([]ColleagueResponse, len(models))
	for i, mod := range models {
		r.Colleagues[i].FromModel(i, mod)
	}
}

// RosterChangedEvent is published to kafka after every add and remove.
type RosterChangedEvent struct {
	Event     string            `json:"event"`
	Index     int               `json:"index"`
	Colleague ColleagueResponse `json:"colleague"`
	At        time.Time         `json:"at"`
}
