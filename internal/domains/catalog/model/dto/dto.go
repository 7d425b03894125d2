package dto

import (
	"worldclock/internal/domains/catalog/model"
	"worldclock/shared"
)

type LocationResponse struct {
	Text    string  `json:"text"`
	Abbr    string  `json:"abbr"`
	Offset  float64 `json:"offset"`
	Emoji   string  `json:"emoji"`
	City    string  `json:"city"`
	Country string  `json:"country"`
	Label   string  `json:"label"`
}

func (r *LocationResponse) FromModel(location model.Location) {
	r.Text = location.Text
	r.Abbr = location.Abbr
	r.Offset = location.Offset
	r.Emoji = location.Emoji
	r.City = location.City
	r.Country = location.Country
	r.Label = location.Label()
}

type GetLocationsResponse struct {
	Timezones []LocationResponse `json:"timezones"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetLocationsResponse) FromModels(models []model.Location, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Timezones = make([]LocationResponse, len(models))
	for i, mod := range models {
		r.Timezones[i].FromModel(mod)
	}
}
