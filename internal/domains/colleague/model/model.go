package model

import "time"

const (
	TableName  = "colleagues"
	EntityName = "colleague"

	FieldID       = "id"
	FieldName     = "name"
	FieldPosition = "position"
)

// Colleague is created on add and removed by index; it is never updated.
type Colleague struct {
	ID        string    `db:"id"         json:"id"`
	Name      string    `db:"name"       json:"name"`
	Timezone  string    `db:"timezone"   json:"timezone"`
	Offset    float64   `db:"utc_offset" json:"offset"`
	City      string    `db:"city"       json:"city"`
	Country   string    `db:"country"    json:"country"`
	Emoji     string    `db:"emoji"      json:"emoji"`
	Position  int64     `db:"position"   json:"-"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Location renders "<emoji> <city>, <country>".
func (c Colleague) Location() string {
	location := c.City
	if c.Country != "" {
		location += ", " + c.Country
	}

	if c.Emoji != "" {
		location = c.Emoji + " " + location
	}

	return location
}
