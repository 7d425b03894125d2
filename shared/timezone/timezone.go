package timezone

import (
	"fmt"
	"time"
	"worldclock/config"
	"worldclock/shared/constant"

	"github.com/rs/zerolog/log"
)

var (
	appLocation *time.Location
)

func init() {
	cfg := config.Get()

	name := cfg.App.Timezone
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")
		name = "UTC"
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Asia/Jakarta', 'UTC', 'America/New_York'")
		appLocation = time.UTC

		return
	}

	appLocation = loc
	log.Info().
		Str("timezone", name).
		Str("location", loc.String()).
		Msg("Application timezone initialized")
}

// Clock is the source of the reference instant.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return ToAppTime(time.Now())
}

// System returns a clock backed by the wall clock in the app timezone.
func System() Clock {
	return systemClock{}
}

type fixedClock struct {
	at time.Time
}

func (f fixedClock) Now() time.Time {
	return f.at
}

// Fixed returns a clock that always reports at.
func Fixed(at time.Time) Clock {
	return fixedClock{at: at}
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	if appLocation == nil {
		return time.UTC
	}

	return appLocation
}

// ParseDay parses a YYYY-MM-DD date at midnight in the application timezone.
func ParseDay(value string) (time.Time, error) {
	day, err := time.ParseInLocation(constant.DayFormat, value, GetLocation())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}

	return day, nil
}

// ParseClock parses an HH:MM wall-clock time on the given day (YYYY-MM-DD) in loc.
func ParseClock(day time.Time, value string, loc *time.Location) (time.Time, error) {
	clock, err := time.Parse(constant.ClockFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: %w", value, err)
	}

	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, loc), nil
}
