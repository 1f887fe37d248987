package schema

import (
	"fmt"
	"time"
)

const DateFormat = time.DateOnly

type TravelDate struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (d TravelDate) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

func (d TravelDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func ParseTravelDate(value string) (TravelDate, error) {
	parsed, err := time.Parse(DateFormat, value)
	if err != nil {
		return TravelDate{}, err
	}

	return TravelDate{Day: parsed.Day(), Month: int(parsed.Month()), Year: parsed.Year()}, nil
}

// Trip is a one-way origin/destination pair.
type Trip struct {
	Origin      string     `json:"origin"`
	Destination string     `json:"destination"`
	Date        TravelDate `json:"date"`
	Currency    string     `json:"currency"`
}
