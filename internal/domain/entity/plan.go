package entity

import "time"

// ScheduleItem is one stop in a generated itinerary day, normalized to the
// same uniform shape as attractions.
type ScheduleItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Image    string `json:"image"`
	Tags     string `json:"tags"`
	Distance string `json:"distance"`
}

// PlanDay groups the schedule items of one itinerary day.
type PlanDay struct {
	Day      int            `json:"day"`
	Schedule []ScheduleItem `json:"schedule"`
}

// Plan is a generated multi-day itinerary.
type Plan struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	City      string    `json:"city"`
	Days      []PlanDay `json:"days"`
	Tags      string    `json:"tags,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}
