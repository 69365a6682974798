package models

import (
	"fmt"
	"time"
)

// Provider registration statuses.
const (
	ProviderStatusPending  = "pending"
	ProviderStatusActive   = "active"
	ProviderStatusInactive = "inactive"
)

// OfferedServices is the fixed list a provider may register for.
var OfferedServices = []string{
	"Home Cleaning",
	"Plumbing",
	"Electrical",
	"Carpentry",
	"Painting",
	"AC Repair",
	"Appliance Repair",
	"Pest Control",
	"Beauty & Wellness",
	"Tutoring",
	"Photography",
	"Catering",
	"Other",
}

// WorkingHours is a provider's daily availability window, both bounds in
// 24h "HH:MM" format.
type WorkingHours struct {
	StartTime string `bson:"start_time" json:"startTime"`
	EndTime   string `bson:"end_time" json:"endTime"`
}

// ServiceProvider is a registered service-provider document.
type ServiceProvider struct {
	ID           string        `bson:"id" json:"id"`
	Name         string        `bson:"name" json:"name"`
	Email        string        `bson:"email" json:"email"`
	Phone        string        `bson:"phone" json:"phone"`
	Experience   int           `bson:"experience" json:"experience"` // years
	Services     []string      `bson:"services" json:"services"`
	WorkingHours *WorkingHours `bson:"working_hours,omitempty" json:"workingHours,omitempty"`
	Status       string        `bson:"status" json:"status"`
	Rating       float64       `bson:"rating" json:"rating"`
	TotalReviews int           `bson:"total_reviews" json:"totalReviews"`
	CreatedAt    time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time     `bson:"updated_at" json:"updatedAt"`
}

// IsAvailableAt reports whether the provider's working hours cover the given
// 24h "HH:MM" time. Providers without working hours are treated as always
// available.
func (p *ServiceProvider) IsAvailableAt(hhmm string) bool {
	if p.WorkingHours == nil {
		return true
	}
	t, ok := minutesOfDay(hhmm)
	if !ok {
		return false
	}
	start, ok := minutesOfDay(p.WorkingHours.StartTime)
	if !ok {
		return false
	}
	end, ok := minutesOfDay(p.WorkingHours.EndTime)
	if !ok {
		return false
	}
	return t >= start && t <= end
}

func minutesOfDay(hhmm string) (int, bool) {
	var h, m int
	if _, err := fmt.Sscanf(hhmm, "%d:%d", &h, &m); err != nil {
		return 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// ProviderRegistrationInput is the POST /api/register payload.
type ProviderRegistrationInput struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Experience int      `json:"experience"`
	Services   []string `json:"services"`
	StartTime  string   `json:"startTime,omitempty"`
	EndTime    string   `json:"endTime,omitempty"`
}
