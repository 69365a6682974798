package booking

import (
	"fmt"
	"time"

	"maidease/models"
	"maidease/services/catalog"
)

// ComputeTotal calculates the booking total for a base service, its selected
// add-ons, and a duration in months:
//
//	total = (base.Price + sum of extra prices) * months
//
// All arithmetic is integer-only; prices are whole rupees. The extras must be
// resolvable in the given catalogue and must not include the base service
// itself.
func ComputeTotal(services []models.Service, base models.Service, extras ExtraSelection, months int) (int, error) {
	if months < 1 {
		return 0, newValidationError("months", fmt.Sprintf("duration must be at least 1 month, got %d", months))
	}
	if extras.Contains(base.ID) {
		return 0, newValidationError("extraServiceIds", fmt.Sprintf("extra services cannot include the base service (id %d)", base.ID))
	}

	total := base.Price
	for _, id := range extras.IDs() {
		extra, ok := catalog.FindByID(services, id)
		if !ok {
			return 0, newValidationError("extraServiceIds", fmt.Sprintf("unknown extra service id %d", id))
		}
		total += extra.Price
	}
	return total * months, nil
}

// BuildBookingRequest assembles the record handed to the submission
// collaborator. The total is computed once here and frozen into the request.
func BuildBookingRequest(services []models.Service, base models.Service, extras ExtraSelection, date, timeOfDay string, months int, notes string) (*models.BookingRequest, error) {
	total, err := ComputeTotal(services, base, extras, months)
	if err != nil {
		return nil, err
	}
	if date == "" {
		return nil, newValidationError("date", "booking date is required")
	}
	if timeOfDay == "" {
		return nil, newValidationError("time", "booking time is required")
	}
	return &models.BookingRequest{
		ServiceID:  base.ID,
		Date:       date,
		Time:       timeOfDay,
		Months:     months,
		ExtraIDs:   extras.IDs(),
		Notes:      notes,
		TotalPrice: total,
		CreatedAt:  time.Now(),
	}, nil
}
