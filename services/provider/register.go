package provider

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"maidease/models"

	"github.com/google/uuid"
)

var (
	emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
	timePattern  = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)
)

// Register validates a sign-up request and persists a new provider document
// in pending status.
func (s *DefaultProviderService) Register(input models.ProviderRegistrationInput) (*models.ServiceProvider, error) {
	if err := validateRegistration(&input); err != nil {
		return nil, err
	}

	now := time.Now()
	doc := &models.ServiceProvider{
		ID:         uuid.New().String(),
		Name:       strings.TrimSpace(input.Name),
		Email:      strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:      input.Phone,
		Experience: input.Experience,
		Services:   input.Services,
		Status:     models.ProviderStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if input.StartTime != "" || input.EndTime != "" {
		doc.WorkingHours = &models.WorkingHours{
			StartTime: input.StartTime,
			EndTime:   input.EndTime,
		}
	}

	if err := s.Repo.Create(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// GetByID fetches a registered provider.
func (s *DefaultProviderService) GetByID(id string) (*models.ServiceProvider, error) {
	return s.Repo.GetByID(id)
}

func validateRegistration(input *models.ProviderRegistrationInput) error {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if len(name) > 50 {
		return fmt.Errorf("name cannot exceed 50 characters")
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("please enter a valid email")
	}

	if !phonePattern.MatchString(input.Phone) {
		return fmt.Errorf("please enter a valid 10-digit phone number")
	}

	if input.Experience < 0 {
		return fmt.Errorf("experience cannot be negative")
	}
	if input.Experience > 50 {
		return fmt.Errorf("experience cannot exceed 50 years")
	}

	if len(input.Services) == 0 {
		return fmt.Errorf("at least one service is required")
	}
	for _, svc := range input.Services {
		if !isOfferedService(svc) {
			return fmt.Errorf("unknown service %q", svc)
		}
	}

	if input.StartTime != "" || input.EndTime != "" {
		if !timePattern.MatchString(input.StartTime) {
			return fmt.Errorf("please enter valid start time format (HH:MM)")
		}
		if !timePattern.MatchString(input.EndTime) {
			return fmt.Errorf("please enter valid end time format (HH:MM)")
		}
	}
	return nil
}

func isOfferedService(name string) bool {
	for _, svc := range models.OfferedServices {
		if svc == name {
			return true
		}
	}
	return false
}
