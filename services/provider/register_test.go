package provider

import (
	"fmt"
	"testing"

	"maidease/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProviderRepo records created documents in memory.
type fakeProviderRepo struct {
	created []*models.ServiceProvider
}

func (f *fakeProviderRepo) Create(p *models.ServiceProvider) error {
	for _, existing := range f.created {
		if existing.Email == p.Email {
			return fmt.Errorf("a provider with email %s is already registered", p.Email)
		}
	}
	f.created = append(f.created, p)
	return nil
}

func (f *fakeProviderRepo) GetByID(id string) (*models.ServiceProvider, error) {
	for _, p := range f.created {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("provider with id %s not found", id)
}

func (f *fakeProviderRepo) GetByEmail(email string) (*models.ServiceProvider, error) {
	for _, p := range f.created {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, fmt.Errorf("provider with email %s not found", email)
}

func (f *fakeProviderRepo) GetAll() ([]models.ServiceProvider, error) {
	out := make([]models.ServiceProvider, 0, len(f.created))
	for _, p := range f.created {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProviderRepo) UpdateStatus(id, status string) error { return nil }

func (f *fakeProviderRepo) Delete(id string) error { return nil }

func validInput() models.ProviderRegistrationInput {
	return models.ProviderRegistrationInput{
		Name:       "Asha Verma",
		Email:      "Asha.Verma@Example.com",
		Phone:      "9876543210",
		Experience: 4,
		Services:   []string{"Home Cleaning", "Catering"},
		StartTime:  "08:00",
		EndTime:    "18:00",
	}
}

func TestRegisterProvider(t *testing.T) {
	repo := &fakeProviderRepo{}
	svc := &DefaultProviderService{Repo: repo}

	doc, err := svc.Register(validInput())
	require.NoError(t, err)
	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, "asha.verma@example.com", doc.Email)
	assert.Equal(t, models.ProviderStatusPending, doc.Status)
	assert.Zero(t, doc.Rating)
	assert.Zero(t, doc.TotalReviews)
	assert.False(t, doc.CreatedAt.IsZero())
	require.NotNil(t, doc.WorkingHours)
	assert.Equal(t, "08:00", doc.WorkingHours.StartTime)
	require.Len(t, repo.created, 1)
}

func TestRegisterProviderWithoutWorkingHours(t *testing.T) {
	svc := &DefaultProviderService{Repo: &fakeProviderRepo{}}

	input := validInput()
	input.StartTime = ""
	input.EndTime = ""

	doc, err := svc.Register(input)
	require.NoError(t, err)
	assert.Nil(t, doc.WorkingHours)
	assert.True(t, doc.IsAvailableAt("23:45"))
}

func TestRegisterProviderValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.ProviderRegistrationInput)
	}{
		{"missing name", func(in *models.ProviderRegistrationInput) { in.Name = "  " }},
		{"name too long", func(in *models.ProviderRegistrationInput) {
			in.Name = "An impossibly long provider name that goes well past fifty characters"
		}},
		{"missing email", func(in *models.ProviderRegistrationInput) { in.Email = "" }},
		{"bad email", func(in *models.ProviderRegistrationInput) { in.Email = "not-an-email" }},
		{"short phone", func(in *models.ProviderRegistrationInput) { in.Phone = "12345" }},
		{"alpha phone", func(in *models.ProviderRegistrationInput) { in.Phone = "98765abcde" }},
		{"negative experience", func(in *models.ProviderRegistrationInput) { in.Experience = -1 }},
		{"excessive experience", func(in *models.ProviderRegistrationInput) { in.Experience = 51 }},
		{"no services", func(in *models.ProviderRegistrationInput) { in.Services = nil }},
		{"unknown service", func(in *models.ProviderRegistrationInput) { in.Services = []string{"Dog Walking"} }},
		{"bad start time", func(in *models.ProviderRegistrationInput) { in.StartTime = "8am" }},
		{"bad end time", func(in *models.ProviderRegistrationInput) { in.EndTime = "25:00" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeProviderRepo{}
			svc := &DefaultProviderService{Repo: repo}

			input := validInput()
			tc.mutate(&input)

			_, err := svc.Register(input)
			require.Error(t, err)
			assert.Empty(t, repo.created)
		})
	}
}

func TestRegisterProviderDuplicateEmail(t *testing.T) {
	repo := &fakeProviderRepo{}
	svc := &DefaultProviderService{Repo: repo}

	_, err := svc.Register(validInput())
	require.NoError(t, err)

	_, err = svc.Register(validInput())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestProviderAvailability(t *testing.T) {
	svc := &DefaultProviderService{Repo: &fakeProviderRepo{}}

	doc, err := svc.Register(validInput())
	require.NoError(t, err)

	assert.True(t, doc.IsAvailableAt("08:00"))
	assert.True(t, doc.IsAvailableAt("12:30"))
	assert.True(t, doc.IsAvailableAt("18:00"))
	assert.False(t, doc.IsAvailableAt("19:00"))
	assert.False(t, doc.IsAvailableAt("garbage"))
}
