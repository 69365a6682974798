package provider

import (
	providerRepo "maidease/database/repository/provider"
	"maidease/models"
)

// ProviderService defines the service-provider registration operations.
type ProviderService interface {
	Register(input models.ProviderRegistrationInput) (*models.ServiceProvider, error)
	GetByID(id string) (*models.ServiceProvider, error)
}

// DefaultProviderService implements ProviderService.
type DefaultProviderService struct {
	Repo providerRepo.ProviderRepository
}
