package providerRepo

import "maidease/models"

// ProviderRepository defines persistence operations for service providers.
type ProviderRepository interface {
	Create(provider *models.ServiceProvider) error
	GetByID(id string) (*models.ServiceProvider, error)
	GetByEmail(email string) (*models.ServiceProvider, error)
	GetAll() ([]models.ServiceProvider, error)
	UpdateStatus(id string, status string) error
	Delete(id string) error
}
