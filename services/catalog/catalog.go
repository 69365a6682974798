package catalog

import "maidease/models"

// seeded is the static service catalogue. It is loaded once and read-only for
// the process lifetime; Default returns a copy so callers cannot mutate it.
var seeded = []models.Service{
	{
		ID:          1,
		Name:        "Deep House Cleaning",
		Category:    models.CategoryCleaning,
		Price:       1200,
		Duration:    "3-4 hours",
		Rating:      4.8,
		Reviews:     1247,
		Image:       "https://images.unsplash.com/photo-1581578731548-c64695cc6952?w=400&h=300&fit=crop",
		Description: "Complete deep cleaning of your entire house including bathrooms, kitchen, and all rooms",
		Popular:     true,
	},
	{
		ID:          2,
		Name:        "Regular House Cleaning",
		Category:    models.CategoryCleaning,
		Price:       800,
		Duration:    "2-3 hours",
		Rating:      4.6,
		Reviews:     892,
		Image:       "https://images.unsplash.com/photo-1527515637462-cff94eecc1ac?w=400&h=300&fit=crop",
		Description: "Regular maintenance cleaning for your home on weekly or monthly basis",
		Popular:     true,
	},
	{
		ID:          3,
		Name:        "Bathroom Deep Clean",
		Category:    models.CategoryCleaning,
		Price:       400,
		Duration:    "1-2 hours",
		Rating:      4.7,
		Reviews:     634,
		Image:       "https://images.unsplash.com/photo-1584622650111-993a426fbf0a?w=400&h=300&fit=crop",
		Description: "Specialized bathroom cleaning with sanitization and deep scrubbing",
	},
	{
		ID:          4,
		Name:        "Kitchen Deep Clean",
		Category:    models.CategoryCleaning,
		Price:       600,
		Duration:    "2-3 hours",
		Rating:      4.5,
		Reviews:     445,
		Image:       "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?w=400&h=300&fit=crop",
		Description: "Complete kitchen cleaning including appliances, cabinets, and countertops",
	},
	{
		ID:          5,
		Name:        "Laundry & Ironing",
		Category:    models.CategoryLaundry,
		Price:       300,
		Duration:    "2-4 hours",
		Rating:      4.4,
		Reviews:     321,
		Image:       "https://images.unsplash.com/photo-1517677208171-0bc6725a3e60?w=400&h=300&fit=crop",
		Description: "Professional laundry service with washing, drying, and ironing",
	},
	{
		ID:          6,
		Name:        "Carpet Cleaning",
		Category:    models.CategorySpecialty,
		Price:       500,
		Duration:    "1-2 hours",
		Rating:      4.6,
		Reviews:     278,
		Image:       "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=400&h=300&fit=crop",
		Description: "Deep carpet cleaning with stain removal and sanitization",
	},
	{
		ID:          7,
		Name:        "Window Cleaning",
		Category:    models.CategorySpecialty,
		Price:       350,
		Duration:    "1-2 hours",
		Rating:      4.3,
		Reviews:     189,
		Image:       "https://images.unsplash.com/photo-1581578731548-c64695cc6952?w=400&h=300&fit=crop",
		Description: "Interior and exterior window cleaning for crystal clear views",
	},
	{
		ID:          8,
		Name:        "Move-in/Move-out Cleaning",
		Category:    models.CategorySpecialty,
		Price:       1500,
		Duration:    "4-6 hours",
		Rating:      4.9,
		Reviews:     567,
		Image:       "https://images.unsplash.com/photo-1527515637462-cff94eecc1ac?w=400&h=300&fit=crop",
		Description: "Comprehensive cleaning for moving in or out of a property",
	},
}

// Default returns the static service catalogue.
func Default() []models.Service {
	out := make([]models.Service, len(seeded))
	copy(out, seeded)
	return out
}

// FindByID looks up a service in the given catalogue.
func FindByID(services []models.Service, id int) (models.Service, bool) {
	for _, svc := range services {
		if svc.ID == id {
			return svc, true
		}
	}
	return models.Service{}, false
}
