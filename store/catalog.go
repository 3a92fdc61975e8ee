package store

import (
	"strings"

	"github.com/nailsalonno5/booking-app/models"
)

// The service catalog and technician roster are static and read-only, so they
// need no locking after Init.
var (
	services     []models.Service
	servicesByID map[string]models.Service

	technicians     []models.Technician
	techniciansByID map[string]models.Technician
)

func seedCatalog() {
	services = []models.Service{
		{ID: "biab-short", Name: "BIAB Short", Duration: 75, Price: 65, Category: models.CategoryHands, ImageURL: "/assets/images/biab-short.webp"},
		{ID: "biab-medium", Name: "BIAB Medium", Duration: 90, Price: 75, Category: models.CategoryHands, ImageURL: "/assets/images/biab-medium.webp"},
		{ID: "gelx-extensions", Name: "Gel-X Extensions", Duration: 105, Price: 90, Category: models.CategoryHands, ImageURL: "/assets/images/gel-x-extensions.jpg"},
		{ID: "biab-french", Name: "BIAB French", Duration: 90, Price: 75, Category: models.CategoryHands, ImageURL: "/assets/images/biab-french.jpg"},
		{ID: "spa-pedi", Name: "SPA Pedicure", Duration: 60, Price: 60, Category: models.CategoryFeet, ImageURL: "/images/services/spa-pedi.jpg"},
		{ID: "gel-pedi", Name: "Gel Pedicure", Duration: 75, Price: 70, Category: models.CategoryFeet, ImageURL: "/images/services/gel-pedi.jpg"},
		{ID: "biab-gelx-combo", Name: "BIAB + Gel-X Combo", Duration: 150, Price: 130, Category: models.CategoryCombo, ImageURL: "/images/services/combo-hands-feet.jpg"},
		{ID: "mani-pedi", Name: "Classic Mani + Pedi", Duration: 120, Price: 95, Category: models.CategoryCombo, ImageURL: "/images/services/mani-pedi.jpg"},
	}
	servicesByID = make(map[string]models.Service, len(services))
	for _, s := range services {
		servicesByID[s.ID] = s
	}

	technicians = []models.Technician{
		{ID: "daniela", Name: "Daniela", ImageURL: "/assets/images/tech-daniela.jpeg", Specialties: []string{"BIAB", "Gel-X", "French"}, Rating: 4.8},
		{ID: "tiffany", Name: "Tiffany", ImageURL: "/assets/images/tech-tiffany.jpeg", Specialties: []string{"BIAB", "Gel Manicure"}, Rating: 4.9},
		{ID: "jenny", Name: "Jenny", ImageURL: "/assets/images/tech-jenny.jpeg", Specialties: []string{"Gel-X", "Pedicure"}, Rating: 4.7},
	}
	techniciansByID = make(map[string]models.Technician, len(technicians))
	for _, t := range technicians {
		techniciansByID[t.ID] = t
	}
}

// Services returns the full catalog.
func Services() []models.Service {
	return services
}

// ServiceByID looks up one service.
func ServiceByID(id string) (models.Service, bool) {
	s, ok := servicesByID[id]
	return s, ok
}

// FilterServices returns the catalog subset for a search string or category.
// Search takes priority: a case-insensitive substring match on the name.
// Otherwise the category must match exactly; an empty filter returns everything.
func FilterServices(category, search string) []models.Service {
	if search != "" {
		needle := strings.ToLower(search)
		out := make([]models.Service, 0, len(services))
		for _, s := range services {
			if strings.Contains(strings.ToLower(s.Name), needle) {
				out = append(out, s)
			}
		}
		return out
	}
	if category == "" {
		return services
	}
	out := make([]models.Service, 0, len(services))
	for _, s := range services {
		if s.Category == models.Category(category) {
			out = append(out, s)
		}
	}
	return out
}

// Technicians returns the full roster.
func Technicians() []models.Technician {
	return technicians
}

// TechnicianByID looks up one technician.
func TechnicianByID(id string) (models.Technician, bool) {
	t, ok := techniciansByID[id]
	return t, ok
}
