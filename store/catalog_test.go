package store

import (
	"testing"

	"github.com/nailsalonno5/booking-app/models"
)

func TestFilterServicesByCategory(t *testing.T) {
	feet := FilterServices("feet", "")
	if len(feet) == 0 {
		t.Fatal("no feet services in catalog")
	}
	for _, s := range feet {
		if s.Category != models.CategoryFeet {
			t.Errorf("service %s has category %q", s.ID, s.Category)
		}
	}
}

func TestFilterServicesSearchOverridesCategory(t *testing.T) {
	// search matches case-insensitively and ignores the category filter
	got := FilterServices("feet", "biab")
	if len(got) == 0 {
		t.Fatal("search returned nothing")
	}
	sawHands := false
	for _, s := range got {
		if s.Category == models.CategoryHands {
			sawHands = true
		}
	}
	if !sawHands {
		t.Error("search should span all categories")
	}
}

func TestFilterServicesEmptyReturnsAll(t *testing.T) {
	if got := FilterServices("", ""); len(got) != len(Services()) {
		t.Errorf("got %d services, want %d", len(got), len(Services()))
	}
}

func TestServiceByID(t *testing.T) {
	s, ok := ServiceByID("biab-short")
	if !ok {
		t.Fatal("biab-short missing from catalog")
	}
	if s.Price != 65 || s.Duration != 75 {
		t.Errorf("unexpected seed data: %+v", s)
	}
	if _, ok := ServiceByID("nope"); ok {
		t.Error("unknown id should not resolve")
	}
}

func TestTechnicianByID(t *testing.T) {
	tech, ok := TechnicianByID("daniela")
	if !ok {
		t.Fatal("daniela missing from roster")
	}
	if tech.Name != "Daniela" {
		t.Errorf("name = %q", tech.Name)
	}
}
