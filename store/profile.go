package store

import (
	"fmt"
	"sync"

	"github.com/nailsalonno5/booking-app/models"
)

// Profile section identifiers for the collapsible profile hub.
var sectionIDs = map[string]bool{
	"beauty-profile": true,
	"appointments":   true,
	"gallery":        true,
	"rewards":        true,
	"invite":         true,
	"membership":     true,
	"rate-us":        true,
	"payment":        true,
	"settings":       true,
}

func defaultOpenSections() map[string]bool {
	return map[string]bool{
		"appointments": true,
		"invite":       true,
		"gallery":      true,
	}
}

// sectionStore tracks which collapsible profile sections each user keeps
// open. New users start with the default-open subset.
type sectionStore struct {
	mu   sync.Mutex
	open map[uint]map[string]bool
}

var Sections *sectionStore

// beautyStore holds committed beauty profiles. Draft editing happens on the
// client; an update commits the full profile at once.
type beautyStore struct {
	mu       sync.RWMutex
	profiles map[uint]models.BeautyProfile
}

var BeautyProfiles *beautyStore

func seedProfiles() {
	Sections = &sectionStore{open: make(map[uint]map[string]bool)}
	BeautyProfiles = &beautyStore{profiles: make(map[uint]models.BeautyProfile)}
	BeautyProfiles.profiles[1] = models.BeautyProfile{
		FavTech:      "Daniela",
		NailLength:   "Medium",
		NailShape:    "Almond",
		Finish:       "Glossy",
		FavColors:    []string{"Nudes", "Pinks"},
		FavBrands:    []string{"Kokoist", "OPI"},
		FavService:   "BIAB",
		DesignStyles: []string{"French", "Minimal art"},
	}
}

// IsValidSection reports whether the id names a known profile section.
func IsValidSection(id string) bool {
	return sectionIDs[id]
}

// Open returns the set of sections the user currently has open, sorted order
// left to the caller.
func (s *sectionStore) Open(userID uint) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	open := s.open[userID]
	if open == nil {
		open = defaultOpenSections()
		s.open[userID] = open
	}
	out := make([]string, 0, len(open))
	for id, isOpen := range open {
		if isOpen {
			out = append(out, id)
		}
	}
	return out
}

// Toggle flips one section and returns its new open state. Toggling twice
// restores the original state.
func (s *sectionStore) Toggle(userID uint, sectionID string) (bool, error) {
	if !IsValidSection(sectionID) {
		return false, fmt.Errorf("unknown section %q", sectionID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	open := s.open[userID]
	if open == nil {
		open = defaultOpenSections()
		s.open[userID] = open
	}
	open[sectionID] = !open[sectionID]
	return open[sectionID], nil
}

// Get returns the user's committed beauty profile.
func (s *beautyStore) Get(userID uint) models.BeautyProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profiles[userID]
}

// Put commits a full beauty profile over the previous one.
func (s *beautyStore) Put(userID uint, p models.BeautyProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[userID] = p
}
