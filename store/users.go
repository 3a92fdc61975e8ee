package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/nailsalonno5/booking-app/models"
)

// userStore guards the demo user roster; the app ships with a single seeded
// customer and registers new phones against fresh accounts.
type userStore struct {
	mu      sync.RWMutex
	users   map[uint]*models.User
	byPhone map[string]uint
	nextID  uint
}

var Users *userStore

func seedUsers() {
	Users = &userStore{
		users:   make(map[uint]*models.User),
		byPhone: make(map[string]uint),
		nextID:  1,
	}
	Users.create(&models.User{
		Name:           "Sarah",
		Phone:          "5550100123",
		Points:         240,
		MembershipTier: "Gold",
		ReferralCode:   "NO5-SARAH-123",
	})
}

func (s *userStore) create(u *models.User) *models.User {
	u.ID = s.nextID
	s.nextID++
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	s.users[u.ID] = u
	s.byPhone[u.Phone] = u.ID
	return u
}

// Get returns a copy of the user.
func (s *userStore) Get(id uint) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return models.User{}, false
	}
	return *u, true
}

// FindOrCreateByPhone resolves a phone number to a user, registering a new
// account on first login. New accounts start on the base tier with no points.
func (s *userStore) FindOrCreateByPhone(phone string) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := s.byPhone[phone]; ok {
		return *s.users[id]
	}
	u := s.create(&models.User{
		Name:           "Guest",
		Phone:          phone,
		MembershipTier: "Member",
		ReferralCode:   fmt.Sprintf("NO5-GUEST-%d", s.nextID),
	})
	return *u
}

// UpdateName commits a new display name.
func (s *userStore) UpdateName(id uint, name string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return models.User{}, fmt.Errorf("user %d not found", id)
	}
	u.Name = name
	u.UpdatedAt = time.Now()
	return *u, nil
}

// SetProfilePicture stores the uploaded picture URL.
func (s *userStore) SetProfilePicture(id uint, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return fmt.Errorf("user %d not found", id)
	}
	u.ProfilePictureURL = url
	u.UpdatedAt = time.Now()
	return nil
}

// AddPoints credits reward points and returns the new balance.
func (s *userStore) AddPoints(id uint, points int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return 0, fmt.Errorf("user %d not found", id)
	}
	u.Points += points
	u.UpdatedAt = time.Now()
	return u.Points, nil
}
