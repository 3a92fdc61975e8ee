package store

import (
	"sync"

	"github.com/nailsalonno5/booking-app/models"
	"github.com/nailsalonno5/booking-app/utils"
)

type galleryStore struct {
	mu     sync.RWMutex
	photos map[uint][]models.GalleryPhoto
}

var Gallery *galleryStore

func seedGallery() {
	Gallery = &galleryStore{photos: make(map[uint][]models.GalleryPhoto)}
	Gallery.photos[1] = []models.GalleryPhoto{
		{ID: "1", Date: "Dec 18, 2025", Service: "BIAB Refill", Tech: "Tiffany", ImageURL: "/assets/images/biab-short.webp"},
		{ID: "2", Date: "Dec 5, 2025", Service: "Gel-X Extensions", Tech: "Jenny", ImageURL: "/assets/images/gel-x-extensions.jpg"},
		{ID: "3", Date: "Nov 28, 2025", Service: "BIAB Medium", Tech: "Tiffany", ImageURL: "/assets/images/biab-medium.webp"},
		{ID: "4", Date: "Nov 15, 2025", Service: "BIAB French", Tech: "Daniela", ImageURL: "/assets/images/biab-french.jpg"},
		{ID: "5", Date: "Nov 2, 2025", Service: "Gel Manicure", Tech: "Daniela", ImageURL: "/images/gallery/photo-5.jpg"},
		{ID: "6", Date: "Oct 20, 2025", Service: "Gel-X Extensions", Tech: "Jenny", ImageURL: "/images/gallery/photo-6.jpg"},
	}
}

// List returns copies of the user's gallery photos.
func (s *galleryStore) List(userID uint) []models.GalleryPhoto {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.GalleryPhoto, len(s.photos[userID]))
	copy(out, s.photos[userID])
	return out
}

// Add appends an uploaded photo to the user's gallery.
func (s *galleryStore) Add(userID uint, photo models.GalleryPhoto) models.GalleryPhoto {
	s.mu.Lock()
	defer s.mu.Unlock()
	photo.ID = utils.GenerateUUID()
	s.photos[userID] = append([]models.GalleryPhoto{photo}, s.photos[userID]...)
	return photo
}
