package store

import (
	"testing"

	"github.com/nailsalonno5/booking-app/models"
)

func TestGalleryListReturnsCopies(t *testing.T) {
	photos := Gallery.List(1)
	if len(photos) == 0 {
		t.Fatal("seeded gallery is empty")
	}

	photos[0].Service = "Mutated"
	again := Gallery.List(1)
	if again[0].Service == "Mutated" {
		t.Error("List must not expose store state to caller mutation")
	}
}

func TestGalleryAddPrepends(t *testing.T) {
	const userID = 400

	Gallery.Add(userID, models.GalleryPhoto{Service: "Gel Manicure", Tech: "Daniela"})
	newest := Gallery.Add(userID, models.GalleryPhoto{Service: "BIAB Short", Tech: "Tiffany"})

	photos := Gallery.List(userID)
	if len(photos) != 2 {
		t.Fatalf("got %d photos, want 2", len(photos))
	}
	if photos[0].ID != newest.ID {
		t.Error("newest photo should come first")
	}
}
