package store

import (
	"sort"
	"testing"
)

func TestDefaultOpenSections(t *testing.T) {
	open := Sections.Open(200)
	sort.Strings(open)
	want := []string{"appointments", "gallery", "invite"}
	if len(open) != len(want) {
		t.Fatalf("got %v, want %v", open, want)
	}
	for i := range want {
		if open[i] != want[i] {
			t.Fatalf("got %v, want %v", open, want)
		}
	}
}

func TestToggleSectionTwiceRestoresState(t *testing.T) {
	const userID = 201

	nowOpen, err := Sections.Toggle(userID, "rewards")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !nowOpen {
		t.Error("rewards starts closed; first toggle should open it")
	}

	nowOpen, err = Sections.Toggle(userID, "rewards")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if nowOpen {
		t.Error("second toggle should close it again")
	}
}

func TestToggleUnknownSection(t *testing.T) {
	if _, err := Sections.Toggle(202, "bogus"); err == nil {
		t.Error("expected error for unknown section")
	}
}

func TestBeautyProfileFullCommit(t *testing.T) {
	const userID = 203

	p := BeautyProfiles.Get(userID)
	p.NailShape = "Coffin"
	p.FavColors = []string{"Reds"}
	BeautyProfiles.Put(userID, p)

	got := BeautyProfiles.Get(userID)
	if got.NailShape != "Coffin" || len(got.FavColors) != 1 {
		t.Errorf("profile not committed: %+v", got)
	}
}
