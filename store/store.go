package store

import (
	"github.com/rs/zerolog/log"
)

// Init seeds every in-memory store. All catalog, roster and history data is
// hard-coded; there is no database behind the app.
func Init() {
	seedCatalog()
	seedUsers()
	seedAppointments()
	seedCards()
	seedProfiles()
	seedRewards()
	seedReferrals()
	seedGallery()

	log.Info().
		Int("services", len(services)).
		Int("technicians", len(technicians)).
		Msg("In-memory stores seeded")
}
