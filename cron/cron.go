package cron

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/nailsalonno5/booking-app/models"
	"github.com/nailsalonno5/booking-app/store"
	"github.com/nailsalonno5/booking-app/utils"
)

// StartCronJobs initializes and starts the cron scheduler for appointment reminders
func StartCronJobs() {
	c := cron.New()
	// Run every minute to check for appointments in the next hour
	_, err := c.AddFunc("* * * * *", sendAppointmentReminders)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to add cron job")
	}
	c.Start()
	log.Info().Msg("Cron job scheduler started for appointment reminders")
}

// sendAppointmentReminders checks for upcoming appointments and sends reminders
func sendAppointmentReminders() {
	now := time.Now()
	// Look for appointments starting in the next hour
	startWindow := now.Add(55 * time.Minute)
	endWindow := now.Add(65 * time.Minute)

	appointments := store.Appointments.DueForReminder(startWindow, endWindow)
	if len(appointments) == 0 {
		return
	}
	log.Info().Int("count", len(appointments)).Msg("Found appointments for reminders")

	for _, appointment := range appointments {
		if err := sendReminderEmail(&appointment); err != nil {
			log.Error().Err(err).Str("appointment", appointment.ID).Msg("Failed to send reminder")
			continue
		}
		log.Info().Str("appointment", appointment.ID).Msg("Sent reminder")
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(appointment *models.Appointment) error {
	user, ok := store.Users.Get(appointment.UserID)
	if !ok || user.Email == "" {
		// No email on file, nothing to send
		return nil
	}

	subject := fmt.Sprintf("Reminder: Upcoming Appointment - %s", appointment.Service)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your upcoming appointment scheduled in one hour.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Nail Tech:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
		</ul>
		<p>Please arrive on time. If you need to reschedule or cancel, contact us as soon as possible.</p>
		<p>Best regards,</p>
		<p>Nail Salon No.5</p>
	`, user.Name, appointment.Service, appointment.Tech,
		appointment.Date.Format("Mon, Jan 2"),
		utils.FormatDisplayTime(appointment.Time))

	return utils.SendEmail(user.Email, subject, body)
}
