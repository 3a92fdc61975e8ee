package controllers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/nailsalonno5/booking-app/store"
)

func TestMain(m *testing.M) {
	store.Init()
	os.Exit(m.Run())
}

func newBookingApp() *fiber.App {
	app := fiber.New()
	app.Get("/booking/slots", GetTimeSlots)
	app.Get("/booking/calendar", GetCalendar)
	app.Get("/booking/quote", GetQuote)
	app.Post("/booking/quote/discount", ApplyDiscount)
	return app
}

func doJSON(t *testing.T, app *fiber.App, req *http.Request, out any) int {
	t.Helper()
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		t.Fatalf("unmarshal %q: %v", body, err)
	}
	return resp.StatusCode
}

func TestGetQuoteTotals(t *testing.T) {
	app := newBookingApp()

	var quote struct {
		Services      string  `json:"services"`
		Tech          string  `json:"tech"`
		TotalDuration int     `json:"total_duration"`
		OriginalPrice float64 `json:"original_price"`
		PointsEarned  int     `json:"points_earned"`
	}
	req := httptest.NewRequest(http.MethodGet,
		"/booking/quote?serviceIds=biab-short,spa-pedi&techId=daniela&date=2026-09-10&time=14:00", nil)
	if code := doJSON(t, app, req, &quote); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}

	if quote.OriginalPrice != 125 {
		t.Errorf("original price = %v, want 125", quote.OriginalPrice)
	}
	if quote.TotalDuration != 135 {
		t.Errorf("total duration = %v, want 135", quote.TotalDuration)
	}
	if quote.Services != "BIAB Short, SPA Pedicure" {
		t.Errorf("services = %q", quote.Services)
	}
	if quote.Tech != "Daniela" {
		t.Errorf("tech = %q", quote.Tech)
	}
	if quote.PointsEarned != 13 {
		t.Errorf("points earned = %v, want 13", quote.PointsEarned)
	}

	// same set in the other order must price identically
	req = httptest.NewRequest(http.MethodGet,
		"/booking/quote?serviceIds=spa-pedi,biab-short", nil)
	var reordered struct {
		OriginalPrice float64 `json:"original_price"`
		TotalDuration int     `json:"total_duration"`
	}
	doJSON(t, app, req, &reordered)
	if reordered.OriginalPrice != 125 || reordered.TotalDuration != 135 {
		t.Errorf("reordered totals = %v / %v", reordered.OriginalPrice, reordered.TotalDuration)
	}
}

func TestGetQuoteEmptySelection(t *testing.T) {
	app := newBookingApp()

	var quote struct {
		Services      string  `json:"services"`
		Tech          string  `json:"tech"`
		DateDisplay   string  `json:"date_display"`
		TimeDisplay   string  `json:"time_display"`
		OriginalPrice float64 `json:"original_price"`
	}
	req := httptest.NewRequest(http.MethodGet, "/booking/quote", nil)
	doJSON(t, app, req, &quote)

	for field, got := range map[string]string{
		"services":     quote.Services,
		"tech":         quote.Tech,
		"date_display": quote.DateDisplay,
		"time_display": quote.TimeDisplay,
	} {
		if got != "Not selected" {
			t.Errorf("%s = %q, want \"Not selected\"", field, got)
		}
	}
	if quote.OriginalPrice != 0 {
		t.Errorf("original price = %v, want 0", quote.OriginalPrice)
	}
}

func TestGetQuoteSkipsUnknownServices(t *testing.T) {
	app := newBookingApp()

	var quote struct {
		Services      string  `json:"services"`
		OriginalPrice float64 `json:"original_price"`
	}
	req := httptest.NewRequest(http.MethodGet,
		"/booking/quote?serviceIds=biab-short,not-a-service", nil)
	doJSON(t, app, req, &quote)

	if quote.Services != "BIAB Short" {
		t.Errorf("services = %q", quote.Services)
	}
	if quote.OriginalPrice != 65 {
		t.Errorf("original price = %v, want 65", quote.OriginalPrice)
	}
}

func TestApplyDiscountPromoCode(t *testing.T) {
	app := newBookingApp()

	req := httptest.NewRequest(http.MethodPost,
		"/booking/quote/discount?serviceIds=biab-short", strings.NewReader(`{"code":"WELCOME10"}`))
	req.Header.Set("Content-Type", "application/json")

	var out struct {
		Discount struct {
			Code   string  `json:"code"`
			Amount float64 `json:"amount"`
		} `json:"discount"`
		OriginalPrice float64 `json:"original_price"`
		FinalPrice    float64 `json:"final_price"`
		HighlightMs   int64   `json:"highlight_ms"`
	}
	if code := doJSON(t, app, req, &out); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}

	if out.Discount.Amount != 6.5 {
		t.Errorf("discount amount = %v, want 6.5", out.Discount.Amount)
	}
	if out.FinalPrice != 58.5 {
		t.Errorf("final price = %v, want 58.5", out.FinalPrice)
	}
	if out.HighlightMs != 2000 {
		t.Errorf("highlight_ms = %v, want 2000", out.HighlightMs)
	}
}

func TestApplyDiscountErrors(t *testing.T) {
	app := newBookingApp()

	tests := []struct {
		name string
		body string
		want string
	}{
		{"empty code", `{"code":""}`, "Please enter a code"},
		{"unknown code", `{"code":"NOPE"}`, "Invalid code"},
		{"points out of range", `{"code":"1001"}`, "Invalid points amount"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost,
				"/booking/quote/discount?serviceIds=biab-short", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			var out struct {
				Error string `json:"error"`
			}
			if code := doJSON(t, app, req, &out); code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", code)
			}
			if out.Error != tt.want {
				t.Errorf("error = %q, want %q", out.Error, tt.want)
			}
		})
	}
}

func TestGetTimeSlotsPastDate(t *testing.T) {
	app := newBookingApp()

	req := httptest.NewRequest(http.MethodGet, "/booking/slots?date=2020-01-01", nil)
	var out struct {
		Error string `json:"error"`
	}
	if code := doJSON(t, app, req, &out); code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", code)
	}
	if out.Error != "Cannot select a date in the past" {
		t.Errorf("error = %q", out.Error)
	}
}

func TestGetTimeSlotsGrid(t *testing.T) {
	app := newBookingApp()

	req := httptest.NewRequest(http.MethodGet, "/booking/slots?date=2030-06-15", nil)
	var out struct {
		Slots []string `json:"slots"`
	}
	if code := doJSON(t, app, req, &out); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if len(out.Slots) != 18 {
		t.Fatalf("got %d slots, want 18", len(out.Slots))
	}
	if out.Slots[0] != "9:00" || out.Slots[17] != "17:30" {
		t.Errorf("slot bounds = %q .. %q", out.Slots[0], out.Slots[17])
	}
}

func newConfirmApp(userID uint) *fiber.App {
	app := fiber.New()
	app.Post("/booking/confirm", func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return ConfirmBooking(c)
	})
	return app
}

func TestConfirmBookingCreatesAppointment(t *testing.T) {
	app := newConfirmApp(1)
	before, ok := store.Users.Get(1)
	if !ok {
		t.Fatal("seeded user missing")
	}

	body := `{"service_ids":["biab-short","spa-pedi"],"tech_id":"daniela","date":"2030-06-15","time":"14:00","discount_code":"WELCOME10"}`
	req := httptest.NewRequest(http.MethodPost, "/booking/confirm", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	var out struct {
		Appointment struct {
			ID            string  `json:"id"`
			Status        string  `json:"status"`
			Service       string  `json:"service"`
			OriginalPrice float64 `json:"original_price"`
			FinalPrice    float64 `json:"final_price"`
		} `json:"appointment"`
		Discount      string `json:"discount"`
		PointsEarned  int    `json:"points_earned"`
		PointsBalance int    `json:"points_balance"`
	}
	if code := doJSON(t, app, req, &out); code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", code)
	}

	if out.Appointment.Status != "upcoming" {
		t.Errorf("status = %q, want upcoming", out.Appointment.Status)
	}
	if out.Appointment.Service != "BIAB Short, SPA Pedicure" {
		t.Errorf("service = %q", out.Appointment.Service)
	}
	if out.Appointment.OriginalPrice != 125 {
		t.Errorf("original price = %v, want 125", out.Appointment.OriginalPrice)
	}
	if out.Appointment.FinalPrice != 112.5 {
		t.Errorf("final price = %v, want 112.5", out.Appointment.FinalPrice)
	}
	if out.Discount != "WELCOME10" {
		t.Errorf("discount = %q, want WELCOME10", out.Discount)
	}
	// points accrue on the pre-discount price
	if out.PointsEarned != 13 {
		t.Errorf("points earned = %v, want 13", out.PointsEarned)
	}
	if out.PointsBalance != before.Points+13 {
		t.Errorf("points balance = %v, want %v", out.PointsBalance, before.Points+13)
	}

	if _, ok := store.Appointments.Get(out.Appointment.ID); !ok {
		t.Error("appointment not stored")
	}
}

func TestConfirmBookingValidation(t *testing.T) {
	app := newConfirmApp(1)

	tests := []struct {
		name string
		body string
		want string
	}{
		{"no services", `{"service_ids":[],"date":"2030-06-15","time":"14:00"}`, "Please select at least one service"},
		{"past date", `{"service_ids":["biab-short"],"date":"2020-01-01","time":"14:00"}`, "Cannot select a date in the past"},
		{"off-grid time", `{"service_ids":["biab-short"],"date":"2030-06-15","time":"14:15"}`, "Invalid time slot"},
		{"bad discount", `{"service_ids":["biab-short"],"date":"2030-06-15","time":"14:00","discount_code":"NOPE"}`, "Invalid code"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/booking/confirm", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			var out struct {
				Error string `json:"error"`
			}
			if code := doJSON(t, app, req, &out); code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", code)
			}
			if out.Error != tt.want {
				t.Errorf("error = %q, want %q", out.Error, tt.want)
			}
		})
	}
}

func TestConfirmBookingUnknownUserLeavesNoState(t *testing.T) {
	const userID = 999
	app := newConfirmApp(userID)

	body := `{"service_ids":["biab-short"],"tech_id":"daniela","date":"2030-06-15","time":"14:00"}`
	req := httptest.NewRequest(http.MethodPost, "/booking/confirm", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	var out struct {
		Error string `json:"error"`
	}
	if code := doJSON(t, app, req, &out); code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", code)
	}
	if got := store.Appointments.Upcoming(userID); len(got) != 0 {
		t.Errorf("got %d stored appointments for an unknown user, want 0", len(got))
	}
}

func TestGetCalendarRejectsBadMonth(t *testing.T) {
	app := newBookingApp()

	req := httptest.NewRequest(http.MethodGet, "/booking/calendar?year=2026&month=13", nil)
	var out struct {
		Error string `json:"error"`
	}
	if code := doJSON(t, app, req, &out); code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", code)
	}
}
