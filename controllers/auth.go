package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/nailsalonno5/booking-app/middleware"
	"github.com/nailsalonno5/booking-app/redis"
	"github.com/nailsalonno5/booking-app/store"
	"github.com/nailsalonno5/booking-app/utils"
)

// Login gate states. The gate is an explicit three-state machine:
// loggedOut -> verify (code requested) -> loggedIn (code verified), with
// verify -> loggedOut when the customer edits the phone number.
const (
	StateLoggedOut = "loggedOut"
	StateVerify    = "verify"
	StateLoggedIn  = "loggedIn"
)

const (
	otpTTL   = 5 * time.Minute
	stateTTL = 24 * time.Hour
)

func otpKey(phone string) string   { return "auth:otp:" + phone }
func stateKey(phone string) string { return "auth:state:" + phone }

// RequestCode starts the login gate: it generates a verification code for
// the phone number and moves the gate to the verify state. The SMS send is a
// stub, so the code is echoed back for the demo client.
func RequestCode(c *fiber.Ctx) error {
	type RequestCodeInput struct {
		Phone string `json:"phone"`
	}

	input := new(RequestCodeInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	digits := utils.DigitsOnly(input.Phone)
	if len(digits) < 10 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please enter a valid phone number",
		})
	}
	phone := digits[:10]

	code := utils.GenerateOTP()
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate verification code",
		})
	}

	if err := redis.Client.Set(redis.Ctx, otpKey(phone), string(hash), otpTTL).Err(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to store verification code",
		})
	}
	redis.Client.Set(redis.Ctx, stateKey(phone), StateVerify, stateTTL)

	utils.SendSMS(phone, "Your Nail Salon No.5 verification code is "+code)

	return c.JSON(fiber.Map{
		"state":     StateVerify,
		"phone":     phone,
		"demo_code": code, // SMS delivery is stubbed; the demo client reads the code from here
	})
}

// VerifyCode completes the login gate: a matching code logs the customer in
// and issues the session tokens.
func VerifyCode(c *fiber.Ctx) error {
	type VerifyInput struct {
		Phone string `json:"phone"`
		Code  string `json:"code"`
	}

	input := new(VerifyInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	digits := utils.DigitsOnly(input.Phone)
	if len(digits) < 10 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please enter a valid phone number",
		})
	}
	phone := digits[:10]
	if len(input.Code) < 4 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Code must be at least 4 digits",
		})
	}

	hash, err := redis.Client.Get(redis.Ctx, otpKey(phone)).Result()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Code expired. Please request a new one.",
		})
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(input.Code)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Incorrect code",
		})
	}

	redis.Client.Del(redis.Ctx, otpKey(phone))
	redis.Client.Set(redis.Ctx, stateKey(phone), StateLoggedIn, stateTTL)

	user := store.Users.FindOrCreateByPhone(phone)

	secret := middleware.Secret()

	claims := jwt.MapClaims{
		"id":    user.ID,
		"phone": user.Phone,
		"exp":   time.Now().Add(time.Hour * 24).Unix(), // 24 hour expiration
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	refreshClaims := jwt.MapClaims{
		"id":    user.ID,
		"phone": user.Phone,
		"exp":   time.Now().Add(time.Hour * 24 * 7).Unix(), // 7 day expiration
	}
	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshTokenString, err := refreshToken.SignedString([]byte(secret))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate refresh token",
		})
	}

	return c.JSON(fiber.Map{
		"state":        StateLoggedIn,
		"token":        tokenString,
		"refreshToken": refreshTokenString,
		"user": fiber.Map{
			"id":    user.ID,
			"name":  user.Name,
			"phone": user.Phone,
		},
	})
}

// CancelVerification handles "edit phone number": the gate drops back to
// loggedOut and the pending code is discarded.
func CancelVerification(c *fiber.Ctx) error {
	type CancelInput struct {
		Phone string `json:"phone"`
	}

	input := new(CancelInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	phone := utils.DigitsOnly(input.Phone)
	redis.Client.Del(redis.Ctx, otpKey(phone))
	redis.Client.Del(redis.Ctx, stateKey(phone))

	return c.JSON(fiber.Map{
		"state": StateLoggedOut,
	})
}

// GetGateState reports where a phone number sits in the login gate.
func GetGateState(c *fiber.Ctx) error {
	phone := utils.DigitsOnly(c.Query("phone"))
	state, err := redis.Client.Get(redis.Ctx, stateKey(phone)).Result()
	if err != nil {
		state = StateLoggedOut
	}
	return c.JSON(fiber.Map{
		"state": state,
	})
}

// GetCurrentUser returns the logged-in customer.
func GetCurrentUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	user, ok := store.Users.Get(userID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}
	return c.JSON(user)
}

// RefreshToken generates a new access token using a refresh token
func RefreshToken(c *fiber.Ctx) error {
	type RefreshRequest struct {
		RefreshToken string `json:"refreshToken"`
	}

	refreshRequest := new(RefreshRequest)
	if err := c.BodyParser(refreshRequest); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	secret := middleware.Secret()

	token, err := jwt.Parse(refreshRequest.RefreshToken, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid refresh token",
		})
	}

	claims := token.Claims.(jwt.MapClaims)
	newClaims := jwt.MapClaims{
		"id":    claims["id"],
		"phone": claims["phone"],
		"exp":   time.Now().Add(time.Hour * 24).Unix(),
	}

	newToken := jwt.NewWithClaims(jwt.SigningMethodHS256, newClaims)
	tokenString, err := newToken.SignedString([]byte(secret))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	return c.JSON(fiber.Map{
		"token": tokenString,
	})
}
