package authController

import (
	"log"
	"time"

	"github.com/Teja3804/asset-reddy/config"
	"github.com/Teja3804/asset-reddy/database"
	"github.com/Teja3804/asset-reddy/middleware"
	"github.com/Teja3804/asset-reddy/models"
	"github.com/Teja3804/asset-reddy/utils"

	"github.com/gofiber/fiber/v2"
)

// issueChallenge replaces any live challenge for the key with a fresh code.
func issueChallenge(key, channel string) (models.OTP, error) {
	db := database.Database.Db

	// One live challenge per key
	if err := db.Unscoped().Where("key = ?", key).Delete(&models.OTP{}).Error; err != nil {
		return models.OTP{}, err
	}

	challenge := models.OTP{
		Key:       key,
		Channel:   channel,
		Code:      utils.GenerateOTP(),
		ExpiresAt: time.Now().Add(time.Duration(config.AppConfig.OtpExpiryMinutes) * time.Minute),
	}
	if err := db.Create(&challenge).Error; err != nil {
		return models.OTP{}, err
	}
	return challenge, nil
}

// verifyChallenge checks a code against the live challenge for the key.
// It returns an error code from the middleware taxonomy, or "" on success.
// A successful verify consumes the challenge; a mismatch leaves it alive
// until expiry.
func verifyChallenge(key, code string) string {
	db := database.Database.Db

	var challenge models.OTP
	if err := db.Where("key = ?", key).First(&challenge).Error; err != nil {
		return middleware.CodeOtpNotFound
	}

	if challenge.ExpiresAt.Before(time.Now()) {
		db.Unscoped().Delete(&challenge)
		return middleware.CodeOtpExpired
	}

	if challenge.Code != code {
		return middleware.CodeOtpMismatch
	}

	db.Unscoped().Delete(&challenge)
	return ""
}

func SendEmailOTP(c *fiber.Ctx) error {
	reqData := new(struct {
		Email string `json:"email"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeValidation, "Failed to parse request body!")
	}

	challenge, err := issueChallenge(reqData.Email, models.OTPChannelEmail)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternal, "Failed to create OTP!")
	}

	// Delivery goes through the mail channel only; the code is never
	// echoed in the response.
	go func(code, email string) {
		if err := utils.SendOTPEmail(code, email); err != nil {
			log.Printf("Failed to send OTP email to %s: %v", email, err)
		}
	}(challenge.Code, reqData.Email)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "OTP sent successfully.", nil)
}

func VerifyEmailOTP(c *fiber.Ctx) error {
	reqData := new(struct {
		Email string `json:"email"`
		Otp   string `json:"otp"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeValidation, "Failed to parse request body!")
	}

	switch verifyChallenge(reqData.Email, reqData.Otp) {
	case middleware.CodeOtpNotFound:
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeOtpNotFound, "OTP expired or not found")
	case middleware.CodeOtpExpired:
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeOtpExpired, "OTP expired")
	case middleware.CodeOtpMismatch:
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeOtpMismatch, "Invalid OTP")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Email OTP verified successfully", nil)
}

func SendPhoneOTP(c *fiber.Ctx) error {
	reqData := new(struct {
		Phone       string `json:"phone"`
		CountryCode string `json:"country_code"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeValidation, "Failed to parse request body!")
	}

	key := utils.OtpPhoneKey(reqData.CountryCode, reqData.Phone)
	challenge, err := issueChallenge(key, models.OTPChannelPhone)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternal, "Failed to create OTP!")
	}

	go func(code, countryCode, phone string) {
		if err := utils.SendOTPToMobile(countryCode, phone, code); err != nil {
			log.Printf("Failed to send OTP to %s%s: %v", countryCode, phone, err)
		}
	}(challenge.Code, reqData.CountryCode, reqData.Phone)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "OTP sent successfully.", nil)
}

func VerifyPhoneOTP(c *fiber.Ctx) error {
	reqData := new(struct {
		Phone       string `json:"phone"`
		CountryCode string `json:"country_code"`
		Otp         string `json:"otp"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeValidation, "Failed to parse request body!")
	}

	key := utils.OtpPhoneKey(reqData.CountryCode, reqData.Phone)
	switch verifyChallenge(key, reqData.Otp) {
	case middleware.CodeOtpNotFound:
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeOtpNotFound, "OTP expired or not found")
	case middleware.CodeOtpExpired:
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeOtpExpired, "OTP expired")
	case middleware.CodeOtpMismatch:
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeOtpMismatch, "Invalid OTP")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Phone OTP verified successfully", nil)
}
