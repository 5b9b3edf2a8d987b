package authValidator

import (
	"regexp"
	"strings"

	"github.com/Teja3804/asset-reddy/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// Helper to validate email format
func isValidEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

// Helper to validate mobile number format
func isValidMobile(mobile string) bool {
	re := regexp.MustCompile(`^\d{10}$`)
	return re.MatchString(mobile)
}

// Helper to validate PAN format (e.g. ABCDE1234F)
func isValidPan(pan string) bool {
	re := regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	return re.MatchString(pan)
}

// Helper to validate Aadhar format (12 digits)
func isValidAadhar(aadhar string) bool {
	re := regexp.MustCompile(`^\d{12}$`)
	return re.MatchString(aadhar)
}

// Helper to validate country code format (e.g. +91)
func isValidCountryCode(code string) bool {
	re := regexp.MustCompile(`^\+\d{1,4}$`)
	return re.MatchString(code)
}

// Register validator middleware
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Username    string `json:"username"`
			Password    string `json:"password"`
			FirstName   string `json:"first_name"`
			LastName    string `json:"last_name"`
			Pan         string `json:"pan"`
			Aadhar      string `json:"aadhar"`
			Address     string `json:"address"`
			Email       string `json:"email"`
			Phone       string `json:"phone"`
			CountryCode string `json:"country_code"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeValidation, "Invalid request body!")
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Username) == "" {
			errors["username"] = "Username is required!"
		}
		if len(strings.TrimSpace(reqData.Password)) < 8 {
			errors["password"] = "Password must be at least 8 characters long!"
		}
		if strings.TrimSpace(reqData.FirstName) == "" {
			errors["first_name"] = "First name is required!"
		}
		if strings.TrimSpace(reqData.LastName) == "" {
			errors["last_name"] = "Last name is required!"
		}
		if !isValidPan(reqData.Pan) {
			errors["pan"] = "Invalid PAN!"
		}
		if !isValidAadhar(reqData.Aadhar) {
			errors["aadhar"] = "Invalid Aadhar number!"
		}
		if strings.TrimSpace(reqData.Address) == "" {
			errors["address"] = "Address is required!"
		}
		if !isValidEmail(reqData.Email) {
			errors["email"] = "Invalid email!"
		}
		if !isValidMobile(reqData.Phone) {
			errors["phone"] = "Invalid phone number!"
		}
		if reqData.CountryCode != "" && !isValidCountryCode(reqData.CountryCode) {
			errors["country_code"] = "Invalid country code!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Username string `json:"username"`
			Password string `json:"password"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeValidation, "Invalid request body!")
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Username) == "" {
			errors["username"] = "Username is required!"
		}
		if reqData.Password == "" {
			errors["password"] = "Password is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}

// SendEmailOTP validator middleware
func SendEmailOTP() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email string `json:"email"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeValidation, "Invalid request body!")
		}

		errors := make(map[string]string)

		if !isValidEmail(reqData.Email) {
			errors["email"] = "Invalid email!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}

// VerifyEmailOTP validator middleware
func VerifyEmailOTP() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email string `json:"email"`
			Otp   string `json:"otp"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeValidation, "Invalid request body!")
		}

		errors := make(map[string]string)

		if !isValidEmail(reqData.Email) {
			errors["email"] = "Invalid email!"
		}
		if reqData.Otp == "" {
			errors["otp"] = "OTP code is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}

// SendPhoneOTP validator middleware
func SendPhoneOTP() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Phone       string `json:"phone"`
			CountryCode string `json:"country_code"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeValidation, "Invalid request body!")
		}

		errors := make(map[string]string)

		if !isValidMobile(reqData.Phone) {
			errors["phone"] = "Invalid phone number!"
		}
		if !isValidCountryCode(reqData.CountryCode) {
			errors["country_code"] = "Invalid country code!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}

// VerifyPhoneOTP validator middleware
func VerifyPhoneOTP() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Phone       string `json:"phone"`
			CountryCode string `json:"country_code"`
			Otp         string `json:"otp"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeValidation, "Invalid request body!")
		}

		errors := make(map[string]string)

		if !isValidMobile(reqData.Phone) {
			errors["phone"] = "Invalid phone number!"
		}
		if !isValidCountryCode(reqData.CountryCode) {
			errors["country_code"] = "Invalid country code!"
		}
		if reqData.Otp == "" {
			errors["otp"] = "OTP code is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}
