package middleware

import "github.com/gofiber/fiber/v2"

// Stable machine-readable error codes exposed alongside the human message.
const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeDuplicateUser     = "DUPLICATE_USER"
	CodeUserNotFound      = "USER_NOT_FOUND"
	CodeFundNotFound      = "FUND_NOT_FOUND"
	CodeOtpNotFound       = "OTP_NOT_FOUND"
	CodeOtpExpired        = "OTP_EXPIRED"
	CodeOtpMismatch       = "OTP_MISMATCH"
	CodeWrongPassword     = "WRONG_PASSWORD"
	CodeInsufficientFunds = "INSUFFICIENT_FUNDS"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeInvalidToken      = "INVALID_TOKEN"
	CodeInternal          = "INTERNAL_ERROR"
)

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ErrorResponse(c *fiber.Ctx, statusCode int, code, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  false,
		"code":    code,
		"message": message,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"status":  false,
		"code":    CodeValidation,
		"message": "Validation failed!",
		"errors":  errors,
	})
}
