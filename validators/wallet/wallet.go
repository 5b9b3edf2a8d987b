package walletValidator

import (
	"github.com/Teja3804/asset-reddy/middleware"

	"github.com/gofiber/fiber/v2"
)

// Amount validates deposit/withdrawal bodies. The amount floor is enforced
// here on the server; client-side checks are not trusted.
func Amount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Amount float64 `json:"amount"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeValidation, "Invalid request body!")
		}

		errors := make(map[string]string)

		if reqData.Amount <= 0 {
			errors["amount"] = "Amount must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAmount", reqData)
		return c.Next()
	}
}

// Invest validates investment bodies
func Invest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			FundID uint    `json:"fund_id"`
			Amount float64 `json:"amount"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeValidation, "Invalid request body!")
		}

		errors := make(map[string]string)

		if reqData.FundID == 0 {
			errors["fund_id"] = "Fund id is required!"
		}
		if reqData.Amount <= 0 {
			errors["amount"] = "Amount must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedInvest", reqData)
		return c.Next()
	}
}
