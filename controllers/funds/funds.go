package fundController

import (
	"time"

	"github.com/Teja3804/asset-reddy/database"
	"github.com/Teja3804/asset-reddy/middleware"
	"github.com/Teja3804/asset-reddy/models"

	"github.com/gofiber/fiber/v2"
)

// FundList returns the fund catalog. Public route.
func FundList(c *fiber.Ctx) error {
	var funds []models.Fund
	if err := database.Database.Db.Find(&funds).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternal, "Failed to fetch funds!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Funds fetched.", funds)
}

// Invest debits the available balance, records the position and appends an
// investment ledger row. The position's current value is priced once here
// from the fund's yearly return.
func Invest(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedInvest").(*struct {
		FundID uint    `json:"fund_id"`
		Amount float64 `json:"amount"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeValidation, "Invalid request data!")
	}

	db := database.Database.Db

	var fund models.Fund
	if err := db.Where("id = ?", reqData.FundID).First(&fund).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.CodeFundNotFound, "Fund not found")
	}

	tx := db.Begin()

	var balance models.AvailableFund
	if err := tx.Where("user_id = ?", userId).First(&balance).Error; err != nil {
		tx.Rollback()
		return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.CodeUserNotFound, "Balance record not found!")
	}

	if balance.Amount < reqData.Amount {
		tx.Rollback()
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInsufficientFunds, "Insufficient funds")
	}

	balance.Amount -= reqData.Amount
	if err := tx.Save(&balance).Error; err != nil {
		tx.Rollback()
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternal, "Investment failed")
	}

	investment := models.Investment{
		UserID:         userId,
		FundID:         fund.ID,
		AmountInvested: reqData.Amount,
		CurrentValue:   reqData.Amount * (1 + fund.YearlyReturn/100),
		InvestmentDate: time.Now(),
	}
	if err := tx.Create(&investment).Error; err != nil {
		tx.Rollback()
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternal, "Investment failed")
	}

	transaction := models.Transactions{
		UserID:          userId,
		Type:            models.TransactionTypeInvestment,
		Amount:          reqData.Amount,
		Description:     "Invested in " + fund.FundName,
		TransactionDate: time.Now(),
	}
	if err := tx.Create(&transaction).Error; err != nil {
		tx.Rollback()
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternal, "Failed to create transaction!")
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Investment successful", fiber.Map{
		"investmentId":     investment.ID,
		"currentValue":     investment.CurrentValue,
		"available_amount": balance.Amount,
	})
}

// UserInvestments returns the user's positions joined with fund details
func UserInvestments(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var investments []struct {
		models.Investment
		FundName     string  `json:"fund_name"`
		YearlyReturn float64 `json:"yearly_return"`
	}

	if err := database.Database.Db.
		Table("investments").
		Select("investments.*, funds.fund_name, funds.yearly_return").
		Joins("JOIN funds ON funds.id = investments.fund_id").
		Where("investments.user_id = ?", userId).
		Order("investments.investment_date DESC").
		Scan(&investments).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternal, "Failed to fetch investments!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Investments fetched.", investments)
}
