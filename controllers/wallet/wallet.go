package walletController

import (
	"time"

	"github.com/Teja3804/asset-reddy/database"
	"github.com/Teja3804/asset-reddy/middleware"
	"github.com/Teja3804/asset-reddy/models"

	"github.com/gofiber/fiber/v2"
)

// AvailableFunds returns the user's uninvested cash balance
func AvailableFunds(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var balance models.AvailableFund
	if err := database.Database.Db.Where("user_id = ?", userId).First(&balance).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Available funds fetched.", fiber.Map{
			"available_amount": 0,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Available funds fetched.", fiber.Map{
		"available_amount": balance.Amount,
	})
}

// AddFunds credits the available balance and appends a deposit ledger row
func AddFunds(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedAmount").(*struct {
		Amount float64 `json:"amount"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeValidation, "Invalid request data!")
	}

	db := database.Database.Db

	var balance models.AvailableFund
	if err := db.Where("user_id = ?", userId).First(&balance).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.CodeUserNotFound, "Balance record not found!")
	}

	tx := db.Begin()

	balance.Amount += reqData.Amount
	if err := tx.Save(&balance).Error; err != nil {
		tx.Rollback()
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternal, "Failed to add funds")
	}

	transaction := models.Transactions{
		UserID:          userId,
		Type:            models.TransactionTypeDeposit,
		Amount:          reqData.Amount,
		Description:     "Fund deposit",
		TransactionDate: time.Now(),
	}
	if err := tx.Create(&transaction).Error; err != nil {
		tx.Rollback()
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternal, "Failed to create transaction!")
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Funds added successfully", fiber.Map{
		"available_amount": balance.Amount,
	})
}

// Withdraw debits the available balance and appends a withdrawal ledger row
func Withdraw(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedAmount").(*struct {
		Amount float64 `json:"amount"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeValidation, "Invalid request data!")
	}

	db := database.Database.Db

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
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternal, "Withdrawal failed")
	}

	transaction := models.Transactions{
		UserID:          userId,
		Type:            models.TransactionTypeWithdrawal,
		Amount:          reqData.Amount,
		Description:     "Fund withdrawal",
		TransactionDate: time.Now(),
	}
	if err := tx.Create(&transaction).Error; err != nil {
		tx.Rollback()
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternal, "Failed to create transaction!")
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Withdrawal successful", fiber.Map{
		"available_amount": balance.Amount,
	})
}

// TransactionHistory returns the user's ledger, newest first
func TransactionHistory(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db

	query := db.Model(&models.Transactions{}).Where("user_id = ? AND is_deleted = ?", userId, false)

	var total int64
	query.Count(&total)

	var transactions []models.Transactions
	if err := query.
		Order("transaction_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternal, "Failed to fetch history!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Transaction history fetched.", fiber.Map{
		"transactions": transactions,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
