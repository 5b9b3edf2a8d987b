package supportControllers

import (
	"github.com/Teja3804/asset-reddy/database"
	"github.com/Teja3804/asset-reddy/middleware"
	"github.com/Teja3804/asset-reddy/models"
	"github.com/Teja3804/asset-reddy/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateSupportTicket(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, middleware.CodeUnauthorized, "Unauthorized!")
	}

	// Check if user exists
	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, middleware.CodeUserNotFound, "User not found!")
	}

	reqData, ok := c.Locals("validatedSupportTicket").(*struct {
		Subject string `json:"subject"`
		Message string `json:"message"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeValidation, "Invalid request data!")
	}

	ticket := models.SupportTicket{
		TicketNumber: utils.GenerateTicketNumber(),
		UserID:       userId,
		Subject:      reqData.Subject,
		Message:      reqData.Message,
		Status:       "open",
	}

	if err := database.Database.Db.Create(&ticket).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternal, "Failed to create ticket")
	}

	// Notify the support desk; a mail failure never fails the ticket
	utils.SendSupportTicketEmail(ticket.TicketNumber, user.Username, reqData.Subject, reqData.Message)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Ticket created successfully", fiber.Map{
		"ticketNumber": ticket.TicketNumber,
	})
}

func TicketList(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, middleware.CodeUnauthorized, "Unauthorized!")
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.SupportTicket{}).Where("user_id = ? AND is_deleted = ?", userId, false)

	var total int64
	db.Count(&total)

	var tickets []models.SupportTicket
	if err := db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&tickets).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternal, "Failed to fetch tickets!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tickets fetched successfully!", fiber.Map{
		"tickets": tickets,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
