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
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Register(c *fiber.Ctx) error {
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

	db := database.Database.Db

	// Check if username, email, PAN or Aadhar already belong to a user
	if err := db.Where("username = ? OR email = ? OR pan = ? OR aadhar = ?",
		reqData.Username, reqData.Email, reqData.Pan, reqData.Aadhar).
		First(&models.User{}).Error; err == nil {
		return middleware.ErrorResponse(c, fiber.StatusConflict, middleware.CodeDuplicateUser, "User already exists with these credentials")
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternal, "Failed to process your request!")
	}

	countryCode := reqData.CountryCode
	if countryCode == "" {
		countryCode = "+91"
	}

	newUser := models.User{
		Username:    reqData.Username,
		Password:    string(hashedPassword),
		FirstName:   reqData.FirstName,
		LastName:    reqData.LastName,
		Pan:         reqData.Pan,
		Aadhar:      reqData.Aadhar,
		Address:     reqData.Address,
		Email:       reqData.Email,
		Phone:       reqData.Phone,
		CountryCode: countryCode,
	}

	// Create the user and the zero balance row atomically
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newUser).Error; err != nil {
			return err
		}
		balance := models.AvailableFund{UserID: newUser.ID, Amount: 0}
		return tx.Create(&balance).Error
	})
	if err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternal, "Error creating user")
	}

	utils.SendWelcomeEmail(newUser.Email, newUser.FirstName)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", fiber.Map{
		"userId": newUser.ID,
	})
}

func Login(c *fiber.Ctx) error {
	reqData := new(struct {
		Username string `json:"username"`
		Password string `json:"password"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeValidation, "Failed to parse request body!")
	}

	var user models.User
	result := database.Database.Db.Where("username = ? AND is_deleted = ?", reqData.Username, false).First(&user)
	if result.Error != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, middleware.CodeUserNotFound, "User does not exist")
	}

	// Validate password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, middleware.CodeWrongPassword, "Wrong password")
	}

	ip := c.IP()
	if forwarded := c.Get("X-Forwarded-For"); forwarded != "" {
		ip = forwarded
	}

	// Capture login tracking details
	loginTracking := models.LoginTracking{
		UserID:    user.ID,
		IPAddress: ip,
		Device:    c.Get("User-Agent"),
		Timestamp: time.Now(),
	}
	if err := database.Database.Db.Create(&loginTracking).Error; err != nil {
		log.Printf("Error saving login tracking details: %v", err)
	}

	// Generate JWT token
	token, err := middleware.GenerateJWT(user.ID, user.Username)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternal, "Failed to generate token")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":         user.ID,
			"username":   user.Username,
			"first_name": user.FirstName,
		},
	})
}

func LoginHistoryList(c *fiber.Ctx) error {
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

	db := database.Database.Db

	var total int64
	db.Model(&models.LoginTracking{}).Where("user_id = ? AND is_deleted = ?", userId, false).Count(&total)

	var history []models.LoginTracking
	if err := db.Where("user_id = ? AND is_deleted = ?", userId, false).
		Order("timestamp DESC").
		Offset(offset).
		Limit(limit).
		Find(&history).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternal, "Failed to fetch login history!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login history fetched.", fiber.Map{
		"history": history,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
