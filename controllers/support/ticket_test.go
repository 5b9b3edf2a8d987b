package supportControllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Teja3804/asset-reddy/config"
	"github.com/Teja3804/asset-reddy/database"
	"github.com/Teja3804/asset-reddy/middleware"
	"github.com/Teja3804/asset-reddy/models"
	supportRoutes "github.com/Teja3804/asset-reddy/routers/supportRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type apiResponse struct {
	Status  bool            `json:"status"`
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupTest(t *testing.T) (*fiber.App, string, uint) {
	t.Helper()

	config.AppConfig = &config.Config{
		Port:             "3000",
		JWTKey:           "test-secret",
		SaltRound:        4,
		OtpLength:        6,
		OtpExpiryMinutes: 10,
		SupportEmail:     "support@example.com",
	}

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	user := models.User{
		Username:  "alice",
		Password:  "x",
		FirstName: "Alice",
		LastName:  "Reddy",
		Pan:       "ABCDE1234F",
		Aadhar:    "123456789012",
		Address:   "12 MG Road",
		Email:     "a@x.com",
		Phone:     "9876543210",
	}
	require.NoError(t, db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Username)
	require.NoError(t, err)

	app := fiber.New()
	supportRoutes.SetupSupportRoutes(app)
	return app, token, user.ID
}

func doRequest(t *testing.T, app *fiber.App, method, path, body, token string) (*http.Response, apiResponse) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp, parsed
}

func TestCreateSupportTicket(t *testing.T) {
	app, token, userID := setupTest(t)

	body := `{"subject":"Withdrawal stuck","message":"My withdrawal from yesterday has not settled."}`
	resp, parsed := doRequest(t, app, http.MethodPost, "/api/support", body, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data struct {
		TicketNumber string `json:"ticketNumber"`
	}
	require.NoError(t, json.Unmarshal(parsed.Data, &data))
	assert.Len(t, data.TicketNumber, 13)
	assert.Equal(t, strings.ToUpper(data.TicketNumber), data.TicketNumber)

	var ticket models.SupportTicket
	require.NoError(t, database.Database.Db.Where("user_id = ?", userID).First(&ticket).Error)
	assert.Equal(t, data.TicketNumber, ticket.TicketNumber)
	assert.Equal(t, "Withdrawal stuck", ticket.Subject)
	assert.Equal(t, "open", ticket.Status)
}

func TestCreateSupportTicketValidation(t *testing.T) {
	app, token, _ := setupTest(t)

	cases := []struct {
		name string
		body string
	}{
		{"missing subject", `{"message":"help"}`},
		{"missing message", `{"subject":"help"}`},
		{"blank subject", `{"subject":"   ","message":"help"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, _ := doRequest(t, app, http.MethodPost, "/api/support", tc.body, token)
			assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
		})
	}

	var count int64
	database.Database.Db.Model(&models.SupportTicket{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestTicketList(t *testing.T) {
	app, token, userID := setupTest(t)

	for _, subject := range []string{"First", "Second", "Third"} {
		resp, _ := doRequest(t, app, http.MethodPost, "/api/support",
			`{"subject":"`+subject+`","message":"details"}`, token)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	// A ticket from another user must not leak into the listing
	other := models.SupportTicket{TicketNumber: "OTHER00000001", UserID: userID + 1, Subject: "Not mine", Message: "x"}
	require.NoError(t, database.Database.Db.Create(&other).Error)

	resp, parsed := doRequest(t, app, http.MethodGet, "/api/support?page=1&limit=2", "", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data struct {
		Tickets    []models.SupportTicket `json:"tickets"`
		Pagination struct {
			Total int64 `json:"total"`
			Page  int   `json:"page"`
			Limit int   `json:"limit"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(parsed.Data, &data))
	assert.Len(t, data.Tickets, 2)
	assert.Equal(t, int64(3), data.Pagination.Total)
	for _, ticket := range data.Tickets {
		assert.Equal(t, userID, ticket.UserID)
	}
}

func TestSupportAuthRequired(t *testing.T) {
	app, _, _ := setupTest(t)

	resp, parsed := doRequest(t, app, http.MethodPost, "/api/support",
		`{"subject":"s","message":"m"}`, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", parsed.Code)
}
