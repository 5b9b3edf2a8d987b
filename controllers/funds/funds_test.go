package fundController_test

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
	fundRoutes "github.com/Teja3804/asset-reddy/routers/fundRoutes"

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

func setupTest(t *testing.T, openingBalance float64) (*fiber.App, string, uint) {
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
	database.SeedFunds(db)
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
	require.NoError(t, db.Create(&models.AvailableFund{UserID: user.ID, Amount: openingBalance}).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Username)
	require.NoError(t, err)

	app := fiber.New()
	fundRoutes.SetupFundRoutes(app)
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

func TestFundListSeeded(t *testing.T) {
	app, _, _ := setupTest(t, 0)

	// Catalog is public, no token needed
	resp, parsed := doRequest(t, app, http.MethodGet, "/api/funds", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var funds []models.Fund
	require.NoError(t, json.Unmarshal(parsed.Data, &funds))
	require.Len(t, funds, 4)

	names := make(map[string]bool)
	for _, f := range funds {
		names[f.FundName] = true
	}
	assert.True(t, names["Equity Growth Fund"])
	assert.True(t, names["Technology Fund"])
}

func TestInvest(t *testing.T) {
	app, token, userID := setupTest(t, 500)

	fund := models.Fund{FundName: "Test Fund", TotalValue: 100000, YearlyReturn: 10}
	require.NoError(t, database.Database.Db.Create(&fund).Error)

	body, err := json.Marshal(fiber.Map{"fund_id": fund.ID, "amount": 200})
	require.NoError(t, err)

	resp, parsed := doRequest(t, app, http.MethodPost, "/api/invest", string(body), token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data struct {
		InvestmentID    uint    `json:"investmentId"`
		CurrentValue    float64 `json:"currentValue"`
		AvailableAmount float64 `json:"available_amount"`
	}
	require.NoError(t, json.Unmarshal(parsed.Data, &data))
	assert.InDelta(t, 220.0, data.CurrentValue, 1e-9)
	assert.Equal(t, 300.0, data.AvailableAmount)

	var investment models.Investment
	require.NoError(t, database.Database.Db.Where("user_id = ?", userID).First(&investment).Error)
	assert.Equal(t, fund.ID, investment.FundID)
	assert.Equal(t, 200.0, investment.AmountInvested)
	assert.InDelta(t, 220.0, investment.CurrentValue, 1e-9)

	var transactions []models.Transactions
	require.NoError(t, database.Database.Db.Where("user_id = ?", userID).Find(&transactions).Error)
	require.Len(t, transactions, 1)
	assert.Equal(t, models.TransactionTypeInvestment, transactions[0].Type)
	assert.Equal(t, 200.0, transactions[0].Amount)
	assert.Equal(t, "Invested in Test Fund", transactions[0].Description)
}

func TestInvestInsufficientFunds(t *testing.T) {
	app, token, userID := setupTest(t, 100)

	resp, parsed := doRequest(t, app, http.MethodPost, "/api/invest", `{"fund_id":1,"amount":200}`, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_FUNDS", parsed.Code)

	var balance models.AvailableFund
	require.NoError(t, database.Database.Db.Where("user_id = ?", userID).First(&balance).Error)
	assert.Equal(t, 100.0, balance.Amount)

	var count int64
	database.Database.Db.Model(&models.Investment{}).Where("user_id = ?", userID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestInvestFundNotFound(t *testing.T) {
	app, token, _ := setupTest(t, 500)

	resp, parsed := doRequest(t, app, http.MethodPost, "/api/invest", `{"fund_id":9999,"amount":200}`, token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "FUND_NOT_FOUND", parsed.Code)
}

func TestUserInvestments(t *testing.T) {
	app, token, _ := setupTest(t, 1000)

	resp, _ := doRequest(t, app, http.MethodPost, "/api/invest", `{"fund_id":1,"amount":100}`, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = doRequest(t, app, http.MethodPost, "/api/invest", `{"fund_id":2,"amount":250}`, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, parsed := doRequest(t, app, http.MethodGet, "/api/user-investments", "", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var investments []struct {
		FundID         uint    `json:"fund_id"`
		AmountInvested float64 `json:"amount_invested"`
		FundName       string  `json:"fund_name"`
		YearlyReturn   float64 `json:"yearly_return"`
	}
	require.NoError(t, json.Unmarshal(parsed.Data, &investments))
	require.Len(t, investments, 2)
	for _, inv := range investments {
		assert.NotEmpty(t, inv.FundName)
		assert.NotZero(t, inv.YearlyReturn)
	}
}
