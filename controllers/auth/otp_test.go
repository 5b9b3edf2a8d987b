package authController_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/Teja3804/asset-reddy/database"
	"github.com/Teja3804/asset-reddy/models"
	"github.com/Teja3804/asset-reddy/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func liveChallenge(t *testing.T, key string) models.OTP {
	t.Helper()
	var challenge models.OTP
	require.NoError(t, database.Database.Db.Where("key = ?", key).First(&challenge).Error)
	return challenge
}

func TestEmailOtpFlow(t *testing.T) {
	app := setupTest(t)

	resp, parsed := doRequest(t, app, http.MethodPost, "/api/send-email-otp", `{"email":"a@x.com"}`, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	// The code is delivered via the mail channel, never echoed
	assert.Equal(t, "null", string(parsed.Data))

	challenge := liveChallenge(t, "a@x.com")
	require.Len(t, challenge.Code, 6)

	t.Run("mismatch keeps challenge alive", func(t *testing.T) {
		resp, parsed := doRequest(t, app, http.MethodPost, "/api/verify-email-otp", `{"email":"a@x.com","otp":"000000x"}`, "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "OTP_MISMATCH", parsed.Code)
		liveChallenge(t, "a@x.com")
	})

	t.Run("success consumes challenge", func(t *testing.T) {
		resp, _ := doRequest(t, app, http.MethodPost, "/api/verify-email-otp", `{"email":"a@x.com","otp":"`+challenge.Code+`"}`, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var count int64
		database.Database.Db.Model(&models.OTP{}).Where("key = ?", "a@x.com").Count(&count)
		assert.Equal(t, int64(0), count)
	})

	t.Run("replay fails with not found", func(t *testing.T) {
		resp, parsed := doRequest(t, app, http.MethodPost, "/api/verify-email-otp", `{"email":"a@x.com","otp":"`+challenge.Code+`"}`, "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "OTP_NOT_FOUND", parsed.Code)
	})
}

func TestEmailOtpExpired(t *testing.T) {
	app := setupTest(t)

	resp, _ := doRequest(t, app, http.MethodPost, "/api/send-email-otp", `{"email":"a@x.com"}`, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	challenge := liveChallenge(t, "a@x.com")
	require.NoError(t, database.Database.Db.Model(&challenge).
		Update("expires_at", time.Now().Add(-time.Minute)).Error)

	// Correct code, but past the validity window
	resp, parsed := doRequest(t, app, http.MethodPost, "/api/verify-email-otp", `{"email":"a@x.com","otp":"`+challenge.Code+`"}`, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "OTP_EXPIRED", parsed.Code)

	var count int64
	database.Database.Db.Model(&models.OTP{}).Where("key = ?", "a@x.com").Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestPhoneOtpFlow(t *testing.T) {
	app := setupTest(t)

	body := `{"phone":"9876543210","country_code":"+91"}`
	resp, _ := doRequest(t, app, http.MethodPost, "/api/send-phone-otp", body, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	first := liveChallenge(t, "+919876543210")

	// A second send replaces the previous challenge for the same key
	resp, _ = doRequest(t, app, http.MethodPost, "/api/send-phone-otp", body, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var count int64
	database.Database.Db.Model(&models.OTP{}).Where("key = ?", "+919876543210").Count(&count)
	require.Equal(t, int64(1), count)

	second := liveChallenge(t, "+919876543210")
	assert.NotEqual(t, first.ID, second.ID)

	resp, _ = doRequest(t, app, http.MethodPost, "/api/verify-phone-otp",
		`{"phone":"9876543210","country_code":"+91","otp":"`+second.Code+`"}`, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSweepExpiredOTPs(t *testing.T) {
	setupTest(t)

	db := database.Database.Db
	require.NoError(t, db.Create(&models.OTP{
		Key: "stale@x.com", Channel: models.OTPChannelEmail,
		Code: "123456", ExpiresAt: time.Now().Add(-time.Hour),
	}).Error)
	require.NoError(t, db.Create(&models.OTP{
		Key: "fresh@x.com", Channel: models.OTPChannelEmail,
		Code: "654321", ExpiresAt: time.Now().Add(time.Hour),
	}).Error)

	utils.SweepExpiredOTPs()

	var count int64
	db.Model(&models.OTP{}).Count(&count)
	assert.Equal(t, int64(1), count)
	liveChallenge(t, "fresh@x.com")
}
