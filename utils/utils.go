package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/Teja3804/asset-reddy/config"

	"github.com/google/uuid"
)

// GenerateOTP generates a numeric OTP of the configured length
func GenerateOTP() string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	otp := ""
	for i := 0; i < config.AppConfig.OtpLength; i++ {
		otp += fmt.Sprintf("%d", rng.Intn(10))
	}
	return otp
}

// GenerateTicketNumber returns a 13-character upper-case ticket reference.
func GenerateTicketNumber() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return raw[:13]
}

// OtpPhoneKey builds the challenge key for a phone number. Email challenges
// are keyed by the address itself.
func OtpPhoneKey(countryCode, phone string) string {
	return countryCode + phone
}
