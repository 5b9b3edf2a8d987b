package utils

import (
	"fmt"
	"log"

	"github.com/Teja3804/asset-reddy/config"

	"github.com/go-resty/resty/v2"
)

// SendOTPToMobile delivers a verification code through the SMS gateway.
func SendOTPToMobile(countryCode, mobile, otp string) error {
	client := resty.New()

	resp, err := client.R().
		SetQueryParams(map[string]string{
			"authorization":    config.AppConfig.SmsApiKey,
			"route":            "otp",
			"variables_values": fmt.Sprintf("%s|%d", otp, config.AppConfig.OtpExpiryMinutes),
			"numbers":          mobile,
		}).
		Get(config.AppConfig.SmsApiUrl)
	if err != nil {
		log.Printf("Error while sending OTP to %s%s: %v", countryCode, mobile, err)
		return err
	}

	if resp.StatusCode() != 200 {
		log.Printf("Failed to send OTP, response code: %d", resp.StatusCode())
		return fmt.Errorf("failed to send OTP, code: %d", resp.StatusCode())
	}

	return nil
}
