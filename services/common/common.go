package common

import (
	"fmt"
	"log"
	"net/http"

	"capperRanksBot/models"

	"gorm.io/gorm"
)

// SendError logs an error and records it in the error_logs table so grading
// and scan failures can be audited after the fact.
func SendError(db *gorm.DB, context string, err error) {
	log.Printf("[%s] %v", context, err)

	errLog := models.ErrorLog{
		Context: context,
		Message: fmt.Sprintf("%v", err),
	}
	db.Create(&errLog)
}

func StatsAPIWrapper(requestUrl string) (*http.Response, error) {
	client := &http.Client{}
	req, err := http.NewRequest("GET", requestUrl, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != 200 {
		resp.Body.Close()
		return nil, fmt.Errorf("stats api returned status %d", resp.StatusCode)
	}
	return resp, nil
}

func XWrapper(bearerToken string, requestUrl string) (*http.Response, error) {
	if bearerToken == "" {
		return nil, fmt.Errorf("X_BEARER_TOKEN not set in environment variables")
	}

	client := &http.Client{}
	req, err := http.NewRequest("GET", requestUrl, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", bearerToken))
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != 200 {
		resp.Body.Close()
		return nil, fmt.Errorf("x api returned status %d", resp.StatusCode)
	}
	return resp, nil
}

func OCRWrapper(apiKey string, requestUrl string) (*http.Response, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OCR_API_KEY not set in environment variables")
	}

	client := &http.Client{}
	req, err := http.NewRequest("GET", requestUrl, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Add("apikey", apiKey)
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != 200 {
		resp.Body.Close()
		return nil, fmt.Errorf("ocr api returned status %d", resp.StatusCode)
	}
	return resp, nil
}

func Contains[T comparable](s []T, e T) bool {
	for _, v := range s {
		if v == e {
			return true
		}
	}
	return false
}
