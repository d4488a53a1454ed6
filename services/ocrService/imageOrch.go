package ocrService

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"capperRanksBot/core"
	"capperRanksBot/models/external"
	"capperRanksBot/services/common"
)

const ocrAPIBase = "https://api.ocr.space/parse/imageurl"

// FetchAndOCR runs a post image through the OCR API and returns the raw
// extracted text. Callers normalize before detection.
func FetchAndOCR(cfg *core.Config, imageURL string) (string, error) {
	requestUrl := fmt.Sprintf("%s?apikey=%s&url=%s&OCREngine=2",
		ocrAPIBase, url.QueryEscape(cfg.OCRAPIKey), url.QueryEscape(imageURL))

	resp, err := common.OCRWrapper(cfg.OCRAPIKey, requestUrl)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var result external.OCR_Response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}

	if result.IsErroredOnProcessing {
		return "", fmt.Errorf("ocr processing failed with exit code %d", result.OCRExitCode)
	}
	if len(result.ParsedResults) == 0 {
		return "", fmt.Errorf("ocr returned no parsed results")
	}

	var parts []string
	for _, pr := range result.ParsedResults {
		if pr.ParsedText != "" {
			parts = append(parts, pr.ParsedText)
		}
	}
	return strings.Join(parts, "\n"), nil
}
