package external

type OCR_Response struct {
	ParsedResults         []OCR_ParsedResult `json:"ParsedResults"`
	OCRExitCode           int                `json:"OCRExitCode"`
	IsErroredOnProcessing bool               `json:"IsErroredOnProcessing"`
}

type OCR_ParsedResult struct {
	ParsedText       string `json:"ParsedText"`
	FileParseExitCode int   `json:"FileParseExitCode"`
}
