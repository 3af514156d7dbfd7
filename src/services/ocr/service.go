package ocr

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// CardData fields extracted from an OSHA training card photo.
type CardData struct {
	Name       string  `json:"name"`
	OshaNumber string  `json:"osha_number"`
	CardType   string  `json:"card_type"` // "10", "30" or "other"
	ExpiryDate *string `json:"expiry_date"`
	IssuingOrg string  `json:"issuing_org"`
}

// Result OCR outcome; Error is filled on a soft failure so the registration
// form can still be completed by hand.
type Result struct {
	Success bool     `json:"success"`
	Error   string   `json:"error,omitempty"`
	Data    CardData `json:"data"`
}

var httpClient = &http.Client{Timeout: 30 * time.Second}

// ExtractOSHACard forwards the card photo to the OCR microservice as a
// multipart upload and decodes its JSON answer.
func ExtractOSHACard(serviceURL, imageBase64 string) (*Result, error) {
	imageData, err := base64.StdEncoding.DecodeString(imageBase64)
	if err != nil {
		return &Result{Success: false, Error: "invalid image encoding", Data: CardData{CardType: "10"}}, nil
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "osha_card.jpg")
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(imageData); err != nil {
		return nil, err
	}
	writer.Close()

	req, err := http.NewRequest(http.MethodPost, serviceURL, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return &Result{
			Success: false,
			Error:   fmt.Sprintf("OCR service returned status %d", resp.StatusCode),
			Data:    CardData{CardType: "10"},
		}, nil
	}

	var data CardData
	if err := json.Unmarshal(respBody, &data); err != nil {
		return &Result{Success: false, Error: "Could not parse card information", Data: CardData{CardType: "10"}}, nil
	}
	if data.CardType == "" {
		data.CardType = "10"
	}
	return &Result{Success: true, Data: data}, nil
}
