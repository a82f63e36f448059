package qrcode

import (
	"encoding/json"
	"fmt"

	"footprint/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	PostcardID string `json:"postcard_id"`
	Type       string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateShareQR generates a QR code for sharing a postcard
func (s *qrcodeService) GenerateShareQR(postcardID string) ([]byte, error) {
	if postcardID == "" {
		return nil, fmt.Errorf("postcard id is empty")
	}

	data := QRCodeData{
		PostcardID: postcardID,
		Type:       "postcard",
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseShareQR parses QR code data and returns the postcard ID
func (s *qrcodeService) ParseShareQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != "postcard" {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.PostcardID == "" {
		return "", fmt.Errorf("QR code carries no postcard id")
	}

	return data.PostcardID, nil
}
