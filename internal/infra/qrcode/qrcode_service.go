package qrcode

import (
	"encoding/json"
	"fmt"
	"strings"

	"gymtrack/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256
	payloadType = "food"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// Payload is the JSON text encoded in a food QR code.
type Payload struct {
	FoodID string `json:"food_id"`
	Type   string `json:"type"`
}

// NewQRCodeService creates a QR service. Unknown levels use Medium, non-positive sizes use 256.
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(errorCorrectionLevel),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateFoodQR encodes the food id as a PNG QR code.
func (s *qrcodeService) GenerateFoodQR(foodID string) ([]byte, error) {
	if strings.TrimSpace(foodID) == "" {
		return nil, fmt.Errorf("food id is empty")
	}

	jsonData, err := json.Marshal(Payload{FoodID: foodID, Type: payloadType})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	pngBytes, err := qrcode.Encode(string(jsonData), s.errorCorrectionLevel, s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}

	return pngBytes, nil
}

// ParseFoodQR reads a scanned payload back into a food id.
func (s *qrcodeService) ParseFoodQR(qrData string) (string, error) {
	var data Payload
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != payloadType {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if strings.TrimSpace(data.FoodID) == "" {
		return "", fmt.Errorf("QR code has no food id")
	}

	return data.FoodID, nil
}
