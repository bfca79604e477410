package qrcode

import (
	"encoding/json"
	"strings"

	"greenlake/config"
	"greenlake/internal/domain/service"
	"greenlake/internal/errors"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	redemptionType = "redemption"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure scanned at the counter
type QRCodeData struct {
	Type string `json:"type"`
	Code string `json:"code"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := defaultSize
	levelName := ""
	if cfg != nil && cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		levelName = cfg.QRCode.ErrorCorrectionLevel
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(levelName),
	}
}

func parseRecoveryLevel(name string) qrcode.RecoveryLevel {
	switch strings.ToUpper(name) {
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

// GenerateRedemptionQR encodes a redemption code as a PNG image
func (s *qrcodeService) GenerateRedemptionQR(code string) ([]byte, error) {
	if code == "" {
		return nil, errors.New("redemption code is empty")
	}

	jsonData, err := json.Marshal(QRCodeData{Type: redemptionType, Code: code})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

func (s *qrcodeService) ParseRedemptionQR(qrData string) (string, error) {
	return ParseRedemptionQR(qrData)
}

// ParseRedemptionQR extracts the redemption code from scanned QR data
func ParseRedemptionQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != redemptionType {
		return "", errors.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.Code == "" {
		return "", errors.New("QR code carries no redemption code")
	}

	return data.Code, nil
}
