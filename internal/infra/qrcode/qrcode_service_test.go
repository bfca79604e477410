package qrcode

import (
	"testing"

	"greenlake/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  qrcode.RecoveryLevel
	}{
		{"Low error correction", "L", qrcode.Low},
		{"Medium error correction", "M", qrcode.Medium},
		{"High error correction", "q", qrcode.High},
		{"Highest error correction", "H", qrcode.Highest},
		{"Default error correction", "invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.level))
		})
	}
}

func TestQRCodeService_GenerateRedemptionQR(t *testing.T) {
	service := NewQRCodeService(&config.Config{
		QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "M"},
	})

	qrBytes, err := service.GenerateRedemptionQR("a1b2c3")
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateRedemptionQR_EmptyCode(t *testing.T) {
	service := NewQRCodeService(nil)

	_, err := service.GenerateRedemptionQR("")
	assert.Error(t, err)
}

func TestParseRedemptionQR(t *testing.T) {
	code, err := ParseRedemptionQR(`{"type":"redemption","code":"abc"}`)
	require.NoError(t, err)
	assert.Equal(t, "abc", code)

	_, err = ParseRedemptionQR(`{"type":"subscription","code":"abc"}`)
	assert.Error(t, err)

	_, err = ParseRedemptionQR(`{"type":"redemption"}`)
	assert.Error(t, err)

	_, err = ParseRedemptionQR(`not json`)
	assert.Error(t, err)
}
