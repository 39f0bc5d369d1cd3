package qrcode

import (
	"bytes"
	"encoding/json"
	"image/png"
	"testing"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoveryLevel(t *testing.T) {
	tests := []struct {
		in   string
		want qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"m", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, recoveryLevel(tt.in))
		})
	}
}

func TestQRCodeService_GenerateFoodQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	pngBytes, err := service.GenerateFoodQR("food-42")
	require.NoError(t, err)
	require.NotEmpty(t, pngBytes)

	img, err := png.Decode(bytes.NewReader(pngBytes))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}

func TestQRCodeService_GenerateFoodQR_DefaultSize(t *testing.T) {
	service := NewQRCodeService(0, "")

	pngBytes, err := service.GenerateFoodQR("food-42")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(pngBytes))
	require.NoError(t, err)
	assert.Equal(t, defaultSize, img.Bounds().Dx())
}

func TestQRCodeService_GenerateFoodQR_EmptyID(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.GenerateFoodQR("  ")
	require.Error(t, err)
}

func TestQRCodeService_ParseFoodQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	valid, err := json.Marshal(Payload{FoodID: "food-42", Type: "food"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		data    string
		want    string
		wantErr bool
	}{
		{name: "valid payload", data: string(valid), want: "food-42"},
		{name: "not json", data: "food-42", wantErr: true},
		{name: "wrong type", data: `{"food_id":"food-42","type":"subscription"}`, wantErr: true},
		{name: "missing id", data: `{"type":"food"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.ParseFoodQR(tt.data)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
