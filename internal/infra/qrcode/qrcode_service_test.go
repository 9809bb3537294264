package qrcode

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngSignature = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}

func TestQRCodeService_GeneratePickupQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")
	orderID := uuid.New()

	png, err := svc.GeneratePickupQR(orderID)

	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.True(t, bytes.HasPrefix(png, pngSignature), "output is not a PNG")
}

func TestQRCodeService_ParsePickupQR_RoundTrip(t *testing.T) {
	svc := NewQRCodeService(256, "M")
	orderID := uuid.New()

	payload, err := json.Marshal(pickupPayload{
		OrderID: orderID.String(),
		Type:    payloadTypePickup,
	})
	require.NoError(t, err)

	parsed, err := svc.ParsePickupQR(string(payload))

	require.NoError(t, err)
	assert.Equal(t, orderID, parsed)
}

func TestQRCodeService_ParsePickupQR_BadPayload(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	tests := []struct {
		name   string
		qrData string
	}{
		{name: "not json", qrData: "not-json"},
		{name: "wrong type", qrData: `{"order_id":"` + uuid.New().String() + `","type":"coupon"}`},
		{name: "bad order id", qrData: `{"order_id":"not-a-uuid","type":"pickup"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := svc.ParsePickupQR(tt.qrData)

			require.Error(t, err)
			assert.Equal(t, uuid.Nil, parsed)
		})
	}
}

func TestQRCodeService_UnknownCorrectionLevelFallsBack(t *testing.T) {
	svc := NewQRCodeService(128, "ZZ")

	png, err := svc.GeneratePickupQR(uuid.New())

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
