package qrcode

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseRoundTrip(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	png, err := svc.GenerateAddressShareQR("addr-123")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))

	payload, err := json.Marshal(QRCodeData{AddressID: "addr-123", Type: shareCodeType})
	require.NoError(t, err)

	id, err := svc.ParseAddressShareQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, "addr-123", id)
}

func TestParseRejectsWrongType(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	payload, err := json.Marshal(QRCodeData{AddressID: "addr-123", Type: "subscription"})
	require.NoError(t, err)

	_, err = svc.ParseAddressShareQR(string(payload))
	assert.Error(t, err)
}

func TestParseRejectsMalformedData(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	_, err := svc.ParseAddressShareQR("not-json")
	assert.Error(t, err)

	payload, err := json.Marshal(QRCodeData{Type: shareCodeType})
	require.NoError(t, err)

	_, err = svc.ParseAddressShareQR(string(payload))
	assert.Error(t, err)
}
