// Package qrcode renders share codes for public addresses.
package qrcode

import (
	"encoding/json"
	"fmt"

	"github.com/skip2/go-qrcode"

	"placemark/internal/domain/service"
)

const shareCodeType = "address_share"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	AddressID string `json:"address_id"`
	Type      string `json:"type"`
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

// GenerateAddressShareQR generates a QR code for sharing a public address
func (s *qrcodeService) GenerateAddressShareQR(addressID string) ([]byte, error) {
	data := QRCodeData{
		AddressID: addressID,
		Type:      shareCodeType,
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

// ParseAddressShareQR parses QR code data and returns the address ID
func (s *qrcodeService) ParseAddressShareQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != shareCodeType {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.AddressID == "" {
		return "", fmt.Errorf("QR code carries no address ID")
	}

	return data.AddressID, nil
}
