package service

// QRCodeService generates and parses share codes for public addresses.
type QRCodeService interface {
	// GenerateAddressShareQR renders a PNG QR code encoding the address ID.
	GenerateAddressShareQR(addressID string) ([]byte, error)

	// ParseAddressShareQR extracts the address ID from scanned QR data.
	ParseAddressShareQR(qrData string) (string, error)
}
