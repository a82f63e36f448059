package service

// QRCodeService generates and parses postcard share QR codes.
type QRCodeService interface {
	// GenerateShareQR renders a PNG QR code pointing at a postcard.
	GenerateShareQR(postcardID string) ([]byte, error)

	// ParseShareQR extracts the postcard ID from scanned QR data.
	ParseShareQR(qrData string) (string, error)
}
