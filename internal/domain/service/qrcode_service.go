package service

// QRCodeService encodes foods into shareable QR codes and reads them back.
type QRCodeService interface {
	// GenerateFoodQR returns a PNG QR code for the food id.
	GenerateFoodQR(foodID string) ([]byte, error)

	// ParseFoodQR extracts the food id from scanned QR text.
	ParseFoodQR(qrData string) (string, error)
}
