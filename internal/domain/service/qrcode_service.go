package service

// QRCodeService renders redemption codes as QR images
type QRCodeService interface {
	// GenerateRedemptionQR encodes a redemption code as a PNG image
	GenerateRedemptionQR(code string) ([]byte, error)

	// ParseRedemptionQR extracts the code from the payload a scanner read off such an image
	ParseRedemptionQR(qrData string) (string, error)
}
