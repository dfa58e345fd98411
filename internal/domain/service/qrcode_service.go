package service

// QRCodeService renders links as QR code images
type QRCodeService interface {
	// GenerateLinkQR returns a PNG QR code encoding url
	GenerateLinkQR(url string) ([]byte, error)
}
