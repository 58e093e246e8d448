package qrcode

import qr "github.com/skip2/go-qrcode"

const imageSize = 256

// Generate creates a QR code PNG for a game join URL.
func Generate(url string) ([]byte, error) {
	return qr.Encode(url, qr.Medium, imageSize)
}
