package token

import (
	"errors"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// High recovery tolerates print and scan degradation.
const recoveryLevel = qrcode.Highest

// ErrPayloadTooLarge means the data does not fit the largest symbol at the
// recovery level, typically because of a very long file name.
var ErrPayloadTooLarge = errors.New("payload too large for QR symbol")

func encode(qrData string) (*qrcode.QRCode, error) {
	q, err := qrcode.New(qrData, recoveryLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPayloadTooLarge, err)
	}
	return q, nil
}

func RenderPNG(qrData string, size int) ([]byte, error) {
	q, err := encode(qrData)
	if err != nil {
		return nil, err
	}

	png, err := q.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("render qr png: %w", err)
	}

	return png, nil
}

// RenderTerminal draws the symbol with block characters.
func RenderTerminal(qrData string) (string, error) {
	q, err := encode(qrData)
	if err != nil {
		return "", err
	}
	return q.ToSmallString(false), nil
}

func PNGFilename(tokenID string) string {
	return fmt.Sprintf("healthlock-qr-%s.png", tokenID)
}
