package sharecode

import (
	"fmt"

	"vpsup/internal/ports"

	qrcode "github.com/skip2/go-qrcode"
)

var _ ports.ShareCodeRenderer = (*QrRenderer)(nil)

// QrRenderer draws share links as QR codes out of half-block characters.
type QrRenderer struct{}

func ProvideQrRenderer() *QrRenderer {
	return &QrRenderer{}
}

func (r *QrRenderer) Render(link string) (string, error) {
	if link == "" {
		return "", fmt.Errorf("cannot render an empty link")
	}
	qr, err := qrcode.New(link, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to encode QR code: %w", err)
	}
	return qr.ToSmallString(true), nil
}
