package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(orderID int) ([]byte, error)
}

// DefaultQRGenerator encodes a link to the order as a PNG.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(orderID int) ([]byte, error) {
	return qrcode.Encode(g.OrderURL(orderID), qrcode.Medium, 256)
}

func (g DefaultQRGenerator) OrderURL(orderID int) string {
	return fmt.Sprintf("%s/api/orders/%d", g.BaseURL, orderID)
}
