package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for pickup code generation. Orders
// are picked up at the counter by presenting the code.
type QRCodeService interface {
	// GeneratePickupQR renders a PNG QR code identifying an order.
	GeneratePickupQR(orderID uuid.UUID) ([]byte, error)

	// ParsePickupQR decodes QR payload data back to the order ID.
	ParsePickupQR(qrData string) (uuid.UUID, error)
}
