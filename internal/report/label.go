package report

import (
	"fmt"

	"gudanglab-backend/internal/models"

	qrcode "github.com/skip2/go-qrcode"
)

// LabelContent: format yang dibaca scanner di form inbound/outbound.
func LabelContent(item models.InventoryItem) string {
	return fmt.Sprintf("%s|%s", item.SKU, item.LotNumber)
}

// LabelPNG membuat QR label barang sebagai PNG 256x256.
func LabelPNG(item models.InventoryItem) ([]byte, error) {
	png, err := qrcode.Encode(LabelContent(item), qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("label QR gagal dibuat: %w", err)
	}
	return png, nil
}
