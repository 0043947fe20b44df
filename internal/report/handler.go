package report

import (
	"fmt"
	"time"

	"gudanglab-backend/internal/advisory"
	"gudanglab-backend/internal/auth"
	"gudanglab-backend/internal/models"
	"gudanglab-backend/internal/state"

	"github.com/gofiber/fiber/v2"
)

// GET /api/reports?tab=STOCK|INBOUND|OUTBOUND
func RowsHandler(store *state.Store, ai *advisory.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tab := Tab(c.Query("tab", string(TabStock)))
		if !ValidTab(tab) {
			return fiber.NewError(fiber.StatusBadRequest, "Tab laporan tidak dikenal")
		}

		switch tab {
		case TabStock:
			suggestions := ai.Suggestions(store.Items(), store.Transactions())
			return c.JSON(fiber.Map{
				"tab":         tab,
				"rows":        BuildStockRows(store.Items(), suggestions),
				"suggestions": suggestions,
			})
		case TabInbound:
			return c.JSON(fiber.Map{"tab": tab, "rows": BuildInboundRows(store.Transactions())})
		default:
			return c.JSON(fiber.Map{"tab": tab, "rows": BuildOutboundRows(store.Transactions())})
		}
	}
}

// GET /api/reports/export?tab=STOCK|INBOUND|OUTBOUND
func ExportHandler(store *state.Store, ai *advisory.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tab := Tab(c.Query("tab", string(TabStock)))
		if !ValidTab(tab) {
			return fiber.NewError(fiber.StatusBadRequest, "Tab laporan tidak dikenal")
		}

		var stock []StockRow
		var inbound []InboundRow
		var outbound []OutboundRow
		switch tab {
		case TabStock:
			stock = BuildStockRows(store.Items(), ai.Suggestions(store.Items(), store.Transactions()))
		case TabInbound:
			inbound = BuildInboundRows(store.Transactions())
		case TabOutbound:
			outbound = BuildOutboundRows(store.Transactions())
		}

		data, err := ExportXLSX(tab, stock, inbound, outbound)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Laporan gagal dibuat")
		}

		filename := fmt.Sprintf("Laporan_%s_%s.xlsx", tab, time.Now().Format("2006-01-02"))
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
		return c.Send(data)
	}
}

type DocumentRequest struct {
	Destination models.Room    `json:"destination"`
	Lines       []DocumentLine `json:"lines"`
}

// POST /api/reports/outbound-document
// Surat permintaan dicetak dari keranjang sebelum diproses, jadi isi
// tabel dikirim langsung di body.
func OutboundDocumentHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body DocumentRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Body request tidak valid")
		}
		if !models.ValidRoom(body.Destination) {
			return fiber.NewError(fiber.StatusBadRequest, "Ruang tujuan tidak dikenal")
		}
		if len(body.Lines) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Daftar permintaan masih kosong")
		}

		operator := "Unknown"
		if userID, ok := c.Locals(auth.CtxUserIDKey).(string); ok {
			if user, found := store.FindUser(userID); found {
				operator = user.FullName
			}
		}

		now := time.Now()
		data, err := OutboundDocumentXLSX(body.Destination, operator, body.Lines, now)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Dokumen gagal dibuat")
		}

		filename := fmt.Sprintf("Permintaan_%s_%s.xlsx", body.Destination, now.Format("2006-01-02"))
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
		return c.Send(data)
	}
}

// GET /api/items/:id/label
func ItemLabelHandler(store *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		item, ok := store.FindItem(c.Params("id"))
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "Barang tidak ditemukan")
		}

		png, err := LabelPNG(item)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Label gagal dibuat")
		}

		c.Set(fiber.HeaderContentType, "image/png")
		return c.Send(png)
	}
}
