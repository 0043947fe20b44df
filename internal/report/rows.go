package report

import (
	"strings"

	"gudanglab-backend/internal/advisory"
	"gudanglab-backend/internal/models"
)

type Tab string

const (
	TabStock    Tab = "STOCK"
	TabInbound  Tab = "INBOUND"
	TabOutbound Tab = "OUTBOUND"
)

func ValidTab(t Tab) bool {
	switch t {
	case TabStock, TabInbound, TabOutbound:
		return true
	}
	return false
}

type StockRow struct {
	No         int             `json:"no"`
	Name       string          `json:"name"`
	LotNumber  string          `json:"lotNumber"`
	Stock      int             `json:"stock"`
	MinStock   int             `json:"minStock"`
	Estimation int             `json:"estimation"`
	Unit       models.UnitType `json:"unit"`
}

type InboundRow struct {
	Date      string          `json:"date"`
	ItemName  string          `json:"itemName"`
	LotNumber string          `json:"lotNumber"`
	Quantity  int             `json:"quantity"`
	Unit      models.UnitType `json:"unit"`
	Supplier  string          `json:"supplier"`
}

type OutboundRow struct {
	Date        string `json:"date"`
	ItemName    string `json:"itemName"`
	LotNumber   string `json:"lotNumber"`
	Quantity    int    `json:"quantity"`
	Destination string `json:"destination"`
	Requester   string `json:"requester"`
}

// BuildStockRows: kolom estimasi pakai saran advisory kalau ada
// (dicocokkan per nama barang), kalau tidak pakai manualOrderQty.
func BuildStockRows(items []models.InventoryItem, suggestions []advisory.Suggestion) []StockRow {
	rows := make([]StockRow, 0, len(items))
	for i, item := range items {
		est := item.ManualOrderQty
		for _, s := range suggestions {
			if strings.EqualFold(s.ItemName, item.Name) {
				est = s.RecommendedQty
				break
			}
		}
		rows = append(rows, StockRow{
			No:         i + 1,
			Name:       strings.ToUpper(item.Name),
			LotNumber:  item.LotNumber,
			Stock:      item.Stock,
			MinStock:   item.MinStock,
			Estimation: est,
			Unit:       item.Unit,
		})
	}
	return rows
}

func BuildInboundRows(txs []models.StockTransaction) []InboundRow {
	rows := make([]InboundRow, 0)
	for _, t := range txs {
		if t.Type != models.TxIn {
			continue
		}
		supplier := t.Supplier
		if supplier == "" {
			supplier = "-"
		}
		rows = append(rows, InboundRow{
			Date:      t.Date,
			ItemName:  t.ItemName,
			LotNumber: t.LotNumber,
			Quantity:  t.Quantity,
			Unit:      t.Unit,
			Supplier:  supplier,
		})
	}
	return rows
}

func BuildOutboundRows(txs []models.StockTransaction) []OutboundRow {
	rows := make([]OutboundRow, 0)
	for _, t := range txs {
		if t.Type != models.TxOut {
			continue
		}
		rows = append(rows, OutboundRow{
			Date:        t.Date,
			ItemName:    t.ItemName,
			LotNumber:   t.LotNumber,
			Quantity:    t.Quantity,
			Destination: string(t.Destination),
			Requester:   t.Requester,
		})
	}
	return rows
}
