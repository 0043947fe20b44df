package report

import (
	"fmt"
	"time"

	"gudanglab-backend/internal/models"

	"github.com/xuri/excelize/v2"
)

type DocumentLine struct {
	Name      string          `json:"name"`
	LotNumber string          `json:"lotNumber"`
	Quantity  int             `json:"quantity"`
	Unit      models.UnitType `json:"unit"`
}

// DocumentNumber: OUT- diikuti 6 digit terakhir epoch milidetik,
// sama dengan penomoran dokumen cetak lama.
func DocumentNumber(now time.Time) string {
	ms := fmt.Sprintf("%d", now.UnixMilli())
	return "OUT-" + ms[len(ms)-6:]
}

// OutboundDocumentXLSX membuat surat permintaan barang: kop surat,
// identitas permintaan, tabel barang, lembar tanda tangan.
func OutboundDocumentXLSX(destination models.Room, operator string, lines []DocumentLine, now time.Time) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Permintaan"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	_ = f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16, Color: "#1E40AF"},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	subStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 9, Color: "#646464"},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	headStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})

	_ = f.MergeCell(sheet, "A1", "E1")
	_ = f.SetCellValue(sheet, "A1", letterheadName)
	_ = f.SetCellStyle(sheet, "A1", "E1", titleStyle)

	_ = f.MergeCell(sheet, "A2", "E2")
	_ = f.SetCellValue(sheet, "A2", letterheadAddress)
	_ = f.SetCellStyle(sheet, "A2", "E2", subStyle)

	_ = f.MergeCell(sheet, "A3", "E3")
	_ = f.SetCellValue(sheet, "A3", letterheadContact)
	_ = f.SetCellStyle(sheet, "A3", "E3", subStyle)

	_ = f.MergeCell(sheet, "A5", "E5")
	_ = f.SetCellValue(sheet, "A5", "SURAT PERMINTAAN BARANG (OUTBOUND)")
	_ = f.SetCellStyle(sheet, "A5", "E5", headStyle)

	_ = f.SetCellValue(sheet, "A7", "Tujuan Unit : "+string(destination))
	_ = f.SetCellValue(sheet, "A8", "Tanggal     : "+now.Format("2 January 2006"))
	_ = f.SetCellValue(sheet, "D7", "No. Dokumen : "+DocumentNumber(now))
	_ = f.SetCellValue(sheet, "D8", "Operator    : "+operator)

	header := []string{"No", "Nama Barang", "No. LOT / Batch", "Qty", "Satuan"}
	body := make([][]any, 0, len(lines))
	for i, l := range lines {
		body = append(body, []any{i + 1, l.Name, l.LotNumber, l.Quantity, string(l.Unit)})
	}
	const tableStart = 10
	if err := writeTable(f, sheet, tableStart, header, body); err != nil {
		return nil, err
	}

	_ = f.SetColWidth(sheet, "A", "A", 6)
	_ = f.SetColWidth(sheet, "B", "B", 36)
	_ = f.SetColWidth(sheet, "C", "C", 20)
	_ = f.SetColWidth(sheet, "D", "D", 8)
	_ = f.SetColWidth(sheet, "E", "E", 12)

	sigRow := tableStart + len(body) + 3
	writeSignatures(f, sheet, sigRow,
		"Admin Ruangan", operator,
		"Diserahkan Oleh", "Kepala Gudang")

	footStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 8, Color: "#969696"},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	footRow := sigRow + 8
	_ = f.MergeCell(sheet, fmt.Sprintf("A%d", footRow), fmt.Sprintf("E%d", footRow))
	_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", footRow), "Dokumen ini dicetak otomatis melalui Maxima Lab Warehouse System")
	_ = f.SetCellStyle(sheet, fmt.Sprintf("A%d", footRow), fmt.Sprintf("E%d", footRow), footStyle)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
