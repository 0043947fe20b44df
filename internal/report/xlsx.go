package report

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// Kop surat yang sama dengan dokumen cetak lab.
const (
	letterheadName    = "MAXIMA LABORATORIUM KLINIK"
	letterheadLine    = "Logistik & Medical Supplies | Dokumen Laporan Resmi"
	letterheadAddress = "Gudang Logistik | Jl. S. Parman No. 24 A-B, Palu"
	letterheadContact = "Telp: (0451) 425 888 | Email: maximalab.palu@yahoo.com"
)

var reportTitles = map[Tab]string{
	TabStock:    "LAPORAN STATUS PERSEDIAAN & ESTIMASI ORDER",
	TabInbound:  "LAPORAN RIWAYAT BARANG MASUK",
	TabOutbound: "LAPORAN RIWAYAT BARANG KELUAR",
}

func writeLetterhead(f *excelize.File, sheet, title string) error {
	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16, Color: "#1E40AF"},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}
	subStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 9, Color: "#646464"},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	headStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})

	_ = f.MergeCell(sheet, "A1", "G1")
	_ = f.SetCellValue(sheet, "A1", letterheadName)
	_ = f.SetCellStyle(sheet, "A1", "G1", titleStyle)

	_ = f.MergeCell(sheet, "A2", "G2")
	_ = f.SetCellValue(sheet, "A2", letterheadLine)
	_ = f.SetCellStyle(sheet, "A2", "G2", subStyle)

	_ = f.MergeCell(sheet, "A4", "G4")
	_ = f.SetCellValue(sheet, "A4", title)
	_ = f.SetCellStyle(sheet, "A4", "G4", headStyle)

	_ = f.SetCellValue(sheet, "A5", "Tanggal Cetak: "+time.Now().Format("2006-01-02"))
	return nil
}

func writeTable(f *excelize.File, sheet string, startRow int, header []string, body [][]any) error {
	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#1E40AF"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}

	for c, v := range header {
		cell, _ := excelize.CoordinatesToCellName(c+1, startRow)
		_ = f.SetCellValue(sheet, cell, v)
	}
	first, _ := excelize.CoordinatesToCellName(1, startRow)
	last, _ := excelize.CoordinatesToCellName(len(header), startRow)
	_ = f.SetCellStyle(sheet, first, last, style)

	for r, rowVals := range body {
		for c, v := range rowVals {
			cell, _ := excelize.CoordinatesToCellName(c+1, startRow+1+r)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}
	return nil
}

func writeSignatures(f *excelize.File, sheet string, row int, leftRole, leftName, rightRole, rightName string) {
	_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), "Dibuat Oleh,")
	_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row+1), leftRole)
	_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row+5), fmt.Sprintf("( %s )", leftName))

	_ = f.SetCellValue(sheet, fmt.Sprintf("F%d", row), rightRole+",")
	_ = f.SetCellValue(sheet, fmt.Sprintf("F%d", row+1), rightName)
	_ = f.SetCellValue(sheet, fmt.Sprintf("F%d", row+5), "( ........................... )")
}

// ExportXLSX membuat workbook satu sheet untuk tab laporan yang diminta.
func ExportXLSX(tab Tab, stock []StockRow, inbound []InboundRow, outbound []OutboundRow) ([]byte, error) {
	f := excelize.NewFile()
	sheet := string(tab)
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	_ = f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	if err := writeLetterhead(f, sheet, reportTitles[tab]); err != nil {
		return nil, err
	}

	var header []string
	var body [][]any
	switch tab {
	case TabStock:
		header = []string{"No", "Nama Barang", "LOT/Batch", "Stok", "Min", "Estimasi Order", "Satuan"}
		for _, r := range stock {
			body = append(body, []any{r.No, r.Name, r.LotNumber, r.Stock, r.MinStock, r.Estimation, string(r.Unit)})
		}
	case TabInbound:
		header = []string{"Tanggal", "Nama Barang", "No. LOT", "Qty", "Satuan", "Supplier"}
		for _, r := range inbound {
			body = append(body, []any{r.Date, r.ItemName, r.LotNumber, r.Quantity, string(r.Unit), r.Supplier})
		}
	case TabOutbound:
		header = []string{"Tanggal", "Nama Barang", "No. LOT", "Qty", "Tujuan", "Pemohon"}
		for _, r := range outbound {
			body = append(body, []any{r.Date, r.ItemName, r.LotNumber, r.Quantity, r.Destination, r.Requester})
		}
	}

	const tableStart = 7
	if err := writeTable(f, sheet, tableStart, header, body); err != nil {
		return nil, err
	}

	_ = f.SetColWidth(sheet, "A", "A", 12)
	_ = f.SetColWidth(sheet, "B", "B", 32)
	_ = f.SetColWidth(sheet, "C", "C", 18)
	_ = f.SetColWidth(sheet, "D", "F", 14)
	_ = f.SetColWidth(sheet, "G", "G", 12)

	writeSignatures(f, sheet, tableStart+len(body)+3,
		"Admin Gudang Maxima", "...........................",
		"Diketahui Oleh", "Kepala Cabang / BM")

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
