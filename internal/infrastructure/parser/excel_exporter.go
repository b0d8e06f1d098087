package parser

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
	"github.com/yourusername/hardware-storefront/internal/domain/repository"
)

var (
	hardwareHeader = []any{"ID", "Category", "Brand", "Model", "Price", "Socket", "Memory Type", "Form Factor", "TDP", "Stock"}
	productHeader  = []any{"ID", "Title", "Subtitle", "Type", "Categories", "Price", "Stock", "Featured", "Description", "Components"}
)

type excelExporter struct{}

// NewExcelExporter backup uchun .xlsx yozuvchi
func NewExcelExporter() repository.ExcelExporter {
	return &excelExporter{}
}

// ExportHardware hardware katalogini .xlsx ga yozish
func (e *excelExporter) ExportHardware(ctx context.Context, items []entity.HardwareItem) ([]byte, error) {
	rows := make([][]any, 0, len(items))
	for _, it := range items {
		rows = append(rows, []any{
			it.ID, string(it.Category), it.Brand, it.Model, it.Price,
			it.Socket, it.MemoryType, it.FormFactor, it.TDP, it.Stock,
		})
	}
	return writeWorkbook("Hardware", hardwareHeader, rows)
}

// ExportProducts mahsulotlarni .xlsx ga yozish
func (e *excelExporter) ExportProducts(ctx context.Context, products []entity.Product) ([]byte, error) {
	rows := make([][]any, 0, len(products))
	for _, p := range products {
		featured := "no"
		if p.Featured {
			featured = "yes"
		}
		rows = append(rows, []any{
			p.ID, p.Title, p.Subtitle, string(p.ProductType), strings.Join(p.Categories, ", "),
			p.Price, p.Stock, featured, p.Description, formatComponents(p.Components),
		})
	}
	return writeWorkbook("Products", productHeader, rows)
}

func writeWorkbook(sheet string, header []any, rows [][]any) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	if err := f.SetRowStyle(sheet, 1, 1, bold); err != nil {
		return nil, fmt.Errorf("style header: %w", err)
	}

	for i, row := range rows {
		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, addr, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheet, "A", lastCol, 18); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// formatComponents "processor=cpu-1, motherboard=mb-1" ko'rinishida, kategoriya bo'yicha tartiblangan
func formatComponents(components map[entity.HardwareCategory]entity.HardwareItem) string {
	pairs := make([]string, 0, len(components))
	for category, item := range components {
		pairs = append(pairs, string(category)+"="+item.ID)
	}
	sort.Strings(pairs)
	return strings.Join(pairs, ", ")
}
