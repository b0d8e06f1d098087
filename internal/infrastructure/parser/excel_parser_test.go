package parser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
	"github.com/yourusername/hardware-storefront/internal/domain/repository"
)

func workbook(t *testing.T, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		addr, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", addr, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestHardwareRoundTrip(t *testing.T) {
	ctx := context.Background()
	items := []entity.HardwareItem{
		{ID: "cpu-1", Category: entity.CategoryProcessor, Brand: "AMD", Model: "Ryzen 5 5600", Price: 899.9, Socket: "AM4", TDP: 65, Stock: 4},
		{ID: "mem-1", Category: entity.CategoryMemory, Brand: "Kingston", Model: "Fury Beast 16GB", Price: 279, MemoryType: "DDR4", Stock: 10},
		{ID: "case-1", Category: entity.CategoryCase, Brand: "Lian Li", Model: "Lancool 216", Price: 549, FormFactor: "ATX"},
	}

	data, err := NewExcelExporter().ExportHardware(ctx, items)
	require.NoError(t, err)

	parsed, err := NewExcelParser().ParseHardware(ctx, data, "backup.xlsx")
	require.NoError(t, err)
	require.Len(t, parsed, len(items))

	for i, want := range items {
		got := parsed[i]
		assert.Equal(t, want.ID, got.ID)
		assert.Equal(t, want.Category, got.Category)
		assert.Equal(t, want.Brand, got.Brand)
		assert.Equal(t, want.Model, got.Model)
		assert.InDelta(t, want.Price, got.Price, 0.001)
		assert.Equal(t, want.Socket, got.Socket)
		assert.Equal(t, want.MemoryType, got.MemoryType)
		assert.Equal(t, want.FormFactor, got.FormFactor)
		assert.Equal(t, want.TDP, got.TDP)
		assert.Equal(t, want.Stock, got.Stock)
	}
}

func TestProductRoundTrip(t *testing.T) {
	ctx := context.Background()
	products := []entity.Product{
		{ID: "p1", Title: "PC Ryzen 5 + RTX 4060", Subtitle: "16GB | 1TB", ProductType: entity.ProductTypePC, Categories: []string{"pc", "gamer"}, Price: 5499, Stock: 2, Featured: true, Description: "Pronto para jogar",
			Components: map[entity.HardwareCategory]entity.HardwareItem{
				entity.CategoryProcessor: {ID: "cpu-5600", Price: 900},
				entity.CategoryGPU:       {ID: "gpu-4060", Price: 2100},
			}},
		{ID: "p2", Title: "Mouse Gamer", ProductType: entity.ProductTypeSimple, Categories: []string{"acessorios"}, Price: 149.9},
	}

	data, err := NewExcelExporter().ExportProducts(ctx, products)
	require.NoError(t, err)

	parsed, err := NewExcelParser().ParseProducts(ctx, data, "products.xlsx")
	require.NoError(t, err)
	require.Len(t, parsed, 2)

	assert.Equal(t, "p1", parsed[0].ID)
	assert.Equal(t, "PC Ryzen 5 + RTX 4060", parsed[0].Title)
	assert.Equal(t, "16GB | 1TB", parsed[0].Subtitle)
	assert.Equal(t, entity.ProductTypePC, parsed[0].ProductType)
	assert.Equal(t, []string{"pc", "gamer"}, parsed[0].Categories)
	assert.True(t, parsed[0].Featured)
	assert.Equal(t, 2, parsed[0].Stock)
	assert.Equal(t, "Pronto para jogar", parsed[0].Description)
	assert.Equal(t, map[entity.HardwareCategory]entity.HardwareItem{
		entity.CategoryProcessor: {ID: "cpu-5600", Category: entity.CategoryProcessor},
		entity.CategoryGPU:       {ID: "gpu-4060", Category: entity.CategoryGPU},
	}, parsed[0].Components)
	assert.Empty(t, parsed[1].Components)

	assert.Equal(t, entity.ProductTypeSimple, parsed[1].ProductType)
	assert.False(t, parsed[1].Featured)
	assert.InDelta(t, 149.9, parsed[1].Price, 0.001)
}

func TestParseComponents(t *testing.T) {
	got, err := parseComponents(" Processor = cpu-1 , memory=ram-2")
	require.NoError(t, err)
	assert.Equal(t, "cpu-1", got[entity.CategoryProcessor].ID)
	assert.Equal(t, entity.CategoryMemory, got[entity.CategoryMemory].Category)

	got, err = parseComponents("")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = parseComponents("widget=w-1")
	assert.Error(t, err)
	_, err = parseComponents("processor")
	assert.Error(t, err)
}

func TestParseHardwareWithoutHeaderDetectsCategory(t *testing.T) {
	data := workbook(t, [][]any{
		{"Intel Core i5 12400F LGA1700", 799},
		{"Gigabyte B760M DDR5 Micro-ATX", "R$ 1.099,90"},
		{"Cadeira Gamer", 999},
	})

	items, err := NewExcelParser().ParseHardware(context.Background(), data, "raw.xlsx")
	require.NoError(t, err)
	require.Len(t, items, 2, "unknown category rows are skipped")

	cpu := items[0]
	assert.Equal(t, entity.CategoryProcessor, cpu.Category)
	assert.Equal(t, "Intel", cpu.Brand)
	assert.Equal(t, "LGA1700", cpu.Socket)
	assert.NotEmpty(t, cpu.ID)

	mobo := items[1]
	assert.Equal(t, entity.CategoryMotherboard, mobo.Category)
	assert.InDelta(t, 1099.90, mobo.Price, 0.001)
	assert.Equal(t, "DDR5", mobo.MemoryType)
	assert.Equal(t, "Micro-ATX", mobo.FormFactor)
}

func TestParseProductsSideBySide(t *testing.T) {
	data := workbook(t, [][]any{
		{"Teclado Mecanico", 250, "Mouse Sem Fio", 120},
		{"Headset 7.1", 300, "", ""},
	})

	products, err := NewExcelParser().ParseProducts(context.Background(), data, "side.xlsx")
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "Teclado Mecanico", products[0].Title)
	assert.Equal(t, []string{string(entity.CategoryKeyboard)}, products[0].Categories)
	assert.Equal(t, "Mouse Sem Fio", products[1].Title)
	assert.Equal(t, entity.ProductTypeSimple, products[2].ProductType)
}

func TestParseRejectsEmptyData(t *testing.T) {
	data := workbook(t, [][]any{{"Name", "Price"}, {"", ""}})
	_, err := NewExcelParser().ParseHardware(context.Background(), data, "empty.xlsx")
	assert.ErrorIs(t, err, repository.ErrInvalid)

	_, err = NewExcelParser().ParseProducts(context.Background(), []byte("not excel"), "bad.xlsx")
	assert.Error(t, err)
}

func TestParsePrice(t *testing.T) {
	cases := map[string]float64{
		"1299":        1299,
		"R$ 1.299,90": 1299.90,
		"$1,299.90":   1299.90,
		"249,90":      249.90,
		"1 500 000":   1500000,
	}
	for raw, want := range cases {
		got, err := parsePrice(raw)
		require.NoError(t, err, raw)
		assert.InDelta(t, want, got, 0.001, raw)
	}

	_, err := parsePrice("")
	assert.Error(t, err)
	_, err = parsePrice("Processador")
	assert.Error(t, err)
}

func TestDetectCategory(t *testing.T) {
	cases := map[string]entity.HardwareCategory{
		"AMD Ryzen 7 7800X3D":           entity.CategoryProcessor,
		"AMD Radeon RX 7600":            entity.CategoryGPU,
		"ASUS TUF B550M-Plus":           entity.CategoryMotherboard,
		"Kingston Fury Beast DDR5 32GB": entity.CategoryMemory,
		"Samsung 990 Pro NVMe 1TB":      entity.CategoryStorage,
		"Corsair RM750e 80 Plus Gold":   entity.CategoryPSU,
		"DeepCool AK400 Air Cooler":     entity.CategoryCooler,
		"LG UltraGear 27 144Hz Monitor": entity.CategoryMonitor,
		"Logitech G502 Mouse":           entity.CategoryMouse,
		"Mesa de escritório":            "",
	}
	for name, want := range cases {
		assert.Equal(t, want, detectCategory(name), name)
	}
}
