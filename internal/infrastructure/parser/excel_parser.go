package parser

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
	"github.com/yourusername/hardware-storefront/internal/domain/repository"
)

type excelParser struct{}

// NewExcelParser yangi Excel parser yaratish
func NewExcelParser() repository.ExcelParser {
	return &excelParser{}
}

// readSheet birinchi sheet qatorlarini o'qish
func readSheet(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open excel from bytes: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("excel file has no sheets: %w", repository.ErrInvalid)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("excel file is empty: %w", repository.ErrInvalid)
	}
	return rows, nil
}

// hasHeaderRow agar birinchi qatorning 2-ustuni raqam bo'lsa, header yo'q
func hasHeaderRow(rows [][]string) bool {
	if len(rows[0]) > 1 {
		if _, err := parsePrice(rows[0][1]); err == nil {
			return false
		}
	}
	return true
}

// ParseHardware .xlsx dan hardware qismlarini o'qish
func (e *excelParser) ParseHardware(ctx context.Context, data []byte, filename string) ([]entity.HardwareItem, error) {
	rows, err := readSheet(data)
	if err != nil {
		return nil, err
	}
	log := zap.S().With("file", filename, "kind", "hardware")
	log.Debugf("📊 Total rows: %d", len(rows))

	hasHeader := hasHeaderRow(rows)
	startRow := 0
	var header []string
	var columns map[string]int
	if hasHeader {
		header = rows[0]
		startRow = 1
		columns = mapColumns(header, hardwareColumns)
	} else {
		columns = map[string]int{"name": 0, "price": 1}
		if len(rows[0]) > 2 {
			columns["category"] = 2
		}
	}
	if _, ok := columns["price"]; !ok {
		if guessed := detectPriceColumn(rows, startRow); guessed >= 0 {
			columns["price"] = guessed
		} else {
			return nil, fmt.Errorf("price column not found: %w", repository.ErrInvalid)
		}
	}
	log.Debugf("🗺️ Column mapping: %v", columns)

	now := time.Now()
	var items []entity.HardwareItem
	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		name := cell(row, columns, "name")
		price, err := parsePrice(cell(row, columns, "price"))
		if name == "" || err != nil || price <= 0 {
			log.Debugf("⚠️ Row %d skipped: name=%q price=%q", i+1, name, cell(row, columns, "price"))
			continue
		}

		category, ok := resolveHardwareCategory(cell(row, columns, "category"))
		if !ok {
			category = detectCategory(name)
		}
		if category == "" {
			log.Debugf("⚠️ Row %d skipped: unknown category for %q", i+1, name)
			continue
		}

		item := entity.HardwareItem{
			ID:         cell(row, columns, "id"),
			Category:   category,
			Brand:      cell(row, columns, "brand"),
			Model:      name,
			Price:      price,
			Socket:     cell(row, columns, "socket"),
			MemoryType: strings.ToUpper(cell(row, columns, "memoryType")),
			FormFactor: cell(row, columns, "formFactor"),
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		if item.Brand == "" {
			item.Brand, item.Model = splitBrand(name)
		}
		if tdp, err := parsePrice(cell(row, columns, "tdp")); err == nil {
			item.TDP = int(tdp)
		}
		if stock, err := parsePrice(cell(row, columns, "stock")); err == nil {
			item.Stock = int(stock)
		}
		inferAttributes(&item)
		item.Specs = extraSpecs(row, header, columns)

		items = append(items, item)
	}

	log.Infof("📦 Total hardware parsed: %d", len(items))
	if len(items) == 0 {
		return nil, fmt.Errorf("no valid hardware found in excel file (%d rows): %w", len(rows)-startRow, repository.ErrInvalid)
	}
	return items, nil
}

// ParseProducts .xlsx dan mahsulotlarni o'qish
func (e *excelParser) ParseProducts(ctx context.Context, data []byte, filename string) ([]entity.Product, error) {
	rows, err := readSheet(data)
	if err != nil {
		return nil, err
	}
	log := zap.S().With("file", filename, "kind", "products")
	log.Debugf("📋 Excel first row: %v", rows[0])

	hasHeader := hasHeaderRow(rows)
	startRow := 0
	var header []string
	var columns map[string]int
	if hasHeader {
		header = rows[0]
		startRow = 1
		columns = mapColumns(header, productColumns)
	} else {
		columns = map[string]int{"name": 0, "price": 1}
		if len(rows[0]) > 2 {
			columns["category"] = 2
		}
	}
	if _, ok := columns["price"]; !ok {
		if guessed := detectPriceColumn(rows, startRow); guessed >= 0 {
			columns["price"] = guessed
		} else if len(rows[0]) > 1 {
			columns["price"] = 1
		} else {
			return nil, fmt.Errorf("price column not found: %w", repository.ErrInvalid)
		}
	}

	// Format aniqlash: Standart jadval (nom, narx, ...) yoki Side-by-side (nom1, narx1, nom2, narx2)
	isTableFormat := hasHeader || detectTableFormat(rows, startRow, columns["price"])

	now := time.Now()
	var products []entity.Product

	if isTableFormat {
		log.Debugf("📊 Detected: STANDARD TABLE format")
		for i := startRow; i < len(rows); i++ {
			row := rows[i]
			if isEmptyRow(row) {
				continue
			}

			name := cell(row, columns, "name")
			price, err := parsePrice(cell(row, columns, "price"))
			if len(name) < 3 || err != nil || price <= 0 {
				log.Debugf("⚠️ Row %d skipped: name=%q price=%q", i+1, name, cell(row, columns, "price"))
				continue
			}

			product := newProduct(name, price, now)
			if id := cell(row, columns, "id"); id != "" {
				product.ID = id
			}
			product.Subtitle = cell(row, columns, "subtitle")
			product.Description = cell(row, columns, "description")
			if t := entity.ProductType(strings.ToLower(cell(row, columns, "productType"))); t.Valid() {
				product.ProductType = t
			}
			if raw := cell(row, columns, "category"); raw != "" {
				product.Categories = nil
				for _, c := range strings.Split(raw, ",") {
					product.AddCategory(strings.ToLower(strings.TrimSpace(c)))
				}
			}
			if stock, err := parsePrice(cell(row, columns, "stock")); err == nil {
				product.Stock = int(stock)
			}
			product.Featured = parseBool(cell(row, columns, "featured"))
			components, err := parseComponents(cell(row, columns, "components"))
			if err != nil {
				log.Debugf("⚠️ Row %d skipped: %v", i+1, err)
				continue
			}
			product.Components = components
			product.Specs = extraSpecs(row, header, columns)

			products = append(products, product)
		}
	} else {
		log.Debugf("📊 Detected: SIDE-BY-SIDE format (Name1 | Price1 | Name2 | Price2 | ...)")
		for i := startRow; i < len(rows); i++ {
			row := rows[i]
			for col := 0; col+1 < len(row); col += 2 {
				name := strings.TrimSpace(row[col])
				price, err := parsePrice(row[col+1])
				if len(name) < 3 || err != nil || price <= 0 {
					continue
				}
				products = append(products, newProduct(name, price, now))
			}
		}
	}

	log.Infof("📦 Total products parsed: %d", len(products))
	if len(products) == 0 {
		return nil, fmt.Errorf("no valid products found in excel file (%d rows): %w", len(rows)-startRow, repository.ErrInvalid)
	}
	return products, nil
}

func newProduct(name string, price float64, now time.Time) entity.Product {
	category := "other"
	if detected := detectCategory(name); detected != "" {
		category = string(detected)
	}
	return entity.Product{
		ID:          uuid.New().String(),
		Title:       name,
		Price:       price,
		TotalPrice:  price,
		Categories:  []string{category},
		Media:       []entity.Media{},
		ProductType: entity.ProductTypeSimple,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// cell mapping bo'yicha qiymat (yo'q bo'lsa bo'sh)
func cell(row []string, columns map[string]int, field string) string {
	idx, ok := columns[field]
	if !ok || idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// extraSpecs mapping qilinmagan ustunlar specs ga tushadi
func extraSpecs(row, header []string, columns map[string]int) map[string]string {
	if len(header) == 0 {
		return nil
	}
	used := make(map[int]struct{}, len(columns))
	for _, idx := range columns {
		used[idx] = struct{}{}
	}

	specs := make(map[string]string)
	for idx, raw := range row {
		if _, ok := used[idx]; ok {
			continue
		}
		value := strings.TrimSpace(raw)
		if value == "" {
			continue
		}
		key := fmt.Sprintf("Extra_%d", idx)
		if idx < len(header) && strings.TrimSpace(header[idx]) != "" {
			key = strings.TrimSpace(header[idx])
		}
		specs[key] = value
	}
	if len(specs) == 0 {
		return nil
	}
	return specs
}

// isEmptyRow qator bo'sh yoki yo'qligini tekshirish
func isEmptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// detectTableFormat true = Standart jadval, false = Side-by-side
func detectTableFormat(rows [][]string, startRow int, priceCol int) bool {
	if priceCol < 0 {
		priceCol = 1
	}

	validPriceCount := 0
	totalChecked := 0
	for i := startRow; i < len(rows) && totalChecked < 5; i++ {
		row := rows[i]
		if len(row) <= priceCol || isEmptyRow(row) {
			continue
		}
		totalChecked++
		if _, err := parsePrice(row[priceCol]); err == nil {
			validPriceCount++
		}
	}
	if totalChecked == 0 {
		return true
	}

	// Agar 70% dan ko'p qatorlarda priceCol narx bo'lsa - table format
	if float64(validPriceCount)/float64(totalChecked) <= 0.7 {
		return false
	}

	// 4+ ustun va 3-ustunda ham narx bo'lsa side-by-side
	pairs := 0
	for i := startRow; i < len(rows) && i < startRow+5; i++ {
		row := rows[i]
		if len(row) >= 4 {
			if _, err := parsePrice(row[3]); err == nil {
				pairs++
			}
		}
	}
	return pairs == 0
}

// detectPriceColumn narx ustunini topish (agar headerda topilmasa)
func detectPriceColumn(rows [][]string, startRow int) int {
	maxCols := 0
	limitRows := startRow + 15
	if limitRows > len(rows) {
		limitRows = len(rows)
	}
	for i := startRow; i < limitRows; i++ {
		if len(rows[i]) > maxCols {
			maxCols = len(rows[i])
		}
	}

	bestCol := -1
	bestCount := 0
	for col := 0; col < maxCols; col++ {
		count := 0
		for i := startRow; i < limitRows; i++ {
			if col >= len(rows[i]) {
				continue
			}
			if _, err := parsePrice(rows[i][col]); err == nil {
				count++
			}
		}
		if count > bestCount {
			bestCount = count
			bestCol = col
		}
	}

	// Kamida 2 ta qator narx sifatida o'qilsa, shu ustunni narx deb olamiz
	if bestCount >= 2 {
		return bestCol
	}
	return -1
}

// parsePrice narxni parse qilish ("R$ 1.299,90", "$1,299.90", "1299")
func parsePrice(raw string) (float64, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return 0, fmt.Errorf("empty price")
	}

	for _, sym := range []string{"r$", "$", "€", "£", "¥", "brl", "usd", "eur", "so'm", "som", "uzs", " "} {
		s = strings.ReplaceAll(s, sym, "")
	}

	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")
	switch {
	case lastComma >= 0 && lastDot >= 0 && lastComma > lastDot:
		// 1.299,90
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case lastComma >= 0 && lastDot < 0 && len(s)-lastComma-1 == 2 && strings.Count(s, ",") == 1:
		// 1299,90
		s = strings.Replace(s, ",", ".", 1)
	default:
		s = strings.ReplaceAll(s, ",", "")
	}

	price, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price format: %s", raw)
	}
	return price, nil
}

// parseComponents "processor=cpu-1, motherboard=mb-1" ni faqat ID va kategoriyali qismlarga aylantiradi;
// to'liq ma'lumot import paytida hardware katalogidan olinadi
func parseComponents(raw string) (map[entity.HardwareCategory]entity.HardwareItem, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	out := make(map[entity.HardwareCategory]entity.HardwareItem)
	for _, pair := range strings.Split(raw, ",") {
		key, id, ok := strings.Cut(pair, "=")
		category := entity.HardwareCategory(strings.ToLower(strings.TrimSpace(key)))
		id = strings.TrimSpace(id)
		if !ok || id == "" || !category.Valid() {
			return nil, fmt.Errorf("bad component %q", strings.TrimSpace(pair))
		}
		out[category] = entity.HardwareItem{ID: id, Category: category}
	}
	return out, nil
}

func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "sim", "ha", "x":
		return true
	}
	return false
}

// splitBrand birinchi so'z brand, qolgani model
func splitBrand(name string) (string, string) {
	parts := strings.SplitN(strings.TrimSpace(name), " ", 2)
	if len(parts) < 2 {
		return "", name
	}
	return parts[0], strings.TrimSpace(parts[1])
}
