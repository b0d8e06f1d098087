package telegram

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/hardware-storefront/internal/configurator"
	"github.com/yourusername/hardware-storefront/internal/domain/entity"
)

func TestParseConfigArgs(t *testing.T) {
	budget, typ, err := parseConfigArgs("1200")
	require.NoError(t, err)
	assert.Equal(t, 1200.0, budget)
	assert.Equal(t, entity.ConfigurationPC, typ)

	budget, typ, err = parseConfigArgs("$800 KIT")
	require.NoError(t, err)
	assert.Equal(t, 800.0, budget)
	assert.Equal(t, entity.ConfigurationKit, typ)

	for _, bad := range []string{"", "abc", "-5", "1000 laptop"} {
		_, _, err := parseConfigArgs(bad)
		assert.Error(t, err, bad)
	}
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", truncateString("short", 10))
	assert.Equal(t, "abcd...", truncateString("abcdefghij", 7))
	assert.Equal(t, "ўзб...", truncateString("ўзбекистон", 6))
}

func TestSplitMessage(t *testing.T) {
	text := strings.Repeat("line of text\n", 10)
	parts := splitMessage(text, 40)
	require.Greater(t, len(parts), 1)
	for _, p := range parts {
		assert.LessOrEqual(t, len(p), 40)
	}
	assert.Equal(t, text, strings.Join(parts, ""))

	assert.Equal(t, []string{"hi"}, splitMessage("hi", 40))
}

func TestFormatOrder(t *testing.T) {
	order := entity.Order{
		ID:            "42",
		Number:        7,
		CustomerName:  "Ana",
		CustomerPhone: "+998901234567",
		Items: []entity.OrderItem{
			{ProductID: "p1", Title: "Keyboard", Quantity: 2, UnitPrice: 40},
		},
		Total:     80,
		Notes:     "call first",
		CreatedAt: time.Now(),
	}
	text := formatOrder(order)
	assert.Contains(t, text, "#7")
	assert.Contains(t, text, "Keyboard x2 - $80.00")
	assert.Contains(t, text, "Jami: $80.00")
	assert.Contains(t, text, "call first")
}

func TestFormatAllocation_OrdersByCategory(t *testing.T) {
	cfg := entity.NewConfiguration(entity.ConfigurationKit)
	cfg.Select(entity.CategoryMemory, &entity.HardwareItem{ID: "r", Category: entity.CategoryMemory, Brand: "Kingston", Model: "Fury", Price: 90})
	cfg.Select(entity.CategoryProcessor, &entity.HardwareItem{ID: "c", Category: entity.CategoryProcessor, Brand: "AMD", Model: "7600", Price: 200})

	text := formatAllocation(&configurator.Allocation{
		Configuration: cfg,
		Budget:        400,
		Title:         "Kit Upgrade AMD 7600",
		Missing:       []entity.HardwareCategory{entity.CategoryMotherboard},
		OverBudget:    map[entity.HardwareCategory]bool{entity.CategoryProcessor: true},
	})
	assert.Less(t, strings.Index(text, "AMD 7600 - $200.00"), strings.Index(text, "Kingston Fury"))
	assert.Contains(t, text, "$200.00 ⚠️")
	assert.Contains(t, text, "Topilmadi: Motherboard")
	assert.Contains(t, text, "Jami: $290.00 (budjet $400.00)")
}

func TestBuildHardwarePreview_Limit(t *testing.T) {
	items := []entity.HardwareItem{
		{ID: "1", Brand: "AMD", Model: "A", Price: 1, Socket: "AM5"},
		{ID: "2", Brand: "AMD", Model: "B", Price: 2},
		{ID: "3", Brand: "AMD", Model: "C", Price: 3},
	}
	text := buildHardwarePreview(entity.CategoryProcessor, items, 2)
	assert.Contains(t, text, "AMD A - $1.00 [AM5]")
	assert.NotContains(t, text, "AMD C")
	assert.Contains(t, text, "yana 1 ta")
}
