package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchHelpers(t *testing.T) {
	assert.Equal(t, "rtx4060ti", compactString("RTX 4060-Ti"))
	assert.Equal(t, 4, commonRun("rtx4060", "geforce4060"))
	assert.True(t, isGPUQuery("tem RTX 3060?"))
	assert.False(t, isGPUQuery("ryzen 5 5600"))

	q, ok := parseQuery("placa de video?")
	require.True(t, ok)
	assert.Equal(t, []string{"placa", "video"}, q.words)

	_, ok = parseQuery("   ")
	assert.False(t, ok)
}

func TestMatchDocsFallsBackToFuzzyScore(t *testing.T) {
	docs := []searchDoc{
		{name: "GeForce RTX 4090", price: 12000},
		{name: "Ryzen 7 5800X", price: 1500},
		{name: "Kingston Fury", specs: map[string]string{"type": "DDR5"}},
	}

	assert.Equal(t, []int{0}, matchDocs("geforce", docs))
	assert.Equal(t, []int{0}, matchDocs("rtx4090ti", docs))
	assert.Equal(t, []int{2}, matchDocs("ddr5", docs))
	assert.Equal(t, []int{1}, matchDocs("ryzen7", docs))
	assert.Empty(t, matchDocs("", docs))
}
