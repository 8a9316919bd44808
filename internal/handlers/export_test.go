package handlers

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func sampleRows() []deliveryRow {
	date := func(day int) datatypes.Date {
		return datatypes.Date(time.Date(2025, time.May, day, 0, 0, 0, 0, time.UTC))
	}

	return []deliveryRow{
		{
			ClientName:   "sux_go",
			ProjectName:  "Ai Finance HUB",
			DeliveryDate: date(5),
			Role:         "Frontend (App)",
			GrossAmount:  2000,
			NetAmount:    1600,
			UserName:     "Abir Rahman",
			Description:  "Bank API Implemented",
		},
		{
			ClientName:   "xavfreakinrican",
			ProjectName:  "ZenActive",
			DeliveryDate: date(10),
			Role:         "AI Development",
			GrossAmount:  800,
			NetAmount:    640,
			UserName:     "Zaman Khan",
			Description:  "GeminiAI",
		},
	}
}

func TestBuildExportRowsAppendsTotal(t *testing.T) {
	rows := buildExportRows(sampleRows(), 5, 2025)
	require.Len(t, rows, 3)

	total := rows[2]
	assert.Equal(t, "TOTAL", total.ClientName)
	assert.Equal(t, 2800.0, total.GrossDelivery)
	assert.Equal(t, 2240.0, total.NetDelivery)
	assert.Empty(t, total.ProjectName)
	assert.Empty(t, total.Month)
	assert.Empty(t, total.Year)
}

func TestBuildExportRowsFields(t *testing.T) {
	rows := buildExportRows(sampleRows(), 5, 2025)

	first := rows[0]
	assert.Equal(t, "sux_go", first.ClientName)
	assert.Equal(t, "2025-05-05", first.DeliveryDate)
	assert.Equal(t, "5", first.Month)
	assert.Equal(t, "2025", first.Year)
}

func TestBuildExportRowsEmptyPeriod(t *testing.T) {
	rows := buildExportRows(nil, 2, 2026)
	require.Len(t, rows, 1)

	assert.Equal(t, "TOTAL", rows[0].ClientName)
	assert.Zero(t, rows[0].GrossDelivery)
	assert.Zero(t, rows[0].NetDelivery)
}

func TestRenderCSVQuotesEveryField(t *testing.T) {
	csv := renderCSV(buildExportRows(sampleRows(), 5, 2025))
	lines := strings.Split(csv, "\n")
	require.Len(t, lines, 4) // header + 2 rows + total

	assert.Equal(t, `"Client Name","Project Name","Delivery Date","Role","Gross Delivery","Net Delivery","Contributor","Description","Month","Year"`, lines[0])
	assert.Contains(t, lines[1], `"sux_go"`)
	assert.Contains(t, lines[1], `"2000"`)
	assert.Contains(t, lines[3], `"TOTAL"`)
	assert.Contains(t, lines[3], `"2800"`)

	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, `"`))
		assert.True(t, strings.HasSuffix(line, `"`))
		assert.Equal(t, 9, strings.Count(line, `","`))
	}
}

func TestCSVEscapesEmbeddedQuotes(t *testing.T) {
	assert.Equal(t, `"say ""hi"""`, csvQuote(`say "hi"`))
}
