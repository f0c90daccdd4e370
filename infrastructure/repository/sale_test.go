package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
)

func TestBucketColumn(t *testing.T) {
	tests := []struct {
		name      string
		timeframe domain.Timeframe
		expected  string
	}{
		{
			name:      "agrupamento mensal",
			timeframe: domain.TimeframeMonth,
			expected:  "TO_CHAR(DATE_TRUNC('month', s.date), 'YYYY-MM') AS sale_date",
		},
		{
			name:      "agrupamento anual",
			timeframe: domain.TimeframeYear,
			expected:  "TO_CHAR(DATE_TRUNC('year', s.date), 'YYYY') AS sale_date",
		},
		{
			name:      "período desconhecido cai para mensal",
			timeframe: domain.Timeframe("week"),
			expected:  "TO_CHAR(DATE_TRUNC('month', s.date), 'YYYY-MM') AS sale_date",
		},
		{
			name:      "entrada hostil nunca chega ao texto da consulta",
			timeframe: domain.Timeframe("month'); DROP TABLE sales; --"),
			expected:  "TO_CHAR(DATE_TRUNC('month', s.date), 'YYYY-MM') AS sale_date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, bucketColumn(tt.timeframe))
		})
	}
}
