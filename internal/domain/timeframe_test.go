package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeframe_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		input    Timeframe
		expected Timeframe
	}{
		{name: "month permanece month", input: TimeframeMonth, expected: TimeframeMonth},
		{name: "year permanece year", input: TimeframeYear, expected: TimeframeYear},
		{name: "valor desconhecido cai para month", input: Timeframe("week"), expected: TimeframeMonth},
		{name: "vazio cai para month", input: Timeframe(""), expected: TimeframeMonth},
		{name: "maiúsculas não são aceitas", input: Timeframe("YEAR"), expected: TimeframeMonth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.input.Normalize())
		})
	}
}

func TestTimeframe_DateFormat(t *testing.T) {
	assert.Equal(t, "YYYY-MM", TimeframeMonth.DateFormat())
	assert.Equal(t, "YYYY", TimeframeYear.DateFormat())

	// O fallback de Normalize também vale para o formato
	assert.Equal(t, "YYYY-MM", Timeframe("quarter").DateFormat())
}

func TestTimeframe_IsValid(t *testing.T) {
	assert.True(t, TimeframeMonth.IsValid())
	assert.True(t, TimeframeYear.IsValid())
	assert.False(t, Timeframe("week").IsValid())
	assert.False(t, Timeframe("").IsValid())
}
