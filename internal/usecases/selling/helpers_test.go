package selling

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
)

func TestGroupBySaleDate(t *testing.T) {
	periods := []*domain.SalesByPeriod{
		{
			EntityID:   1,
			EntityName: "Ana Souza",
			SaleDate:   "2025-01",
			TotalSales: decimal.NewFromFloat(1250.50),
			AvgSales:   decimal.NewFromFloat(625.25),
			NumSales:   2,
		},
		{
			EntityID:   2,
			EntityName: "Bruno Lima",
			SaleDate:   "2025-01",
			TotalSales: decimal.NewFromFloat(430.75),
			AvgSales:   decimal.NewFromFloat(430.75),
			NumSales:   1,
		},
		{
			EntityID:   1,
			EntityName: "Ana Souza",
			SaleDate:   "2025-02",
			TotalSales: decimal.NewFromFloat(890),
			AvgSales:   decimal.NewFromFloat(890),
			NumSales:   1,
		},
	}

	grouped := GroupBySaleDate(periods)

	assert.Len(t, grouped, 2)
	assert.Len(t, grouped["2025-01"], 2)
	assert.Len(t, grouped["2025-02"], 1)

	// A ordem relativa das linhas dentro do mesmo período é preservada
	assert.Equal(t, 1, grouped["2025-01"][0].EntityID)
	assert.Equal(t, 2, grouped["2025-01"][1].EntityID)

	// A chave de período não aparece mais nos itens, só os valores
	assert.Equal(t, "Ana Souza", grouped["2025-02"][0].EntityName)
	assert.True(t, grouped["2025-02"][0].TotalSales.Equal(decimal.NewFromFloat(890)))
	assert.Equal(t, 1, grouped["2025-02"][0].NumSales)
}

func TestGroupBySaleDate_Empty(t *testing.T) {
	grouped := GroupBySaleDate(nil)

	assert.NotNil(t, grouped)
	assert.Empty(t, grouped)
}
