package reporting

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
)

func TestFilterSalesByYear(t *testing.T) {
	sales := []*domain.Sale{
		{ID: 1, UserID: 1, Amount: decimal.NewFromFloat(100), Date: "2025-01-15"},
		{ID: 2, UserID: 1, Amount: decimal.NewFromFloat(200), Date: "2024-12-31"},
		{ID: 3, UserID: 1, Amount: decimal.NewFromFloat(300), Date: "2025-06-01"},
		{ID: 4, UserID: 1, Amount: decimal.NewFromFloat(400), Date: "data-invalida"},
		{ID: 5, UserID: 1, Amount: decimal.NewFromFloat(500), Date: ""},
	}

	filtered := filterSalesByYear(sales, 2025)

	// Vendas de outros anos e datas que não parseiam ficam de fora
	assert.Len(t, filtered, 2)
	assert.Equal(t, 1, filtered[0].ID)
	assert.Equal(t, 3, filtered[1].ID)
}

func TestFilterSalesByYear_Empty(t *testing.T) {
	assert.Empty(t, filterSalesByYear(nil, 2025))
}

func TestFilterGroupSalesByYear(t *testing.T) {
	sales := []*domain.GroupSale{
		{Sale: domain.Sale{ID: 1, Date: "2025-03-10"}, GroupName: "Equipe Centro"},
		{Sale: domain.Sale{ID: 2, Date: "31/12/2025"}, GroupName: "Equipe Centro"},
		{Sale: domain.Sale{ID: 3, Date: "2023-03-10"}, GroupName: "Equipe Litoral"},
	}

	filtered := filterGroupSalesByYear(sales, 2025)

	assert.Len(t, filtered, 1)
	assert.Equal(t, 1, filtered[0].ID)
}

func TestTotalSalesMetrics(t *testing.T) {
	sales := []*domain.Sale{
		{Amount: decimal.RequireFromString("0.1")},
		{Amount: decimal.RequireFromString("0.2")},
	}

	total, count := totalSalesMetrics(sales)

	// Soma decimal exata, sem resíduo de ponto flutuante
	assert.True(t, total.Equal(decimal.RequireFromString("0.3")), "total foi %s", total)
	assert.Equal(t, 2, count)
}

func TestTotalSalesMetrics_Empty(t *testing.T) {
	total, count := totalSalesMetrics(nil)

	assert.True(t, total.Equal(decimal.Zero))
	assert.Equal(t, 0, count)
}

func TestMonthlySales(t *testing.T) {
	periods := []*domain.SalesByPeriod{
		{
			EntityID:   1,
			EntityName: "Ana Souza",
			SaleDate:   "2025-01",
			TotalSales: decimal.NewFromFloat(2140.50),
			AvgSales:   decimal.NewFromFloat(1070.25),
			NumSales:   2,
		},
	}

	monthly := monthlySales(periods)

	assert.Len(t, monthly, 1)
	assert.Equal(t, "2025-01", monthly[0].Month)
	assert.True(t, monthly[0].TotalSales.Equal(decimal.NewFromFloat(2140.50)))
	assert.True(t, monthly[0].AvgSales.Equal(decimal.NewFromFloat(1070.25)))
	assert.Equal(t, 2, monthly[0].NumSales)
}
