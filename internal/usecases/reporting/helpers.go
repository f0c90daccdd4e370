package reporting

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
)

const saleDateLayout = "2006-01-02"

// filterSalesByYear mantém as vendas cujo ano calendário é igual ao ano
// pedido. Datas que não parseiam são descartadas em silêncio; relatório
// nunca falha por uma linha malformada.
func filterSalesByYear(sales []*domain.Sale, year int) []*domain.Sale {
	filtered := make([]*domain.Sale, 0, len(sales))
	for _, sale := range sales {
		date, err := time.Parse(saleDateLayout, sale.Date)
		if err != nil {
			continue
		}
		if date.Year() == year {
			filtered = append(filtered, sale)
		}
	}
	return filtered
}

func filterGroupSalesByYear(sales []*domain.GroupSale, year int) []*domain.GroupSale {
	filtered := make([]*domain.GroupSale, 0, len(sales))
	for _, sale := range sales {
		date, err := time.Parse(saleDateLayout, sale.Date)
		if err != nil {
			continue
		}
		if date.Year() == year {
			filtered = append(filtered, sale)
		}
	}
	return filtered
}

// totalSalesMetrics soma os valores com aritmética decimal exata; a média
// nunca é recalculada aqui, só vem arredondada do banco
func totalSalesMetrics(sales []*domain.Sale) (decimal.Decimal, int) {
	total := decimal.Zero
	for _, sale := range sales {
		total = total.Add(sale.Amount)
	}
	return total, len(sales)
}

func totalGroupSalesMetrics(sales []*domain.GroupSale) (decimal.Decimal, int) {
	total := decimal.Zero
	for _, sale := range sales {
		total = total.Add(sale.Amount)
	}
	return total, len(sales)
}

// monthlySales converte as linhas agregadas do banco para a visão mensal
// do relatório
func monthlySales(periods []*domain.SalesByPeriod) []*domain.MonthlySales {
	monthly := make([]*domain.MonthlySales, 0, len(periods))
	for _, period := range periods {
		monthly = append(monthly, &domain.MonthlySales{
			Month:      period.SaleDate,
			TotalSales: period.TotalSales,
			AvgSales:   period.AvgSales,
			NumSales:   period.NumSales,
		})
	}
	return monthly
}
