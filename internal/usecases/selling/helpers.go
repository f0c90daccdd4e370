package selling

import (
	"github.com/vfg2006/sales-tracker-api/internal/domain"
)

// GroupBySaleDate reagrupa as linhas agregadas em um mapa indexado pelo
// período, removendo a chave sale_date de cada item. Função pura: entrada
// vazia produz mapa vazio e nenhuma entrada falha.
func GroupBySaleDate(periods []*domain.SalesByPeriod) map[string][]*domain.PeriodEntry {
	formatted := make(map[string][]*domain.PeriodEntry)

	for _, period := range periods {
		entry := &domain.PeriodEntry{
			EntityID:   period.EntityID,
			EntityName: period.EntityName,
			TotalSales: period.TotalSales,
			AvgSales:   period.AvgSales,
			NumSales:   period.NumSales,
		}
		formatted[period.SaleDate] = append(formatted[period.SaleDate], entry)
	}

	return formatted
}
