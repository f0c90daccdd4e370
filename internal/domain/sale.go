package domain

import "github.com/shopspring/decimal"

type Sale struct {
	ID     int             `json:"id"`
	UserID int             `json:"user_id"`
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date"` // Data da venda no formato YYYY-MM-DD
}

// GroupSale é uma venda atribuída a um grupo através do vínculo do vendedor
type GroupSale struct {
	Sale
	GroupName string `json:"name"`
}

// SalesByPeriod é uma linha agregada por período (mês ou ano) produzida
// pelas consultas com DATE_TRUNC; nunca é persistida
type SalesByPeriod struct {
	EntityID   int             `json:"id"`
	EntityName string          `json:"name"`
	SaleDate   string          `json:"sale_date"` // Período formatado: YYYY-MM ou YYYY
	TotalSales decimal.Decimal `json:"total_sales"`
	AvgSales   decimal.Decimal `json:"avg_sales"`
	NumSales   int             `json:"num_sales"`
}

// PeriodEntry é uma SalesByPeriod sem a chave de período, usada quando a
// resposta é reagrupada por data (ver selling.GroupBySaleDate)
type PeriodEntry struct {
	EntityID   int             `json:"id"`
	EntityName string          `json:"name"`
	TotalSales decimal.Decimal `json:"total_sales"`
	AvgSales   decimal.Decimal `json:"avg_sales"`
	NumSales   int             `json:"num_sales"`
}

// RangeSalesSummary é uma linha agregada por entidade dentro de um
// intervalo de datas, ordenada por total decrescente
type RangeSalesSummary struct {
	EntityID   int             `json:"id"`
	EntityName string          `json:"name"`
	TotalSales decimal.Decimal `json:"total_sales"`
	AvgSales   decimal.Decimal `json:"avg_sales"`
}
