package domain

import "github.com/shopspring/decimal"

// Estruturas dos relatórios consolidados. Existem apenas durante a
// requisição; nada aqui é persistido.

type UserInformation struct {
	UserID   int    `json:"userId"`
	UserName string `json:"userName"`
	UserRole string `json:"userRole"`
}

type GroupInformation struct {
	GroupID   int    `json:"groupId"`
	GroupName string `json:"groupName"`
}

// MonthlySales é a visão mensal agregada vinda do banco, já arredondada
// em duas casas pela consulta
type MonthlySales struct {
	Month      string          `json:"month"`
	TotalSales decimal.Decimal `json:"totalSales"`
	AvgSales   decimal.Decimal `json:"avgSales"`
	NumSales   int             `json:"numSales"`
}

type UserSalesData struct {
	SalesByMonth    []*MonthlySales `json:"salesByMonth"`
	IndividualSales []*Sale         `json:"individualSales"`
}

type GroupSalesData struct {
	SalesByMonth []*MonthlySales `json:"salesByMonth"`
	GroupSales   []*GroupSale    `json:"groupSales"`
}

type UserReport struct {
	UserInformation UserInformation `json:"userInformation"`
	Groups          []*Group        `json:"groups"`
	SalesData       UserSalesData   `json:"salesData"`
	TotalSales      decimal.Decimal `json:"totalSales"`
	TotalSalesCount int             `json:"totalSalesCount"`
}

// MemberReport é o sub-relatório de um integrante dentro do relatório de
// grupo; igual ao UserReport, sem a lista de grupos
type MemberReport struct {
	UserInformation UserInformation `json:"userInformation"`
	SalesData       UserSalesData   `json:"salesData"`
	TotalSales      decimal.Decimal `json:"totalSales"`
	TotalSalesCount int             `json:"totalSalesCount"`
}

type GroupReport struct {
	GroupInformation GroupInformation `json:"groupInformation"`
	Users            []*MemberReport  `json:"users"`
	SalesData        GroupSalesData   `json:"salesData"`
	TotalSales       decimal.Decimal  `json:"totalSales"`
	TotalSalesCount  int              `json:"totalSalesCount"`
}
