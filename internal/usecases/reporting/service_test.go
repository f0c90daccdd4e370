package reporting

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-tracker-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_UserReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saleRepo := mocks.NewMockSaleRepository(ctrl)

	service := &Service{
		saleRepo:             saleRepo,
		maxConcurrentMembers: 2,
	}

	user := &domain.User{ID: 1, Name: "Ana Souza", Role: "vendedor"}
	groups := []*domain.Group{
		{ID: 1, Name: "Equipe Centro"},
	}
	sales := []*domain.Sale{
		{ID: 1, UserID: 1, Amount: decimal.RequireFromString("1250.50"), Date: "2025-01-15"},
		{ID: 2, UserID: 1, Amount: decimal.RequireFromString("890.00"), Date: "2025-02-03"},
		{ID: 3, UserID: 1, Amount: decimal.RequireFromString("500.00"), Date: "2024-11-20"},
	}

	saleRepo.EXPECT().
		GetByUserIDTimeframe(1, domain.TimeframeMonth).
		Return([]*domain.SalesByPeriod{
			{EntityID: 1, EntityName: "Ana Souza", SaleDate: "2025-01", TotalSales: decimal.RequireFromString("1250.50"), AvgSales: decimal.RequireFromString("1250.50"), NumSales: 1},
			{EntityID: 1, EntityName: "Ana Souza", SaleDate: "2025-02", TotalSales: decimal.RequireFromString("890.00"), AvgSales: decimal.RequireFromString("890.00"), NumSales: 1},
		}, nil)

	report, err := service.UserReport(user, sales, groups, 2025)

	assert.NoError(t, err)
	assert.Equal(t, 1, report.UserInformation.UserID)
	assert.Equal(t, "Ana Souza", report.UserInformation.UserName)
	assert.Equal(t, "vendedor", report.UserInformation.UserRole)
	assert.Equal(t, groups, report.Groups)

	// Só as vendas de 2025 entram nas vendas individuais e nos totais
	assert.Len(t, report.SalesData.IndividualSales, 2)
	assert.True(t, report.TotalSales.Equal(decimal.RequireFromString("2140.50")), "total foi %s", report.TotalSales)
	assert.Equal(t, 2, report.TotalSalesCount)

	assert.Len(t, report.SalesData.SalesByMonth, 2)
	assert.Equal(t, "2025-01", report.SalesData.SalesByMonth[0].Month)
}

func TestService_UserReport_MonthlyQueryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saleRepo := mocks.NewMockSaleRepository(ctrl)

	service := &Service{
		saleRepo:             saleRepo,
		maxConcurrentMembers: 2,
	}

	saleRepo.EXPECT().
		GetByUserIDTimeframe(1, domain.TimeframeMonth).
		Return(nil, errors.New("connection refused"))

	report, err := service.UserReport(&domain.User{ID: 1, Name: "Ana Souza", Role: "vendedor"}, nil, nil, 2025)

	// Falha do banco propaga; o relatório nunca sai parcial
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestService_GroupReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saleRepo := mocks.NewMockSaleRepository(ctrl)

	service := &Service{
		saleRepo:             saleRepo,
		maxConcurrentMembers: 2,
	}

	group := &domain.Group{ID: 10, Name: "Equipe Centro"}
	groupSales := []*domain.GroupSale{
		{Sale: domain.Sale{ID: 1, UserID: 1, Amount: decimal.RequireFromString("1250.50"), Date: "2025-01-15"}, GroupName: "Equipe Centro"},
		{Sale: domain.Sale{ID: 2, UserID: 2, Amount: decimal.RequireFromString("430.75"), Date: "2025-01-22"}, GroupName: "Equipe Centro"},
		{Sale: domain.Sale{ID: 3, UserID: 1, Amount: decimal.RequireFromString("999.99"), Date: "2023-05-05"}, GroupName: "Equipe Centro"},
	}
	members := []*domain.GroupMember{
		{
			User: domain.User{ID: 1, Name: "Ana Souza", Role: "vendedor"},
			Sales: []*domain.Sale{
				{ID: 1, UserID: 1, Amount: decimal.RequireFromString("1250.50"), Date: "2025-01-15"},
			},
		},
		{
			User: domain.User{ID: 2, Name: "Bruno Lima", Role: "vendedor"},
			Sales: []*domain.Sale{
				{ID: 2, UserID: 2, Amount: decimal.RequireFromString("430.75"), Date: "2025-01-22"},
			},
		},
	}

	saleRepo.EXPECT().
		GetByGroupIDTimeframe(10, domain.TimeframeMonth).
		Return([]*domain.SalesByPeriod{
			{EntityID: 10, EntityName: "Equipe Centro", SaleDate: "2025-01", TotalSales: decimal.RequireFromString("1681.25"), AvgSales: decimal.RequireFromString("840.63"), NumSales: 2},
		}, nil)

	saleRepo.EXPECT().
		GetByUserIDTimeframe(1, domain.TimeframeMonth).
		Return([]*domain.SalesByPeriod{
			{EntityID: 1, EntityName: "Ana Souza", SaleDate: "2025-01", TotalSales: decimal.RequireFromString("1250.50"), AvgSales: decimal.RequireFromString("1250.50"), NumSales: 1},
		}, nil)

	saleRepo.EXPECT().
		GetByUserIDTimeframe(2, domain.TimeframeMonth).
		Return([]*domain.SalesByPeriod{
			{EntityID: 2, EntityName: "Bruno Lima", SaleDate: "2025-01", TotalSales: decimal.RequireFromString("430.75"), AvgSales: decimal.RequireFromString("430.75"), NumSales: 1},
		}, nil)

	report, err := service.GroupReport(group, groupSales, members, 2025)

	assert.NoError(t, err)
	assert.Equal(t, 10, report.GroupInformation.GroupID)
	assert.Equal(t, "Equipe Centro", report.GroupInformation.GroupName)

	// Totais do grupo consideram só as vendas do ano pedido
	assert.True(t, report.TotalSales.Equal(decimal.RequireFromString("1681.25")), "total foi %s", report.TotalSales)
	assert.Equal(t, 2, report.TotalSalesCount)
	assert.Len(t, report.SalesData.GroupSales, 2)

	// Cada sub-relatório usa as vendas do próprio integrante
	assert.Len(t, report.Users, 2)
	assert.Equal(t, "Ana Souza", report.Users[0].UserInformation.UserName)
	assert.True(t, report.Users[0].TotalSales.Equal(decimal.RequireFromString("1250.50")))
	assert.Equal(t, "Bruno Lima", report.Users[1].UserInformation.UserName)
	assert.True(t, report.Users[1].TotalSales.Equal(decimal.RequireFromString("430.75")))
}

// A montagem concorrente dos sub-relatórios preserva a ordem da lista de
// integrantes, independente da ordem de término das consultas
func TestService_GroupReport_MemberOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saleRepo := mocks.NewMockSaleRepository(ctrl)

	service := &Service{
		saleRepo:             saleRepo,
		maxConcurrentMembers: 3,
	}

	group := &domain.Group{ID: 10, Name: "Equipe Centro"}

	members := make([]*domain.GroupMember, 0, 20)
	for i := 1; i <= 20; i++ {
		members = append(members, &domain.GroupMember{
			User: domain.User{ID: i, Name: fmt.Sprintf("Integrante %02d", i), Role: "vendedor"},
		})
	}

	saleRepo.EXPECT().
		GetByGroupIDTimeframe(10, domain.TimeframeMonth).
		Return(nil, nil)

	// Integrantes do início da lista demoram mais, forçando términos fora
	// de ordem
	saleRepo.EXPECT().
		GetByUserIDTimeframe(gomock.Any(), domain.TimeframeMonth).
		DoAndReturn(func(userID int, _ domain.Timeframe) ([]*domain.SalesByPeriod, error) {
			time.Sleep(time.Duration(21-userID) * time.Millisecond)
			return nil, nil
		}).
		Times(20)

	report, err := service.GroupReport(group, nil, members, 2025)

	assert.NoError(t, err)
	assert.Len(t, report.Users, 20)
	for i, memberReport := range report.Users {
		assert.Equal(t, members[i].ID, memberReport.UserInformation.UserID)
		assert.Equal(t, members[i].Name, memberReport.UserInformation.UserName)
	}
}

func TestService_GroupReport_MemberQueryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saleRepo := mocks.NewMockSaleRepository(ctrl)

	service := &Service{
		saleRepo:             saleRepo,
		maxConcurrentMembers: 2,
	}

	group := &domain.Group{ID: 10, Name: "Equipe Centro"}
	members := []*domain.GroupMember{
		{User: domain.User{ID: 1, Name: "Ana Souza", Role: "vendedor"}},
		{User: domain.User{ID: 2, Name: "Bruno Lima", Role: "vendedor"}},
	}

	saleRepo.EXPECT().
		GetByGroupIDTimeframe(10, domain.TimeframeMonth).
		Return(nil, nil)

	saleRepo.EXPECT().
		GetByUserIDTimeframe(1, domain.TimeframeMonth).
		Return(nil, nil)

	saleRepo.EXPECT().
		GetByUserIDTimeframe(2, domain.TimeframeMonth).
		Return(nil, errors.New("connection refused"))

	report, err := service.GroupReport(group, nil, members, 2025)

	// Falha em qualquer integrante derruba o relatório inteiro
	assert.Error(t, err)
	assert.Nil(t, report)
}
