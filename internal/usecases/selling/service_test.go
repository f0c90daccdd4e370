package selling

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-tracker-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_SalesGroupedByTimeframe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saleRepo := mocks.NewMockSaleRepository(ctrl)
	service := NewService(saleRepo)

	saleRepo.EXPECT().
		GetGroupedByTimeframe(domain.TimeframeMonth).
		Return([]*domain.SalesByPeriod{
			{EntityID: 1, EntityName: "Ana Souza", SaleDate: "2025-01", TotalSales: decimal.NewFromInt(100), AvgSales: decimal.NewFromInt(100), NumSales: 1},
			{EntityID: 2, EntityName: "Bruno Lima", SaleDate: "2025-02", TotalSales: decimal.NewFromInt(200), AvgSales: decimal.NewFromInt(200), NumSales: 1},
		}, nil)

	grouped, err := service.SalesGroupedByTimeframe(domain.TimeframeMonth)

	assert.NoError(t, err)
	assert.Len(t, grouped, 2)
	assert.Equal(t, "Ana Souza", grouped["2025-01"][0].EntityName)
	assert.Equal(t, "Bruno Lima", grouped["2025-02"][0].EntityName)
}

func TestService_SalesGroupedByTimeframe_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saleRepo := mocks.NewMockSaleRepository(ctrl)
	service := NewService(saleRepo)

	saleRepo.EXPECT().
		GetGroupedByTimeframe(domain.TimeframeMonth).
		Return(nil, errors.New("connection refused"))

	grouped, err := service.SalesGroupedByTimeframe(domain.TimeframeMonth)

	// Falha do banco propaga; nunca degrada para resultado vazio
	assert.Error(t, err)
	assert.Nil(t, grouped)
}

func TestService_DeleteSale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saleRepo := mocks.NewMockSaleRepository(ctrl)
	service := NewService(saleRepo)

	saleRepo.EXPECT().Delete(5).Return(true, nil)
	saleRepo.EXPECT().Delete(6).Return(false, nil)

	deleted, err := service.DeleteSale(5)
	assert.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = service.DeleteSale(6)
	assert.NoError(t, err)
	assert.False(t, deleted)
}

func TestService_AddSale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saleRepo := mocks.NewMockSaleRepository(ctrl)
	service := NewService(saleRepo)

	amount := decimal.RequireFromString("1250.50")

	saleRepo.EXPECT().
		Create(1, amount, "2025-01-15").
		Return(&domain.Sale{ID: 9, UserID: 1, Amount: amount, Date: "2025-01-15"}, nil)

	sale, err := service.AddSale(1, amount, "2025-01-15")

	assert.NoError(t, err)
	assert.Equal(t, 9, sale.ID)
	assert.True(t, sale.Amount.Equal(amount))
}
