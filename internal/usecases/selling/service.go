package selling

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-tracker-api/infrastructure/repository"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
)

// Seller expõe as consultas de vendas por vendedor e por grupo. As
// operações são repasses diretos ao repositório; falhas do banco sempre
// propagam para o chamador, nunca degradam para resultado vazio.
type Seller interface {
	AddSale(userID int, amount decimal.Decimal, date string) (*domain.Sale, error)
	DeleteSale(saleID int) (bool, error)

	SalesByUser(userID int) ([]*domain.Sale, error)
	SalesByUserTimeframe(userID int, timeframe domain.Timeframe) ([]*domain.SalesByPeriod, error)
	SalesByDateRange(startDate, endDate string) ([]*domain.RangeSalesSummary, error)
	SalesGroupedByTimeframe(timeframe domain.Timeframe) (map[string][]*domain.PeriodEntry, error)
	SalesAfterDate(startDate string, timeframe domain.Timeframe) (map[string][]*domain.PeriodEntry, error)

	SalesByGroup(groupID int) ([]*domain.GroupSale, error)
	SalesByGroupTimeframe(groupID int, timeframe domain.Timeframe) ([]*domain.SalesByPeriod, error)
	GroupSalesByDateRange(startDate, endDate string) ([]*domain.RangeSalesSummary, error)
	GroupSalesGroupedByTimeframe(timeframe domain.Timeframe) (map[string][]*domain.PeriodEntry, error)
	GroupSalesAfterDate(startDate string, timeframe domain.Timeframe) (map[string][]*domain.PeriodEntry, error)
}

type Service struct {
	saleRepo repository.SaleRepository
}

func NewService(saleRepo repository.SaleRepository) Seller {
	return &Service{
		saleRepo: saleRepo,
	}
}

func (s *Service) AddSale(userID int, amount decimal.Decimal, date string) (*domain.Sale, error) {
	sale, err := s.saleRepo.Create(userID, amount, date)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao registrar venda")
	}
	return sale, nil
}

func (s *Service) DeleteSale(saleID int) (bool, error) {
	deleted, err := s.saleRepo.Delete(saleID)
	if err != nil {
		return false, errors.Wrap(err, "erro ao excluir venda")
	}
	return deleted, nil
}

func (s *Service) SalesByUser(userID int) ([]*domain.Sale, error) {
	sales, err := s.saleRepo.GetByUserID(userID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar vendas do usuário")
	}
	return sales, nil
}

func (s *Service) SalesByUserTimeframe(userID int, timeframe domain.Timeframe) ([]*domain.SalesByPeriod, error) {
	periods, err := s.saleRepo.GetByUserIDTimeframe(userID, timeframe)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar vendas do usuário por período")
	}
	return periods, nil
}

func (s *Service) SalesByDateRange(startDate, endDate string) ([]*domain.RangeSalesSummary, error) {
	summaries, err := s.saleRepo.GetByDateRange(startDate, endDate)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar vendas por intervalo de datas")
	}
	return summaries, nil
}

func (s *Service) SalesGroupedByTimeframe(timeframe domain.Timeframe) (map[string][]*domain.PeriodEntry, error) {
	periods, err := s.saleRepo.GetGroupedByTimeframe(timeframe)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar vendas agrupadas por período")
	}
	return GroupBySaleDate(periods), nil
}

func (s *Service) SalesAfterDate(startDate string, timeframe domain.Timeframe) (map[string][]*domain.PeriodEntry, error) {
	periods, err := s.saleRepo.GetAfterDate(startDate, timeframe)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar vendas a partir da data")
	}
	return GroupBySaleDate(periods), nil
}

func (s *Service) SalesByGroup(groupID int) ([]*domain.GroupSale, error) {
	sales, err := s.saleRepo.GetByGroupID(groupID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar vendas do grupo")
	}
	return sales, nil
}

func (s *Service) SalesByGroupTimeframe(groupID int, timeframe domain.Timeframe) ([]*domain.SalesByPeriod, error) {
	periods, err := s.saleRepo.GetByGroupIDTimeframe(groupID, timeframe)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar vendas do grupo por período")
	}
	return periods, nil
}

func (s *Service) GroupSalesByDateRange(startDate, endDate string) ([]*domain.RangeSalesSummary, error) {
	summaries, err := s.saleRepo.GetGroupSalesByDateRange(startDate, endDate)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar vendas de grupos por intervalo de datas")
	}
	return summaries, nil
}

func (s *Service) GroupSalesGroupedByTimeframe(timeframe domain.Timeframe) (map[string][]*domain.PeriodEntry, error) {
	periods, err := s.saleRepo.GetGroupSalesGroupedByTimeframe(timeframe)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar vendas de grupos agrupadas por período")
	}
	return GroupBySaleDate(periods), nil
}

func (s *Service) GroupSalesAfterDate(startDate string, timeframe domain.Timeframe) (map[string][]*domain.PeriodEntry, error) {
	periods, err := s.saleRepo.GetGroupSalesAfterDate(startDate, timeframe)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar vendas de grupos a partir da data")
	}
	return GroupBySaleDate(periods), nil
}
