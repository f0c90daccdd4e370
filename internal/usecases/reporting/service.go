package reporting

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-tracker-api/infrastructure/repository"
	"github.com/vfg2006/sales-tracker-api/internal/config"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
)

// Reporter monta os relatórios consolidados de usuário e de grupo. A
// entidade, as vendas brutas e os vínculos chegam prontos do chamador; a
// única consulta viva feita aqui é a visão mensal agregada.
type Reporter interface {
	UserReport(user *domain.User, sales []*domain.Sale, groups []*domain.Group, year int) (*domain.UserReport, error)
	GroupReport(group *domain.Group, groupSales []*domain.GroupSale, members []*domain.GroupMember, year int) (*domain.GroupReport, error)
}

type Service struct {
	saleRepo             repository.SaleRepository
	maxConcurrentMembers int
}

func NewService(saleRepo repository.SaleRepository, cfg *config.Config) Reporter {
	maxConcurrent := cfg.Report.MaxConcurrentMemberQueries
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}

	return &Service{
		saleRepo:             saleRepo,
		maxConcurrentMembers: maxConcurrent,
	}
}

func (s *Service) UserReport(user *domain.User, sales []*domain.Sale, groups []*domain.Group, year int) (*domain.UserReport, error) {
	salesFilteredByYear := filterSalesByYear(sales, year)

	salesByMonth, err := s.saleRepo.GetByUserIDTimeframe(user.ID, domain.TimeframeMonth)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar vendas mensais do usuário")
	}

	totalSales, totalSalesCount := totalSalesMetrics(salesFilteredByYear)

	return &domain.UserReport{
		UserInformation: domain.UserInformation{
			UserID:   user.ID,
			UserName: user.Name,
			UserRole: user.Role,
		},
		Groups: groups,
		SalesData: domain.UserSalesData{
			SalesByMonth:    monthlySales(salesByMonth),
			IndividualSales: salesFilteredByYear,
		},
		TotalSales:      totalSales,
		TotalSalesCount: totalSalesCount,
	}, nil
}

// GroupReport monta o relatório do grupo e um sub-relatório por
// integrante. As consultas mensais dos integrantes rodam com concorrência
// limitada; a ordem dos sub-relatórios é sempre a ordem da lista de
// entrada, independente da ordem de término.
func (s *Service) GroupReport(group *domain.Group, groupSales []*domain.GroupSale, members []*domain.GroupMember, year int) (*domain.GroupReport, error) {
	salesFilteredByYear := filterGroupSalesByYear(groupSales, year)

	salesByMonth, err := s.saleRepo.GetByGroupIDTimeframe(group.ID, domain.TimeframeMonth)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar vendas mensais do grupo")
	}

	memberReports := make([]*domain.MemberReport, len(members))
	memberErrs := make([]error, len(members))

	sem := make(chan struct{}, s.maxConcurrentMembers)
	var wg sync.WaitGroup

	for i, member := range members {
		wg.Add(1)
		go func(idx int, m *domain.GroupMember) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			memberReports[idx], memberErrs[idx] = s.memberReport(m, year)
		}(i, member)
	}

	wg.Wait()

	for _, err := range memberErrs {
		if err != nil {
			return nil, err
		}
	}

	totalSales, totalSalesCount := totalGroupSalesMetrics(salesFilteredByYear)

	return &domain.GroupReport{
		GroupInformation: domain.GroupInformation{
			GroupID:   group.ID,
			GroupName: group.Name,
		},
		Users: memberReports,
		SalesData: domain.GroupSalesData{
			SalesByMonth: monthlySales(salesByMonth),
			GroupSales:   salesFilteredByYear,
		},
		TotalSales:      totalSales,
		TotalSalesCount: totalSalesCount,
	}, nil
}

func (s *Service) memberReport(member *domain.GroupMember, year int) (*domain.MemberReport, error) {
	memberSalesFilteredByYear := filterSalesByYear(member.Sales, year)

	salesByMonth, err := s.saleRepo.GetByUserIDTimeframe(member.ID, domain.TimeframeMonth)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar vendas mensais do integrante %d", member.ID)
	}

	totalSales, totalSalesCount := totalSalesMetrics(memberSalesFilteredByYear)

	return &domain.MemberReport{
		UserInformation: domain.UserInformation{
			UserID:   member.ID,
			UserName: member.Name,
			UserRole: member.Role,
		},
		SalesData: domain.UserSalesData{
			SalesByMonth:    monthlySales(salesByMonth),
			IndividualSales: memberSalesFilteredByYear,
		},
		TotalSales:      totalSales,
		TotalSalesCount: totalSalesCount,
	}, nil
}
