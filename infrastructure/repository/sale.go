package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
)

const (
	salesTable = "sales"

	// s.date é DATE no banco; o TO_CHAR mantém o campo como texto estável
	// para o filtro por ano em memória
	saleDateColumn = "TO_CHAR(s.date, 'YYYY-MM-DD') AS date"
)

type SaleRepository interface {
	GetByUserID(userID int) ([]*domain.Sale, error)
	GetByUserIDTimeframe(userID int, timeframe domain.Timeframe) ([]*domain.SalesByPeriod, error)
	Create(userID int, amount decimal.Decimal, date string) (*domain.Sale, error)
	Delete(saleID int) (bool, error)
	GetByDateRange(startDate, endDate string) ([]*domain.RangeSalesSummary, error)
	GetGroupedByTimeframe(timeframe domain.Timeframe) ([]*domain.SalesByPeriod, error)
	GetAfterDate(startDate string, timeframe domain.Timeframe) ([]*domain.SalesByPeriod, error)
	GetByGroupID(groupID int) ([]*domain.GroupSale, error)
	GetByGroupIDTimeframe(groupID int, timeframe domain.Timeframe) ([]*domain.SalesByPeriod, error)
	GetGroupSalesByDateRange(startDate, endDate string) ([]*domain.RangeSalesSummary, error)
	GetGroupSalesGroupedByTimeframe(timeframe domain.Timeframe) ([]*domain.SalesByPeriod, error)
	GetGroupSalesAfterDate(startDate string, timeframe domain.Timeframe) ([]*domain.SalesByPeriod, error)
}

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

// bucketColumn monta a expressão de truncamento por período. O timeframe é
// normalizado para o enum de dois valores antes de entrar no texto da
// consulta; valores de chamador nunca são interpolados aqui.
func bucketColumn(timeframe domain.Timeframe) string {
	tf := timeframe.Normalize()
	return fmt.Sprintf("TO_CHAR(DATE_TRUNC('%s', s.date), '%s') AS sale_date", tf, tf.DateFormat())
}

func (r *saleRepository) GetByUserID(userID int) ([]*domain.Sale, error) {
	query, args, err := squirrel.
		Select("s.id", "s.user_id", "s.amount", saleDateColumn).
		From(salesTable + " s").
		Where(squirrel.Eq{"s.user_id": userID}).
		OrderBy("s.date DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sales := make([]*domain.Sale, 0)
	for rows.Next() {
		var sale domain.Sale
		if err := rows.Scan(&sale.ID, &sale.UserID, &sale.Amount, &sale.Date); err != nil {
			return nil, fmt.Errorf("erro ao escanear vendas: %w", err)
		}
		sales = append(sales, &sale)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sales, nil
}

func (r *saleRepository) GetByUserIDTimeframe(userID int, timeframe domain.Timeframe) ([]*domain.SalesByPeriod, error) {
	query, args, err := squirrel.
		Select(
			"u.id", "u.name",
			bucketColumn(timeframe),
			"SUM(s.amount) AS total_sales",
			"AVG(s.amount)::NUMERIC(10,2) AS avg_sales",
			"COUNT(s.id) AS num_sales",
		).
		From("users u").
		Join("sales s ON u.id = s.user_id").
		Where(squirrel.Eq{"u.id": userID}).
		GroupBy("u.id", "u.name", "sale_date").
		OrderBy("sale_date DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryPeriods(query, args...)
}

func (r *saleRepository) Create(userID int, amount decimal.Decimal, date string) (*domain.Sale, error) {
	query, args, err := squirrel.
		Insert(salesTable).
		Columns("user_id", "amount", "date").
		Values(userID, amount, date).
		Suffix("RETURNING id, user_id, amount, TO_CHAR(date, 'YYYY-MM-DD')").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var sale domain.Sale
	err = r.conn.QueryRow(query, args...).Scan(&sale.ID, &sale.UserID, &sale.Amount, &sale.Date)
	if err != nil {
		return nil, err
	}

	return &sale, nil
}

// Delete remove a venda e informa se alguma linha existia
func (r *saleRepository) Delete(saleID int) (bool, error) {
	query, args, err := squirrel.
		Delete(salesTable).
		Where(squirrel.Eq{"id": saleID}).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var deletedID int
	err = r.conn.QueryRow(query, args...).Scan(&deletedID)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return true, nil
}

func (r *saleRepository) GetByDateRange(startDate, endDate string) ([]*domain.RangeSalesSummary, error) {
	query, args, err := squirrel.
		Select(
			"u.id", "u.name",
			"SUM(s.amount) AS total_sales",
			"AVG(s.amount)::NUMERIC(10,2) AS avg_sales",
		).
		From("users u").
		Join("sales s ON u.id = s.user_id").
		Where(squirrel.GtOrEq{"s.date": startDate}).
		Where(squirrel.LtOrEq{"s.date": endDate}).
		GroupBy("u.id", "u.name").
		OrderBy("total_sales DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryRangeSummaries(query, args...)
}

func (r *saleRepository) GetGroupedByTimeframe(timeframe domain.Timeframe) ([]*domain.SalesByPeriod, error) {
	query, args, err := squirrel.
		Select(
			"u.id", "u.name",
			bucketColumn(timeframe),
			"SUM(s.amount) AS total_sales",
			"AVG(s.amount)::NUMERIC(10,2) AS avg_sales",
			"COUNT(s.id) AS num_sales",
		).
		From("users u").
		Join("sales s ON u.id = s.user_id").
		GroupBy("u.id", "u.name", "sale_date").
		OrderBy("sale_date DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryPeriods(query, args...)
}

func (r *saleRepository) GetAfterDate(startDate string, timeframe domain.Timeframe) ([]*domain.SalesByPeriod, error) {
	query, args, err := squirrel.
		Select(
			"u.id", "u.name",
			bucketColumn(timeframe),
			"SUM(s.amount) AS total_sales",
			"AVG(s.amount)::NUMERIC(10,2) AS avg_sales",
			"COUNT(s.id) AS num_sales",
		).
		From("users u").
		Join("sales s ON u.id = s.user_id").
		Where(squirrel.GtOrEq{"s.date": startDate}).
		GroupBy("u.id", "u.name", "sale_date").
		OrderBy("sale_date DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryPeriods(query, args...)
}

// GetByGroupID devolve as vendas brutas atribuídas ao grupo pelo vínculo
// do vendedor em user_groups
func (r *saleRepository) GetByGroupID(groupID int) ([]*domain.GroupSale, error) {
	query, args, err := squirrel.
		Select("s.id", "s.user_id", "s.amount", saleDateColumn, "g.name").
		From(salesTable + " s").
		Join("user_groups ug ON ug.user_id = s.user_id").
		Join("groups g ON g.id = ug.group_id").
		Where(squirrel.Eq{"g.id": groupID}).
		OrderBy("s.date DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sales := make([]*domain.GroupSale, 0)
	for rows.Next() {
		var sale domain.GroupSale
		if err := rows.Scan(&sale.ID, &sale.UserID, &sale.Amount, &sale.Date, &sale.GroupName); err != nil {
			return nil, fmt.Errorf("erro ao escanear vendas do grupo: %w", err)
		}
		sales = append(sales, &sale)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sales, nil
}

func (r *saleRepository) GetByGroupIDTimeframe(groupID int, timeframe domain.Timeframe) ([]*domain.SalesByPeriod, error) {
	query, args, err := squirrel.
		Select(
			"g.id", "g.name",
			bucketColumn(timeframe),
			"SUM(s.amount) AS total_sales",
			"AVG(s.amount)::NUMERIC(10,2) AS avg_sales",
			"COUNT(s.id) AS num_sales",
		).
		From(salesTable + " s").
		Join("user_groups ug ON ug.user_id = s.user_id").
		Join("groups g ON g.id = ug.group_id").
		Where(squirrel.Eq{"g.id": groupID}).
		GroupBy("g.id", "g.name", "sale_date").
		OrderBy("sale_date DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryPeriods(query, args...)
}

func (r *saleRepository) GetGroupSalesByDateRange(startDate, endDate string) ([]*domain.RangeSalesSummary, error) {
	query, args, err := squirrel.
		Select(
			"g.id", "g.name",
			"SUM(s.amount) AS total_sales",
			"AVG(s.amount)::NUMERIC(10,2) AS avg_sales",
		).
		From(salesTable + " s").
		Join("user_groups ug ON ug.user_id = s.user_id").
		Join("groups g ON g.id = ug.group_id").
		Where(squirrel.GtOrEq{"s.date": startDate}).
		Where(squirrel.LtOrEq{"s.date": endDate}).
		GroupBy("g.id", "g.name").
		OrderBy("total_sales DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryRangeSummaries(query, args...)
}

func (r *saleRepository) GetGroupSalesGroupedByTimeframe(timeframe domain.Timeframe) ([]*domain.SalesByPeriod, error) {
	query, args, err := squirrel.
		Select(
			"g.id", "g.name",
			bucketColumn(timeframe),
			"SUM(s.amount) AS total_sales",
			"AVG(s.amount)::NUMERIC(10,2) AS avg_sales",
			"COUNT(s.id) AS num_sales",
		).
		From(salesTable + " s").
		Join("user_groups ug ON ug.user_id = s.user_id").
		Join("groups g ON g.id = ug.group_id").
		GroupBy("g.id", "g.name", "sale_date").
		OrderBy("sale_date DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryPeriods(query, args...)
}

func (r *saleRepository) GetGroupSalesAfterDate(startDate string, timeframe domain.Timeframe) ([]*domain.SalesByPeriod, error) {
	query, args, err := squirrel.
		Select(
			"g.id", "g.name",
			bucketColumn(timeframe),
			"SUM(s.amount) AS total_sales",
			"AVG(s.amount)::NUMERIC(10,2) AS avg_sales",
			"COUNT(s.id) AS num_sales",
		).
		From(salesTable + " s").
		Join("user_groups ug ON ug.user_id = s.user_id").
		Join("groups g ON g.id = ug.group_id").
		Where(squirrel.GtOrEq{"s.date": startDate}).
		GroupBy("g.id", "g.name", "sale_date").
		OrderBy("sale_date DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryPeriods(query, args...)
}

func (r *saleRepository) queryPeriods(query string, args ...interface{}) ([]*domain.SalesByPeriod, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	periods := make([]*domain.SalesByPeriod, 0)
	for rows.Next() {
		var period domain.SalesByPeriod
		if err := rows.Scan(
			&period.EntityID,
			&period.EntityName,
			&period.SaleDate,
			&period.TotalSales,
			&period.AvgSales,
			&period.NumSales,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear vendas por período: %w", err)
		}
		periods = append(periods, &period)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return periods, nil
}

func (r *saleRepository) queryRangeSummaries(query string, args ...interface{}) ([]*domain.RangeSalesSummary, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	summaries := make([]*domain.RangeSalesSummary, 0)
	for rows.Next() {
		var summary domain.RangeSalesSummary
		if err := rows.Scan(
			&summary.EntityID,
			&summary.EntityName,
			&summary.TotalSales,
			&summary.AvgSales,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear resumo de vendas: %w", err)
		}
		summaries = append(summaries, &summary)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return summaries, nil
}
