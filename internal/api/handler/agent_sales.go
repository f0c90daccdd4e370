package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/selling"
	"github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/sales-tracker-api/pkg/log"
	"github.com/vfg2006/sales-tracker-api/pkg/utils"
)

// GetAgentSales lista as vendas individuais do vendedor
func GetAgentSales(service selling.Seller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
		id, err := strconv.Atoi(idStr)
		if err != nil {
			logger.WithField("user_id", idStr).Warn("sales: invalid user id parameter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do usuário inválido", nil)
			return
		}

		sales, err := service.SalesByUser(id)
		if err != nil {
			logger.WithFields(log.Fields{
				"user_id": id,
				"error":   err.Error(),
			}).Error("sales: failed to get sales for user")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar vendas do usuário", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(sales); err != nil {
			logger.WithError(err).Error("sales: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetAgentSalesTimeframe agrega as vendas do vendedor por mês ou por ano.
// Período desconhecido cai no agrupamento mensal.
func GetAgentSalesTimeframe(service selling.Seller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())
		idStr := params.ByName("id")

		id, err := strconv.Atoi(idStr)
		if err != nil {
			logger.WithField("user_id", idStr).Warn("sales: invalid user id parameter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do usuário inválido", nil)
			return
		}

		timeframe := domain.Timeframe(params.ByName("timeframe")).Normalize()

		periods, err := service.SalesByUserTimeframe(id, timeframe)
		if err != nil {
			logger.WithFields(log.Fields{
				"user_id":   id,
				"timeframe": timeframe,
				"error":     err.Error(),
			}).Error("sales: failed to get sales by timeframe for user")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar vendas do usuário por período", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(periods); err != nil {
			logger.WithError(err).Error("sales: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetAgentSalesAfterDate agrega as vendas de todos os vendedores a partir
// da data informada
func GetAgentSalesAfterDate(service selling.Seller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())
		startDate := params.ByName("start_date")

		if !utils.ValidDate(startDate) {
			logger.WithField("start_date", startDate).Warn("sales: invalid start_date parameter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data deve estar no formato YYYY-MM-DD", nil)
			return
		}

		timeframe := domain.Timeframe(params.ByName("timeframe")).Normalize()

		grouped, err := service.SalesAfterDate(startDate, timeframe)
		if err != nil {
			logger.WithFields(log.Fields{
				"start_date": startDate,
				"timeframe":  timeframe,
				"error":      err.Error(),
			}).Error("sales: failed to get sales after date")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar vendas a partir da data", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(grouped); err != nil {
			logger.WithError(err).Error("sales: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetAgentSalesGroupedByTimeframe agrega as vendas de todos os vendedores
// agrupadas por período. Aqui o período é parte essencial da resposta, então
// valores inválidos são rejeitados em vez de cair no fallback.
func GetAgentSalesGroupedByTimeframe(service selling.Seller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		timeframe := domain.Timeframe(httprouter.ParamsFromContext(r.Context()).ByName("timeframe"))
		if !timeframe.IsValid() {
			logger.WithField("timeframe", timeframe).Warn("sales: invalid timeframe parameter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Período deve ser month ou year", nil)
			return
		}

		grouped, err := service.SalesGroupedByTimeframe(timeframe)
		if err != nil {
			logger.WithFields(log.Fields{
				"timeframe": timeframe,
				"error":     err.Error(),
			}).Error("sales: failed to get sales grouped by timeframe")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar vendas agrupadas por período", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(grouped); err != nil {
			logger.WithError(err).Error("sales: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetAgentSalesByDateRange resume as vendas por vendedor dentro do
// intervalo de datas
func GetAgentSalesByDateRange(service selling.Seller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())
		startDate := params.ByName("start_date")
		endDate := params.ByName("end_date")

		if !utils.ValidDate(startDate) || !utils.ValidDate(endDate) {
			logger.WithFields(log.Fields{
				"start_date": startDate,
				"end_date":   endDate,
			}).Warn("sales: invalid date range parameters")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas devem estar no formato YYYY-MM-DD", nil)
			return
		}

		summaries, err := service.SalesByDateRange(startDate, endDate)
		if err != nil {
			logger.WithFields(log.Fields{
				"start_date": startDate,
				"end_date":   endDate,
				"error":      err.Error(),
			}).Error("sales: failed to get sales by date range")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar vendas por intervalo de datas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summaries); err != nil {
			logger.WithError(err).Error("sales: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
