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

// GetGroupSales lista as vendas atribuídas ao grupo pelos vínculos dos
// vendedores
func GetGroupSales(service selling.Seller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
		id, err := strconv.Atoi(idStr)
		if err != nil {
			logger.WithField("group_id", idStr).Warn("sales: invalid group id parameter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do grupo inválido", nil)
			return
		}

		sales, err := service.SalesByGroup(id)
		if err != nil {
			logger.WithFields(log.Fields{
				"group_id": id,
				"error":    err.Error(),
			}).Error("sales: failed to get sales for group")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar vendas do grupo", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(sales); err != nil {
			logger.WithError(err).Error("sales: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetGroupSalesTimeframe agrega as vendas do grupo por mês ou por ano
func GetGroupSalesTimeframe(service selling.Seller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())
		idStr := params.ByName("id")

		id, err := strconv.Atoi(idStr)
		if err != nil {
			logger.WithField("group_id", idStr).Warn("sales: invalid group id parameter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do grupo inválido", nil)
			return
		}

		timeframe := domain.Timeframe(params.ByName("timeframe")).Normalize()

		periods, err := service.SalesByGroupTimeframe(id, timeframe)
		if err != nil {
			logger.WithFields(log.Fields{
				"group_id":  id,
				"timeframe": timeframe,
				"error":     err.Error(),
			}).Error("sales: failed to get sales by timeframe for group")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar vendas do grupo por período", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(periods); err != nil {
			logger.WithError(err).Error("sales: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetGroupSalesAfterDate agrega as vendas de todos os grupos a partir da
// data informada
func GetGroupSalesAfterDate(service selling.Seller) http.Handler {
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

		grouped, err := service.GroupSalesAfterDate(startDate, timeframe)
		if err != nil {
			logger.WithFields(log.Fields{
				"start_date": startDate,
				"timeframe":  timeframe,
				"error":      err.Error(),
			}).Error("sales: failed to get group sales after date")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar vendas de grupos a partir da data", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(grouped); err != nil {
			logger.WithError(err).Error("sales: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetGroupSalesGroupedByTimeframe agrega as vendas de todos os grupos
// agrupadas por período. Rejeita períodos inválidos como na rota de
// vendedores.
func GetGroupSalesGroupedByTimeframe(service selling.Seller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		timeframe := domain.Timeframe(httprouter.ParamsFromContext(r.Context()).ByName("timeframe"))
		if !timeframe.IsValid() {
			logger.WithField("timeframe", timeframe).Warn("sales: invalid timeframe parameter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Período deve ser month ou year", nil)
			return
		}

		grouped, err := service.GroupSalesGroupedByTimeframe(timeframe)
		if err != nil {
			logger.WithFields(log.Fields{
				"timeframe": timeframe,
				"error":     err.Error(),
			}).Error("sales: failed to get group sales grouped by timeframe")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar vendas de grupos agrupadas por período", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(grouped); err != nil {
			logger.WithError(err).Error("sales: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetGroupSalesByDateRange resume as vendas por grupo dentro do intervalo
// de datas
func GetGroupSalesByDateRange(service selling.Seller) http.Handler {
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

		summaries, err := service.GroupSalesByDateRange(startDate, endDate)
		if err != nil {
			logger.WithFields(log.Fields{
				"start_date": startDate,
				"end_date":   endDate,
				"error":      err.Error(),
			}).Error("sales: failed to get group sales by date range")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar vendas de grupos por intervalo de datas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summaries); err != nil {
			logger.WithError(err).Error("sales: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
