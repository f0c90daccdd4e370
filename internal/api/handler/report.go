package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/managing"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/selling"
	"github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/sales-tracker-api/pkg/log"
)

// GetUserReport monta o relatório anual consolidado do usuário: dados
// cadastrais, grupos, vendas do ano e visão mensal agregada
func GetUserReport(reporter reporting.Reporter, manager managing.Manager, seller selling.Seller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())

		id, err := strconv.Atoi(params.ByName("id"))
		if err != nil {
			logger.WithField("user_id", params.ByName("id")).Warn("reports: invalid user id parameter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do usuário inválido", nil)
			return
		}

		year, err := strconv.Atoi(params.ByName("year"))
		if err != nil {
			logger.WithField("year", params.ByName("year")).Warn("reports: invalid year parameter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido", nil)
			return
		}

		user, err := manager.GetUser(id)
		if err != nil {
			respondManagingError(w, err, "Erro ao buscar usuário")
			return
		}
		if user == nil {
			apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuário não encontrado", nil)
			return
		}

		groups, err := manager.GroupsByUser(id)
		if err != nil {
			respondManagingError(w, err, "Erro ao buscar grupos do usuário")
			return
		}

		sales, err := seller.SalesByUser(id)
		if err != nil {
			logger.WithFields(log.Fields{
				"user_id": id,
				"error":   err.Error(),
			}).Error("reports: failed to get sales for user")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar vendas do usuário", nil)
			return
		}

		report, err := reporter.UserReport(user, sales, groups, year)
		if err != nil {
			logger.WithFields(log.Fields{
				"user_id": id,
				"year":    year,
				"error":   err.Error(),
			}).Error("reports: failed to build user report")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar relatório do usuário", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("reports: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetGroupReport monta o relatório anual consolidado do grupo com um
// sub-relatório por integrante
func GetGroupReport(reporter reporting.Reporter, manager managing.Manager, seller selling.Seller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())

		id, err := strconv.Atoi(params.ByName("id"))
		if err != nil {
			logger.WithField("group_id", params.ByName("id")).Warn("reports: invalid group id parameter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do grupo inválido", nil)
			return
		}

		year, err := strconv.Atoi(params.ByName("year"))
		if err != nil {
			logger.WithField("year", params.ByName("year")).Warn("reports: invalid year parameter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido", nil)
			return
		}

		group, err := manager.GetGroup(id)
		if err != nil {
			respondManagingError(w, err, "Erro ao buscar grupo")
			return
		}
		if group == nil {
			apiErrors.WriteError(w, apiErrors.ErrGroupNotFound, "Grupo não encontrado", nil)
			return
		}

		groupSales, err := seller.SalesByGroup(id)
		if err != nil {
			logger.WithFields(log.Fields{
				"group_id": id,
				"error":    err.Error(),
			}).Error("reports: failed to get sales for group")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar vendas do grupo", nil)
			return
		}

		users, err := manager.GroupMembers(id)
		if err != nil {
			respondManagingError(w, err, "Erro ao buscar integrantes do grupo")
			return
		}

		// Carrega as vendas individuais de cada integrante antes da montagem
		members := make([]*domain.GroupMember, 0, len(users))
		for _, user := range users {
			memberSales, err := seller.SalesByUser(user.ID)
			if err != nil {
				logger.WithFields(log.Fields{
					"group_id": id,
					"user_id":  user.ID,
					"error":    err.Error(),
				}).Error("reports: failed to get sales for group member")

				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar vendas do integrante", nil)
				return
			}

			members = append(members, &domain.GroupMember{
				User:  *user,
				Sales: memberSales,
			})
		}

		report, err := reporter.GroupReport(group, groupSales, members, year)
		if err != nil {
			logger.WithFields(log.Fields{
				"group_id": id,
				"year":     year,
				"error":    err.Error(),
			}).Error("reports: failed to build group report")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar relatório do grupo", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("reports: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
