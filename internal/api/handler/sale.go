package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/selling"
	"github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/sales-tracker-api/pkg/utils"
)

// AddSale registra uma venda para o usuário informado no corpo
func AddSale(service selling.Seller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sale domain.Sale

		if err := json.NewDecoder(r.Body).Decode(&sale); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if sale.UserID == 0 || sale.Amount.IsZero() || sale.Date == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Usuário, valor e data são obrigatórios", nil)
			return
		}

		if !utils.ValidDate(sale.Date) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data deve estar no formato YYYY-MM-DD", nil)
			return
		}

		created, err := service.AddSale(sale.UserID, sale.Amount, sale.Date)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao registrar venda", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			logrus.Error(err)
		}
	}
}

// DeleteSale remove a venda por ID
func DeleteSale(service selling.Seller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")

		id, err := strconv.Atoi(idStr)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID da venda inválido", nil)
			return
		}

		deleted, err := service.DeleteSale(id)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao excluir venda", nil)
			return
		}

		if !deleted {
			apiErrors.WriteError(w, apiErrors.ErrSaleNotFound, "Venda não encontrada", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
