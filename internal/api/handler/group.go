package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/managing"
	"github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
)

// ListGroups lista todos os grupos
func ListGroups(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groups, err := service.ListGroups()
		if err != nil {
			respondManagingError(w, err, "Erro ao buscar grupos")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(groups); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// GetGroup retorna informações do grupo por ID
func GetGroup(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")

		id, err := strconv.Atoi(idStr)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do grupo inválido", nil)
			return
		}

		group, err := service.GetGroup(id)
		if err != nil {
			respondManagingError(w, err, "Erro ao buscar grupo")
			return
		}

		if group == nil {
			apiErrors.WriteError(w, apiErrors.ErrGroupNotFound, "Grupo não encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(group); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// CreateGroup cria um novo grupo
func CreateGroup(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var group domain.Group

		if err := json.NewDecoder(r.Body).Decode(&group); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if group.Name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome é obrigatório", nil)
			return
		}

		created, err := service.CreateGroup(group.Name)
		if err != nil {
			respondManagingError(w, err, "Erro ao criar grupo")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			logrus.Error(err)
		}
	}
}

// UpdateGroup atualiza o nome do grupo
func UpdateGroup(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")

		id, err := strconv.Atoi(idStr)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do grupo inválido", nil)
			return
		}

		var group domain.Group
		if err := json.NewDecoder(r.Body).Decode(&group); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		updated, err := service.UpdateGroup(id, group.Name)
		if err != nil {
			respondManagingError(w, err, "Erro ao atualizar grupo")
			return
		}

		if updated == nil {
			apiErrors.WriteError(w, apiErrors.ErrGroupNotFound, "Grupo não encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(updated); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// DeleteGroup remove o grupo por ID
func DeleteGroup(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")

		id, err := strconv.Atoi(idStr)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do grupo inválido", nil)
			return
		}

		if err := service.DeleteGroup(id); err != nil {
			respondManagingError(w, err, "Erro ao excluir grupo")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// AddUserToGroup vincula um usuário a um grupo
func AddUserToGroup(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		groupID, err := strconv.Atoi(params.ByName("id"))
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do grupo inválido", nil)
			return
		}

		userID, err := strconv.Atoi(params.ByName("user_id"))
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do usuário inválido", nil)
			return
		}

		if err := service.AddUserToGroup(groupID, userID); err != nil {
			respondManagingError(w, err, "Erro ao vincular usuário ao grupo")
			return
		}

		w.WriteHeader(http.StatusCreated)
	}
}

// RemoveUserFromGroup desfaz o vínculo entre usuário e grupo
func RemoveUserFromGroup(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		groupID, err := strconv.Atoi(params.ByName("id"))
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do grupo inválido", nil)
			return
		}

		userID, err := strconv.Atoi(params.ByName("user_id"))
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do usuário inválido", nil)
			return
		}

		if err := service.RemoveUserFromGroup(groupID, userID); err != nil {
			respondManagingError(w, err, "Erro ao desvincular usuário do grupo")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
