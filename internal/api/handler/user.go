package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/managing"
	"github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
)

// respondManagingError traduz os erros de negócio do cadastro para a
// resposta padronizada da API
func respondManagingError(w http.ResponseWriter, err error, fallbackMessage string) {
	logrus.Error(err)

	if errors.Is(err, managing.ErrDuplicateName) {
		apiErrors.WriteError(w, apiErrors.ErrDuplicateName, "Nome já cadastrado", nil)
		return
	}
	if errors.Is(err, managing.ErrReferencedEntityNotFound) {
		apiErrors.WriteError(w, apiErrors.ErrReferencedEntityNotFound, "Usuário ou grupo não encontrado", nil)
		return
	}
	if errors.Is(err, managing.ErrMissingRequiredData) {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
		return
	}

	// Verificar se é um ManageError com código próprio
	var manageErr *managing.ManageError
	if errors.As(err, &manageErr) {
		apiErrors.WriteError(w, manageErr.Code, manageErr.Details, nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, fallbackMessage, nil)
}

// ListUsers lista todos os usuários
func ListUsers(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := service.ListUsers()
		if err != nil {
			respondManagingError(w, err, "Erro ao buscar usuários")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(users); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// GetUser retorna informações do usuário por ID
func GetUser(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")

		id, err := strconv.Atoi(idStr)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do usuário inválido", nil)
			return
		}

		user, err := service.GetUser(id)
		if err != nil {
			respondManagingError(w, err, "Erro ao buscar usuário")
			return
		}

		if user == nil {
			apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuário não encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(user); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// CreateUser cria um novo usuário
func CreateUser(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var user domain.User

		if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if user.Name == "" || user.Role == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome e função são obrigatórios", nil)
			return
		}

		created, err := service.CreateUser(user.Name, user.Role)
		if err != nil {
			respondManagingError(w, err, "Erro ao criar usuário")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			logrus.Error(err)
		}
	}
}

// UpdateUser atualiza nome e/ou função do usuário
func UpdateUser(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")

		id, err := strconv.Atoi(idStr)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do usuário inválido", nil)
			return
		}

		var updateReq domain.UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		updateReq.ID = id

		user, err := service.UpdateUser(&updateReq)
		if err != nil {
			respondManagingError(w, err, "Erro ao atualizar usuário")
			return
		}

		if user == nil {
			apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuário não encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(user); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// DeleteUser remove o usuário por ID
func DeleteUser(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")

		id, err := strconv.Atoi(idStr)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do usuário inválido", nil)
			return
		}

		if err := service.DeleteUser(id); err != nil {
			respondManagingError(w, err, "Erro ao excluir usuário")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
