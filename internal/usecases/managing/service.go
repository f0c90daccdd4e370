package managing

import (
	"fmt"

	"github.com/vfg2006/sales-tracker-api/infrastructure/repository"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
)

type Manager interface {
	CreateUser(name, role string) (*domain.User, error)
	UpdateUser(req *domain.UpdateUserRequest) (*domain.User, error)
	DeleteUser(userID int) error
	GetUser(userID int) (*domain.User, error)
	ListUsers() ([]*domain.User, error)

	CreateGroup(name string) (*domain.Group, error)
	UpdateGroup(groupID int, name string) (*domain.Group, error)
	DeleteGroup(groupID int) error
	GetGroup(groupID int) (*domain.Group, error)
	ListGroups() ([]*domain.Group, error)

	AddUserToGroup(groupID, userID int) error
	RemoveUserFromGroup(groupID, userID int) error

	GroupsByUser(userID int) ([]*domain.Group, error)
	GroupMembers(groupID int) ([]*domain.User, error)
}

type Service struct {
	userRepo  repository.UserRepository
	groupRepo repository.GroupRepository
}

func NewService(userRepo repository.UserRepository, groupRepo repository.GroupRepository) Manager {
	return &Service{
		userRepo:  userRepo,
		groupRepo: groupRepo,
	}
}

// CreateUser cria um usuário após a verificação de nome duplicado. A
// verificação não é atômica com o INSERT; o índice único de users.name é a
// barreira definitiva e a violação também vira ErrDuplicateName.
func (s *Service) CreateUser(name, role string) (*domain.User, error) {
	if name == "" || role == "" {
		return nil, NewManageError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Nome e função são obrigatórios")
	}

	existing, err := s.userRepo.GetByName(name)
	if err != nil {
		return nil, NewManageError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if existing != nil {
		return nil, NewManageError(ErrDuplicateName, apiErrors.ErrDuplicateName, fmt.Sprintf("Usuário com nome %s já existe", name))
	}

	user, err := s.userRepo.Create(name, role)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, NewManageError(ErrDuplicateName, apiErrors.ErrDuplicateName, fmt.Sprintf("Usuário com nome %s já existe", name))
		}
		return nil, NewManageError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return user, nil
}

func (s *Service) UpdateUser(req *domain.UpdateUserRequest) (*domain.User, error) {
	user, err := s.userRepo.Update(req.ID, req)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, NewManageError(ErrDuplicateName, apiErrors.ErrDuplicateName, "Já existe um usuário com este nome")
		}
		return nil, NewManageError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return user, nil
}

func (s *Service) DeleteUser(userID int) error {
	if err := s.userRepo.Delete(userID); err != nil {
		return NewManageError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return nil
}

func (s *Service) GetUser(userID int) (*domain.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, NewManageError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return user, nil
}

func (s *Service) ListUsers() ([]*domain.User, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, NewManageError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return users, nil
}

// CreateGroup segue a mesma disciplina do CreateUser: pré-verificação por
// nome e índice único como barreira contra a corrida
func (s *Service) CreateGroup(name string) (*domain.Group, error) {
	if name == "" {
		return nil, NewManageError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Nome é obrigatório")
	}

	existing, err := s.groupRepo.GetByName(name)
	if err != nil {
		return nil, NewManageError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if existing != nil {
		return nil, NewManageError(ErrDuplicateName, apiErrors.ErrDuplicateName, fmt.Sprintf("Grupo com nome %s já existe", name))
	}

	group, err := s.groupRepo.Create(name)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, NewManageError(ErrDuplicateName, apiErrors.ErrDuplicateName, fmt.Sprintf("Grupo com nome %s já existe", name))
		}
		return nil, NewManageError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return group, nil
}

func (s *Service) UpdateGroup(groupID int, name string) (*domain.Group, error) {
	if name == "" {
		return nil, NewManageError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Nome é obrigatório")
	}

	group, err := s.groupRepo.Update(groupID, name)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, NewManageError(ErrDuplicateName, apiErrors.ErrDuplicateName, "Já existe um grupo com este nome")
		}
		return nil, NewManageError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return group, nil
}

func (s *Service) DeleteGroup(groupID int) error {
	if err := s.groupRepo.Delete(groupID); err != nil {
		return NewManageError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return nil
}

func (s *Service) GetGroup(groupID int) (*domain.Group, error) {
	group, err := s.groupRepo.GetByID(groupID)
	if err != nil {
		return nil, NewManageError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return group, nil
}

func (s *Service) ListGroups() ([]*domain.Group, error) {
	groups, err := s.groupRepo.List()
	if err != nil {
		return nil, NewManageError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return groups, nil
}

// AddUserToGroup valida a existência do usuário e do grupo antes do
// INSERT; a chave estrangeira do banco cobre a janela entre a checagem e a
// gravação
func (s *Service) AddUserToGroup(groupID, userID int) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return NewManageError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if user == nil {
		return NewManageError(ErrReferencedEntityNotFound, apiErrors.ErrReferencedEntityNotFound, fmt.Sprintf("Usuário %d não encontrado", userID))
	}

	group, err := s.groupRepo.GetByID(groupID)
	if err != nil {
		return NewManageError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if group == nil {
		return NewManageError(ErrReferencedEntityNotFound, apiErrors.ErrReferencedEntityNotFound, fmt.Sprintf("Grupo %d não encontrado", groupID))
	}

	if err := s.groupRepo.AddUser(groupID, userID); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return NewManageError(ErrReferencedEntityNotFound, apiErrors.ErrReferencedEntityNotFound, "Usuário ou grupo removido durante a operação")
		}
		return NewManageError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return nil
}

func (s *Service) RemoveUserFromGroup(groupID, userID int) error {
	if err := s.groupRepo.RemoveUser(groupID, userID); err != nil {
		return NewManageError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return nil
}

func (s *Service) GroupsByUser(userID int) ([]*domain.Group, error) {
	groups, err := s.groupRepo.GetByUserID(userID)
	if err != nil {
		return nil, NewManageError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return groups, nil
}

func (s *Service) GroupMembers(groupID int) ([]*domain.User, error) {
	users, err := s.groupRepo.UsersByGroupID(groupID)
	if err != nil {
		return nil, NewManageError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return users, nil
}
