package managing

import (
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-tracker-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_CreateUser(t *testing.T) {
	tests := []struct {
		name        string
		userName    string
		userRole    string
		setup       func(userRepo *mocks.MockUserRepository)
		expectedErr error
	}{
		{
			name:     "cria usuário quando o nome está livre",
			userName: "Ana Souza",
			userRole: "vendedor",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().
					GetByName("Ana Souza").
					Return(nil, nil)

				userRepo.EXPECT().
					Create("Ana Souza", "vendedor").
					Return(&domain.User{ID: 1, Name: "Ana Souza", Role: "vendedor"}, nil)
			},
		},
		{
			name:     "nome duplicado é barrado na pré-verificação sem INSERT",
			userName: "Ana Souza",
			userRole: "vendedor",
			setup: func(userRepo *mocks.MockUserRepository) {
				// Nenhuma expectativa de Create: o INSERT não pode acontecer
				userRepo.EXPECT().
					GetByName("Ana Souza").
					Return(&domain.User{ID: 7, Name: "Ana Souza", Role: "gerente"}, nil)
			},
			expectedErr: ErrDuplicateName,
		},
		{
			name:     "corrida entre pré-verificação e INSERT vira nome duplicado",
			userName: "Ana Souza",
			userRole: "vendedor",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().
					GetByName("Ana Souza").
					Return(nil, nil)

				// O índice único do banco barra a segunda requisição
				userRepo.EXPECT().
					Create("Ana Souza", "vendedor").
					Return(nil, &pq.Error{Code: "23505"})
			},
			expectedErr: ErrDuplicateName,
		},
		{
			name:        "nome vazio é rejeitado antes de qualquer consulta",
			userName:    "",
			userRole:    "vendedor",
			setup:       func(userRepo *mocks.MockUserRepository) {},
			expectedErr: ErrMissingRequiredData,
		},
		{
			name:     "falha do banco na pré-verificação propaga como erro",
			userName: "Ana Souza",
			userRole: "vendedor",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().
					GetByName("Ana Souza").
					Return(nil, errors.New("connection refused"))
			},
			expectedErr: ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			userRepo := mocks.NewMockUserRepository(ctrl)
			groupRepo := mocks.NewMockGroupRepository(ctrl)
			tt.setup(userRepo)

			service := NewService(userRepo, groupRepo)

			user, err := service.CreateUser(tt.userName, tt.userRole)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, user)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.userName, user.Name)
			assert.Equal(t, tt.userRole, user.Role)
		})
	}
}

func TestService_CreateGroup(t *testing.T) {
	tests := []struct {
		name        string
		groupName   string
		setup       func(groupRepo *mocks.MockGroupRepository)
		expectedErr error
	}{
		{
			name:      "cria grupo quando o nome está livre",
			groupName: "Equipe Centro",
			setup: func(groupRepo *mocks.MockGroupRepository) {
				groupRepo.EXPECT().
					GetByName("Equipe Centro").
					Return(nil, nil)

				groupRepo.EXPECT().
					Create("Equipe Centro").
					Return(&domain.Group{ID: 1, Name: "Equipe Centro"}, nil)
			},
		},
		{
			name:      "nome duplicado é barrado na pré-verificação sem INSERT",
			groupName: "Equipe Centro",
			setup: func(groupRepo *mocks.MockGroupRepository) {
				groupRepo.EXPECT().
					GetByName("Equipe Centro").
					Return(&domain.Group{ID: 3, Name: "Equipe Centro"}, nil)
			},
			expectedErr: ErrDuplicateName,
		},
		{
			name:      "violação do índice único vira nome duplicado",
			groupName: "Equipe Centro",
			setup: func(groupRepo *mocks.MockGroupRepository) {
				groupRepo.EXPECT().
					GetByName("Equipe Centro").
					Return(nil, nil)

				groupRepo.EXPECT().
					Create("Equipe Centro").
					Return(nil, &pq.Error{Code: "23505"})
			},
			expectedErr: ErrDuplicateName,
		},
		{
			name:        "nome vazio é rejeitado",
			groupName:   "",
			setup:       func(groupRepo *mocks.MockGroupRepository) {},
			expectedErr: ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			userRepo := mocks.NewMockUserRepository(ctrl)
			groupRepo := mocks.NewMockGroupRepository(ctrl)
			tt.setup(groupRepo)

			service := NewService(userRepo, groupRepo)

			group, err := service.CreateGroup(tt.groupName)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, group)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.groupName, group.Name)
		})
	}
}

func TestService_AddUserToGroup(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(userRepo *mocks.MockUserRepository, groupRepo *mocks.MockGroupRepository)
		expectedErr error
	}{
		{
			name: "vincula quando usuário e grupo existem",
			setup: func(userRepo *mocks.MockUserRepository, groupRepo *mocks.MockGroupRepository) {
				userRepo.EXPECT().
					GetByID(1).
					Return(&domain.User{ID: 1, Name: "Ana Souza", Role: "vendedor"}, nil)

				groupRepo.EXPECT().
					GetByID(2).
					Return(&domain.Group{ID: 2, Name: "Equipe Centro"}, nil)

				groupRepo.EXPECT().
					AddUser(2, 1).
					Return(nil)
			},
		},
		{
			name: "usuário inexistente é barrado antes do INSERT",
			setup: func(userRepo *mocks.MockUserRepository, groupRepo *mocks.MockGroupRepository) {
				userRepo.EXPECT().
					GetByID(1).
					Return(nil, nil)
			},
			expectedErr: ErrReferencedEntityNotFound,
		},
		{
			name: "grupo inexistente é barrado antes do INSERT",
			setup: func(userRepo *mocks.MockUserRepository, groupRepo *mocks.MockGroupRepository) {
				userRepo.EXPECT().
					GetByID(1).
					Return(&domain.User{ID: 1, Name: "Ana Souza", Role: "vendedor"}, nil)

				groupRepo.EXPECT().
					GetByID(2).
					Return(nil, nil)
			},
			expectedErr: ErrReferencedEntityNotFound,
		},
		{
			name: "remoção entre a checagem e o INSERT vira entidade inexistente",
			setup: func(userRepo *mocks.MockUserRepository, groupRepo *mocks.MockGroupRepository) {
				userRepo.EXPECT().
					GetByID(1).
					Return(&domain.User{ID: 1, Name: "Ana Souza", Role: "vendedor"}, nil)

				groupRepo.EXPECT().
					GetByID(2).
					Return(&domain.Group{ID: 2, Name: "Equipe Centro"}, nil)

				// A chave estrangeira barra o vínculo com entidade já removida
				groupRepo.EXPECT().
					AddUser(2, 1).
					Return(&pq.Error{Code: "23503"})
			},
			expectedErr: ErrReferencedEntityNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			userRepo := mocks.NewMockUserRepository(ctrl)
			groupRepo := mocks.NewMockGroupRepository(ctrl)
			tt.setup(userRepo, groupRepo)

			service := NewService(userRepo, groupRepo)

			err := service.AddUserToGroup(2, 1)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_DeleteUser(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(userRepo *mocks.MockUserRepository)
		expectedErr error
	}{
		{
			name: "exclui usuário sem vendas nem vínculos",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().
					Delete(1).
					Return(nil)
			},
		},
		{
			// Usuário com vendas ou vínculos: as FKs barram a exclusão e o
			// erro propaga; os registros dependentes nunca somem em cascata
			name: "exclusão barrada por registros dependentes propaga o erro",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().
					Delete(1).
					Return(&pq.Error{Code: "23503"})
			},
			expectedErr: ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			userRepo := mocks.NewMockUserRepository(ctrl)
			groupRepo := mocks.NewMockGroupRepository(ctrl)
			tt.setup(userRepo)

			service := NewService(userRepo, groupRepo)

			err := service.DeleteUser(1)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}
