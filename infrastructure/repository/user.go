package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/sales-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
)

const (
	usersTable = "users"
)

type UserRepository interface {
	GetByID(userID int) (*domain.User, error)
	GetByName(name string) (*domain.User, error)
	List() ([]*domain.User, error)
	Create(name, role string) (*domain.User, error)
	Update(userID int, req *domain.UpdateUserRequest) (*domain.User, error)
	Delete(userID int) error
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) GetByID(userID int) (*domain.User, error) {
	query, args, err := squirrel.
		Select("id", "name", "role").
		From(usersTable).
		Where(squirrel.Eq{"id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	user, err := r.scanUser(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear usuário: %w", err)
	}

	return user, nil
}

func (r *userRepository) GetByName(name string) (*domain.User, error) {
	query, args, err := squirrel.
		Select("id", "name", "role").
		From(usersTable).
		Where(squirrel.Eq{"name": name}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	user, err := r.scanUser(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear usuário: %w", err)
	}

	return user, nil
}

func (r *userRepository) List() ([]*domain.User, error) {
	query, args, err := squirrel.
		Select("id", "name", "role").
		From(usersTable).
		OrderBy("id ASC").
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

	users := make([]*domain.User, 0)
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Role); err != nil {
			return nil, fmt.Errorf("erro ao escanear usuários: %w", err)
		}
		users = append(users, &user)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return users, nil
}

func (r *userRepository) Create(name, role string) (*domain.User, error) {
	query, args, err := squirrel.
		Insert(usersTable).
		Columns("name", "role").
		Values(name, role).
		Suffix("RETURNING id, name, role").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	user, err := r.scanUser(r.conn.QueryRow(query, args...))
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Update aplica uma atualização parcial: apenas os campos presentes na
// requisição entram no statement. Sem nenhum campo, devolve a linha atual
// sem emitir UPDATE (um SET vazio seria SQL inválido).
func (r *userRepository) Update(userID int, req *domain.UpdateUserRequest) (*domain.User, error) {
	queryBuilder := squirrel.
		Update(usersTable).
		Where(squirrel.Eq{"id": userID})

	hasChanges := false

	if req.Name != nil {
		queryBuilder = queryBuilder.Set("name", *req.Name)
		hasChanges = true
	}

	if req.Role != nil {
		queryBuilder = queryBuilder.Set("role", *req.Role)
		hasChanges = true
	}

	if !hasChanges {
		return r.GetByID(userID)
	}

	query, args, err := queryBuilder.
		Suffix("RETURNING id, name, role").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	user, err := r.scanUser(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear usuário: %w", err)
	}

	return user, nil
}

func (r *userRepository) Delete(userID int) error {
	query, args, err := squirrel.
		Delete(usersTable).
		Where(squirrel.Eq{"id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *userRepository) scanUser(row *sql.Row) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(&user.ID, &user.Name, &user.Role); err != nil {
		return nil, err
	}
	return &user, nil
}
