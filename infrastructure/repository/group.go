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
	groupsTable     = "groups"
	userGroupsTable = "user_groups"
)

type GroupRepository interface {
	GetByID(groupID int) (*domain.Group, error)
	GetByName(name string) (*domain.Group, error)
	List() ([]*domain.Group, error)
	Create(name string) (*domain.Group, error)
	Update(groupID int, name string) (*domain.Group, error)
	Delete(groupID int) error
	GetByUserID(userID int) ([]*domain.Group, error)
	UsersByGroupID(groupID int) ([]*domain.User, error)
	AddUser(groupID, userID int) error
	RemoveUser(groupID, userID int) error
}

type groupRepository struct {
	conn *postgres.Connection
}

func NewGroupRepository(conn *postgres.Connection) GroupRepository {
	return &groupRepository{
		conn: conn,
	}
}

func (r *groupRepository) GetByID(groupID int) (*domain.Group, error) {
	query, args, err := squirrel.
		Select("id", "name").
		From(groupsTable).
		Where(squirrel.Eq{"id": groupID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	group, err := r.scanGroup(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear grupo: %w", err)
	}

	return group, nil
}

func (r *groupRepository) GetByName(name string) (*domain.Group, error) {
	query, args, err := squirrel.
		Select("id", "name").
		From(groupsTable).
		Where(squirrel.Eq{"name": name}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	group, err := r.scanGroup(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear grupo: %w", err)
	}

	return group, nil
}

func (r *groupRepository) List() ([]*domain.Group, error) {
	query, args, err := squirrel.
		Select("id", "name").
		From(groupsTable).
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

	groups := make([]*domain.Group, 0)
	for rows.Next() {
		var group domain.Group
		if err := rows.Scan(&group.ID, &group.Name); err != nil {
			return nil, fmt.Errorf("erro ao escanear grupos: %w", err)
		}
		groups = append(groups, &group)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return groups, nil
}

func (r *groupRepository) Create(name string) (*domain.Group, error) {
	query, args, err := squirrel.
		Insert(groupsTable).
		Columns("name").
		Values(name).
		Suffix("RETURNING id, name").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	group, err := r.scanGroup(r.conn.QueryRow(query, args...))
	if err != nil {
		return nil, err
	}

	return group, nil
}

func (r *groupRepository) Update(groupID int, name string) (*domain.Group, error) {
	query, args, err := squirrel.
		Update(groupsTable).
		Set("name", name).
		Where(squirrel.Eq{"id": groupID}).
		Suffix("RETURNING id, name").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	group, err := r.scanGroup(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear grupo: %w", err)
	}

	return group, nil
}

func (r *groupRepository) Delete(groupID int) error {
	query, args, err := squirrel.
		Delete(groupsTable).
		Where(squirrel.Eq{"id": groupID}).
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

// GetByUserID devolve todos os grupos do usuário pelo vínculo user_groups
func (r *groupRepository) GetByUserID(userID int) ([]*domain.Group, error) {
	query, args, err := squirrel.
		Select("g.id", "g.name").
		From("groups g").
		Join("user_groups ug ON g.id = ug.group_id").
		Where(squirrel.Eq{"ug.user_id": userID}).
		OrderBy("g.id ASC").
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

	groups := make([]*domain.Group, 0)
	for rows.Next() {
		var group domain.Group
		if err := rows.Scan(&group.ID, &group.Name); err != nil {
			return nil, fmt.Errorf("erro ao escanear grupos do usuário: %w", err)
		}
		groups = append(groups, &group)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return groups, nil
}

func (r *groupRepository) UsersByGroupID(groupID int) ([]*domain.User, error) {
	query, args, err := squirrel.
		Select("u.id", "u.name", "u.role").
		From("users u").
		Join("user_groups ug ON u.id = ug.user_id").
		Where(squirrel.Eq{"ug.group_id": groupID}).
		OrderBy("u.id ASC").
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
			return nil, fmt.Errorf("erro ao escanear usuários do grupo: %w", err)
		}
		users = append(users, &user)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return users, nil
}

func (r *groupRepository) AddUser(groupID, userID int) error {
	query, args, err := squirrel.
		Insert(userGroupsTable).
		Columns("user_id", "group_id").
		Values(userID, groupID).
		Suffix("ON CONFLICT (user_id, group_id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao vincular usuário ao grupo: %w", err)
	}

	return nil
}

func (r *groupRepository) RemoveUser(groupID, userID int) error {
	query, args, err := squirrel.
		Delete(userGroupsTable).
		Where(squirrel.Eq{"user_id": userID, "group_id": groupID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao desvincular usuário do grupo: %w", err)
	}

	return nil
}

func (r *groupRepository) scanGroup(row *sql.Row) (*domain.Group, error) {
	var group domain.Group
	if err := row.Scan(&group.ID, &group.Name); err != nil {
		return nil, err
	}
	return &group, nil
}
