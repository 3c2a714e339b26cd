package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/adnova/ads-autopilot-api/infrastructure/database/postgres"
	"github.com/adnova/ads-autopilot-api/internal/domain"
)

const (
	usersTable   = "users u"
	usersColumns = "u.id, u.name, u.lastname, u.email, u.password_hash, u.active, u.role_id, u.shop_domain, u.shopify_token, u.settings, u.deleted, u.deleted_at, u.created_at, u.updated_at"
)

type UserRepository interface {
	GetUserByID(id int) (*domain.User, error)
	GetUserByEmail(email string) (*domain.User, error)
	CreateUser(user *domain.User) (*domain.User, error)
	UpdateUser(user *domain.User) error
	ListUsers() ([]*domain.User, error)
	ListActiveUsers() ([]*domain.User, error)
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) GetUserByID(id int) (*domain.User, error) {
	query, args, err := squirrel.
		Select(usersColumns).
		From(usersTable).
		Where(squirrel.Eq{"u.id": id, "u.deleted": false}).
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

func (r *userRepository) GetUserByEmail(email string) (*domain.User, error) {
	query, args, err := squirrel.
		Select(usersColumns).
		From(usersTable).
		Where(squirrel.Eq{"u.email": email, "u.deleted": false}).
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

func (r *userRepository) CreateUser(user *domain.User) (*domain.User, error) {
	settingsJSON, err := json.Marshal(user.Settings)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar preferências: %w", err)
	}

	query, args, err := squirrel.
		Insert("users").
		Columns("name", "lastname", "email", "password_hash", "active", "role_id", "shop_domain", "shopify_token", "settings").
		Values(
			user.Name,
			user.Lastname,
			user.Email,
			user.PasswordHash,
			user.Active,
			user.RoleID,
			user.ShopDomain,
			user.ShopifyToken,
			settingsJSON,
		).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return nil, fmt.Errorf("erro ao criar usuário: %w", err)
	}

	return user, nil
}

func (r *userRepository) UpdateUser(user *domain.User) error {
	settingsJSON, err := json.Marshal(user.Settings)
	if err != nil {
		return fmt.Errorf("erro ao serializar preferências: %w", err)
	}

	query, args, err := squirrel.
		Update("users").
		Set("name", user.Name).
		Set("lastname", user.Lastname).
		Set("email", user.Email).
		Set("password_hash", user.PasswordHash).
		Set("active", user.Active).
		Set("role_id", user.RoleID).
		Set("shop_domain", user.ShopDomain).
		Set("shopify_token", user.ShopifyToken).
		Set("settings", settingsJSON).
		Set("deleted", user.Deleted).
		Set("deleted_at", user.DeletedAt).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": user.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar usuário: %w", err)
	}

	return nil
}

func (r *userRepository) ListUsers() ([]*domain.User, error) {
	return r.list(squirrel.Eq{"u.deleted": false})
}

// ListActiveUsers retorna os usuários considerados pela análise diária
func (r *userRepository) ListActiveUsers() ([]*domain.User, error) {
	return r.list(squirrel.Eq{"u.deleted": false, "u.active": true})
}

func (r *userRepository) list(pred interface{}) ([]*domain.User, error) {
	query, args, err := squirrel.
		Select(usersColumns).
		From(usersTable).
		Where(pred).
		OrderBy("u.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user, err := r.scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear usuário: %w", err)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return users, nil
}

func (r *userRepository) scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	var settingsJSON []byte

	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Lastname,
		&user.Email,
		&user.PasswordHash,
		&user.Active,
		&user.RoleID,
		&user.ShopDomain,
		&user.ShopifyToken,
		&settingsJSON,
		&user.Deleted,
		&user.DeletedAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(settingsJSON) > 0 {
		if err := json.Unmarshal(settingsJSON, &user.Settings); err != nil {
			return nil, fmt.Errorf("erro ao desserializar preferências: %w", err)
		}
	}

	return &user, nil
}
