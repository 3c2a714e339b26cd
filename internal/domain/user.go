package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Roles de acesso dos usuários
const (
	RoleAdmin    = 1
	RoleMerchant = 2
)

// UserSettings guarda preferências do usuário que afetam a análise diária
type UserSettings struct {
	BudgetAlertThreshold float64 `json:"budget_alert_threshold"`
	Currency             string  `json:"currency"`
	Timezone             string  `json:"timezone"`
}

// DefaultUserSettings retorna as preferências padrão de um usuário recém-criado
func DefaultUserSettings() UserSettings {
	return UserSettings{
		BudgetAlertThreshold: 1000,
		Currency:             "BRL",
		Timezone:             "America/Sao_Paulo",
	}
}

type User struct {
	ID           int          `json:"id"`
	Name         string       `json:"name"`
	Lastname     string       `json:"lastname"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"password"`
	Active       bool         `json:"active"`
	RoleID       int          `json:"role_id"`
	ShopDomain   string       `json:"shop_domain"`
	ShopifyToken string       `json:"-"`
	Settings     UserSettings `json:"settings"`
	Deleted      bool         `json:"deleted"`
	DeletedAt    *time.Time   `json:"deleted_at"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

type UpdateUserRequest struct {
	ID         int           `json:"id"`
	Name       *string       `json:"name"`
	Lastname   *string       `json:"lastname"`
	Email      *string       `json:"email"`
	Active     *bool         `json:"active"`
	RoleID     *int          `json:"role_id"`
	ShopDomain *string       `json:"shop_domain"`
	Settings   *UserSettings `json:"settings"`
	Deleted    *bool         `json:"deleted"`
}

type Claims struct {
	UserID       int
	UserName     string
	UserLastname string
	UserEmail    string
	UserActive   bool
	UserRoleID   int
	jwt.RegisteredClaims
}
