package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/adnova/ads-autopilot-api/infrastructure/repository/mocks"
	"github.com/adnova/ads-autopilot-api/internal/config"
	"github.com/adnova/ads-autopilot-api/internal/domain"
	authmocks "github.com/adnova/ads-autopilot-api/internal/usecases/authenticating/mocks"
)

func authConfigForTest() *config.Config {
	return &config.Config{
		Auth:      config.Auth{TokenTTLHours: 24},
		SecretKey: "segredo-de-teste",
	}
}

func hashPassword(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestService_LoginUser(t *testing.T) {
	activeUser := func(t *testing.T) *domain.User {
		return &domain.User{
			ID:           1,
			Name:         "Maria",
			Email:        "maria@loja.com",
			Active:       true,
			RoleID:       domain.RoleMerchant,
			PasswordHash: hashPassword(t, "Senha@Forte1"),
		}
	}

	tests := []struct {
		name      string
		email     string
		password  string
		setup     func(t *testing.T, userRepo *mocks.MockUserRepository)
		wantErr   error
		wantToken bool
	}{
		{
			name:     "Login com sucesso - deve retornar token",
			email:    "maria@loja.com",
			password: "Senha@Forte1",
			setup: func(t *testing.T, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("maria@loja.com").Return(activeUser(t), nil)
			},
			wantToken: true,
		},
		{
			name:     "Email com maiúsculas e espaços - deve normalizar antes de buscar",
			email:    "  Maria@Loja.com ",
			password: "Senha@Forte1",
			setup: func(t *testing.T, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("maria@loja.com").Return(activeUser(t), nil)
			},
			wantToken: true,
		},
		{
			name:     "Usuário inexistente",
			email:    "ninguem@loja.com",
			password: "Senha@Forte1",
			setup: func(t *testing.T, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("ninguem@loja.com").Return(nil, nil)
			},
			wantErr: ErrUserNotFound,
		},
		{
			name:     "Conta desativada",
			email:    "maria@loja.com",
			password: "Senha@Forte1",
			setup: func(t *testing.T, userRepo *mocks.MockUserRepository) {
				user := activeUser(t)
				user.Active = false
				userRepo.EXPECT().GetUserByEmail("maria@loja.com").Return(user, nil)
			},
			wantErr: ErrUserDisabled,
		},
		{
			name:     "Senha incorreta",
			email:    "maria@loja.com",
			password: "senha-errada",
			setup: func(t *testing.T, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("maria@loja.com").Return(activeUser(t), nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:     "Email vazio",
			email:    "",
			password: "Senha@Forte1",
			setup:    func(t *testing.T, userRepo *mocks.MockUserRepository) {},
			wantErr:  ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			userRepo := mocks.NewMockUserRepository(ctrl)
			shopVerifier := authmocks.NewMockShopVerifier(ctrl)
			service := NewService(userRepo, shopVerifier, authConfigForTest())

			tt.setup(t, userRepo)

			token, err := service.LoginUser(tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, token)

			// O token emitido deve ser válido e carregar os dados do usuário
			claims, err := service.ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, 1, claims.UserID)
			assert.Equal(t, domain.RoleMerchant, claims.UserRoleID)
		})
	}
}

func TestService_ValidateToken_TokenAdulterado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	shopVerifier := authmocks.NewMockShopVerifier(ctrl)
	service := NewService(userRepo, shopVerifier, authConfigForTest())

	claims, err := service.ValidateToken("token.invalido.aqui")

	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestService_ConnectShop(t *testing.T) {
	tests := []struct {
		name        string
		shopDomain  string
		accessToken string
		setup       func(t *testing.T, userRepo *mocks.MockUserRepository, shopVerifier *authmocks.MockShopVerifier)
		wantErr     error
	}{
		{
			name:        "Credenciais válidas - deve vincular a loja ao usuário",
			shopDomain:  "loja-exemplo.myshopify.com",
			accessToken: "shpat_token",
			setup: func(t *testing.T, userRepo *mocks.MockUserRepository, shopVerifier *authmocks.MockShopVerifier) {
				userRepo.EXPECT().GetUserByID(1).Return(&domain.User{ID: 1, Active: true}, nil)
				shopVerifier.EXPECT().
					VerifyShopCredentials("loja-exemplo.myshopify.com", "shpat_token").
					Return(true, nil)
				userRepo.EXPECT().
					UpdateUser(gomock.Any()).
					DoAndReturn(func(user *domain.User) error {
						assert.Equal(t, "loja-exemplo.myshopify.com", user.ShopDomain)
						assert.Equal(t, "shpat_token", user.ShopifyToken)
						return nil
					})
			},
		},
		{
			name:        "Credenciais rejeitadas pela loja",
			shopDomain:  "loja-exemplo.myshopify.com",
			accessToken: "token-invalido",
			setup: func(t *testing.T, userRepo *mocks.MockUserRepository, shopVerifier *authmocks.MockShopVerifier) {
				userRepo.EXPECT().GetUserByID(1).Return(&domain.User{ID: 1, Active: true}, nil)
				shopVerifier.EXPECT().
					VerifyShopCredentials("loja-exemplo.myshopify.com", "token-invalido").
					Return(false, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:        "Usuário inexistente",
			shopDomain:  "loja-exemplo.myshopify.com",
			accessToken: "shpat_token",
			setup: func(t *testing.T, userRepo *mocks.MockUserRepository, shopVerifier *authmocks.MockShopVerifier) {
				userRepo.EXPECT().GetUserByID(1).Return(nil, nil)
			},
			wantErr: ErrUserNotFound,
		},
		{
			name:        "Domínio vazio",
			shopDomain:  "",
			accessToken: "shpat_token",
			setup:       func(t *testing.T, userRepo *mocks.MockUserRepository, shopVerifier *authmocks.MockShopVerifier) {},
			wantErr:     ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			userRepo := mocks.NewMockUserRepository(ctrl)
			shopVerifier := authmocks.NewMockShopVerifier(ctrl)
			service := NewService(userRepo, shopVerifier, authConfigForTest())

			tt.setup(t, userRepo, shopVerifier)

			err := service.ConnectShop(1, tt.shopDomain, tt.accessToken)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_ValidatePasswordStrength(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockUserRepository(ctrl), authmocks.NewMockShopVerifier(ctrl), authConfigForTest())

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "Senha forte", password: "Senha@Forte1", wantErr: false},
		{name: "Curta demais", password: "S@f1", wantErr: true},
		{name: "Sem maiúscula", password: "senha@forte1", wantErr: true},
		{name: "Sem número", password: "Senha@Forte", wantErr: true},
		{name: "Sem caractere especial", password: "SenhaForte1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_CreateUser_EmailJaCadastrado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(userRepo, authmocks.NewMockShopVerifier(ctrl), authConfigForTest())

	userRepo.EXPECT().
		GetUserByEmail("maria@loja.com").
		Return(&domain.User{ID: 1, Email: "maria@loja.com"}, nil)

	user, err := service.CreateUser(&domain.User{
		Name:         "Maria",
		Lastname:     "Silva",
		Email:        "Maria@Loja.com",
		PasswordHash: "Senha@Forte1",
	})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestService_CreateUser_DefineValoresPadrao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(userRepo, authmocks.NewMockShopVerifier(ctrl), authConfigForTest())

	userRepo.EXPECT().GetUserByEmail("maria@loja.com").Return(nil, nil)
	userRepo.EXPECT().
		CreateUser(gomock.Any()).
		DoAndReturn(func(user *domain.User) (*domain.User, error) {
			assert.Equal(t, domain.RoleMerchant, user.RoleID)
			assert.False(t, user.Active)
			assert.Equal(t, domain.DefaultUserSettings(), user.Settings)
			// A senha nunca é armazenada em claro
			assert.NotEqual(t, "Senha@Forte1", user.PasswordHash)
			return user, nil
		})

	user, err := service.CreateUser(&domain.User{
		Name:         "Maria",
		Lastname:     "Silva",
		Email:        "maria@loja.com",
		PasswordHash: "Senha@Forte1",
	})

	assert.NoError(t, err)
	assert.NotNil(t, user)
}
