package metaclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	metadomain "github.com/adnova/ads-autopilot-api/infrastructure/integrator/meta/domain"
	"github.com/adnova/ads-autopilot-api/internal/config"

	"github.com/sirupsen/logrus"
)

// TokenManager gerencia tokens de acesso da API do Meta
type TokenManager struct {
	cfg               *config.Config
	TokenRefreshMutex sync.Mutex
	stopRefresh       chan struct{}
}

// NewTokenManager cria uma nova instância do gerenciador de tokens
func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		cfg:               cfg,
		TokenRefreshMutex: sync.Mutex{},
		stopRefresh:       make(chan struct{}),
	}
}

func (tm *TokenManager) InitToken() {
	if tm.cfg.Meta.LongLivedToken == "" {
		logrus.Info("Token de longa duração não encontrado. Iniciando processo de obtenção...")
		if err := tm.InitiateToken(); err != nil {
			logrus.Errorf("Falha ao inicializar token de longa duração: %v", err)
			logrus.Warn("A API Meta pode ter funcionalidade limitada até que o token seja configurado corretamente")
			return
		}

		logrus.Info("Token de longa duração inicializado com sucesso")
		return
	}

	// Já existe um token de longa duração configurado: usa ele como token de
	// acesso e deixa a renovação proativa cuidar da expiração
	tm.cfg.Meta.AccessToken = tm.cfg.Meta.LongLivedToken
	if tm.cfg.Meta.TokenExpiresAt.IsZero() {
		tm.cfg.Meta.TokenExpiresAt = CalculateTokenExpiration(0)
	}

	if err := tm.EnsureValidToken(); err != nil {
		logrus.Errorf("Erro ao verificar validade do token: %v", err)
	}
}

// StartAutoRefresh inicia uma goroutine que atualiza o token periodicamente
func (tm *TokenManager) StartAutoRefresh() {
	// Renovação diária (aproximadamente 23 horas para garantir que seja feita antes de 24h)
	refreshInterval := 23 * time.Hour
	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			logrus.Info("Iniciando renovação periódica do token da Meta")
			if err := tm.RefreshToken(); err != nil {
				logrus.Errorf("Erro na renovação periódica do token: %v", err)

				// Se falhar, tenta novamente em um intervalo mais curto
				ticker.Reset(1 * time.Hour)
			} else {
				logrus.Info("Renovação periódica do token concluída com sucesso")
				ticker.Reset(refreshInterval)
			}
		case <-tm.stopRefresh:
			logrus.Info("Encerrando goroutine de renovação periódica do token")
			return
		}
	}
}

// StopAutoRefresh para a goroutine de renovação automática
func (tm *TokenManager) StopAutoRefresh() {
	close(tm.stopRefresh)
}

// InitiateToken obtém um token de longa duração a partir do token de curta duração
func (tm *TokenManager) InitiateToken() error {
	tm.TokenRefreshMutex.Lock()
	defer tm.TokenRefreshMutex.Unlock()

	// Verificar novamente se o token já foi inicializado por outra goroutine
	if tm.cfg.Meta.LongLivedToken != "" {
		return nil
	}

	tokenResponse, err := GetLongLivedToken(
		tm.cfg.Meta.AccessToken,
		tm.cfg.Meta.AppID,
		tm.cfg.Meta.AppSecret,
		tm.cfg.Meta.BaseURL,
		tm.cfg.Meta.Version,
	)
	if err != nil {
		return fmt.Errorf("erro ao obter token de longa duração: %w", err)
	}

	tm.cfg.Meta.LongLivedToken = tokenResponse.AccessToken
	tm.cfg.Meta.TokenExpiresAt = CalculateTokenExpiration(tokenResponse.ExpiresIn)
	tm.cfg.Meta.AccessToken = tm.cfg.Meta.LongLivedToken

	logrus.Infof("Token de longa duração inicializado com sucesso. Expira em: %s",
		tm.cfg.Meta.TokenExpiresAt.Format(time.RFC3339))

	return nil
}

// RefreshToken obtém um novo token de longa duração
func (tm *TokenManager) RefreshToken() error {
	return tm.refreshTokenInternal()
}

// refreshTokenInternal é a implementação interna do refresh de token
func (tm *TokenManager) refreshTokenInternal() error {
	tm.TokenRefreshMutex.Lock()
	defer tm.TokenRefreshMutex.Unlock()

	if !tm.cfg.Meta.TokenExpiresAt.IsZero() && time.Until(tm.cfg.Meta.TokenExpiresAt) < 1*time.Hour {
		logrus.Warn("Token está muito próximo da expiração ou já expirou - pode ser necessária reautorização manual")
	}

	logrus.Info("Iniciando renovação do token...")
	tokenResponse, err := GetLongLivedToken(
		tm.cfg.Meta.AccessToken,
		tm.cfg.Meta.AppID,
		tm.cfg.Meta.AppSecret,
		tm.cfg.Meta.BaseURL,
		tm.cfg.Meta.Version,
	)
	if err != nil {
		errMsg := err.Error()

		if strings.Contains(errMsg, "Error validating access token") ||
			strings.Contains(errMsg, "Session has expired") ||
			strings.Contains(errMsg, "The session has been invalidated") {

			logrus.Error("O token de acesso expirou e não pode ser renovado automaticamente. É necessário reautorizar")

			return fmt.Errorf("o token de acesso expirou e não pode ser renovado automaticamente. "+
				"É necessário reautorizar o aplicativo através do processo de autenticação OAuth: %w", err)
		}

		logrus.Errorf("Erro ao renovar token: %v", err)
		return fmt.Errorf("erro ao obter novo token de longa duração: %w", err)
	}

	oldToken := tm.cfg.Meta.LongLivedToken
	tm.cfg.Meta.LongLivedToken = tokenResponse.AccessToken
	tm.cfg.Meta.TokenExpiresAt = CalculateTokenExpiration(tokenResponse.ExpiresIn)
	tm.cfg.Meta.AccessToken = tm.cfg.Meta.LongLivedToken

	if oldToken != tm.cfg.Meta.LongLivedToken {
		logrus.Infof("Token de longa duração atualizado com sucesso. Expira em: %s",
			tm.cfg.Meta.TokenExpiresAt.Format(time.RFC3339))
	} else {
		logrus.Info("Token renovado, mas não mudou. Isso pode indicar um problema na API da Meta")
	}

	return nil
}

// EnsureValidToken verifica se o token atual é válido e tenta renová-lo se necessário
func (tm *TokenManager) EnsureValidToken() error {
	if tm.cfg.Meta.AccessToken == "" {
		logrus.Info("Token não inicializado. Inicializando...")
		return tm.InitiateToken()
	}

	// Renovação proativa quando faltam menos de 24 horas para expirar
	if time.Until(tm.cfg.Meta.TokenExpiresAt) < 24*time.Hour {
		logrus.Info("Token expira em menos de 24 horas. Renovando proativamente...")
		return tm.RefreshToken()
	}

	return nil
}

// ParseErrorResponse tenta parsear um erro da API do Meta
func ParseErrorResponse(body []byte) (*metadomain.ErrorResponse, error) {
	var errorResp metadomain.ErrorResponse
	err := json.Unmarshal(body, &errorResp)
	if err != nil {
		return nil, err
	}
	return &errorResp, nil
}

// HandleResponse manipula a resposta HTTP e verifica erros de token expirado
func (tm *TokenManager) HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	return tm.handleErrorResponse(body)
}

// handleErrorResponse processa erros nas respostas da API
func (tm *TokenManager) handleErrorResponse(body []byte) ([]byte, error) {
	errorResp, parseErr := ParseErrorResponse(body)

	// Verificar se é erro de token expirado pela estrutura JSON
	if parseErr == nil && errorResp.IsTokenExpired() {
		return tm.handleExpiredToken(errorResp)
	}

	// Verificar pela mensagem de erro em texto
	bodyStr := string(body)
	if containsTokenExpirationMessage(bodyStr) {
		return tm.handleExpiredTokenByMessage(bodyStr)
	}

	return nil, fmt.Errorf("erro na resposta da API. Corpo: %s", string(body))
}

// handleExpiredToken trata um token expirado detectado via estrutura de erro
func (tm *TokenManager) handleExpiredToken(errorResp *metadomain.ErrorResponse) ([]byte, error) {
	logrus.Warnf("Token expirado detectado pela API Meta. Código: %d, Subcódigo: %d",
		errorResp.Error.Code, errorResp.Error.ErrorSubcode)

	if refreshErr := tm.RefreshToken(); refreshErr != nil {
		if strings.Contains(refreshErr.Error(), "necessário reautorizar") {
			return nil, fmt.Errorf("token expirou permanentemente e requer reautorização manual: %w", refreshErr)
		}
		return nil, fmt.Errorf("erro ao renovar token expirado: %w", refreshErr)
	}

	return nil, fmt.Errorf("token expirado e renovado, por favor tente novamente")
}

// handleExpiredTokenByMessage trata um token expirado detectado via mensagem de texto
func (tm *TokenManager) handleExpiredTokenByMessage(bodyStr string) ([]byte, error) {
	logrus.Warnf("Token expirado detectado pela mensagem de erro: %s", bodyStr)

	if refreshErr := tm.RefreshToken(); refreshErr != nil {
		if strings.Contains(refreshErr.Error(), "necessário reautorizar") {
			return nil, fmt.Errorf("token expirou permanentemente e requer reautorização manual: %w", refreshErr)
		}
		return nil, fmt.Errorf("erro ao renovar token expirado: %w", refreshErr)
	}

	return nil, fmt.Errorf("token expirado e renovado, por favor tente novamente")
}

// containsTokenExpirationMessage verifica se a mensagem contém indicação de token expirado
func containsTokenExpirationMessage(message string) bool {
	return strings.Contains(message, "Error validating access token") ||
		strings.Contains(message, "Session has expired") ||
		strings.Contains(message, "The session has been invalidated")
}
