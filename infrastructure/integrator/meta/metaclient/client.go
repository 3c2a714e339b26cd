package metaclient

import (
	"net/http"
	"time"

	metadomain "github.com/adnova/ads-autopilot-api/infrastructure/integrator/meta/domain"
	"github.com/adnova/ads-autopilot-api/internal/config"
	"github.com/adnova/ads-autopilot-api/internal/domain"
)

type Client interface {
	GetCampaignByID(campaignID string) (*metadomain.Campaign, error)
	GetAdSetByID(adSetID string) (*metadomain.AdSet, error)
	GetCampaignInsights(campaignID string, filters *domain.InsightFilters) ([]metadomain.Insight, error)
	UpdateCampaign(campaignID string, fields map[string]string) error
	UpdateAdSet(adSetID string, fields map[string]interface{}) error
	UpdateAdStatus(adID string, status string) error
	RefreshToken() error
	EnsureValidToken() error
	HandleResponse(resp *http.Response) ([]byte, error)
}

type MetaClient struct {
	Cfg          *config.Config
	TokenManager *TokenManager
	httpClient   *http.Client
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) Client {
	client := &MetaClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Meta.RequestTimeoutSeconds) * time.Second,
		},
	}
	return client
}

// RefreshToken obtém um novo token de longa duração
func (c *MetaClient) RefreshToken() error {
	return c.TokenManager.RefreshToken()
}

// EnsureValidToken verifica se o token atual é válido e tenta renová-lo se necessário
func (c *MetaClient) EnsureValidToken() error {
	return c.TokenManager.EnsureValidToken()
}

// HandleResponse manipula a resposta HTTP e verifica erros de token expirado
func (c *MetaClient) HandleResponse(resp *http.Response) ([]byte, error) {
	return c.TokenManager.HandleResponse(resp)
}
