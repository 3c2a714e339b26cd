package metaclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	metadomain "github.com/adnova/ads-autopilot-api/infrastructure/integrator/meta/domain"
	"github.com/adnova/ads-autopilot-api/internal/domain"
)

// GetCampaignInsights busca os insights diários de uma campanha na API do Meta
func (c *MetaClient) GetCampaignInsights(campaignID string, filters *domain.InsightFilters) ([]metadomain.Insight, error) {
	// Garantir que o token seja válido antes de fazer a requisição
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	baseURL := fmt.Sprintf("%s/%s/insights", c.Cfg.Meta.URL, campaignID)

	timeRange := fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", filters.StartDate.Format(time.DateOnly), filters.EndDate.Format(time.DateOnly))

	params := url.Values{}
	params.Add("fields", "campaign_id,spend,impressions,frequency,reach,clicks,actions")
	params.Add("time_increment", "1")
	params.Add("time_range", timeRange)
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	requestURL := baseURL + "?" + params.Encode()

	req, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	// Manipulador de resposta que verifica tokens expirados
	body, err := c.HandleResponse(resp)
	if err != nil {
		// Se o erro indica que o token foi renovado, tentar novamente
		if err.Error() == "token expirado e renovado, por favor tente novamente" {
			return c.GetCampaignInsights(campaignID, filters)
		}
		return nil, err
	}

	var response metadomain.InsightResult
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return response.Data, nil
}
