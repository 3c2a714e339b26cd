package metaclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"

	metadomain "github.com/adnova/ads-autopilot-api/infrastructure/integrator/meta/domain"
)

// UpdateAdStatus altera o status de um anúncio na API do Meta (ACTIVE ou PAUSED)
func (c *MetaClient) UpdateAdStatus(adID string, status string) error {
	// Garantir que o token seja válido antes de fazer a requisição
	if err := c.EnsureValidToken(); err != nil {
		return fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	requestURL := fmt.Sprintf("%s/%s", c.Cfg.Meta.URL, adID)

	params := url.Values{}
	params.Add("status", status)
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	req, err := http.NewRequest(http.MethodPost, requestURL, strings.NewReader(params.Encode()))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return err
	}
	defer resp.Body.Close()

	body, err := c.HandleResponse(resp)
	if err != nil {
		// Se o erro indica que o token foi renovado, tentar novamente
		if err.Error() == "token expirado e renovado, por favor tente novamente" {
			return c.UpdateAdStatus(adID, status)
		}
		return err
	}

	var response metadomain.UpdateResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return err
	}

	if !response.Success {
		return fmt.Errorf("a API do Meta não confirmou a alteração de status do anúncio %s", adID)
	}

	return nil
}
