package geminiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	geminidomain "github.com/adnova/ads-autopilot-api/infrastructure/integrator/gemini/domain"
	"github.com/adnova/ads-autopilot-api/internal/config"
)

type Client interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

type GeminiClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &GeminiClient{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Gemini.RequestTimeoutSeconds) * time.Second,
		},
		config: cfg,
	}
}

// GenerateContent envia um prompt ao modelo e retorna o texto gerado
func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	endpoint := fmt.Sprintf(
		"%s/models/%s:generateContent?key=%s",
		c.config.Gemini.BaseURL,
		c.config.Gemini.Model,
		url.QueryEscape(c.config.Gemini.APIKey),
	)

	request := geminidomain.GenerateContentRequest{
		Contents: []geminidomain.Content{
			{
				Parts: []geminidomain.Part{{Text: prompt}},
			},
		},
		GenerationConfig: &geminidomain.GenerationConfig{
			Temperature:     0.7,
			MaxOutputTokens: 2048,
		},
	}

	payload, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("erro ao serializar a requisição: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("requisição falhou com status: %s, corpo: %s", resp.Status, string(body))
	}

	var response geminidomain.GenerateContentResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	text := response.Text()
	if text == "" {
		return "", fmt.Errorf("o modelo não retornou nenhum candidato")
	}

	return text, nil
}
