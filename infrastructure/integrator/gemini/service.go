package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/adnova/ads-autopilot-api/infrastructure/integrator/gemini/geminiclient"
	"github.com/adnova/ads-autopilot-api/internal/config"
	"github.com/adnova/ads-autopilot-api/internal/domain"
)

type GeminiIntegrator interface {
	AnalyzeCampaignPerformance(ctx context.Context, campaign *domain.Campaign, snapshot *domain.MetricsSnapshot) (*domain.PerformanceAnalysis, error)
	GenerateAdCreatives(ctx context.Context, campaign *domain.Campaign, count int) ([]*domain.AdCreative, error)
}

type GeminiService struct {
	cfg    *config.Config
	Client geminiclient.Client
}

func New(cfg *config.Config, client geminiclient.Client) GeminiIntegrator {
	return &GeminiService{
		cfg:    cfg,
		Client: client,
	}
}

// AnalyzeCampaignPerformance pede ao modelo um diagnóstico da campanha a partir
// das métricas agregadas. Se o modelo falhar ou responder fora do formato,
// retorna uma análise heurística para não interromper o ciclo de otimização.
func (s *GeminiService) AnalyzeCampaignPerformance(ctx context.Context, campaign *domain.Campaign, snapshot *domain.MetricsSnapshot) (*domain.PerformanceAnalysis, error) {
	prompt := buildAnalysisPrompt(campaign, snapshot)

	text, err := s.Client.GenerateContent(ctx, prompt)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"error":       err.Error(),
		}).Warn("gemini: analysis request failed, using fallback analysis")
		return fallbackAnalysis(snapshot), nil
	}

	analysis := &domain.PerformanceAnalysis{}
	if err := json.Unmarshal([]byte(extractJSONObject(text)), analysis); err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"error":       err.Error(),
		}).Warn("gemini: unparseable analysis response, using fallback analysis")
		return fallbackAnalysis(snapshot), nil
	}

	if analysis.PerformanceScore < 0 {
		analysis.PerformanceScore = 0
	}
	if analysis.PerformanceScore > 100 {
		analysis.PerformanceScore = 100
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaign.ID,
		"health":      analysis.OverallHealth,
		"score":       analysis.PerformanceScore,
	}).Debug("gemini: campaign analysis completed")

	return analysis, nil
}

// GenerateAdCreatives pede ao modelo novas variações de criativo para a campanha.
// Se o modelo falhar, retorna variações padronizadas a partir do produto.
func (s *GeminiService) GenerateAdCreatives(ctx context.Context, campaign *domain.Campaign, count int) ([]*domain.AdCreative, error) {
	if count <= 0 {
		count = 2
	}

	prompt := buildCreativesPrompt(campaign, count)

	text, err := s.Client.GenerateContent(ctx, prompt)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"error":       err.Error(),
		}).Warn("gemini: creative generation failed, using fallback creatives")
		return fallbackCreatives(campaign, count), nil
	}

	var generated []struct {
		Headline    string `json:"headline"`
		PrimaryText string `json:"primary_text"`
		Description string `json:"description"`
		CTA         string `json:"cta"`
		Angle       string `json:"angle"`
	}

	if err := json.Unmarshal([]byte(extractJSONArray(text)), &generated); err != nil || len(generated) == 0 {
		logrus.WithField("campaign_id", campaign.ID).Warn("gemini: unparseable creatives response, using fallback creatives")
		return fallbackCreatives(campaign, count), nil
	}

	creatives := make([]*domain.AdCreative, 0, len(generated))
	for _, g := range generated {
		creatives = append(creatives, &domain.AdCreative{
			CampaignID:  campaign.ID,
			Headline:    g.Headline,
			PrimaryText: g.PrimaryText,
			Description: g.Description,
			CTA:         g.CTA,
			Angle:       g.Angle,
			Status:      domain.CreativeStatusActive,
		})
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaign.ID,
		"count":       len(creatives),
	}).Info("gemini: ad creatives generated")

	return creatives, nil
}

func buildAnalysisPrompt(campaign *domain.Campaign, snapshot *domain.MetricsSnapshot) string {
	var b strings.Builder

	b.WriteString("You are a Facebook Ads performance analyst. Analyze this campaign and respond ONLY with a JSON object, no markdown.\n\n")
	fmt.Fprintf(&b, "Campaign: %s\nProduct: %s\nObjective: %s\nDaily budget: %.2f\n\n", campaign.Name, campaign.ProductTitle, campaign.Objective, campaign.Budget)
	fmt.Fprintf(&b, "Metrics over the last %d days:\n", snapshot.DaysRunning)
	fmt.Fprintf(&b, "- Spend: %.2f\n- Revenue: %.2f\n- ROAS: %.2f\n", snapshot.Spend, snapshot.Revenue, snapshot.ROAS)
	fmt.Fprintf(&b, "- Impressions: %d\n- Clicks: %d\n- CTR: %.2f%%\n", snapshot.Impressions, snapshot.Clicks, snapshot.CTR)
	fmt.Fprintf(&b, "- CPC: %.2f\n- Conversions: %d\n- Conversion rate: %.2f%%\n- Frequency: %.2f\n\n", snapshot.CPC, snapshot.Conversions, snapshot.ConversionRate, snapshot.Frequency)
	b.WriteString("Respond with this exact JSON shape:\n")
	b.WriteString(`{"overall_health": "excellent|good|fair|poor", "performance_score": 0-100, "key_insights": ["..."], "recommendations": ["..."]}`)

	return b.String()
}

func buildCreativesPrompt(campaign *domain.Campaign, count int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a direct response copywriter. Write %d new Facebook ad creatives for this product. Respond ONLY with a JSON array, no markdown.\n\n", count)
	fmt.Fprintf(&b, "Product: %s\nCampaign objective: %s\n\n", campaign.ProductTitle, campaign.Objective)
	b.WriteString("Each element must have this exact shape:\n")
	b.WriteString(`{"headline": "...", "primary_text": "...", "description": "...", "cta": "SHOP_NOW|LEARN_MORE|SIGN_UP", "angle": "..."}`)

	return b.String()
}

// fallbackAnalysis produz um diagnóstico heurístico quando a IA está indisponível
func fallbackAnalysis(snapshot *domain.MetricsSnapshot) *domain.PerformanceAnalysis {
	analysis := &domain.PerformanceAnalysis{}

	switch {
	case snapshot.ROAS >= 3.0:
		analysis.OverallHealth = "excellent"
		analysis.PerformanceScore = 90
		analysis.KeyInsights = []string{fmt.Sprintf("ROAS de %.2f está bem acima do ponto de equilíbrio", snapshot.ROAS)}
		analysis.Recommendations = []string{"Considere aumentar o orçamento para escalar os resultados"}
	case snapshot.ROAS >= 2.0:
		analysis.OverallHealth = "good"
		analysis.PerformanceScore = 75
		analysis.KeyInsights = []string{fmt.Sprintf("ROAS de %.2f indica retorno saudável", snapshot.ROAS)}
		analysis.Recommendations = []string{"Mantenha a campanha e monitore a frequência"}
	case snapshot.ROAS >= 1.0:
		analysis.OverallHealth = "fair"
		analysis.PerformanceScore = 50
		analysis.KeyInsights = []string{fmt.Sprintf("ROAS de %.2f está próximo do ponto de equilíbrio", snapshot.ROAS)}
		analysis.Recommendations = []string{"Teste novos criativos e revise a segmentação"}
	default:
		analysis.OverallHealth = "poor"
		analysis.PerformanceScore = 25
		analysis.KeyInsights = []string{fmt.Sprintf("ROAS de %.2f indica prejuízo no período", snapshot.ROAS)}
		analysis.Recommendations = []string{"Reduza o orçamento ou pause a campanha até ajustar os criativos"}
	}

	if snapshot.CTR < 1.0 && snapshot.Impressions > 1000 {
		analysis.KeyInsights = append(analysis.KeyInsights, fmt.Sprintf("CTR de %.2f%% está abaixo do esperado", snapshot.CTR))
	}

	return analysis
}

// fallbackCreatives produz variações padronizadas quando a IA está indisponível
func fallbackCreatives(campaign *domain.Campaign, count int) []*domain.AdCreative {
	templates := []*domain.AdCreative{
		{
			CampaignID:  campaign.ID,
			Headline:    fmt.Sprintf("Conheça %s", campaign.ProductTitle),
			PrimaryText: fmt.Sprintf("%s chegou para facilitar o seu dia a dia. Aproveite enquanto dura o estoque.", campaign.ProductTitle),
			Description: "Frete rápido e compra segura",
			CTA:         "SHOP_NOW",
			Angle:       "benefício direto",
			Status:      domain.CreativeStatusActive,
		},
		{
			CampaignID:  campaign.ID,
			Headline:    fmt.Sprintf("%s com condições especiais", campaign.ProductTitle),
			PrimaryText: fmt.Sprintf("Milhares de clientes já escolheram %s. Veja por que todo mundo está falando dele.", campaign.ProductTitle),
			Description: "Oferta por tempo limitado",
			CTA:         "LEARN_MORE",
			Angle:       "prova social",
			Status:      domain.CreativeStatusActive,
		},
		{
			CampaignID:  campaign.ID,
			Headline:    fmt.Sprintf("Última chance: %s", campaign.ProductTitle),
			PrimaryText: fmt.Sprintf("As unidades de %s estão acabando. Garanta o seu antes que esgote.", campaign.ProductTitle),
			Description: "Estoque limitado",
			CTA:         "SHOP_NOW",
			Angle:       "escassez",
			Status:      domain.CreativeStatusActive,
		},
	}

	if count > len(templates) {
		count = len(templates)
	}

	return templates[:count]
}

// extractJSONObject isola o primeiro objeto JSON de uma resposta que pode vir
// cercada de texto ou blocos de markdown
func extractJSONObject(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return text
	}
	return text[start : end+1]
}

// extractJSONArray isola o primeiro array JSON de uma resposta
func extractJSONArray(text string) string {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end == -1 || end < start {
		return text
	}
	return text[start : end+1]
}
