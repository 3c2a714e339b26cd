package geminidomain

// GenerateContentRequest representa o corpo da requisição de geração de conteúdo
type GenerateContentRequest struct {
	Contents         []Content         `json:"contents"`
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
}

// Content agrupa as partes de uma mensagem enviada ao modelo
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// Part é um fragmento de texto da mensagem
type Part struct {
	Text string `json:"text"`
}

// GenerationConfig controla os parâmetros de amostragem do modelo
type GenerationConfig struct {
	Temperature     float64 `json:"temperature,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

// GenerateContentResponse representa a resposta da geração de conteúdo
type GenerateContentResponse struct {
	Candidates []Candidate `json:"candidates"`
}

// Candidate é uma das respostas candidatas retornadas pelo modelo
type Candidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason,omitempty"`
}

// Text retorna o texto do primeiro candidato, ou vazio se não houver resposta
func (r *GenerateContentResponse) Text() string {
	if len(r.Candidates) == 0 || len(r.Candidates[0].Content.Parts) == 0 {
		return ""
	}
	return r.Candidates[0].Content.Parts[0].Text
}
