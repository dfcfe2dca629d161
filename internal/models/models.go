package models

import (
	"github.com/shopspring/decimal"
)

// VATBreakdown is the structured calculation returned alongside every chat
// or VAT answer.
type VATBreakdown struct {
	BaseAmount decimal.Decimal  `json:"baseAmount"`
	Quantity   *decimal.Decimal `json:"quantity,omitempty"`
	UnitPrice  *decimal.Decimal `json:"unitPrice,omitempty"`
	Unit       string           `json:"unit,omitempty"`

	VATAmount decimal.Decimal `json:"vatAmount"`
	Total     decimal.Decimal `json:"total"`

	Exempt          bool   `json:"exempt"`
	ExemptCategory  string `json:"exemptCategory,omitempty"`
	MatchConfidence int    `json:"matchConfidence,omitempty"`
}

// ChatRequest is the input of POST /api/chat.
type ChatRequest struct {
	Message    string `json:"message"`
	AIProvider string `json:"aiProvider,omitempty"` // "openai", "gemini", "ollama"
	Model      string `json:"model,omitempty"`
}

// ChatResponse is the output of POST /api/chat. Source reports whether the
// reply came from the LLM or from the deterministic fallback.
type ChatResponse struct {
	Success     bool          `json:"success"`
	Reply       string        `json:"reply,omitempty"`
	Calculation *VATBreakdown `json:"calculation,omitempty"`
	Source      string        `json:"source,omitempty"`
	Error       string        `json:"error,omitempty"`

	AIDuration    float64 `json:"aiDuration,omitempty"`
	TotalDuration float64 `json:"totalDuration"`
}

// VATRequest is the input of POST /api/vat/calculate. Either Text (free
// text to extract an amount from) or Amount must be set; Inclusive treats
// the amount as already containing VAT.
type VATRequest struct {
	Text      string           `json:"text,omitempty"`
	Amount    *decimal.Decimal `json:"amount,omitempty"`
	Inclusive bool             `json:"inclusive,omitempty"`
}

// PAYERequest is the input of POST /api/tax/paye.
type PAYERequest struct {
	GrossIncome decimal.Decimal `json:"grossIncome"`
}

// CITRequest is the input of POST /api/tax/cit.
type CITRequest struct {
	Turnover decimal.Decimal `json:"turnover"`
	Profit   decimal.Decimal `json:"profit"`
}

// CGTRequest is the input of POST /api/tax/cgt.
type CGTRequest struct {
	Gain decimal.Decimal `json:"gain"`
}

// Config represents the service configuration.
type Config struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`

	AI AIConfig `yaml:"ai"`
}

// AIConfig represents AI provider configuration.
type AIConfig struct {
	OpenAI OpenAIConfig `yaml:"openai"`
	Gemini GeminiConfig `yaml:"gemini"`
	Ollama OllamaConfig `yaml:"ollama"`

	DefaultProvider string `yaml:"default_provider"` // "openai", "gemini", "ollama"
}

// OpenAIConfig for OpenAI/Azure OpenAI.
type OpenAIConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url,omitempty"` // for custom endpoints
	Model   string `yaml:"model"`
}

// GeminiConfig for Google Gemini.
type GeminiConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

// OllamaConfig for local Ollama.
type OllamaConfig struct {
	BaseURL string `yaml:"base_url"` // default http://localhost:11434
	Model   string `yaml:"model"`
}
