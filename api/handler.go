package api

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/taxmateNG/tax-assistant-service/internal/ai"
	"github.com/taxmateNG/tax-assistant-service/internal/auth"
	"github.com/taxmateNG/tax-assistant-service/internal/db"
	"github.com/taxmateNG/tax-assistant-service/internal/exemption"
	"github.com/taxmateNG/tax-assistant-service/internal/extraction"
	"github.com/taxmateNG/tax-assistant-service/internal/models"
	"github.com/taxmateNG/tax-assistant-service/internal/storage"
	"github.com/taxmateNG/tax-assistant-service/internal/tax"
)

const Version = "1.0.0"

// Handler handles HTTP requests for the tax assistant.
type Handler struct {
	config *models.Config
}

// NewHandler creates a new API handler.
func NewHandler(config *models.Config) *Handler {
	return &Handler{config: config}
}

// SetupRoutes configures the HTTP routes.
func (h *Handler) SetupRoutes() *mux.Router {
	router := mux.NewRouter()

	// Chat and calculators
	router.HandleFunc("/api/chat", h.Chat).Methods("POST")
	router.HandleFunc("/api/vat/calculate", h.CalculateVAT).Methods("POST")
	router.HandleFunc("/api/tax/paye", h.CalculatePAYE).Methods("POST")
	router.HandleFunc("/api/tax/cit", h.CalculateCIT).Methods("POST")
	router.HandleFunc("/api/tax/cgt", h.CalculateCGT).Methods("POST")

	// History and reporting
	router.HandleFunc("/api/queries", h.GetQueries).Methods("GET")
	router.HandleFunc("/api/reports/monthly", h.MonthlyReport).Methods("GET")
	router.HandleFunc("/api/reports/stats", h.MonthlyStats).Methods("GET")

	// Health check
	router.HandleFunc("/health", h.Health).Methods("GET")

	return router
}

// HealthResponse represents the health check response structure.
type HealthResponse struct {
	Status    string            `json:"status"`
	Version   string            `json:"version"`
	Timestamp string            `json:"timestamp"`
	Uptime    string            `json:"uptime"`
	Memory    MemoryStats       `json:"memory"`
	Database  ServiceStatus     `json:"database"`
	Storage   ServiceStatus     `json:"storage"`
	AI        map[string]string `json:"ai"`
}

// MemoryStats represents memory usage statistics.
type MemoryStats struct {
	Allocated string `json:"allocated"`
	Total     string `json:"total"`
	System    string `json:"system"`
}

// ServiceStatus represents the status of a service dependency.
type ServiceStatus struct {
	Available bool   `json:"available"`
	Version   string `json:"version,omitempty"`
	Error     string `json:"error,omitempty"`
}

var startTime = time.Now()

// Health endpoint. The calculation core is pure, so the service stays
// healthy even when database and storage are absent; their status is
// reported for monitoring.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	response := HealthResponse{
		Status:    "healthy",
		Version:   Version,
		Timestamp: time.Now().Format(time.RFC3339),
		Uptime:    time.Since(startTime).String(),
		Memory: MemoryStats{
			Allocated: fmt.Sprintf("%.2f MB", float64(m.Alloc)/1024/1024),
			Total:     fmt.Sprintf("%.2f MB", float64(m.TotalAlloc)/1024/1024),
			System:    fmt.Sprintf("%.2f MB", float64(m.Sys)/1024/1024),
		},
		Database: h.checkDatabase(),
		Storage:  h.checkStorage(),
		AI: map[string]string{
			"defaultProvider": h.config.AI.DefaultProvider,
		},
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) checkDatabase() ServiceStatus {
	if db.Pool == nil {
		return ServiceStatus{Available: false, Error: "database pool not initialized"}
	}
	return ServiceStatus{Available: true, Version: "PostgreSQL"}
}

func (h *Handler) checkStorage() ServiceStatus {
	if storage.Client == nil {
		return ServiceStatus{Available: false, Error: "storage client not initialized"}
	}
	return ServiceStatus{Available: true, Version: "MinIO S3"}
}

// analyze runs the extraction and exemption cores over one utterance and
// assembles the VAT breakdown.
func analyze(text string) *models.VATBreakdown {
	extracted := extraction.Extract(text)
	verdict := exemption.Classify(text)
	result := tax.VATExclusive(extracted.BaseAmount, verdict.IsExempt)

	return &models.VATBreakdown{
		BaseAmount:      result.BaseAmount,
		Quantity:        extracted.Quantity,
		UnitPrice:       extracted.UnitPrice,
		Unit:            extracted.Unit,
		VATAmount:       result.VATAmount,
		Total:           result.Total,
		Exempt:          verdict.IsExempt,
		ExemptCategory:  verdict.Category,
		MatchConfidence: verdict.Confidence,
	}
}

// Chat answers a free-text tax question: deterministic calculation first,
// then an LLM phrasing with deterministic fallback.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ctx := r.Context()
	start := time.Now()

	claims, err := auth.GetClaimsFromContext(ctx)
	if err != nil {
		h.sendError(w, http.StatusUnauthorized, "unauthorized: "+err.Error())
		return
	}

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Message == "" {
		h.sendError(w, http.StatusBadRequest, "message is required")
		return
	}

	breakdown := analyze(req.Message)

	providerName := req.AIProvider
	if providerName == "" {
		providerName = h.config.AI.DefaultProvider
	}
	provider := h.createProvider(providerName, req.Model)

	aiStart := time.Now()
	reply, source := ai.NewResponder(provider).Answer(ctx, req.Message, breakdown)
	aiDuration := time.Since(aiStart).Seconds()

	if db.Pool != nil {
		rec := &db.QueryRecord{
			UserID:     claims.UserID,
			Question:   req.Message,
			BaseAmount: decimalToFloat64(breakdown.BaseAmount),
			VATAmount:  decimalToFloat64(breakdown.VATAmount),
			Total:      decimalToFloat64(breakdown.Total),
			IsExempt:   breakdown.Exempt,
			Category:   breakdown.ExemptCategory,
			Confidence: breakdown.MatchConfidence,
			Provider:   providerName,
			Source:     source,
		}
		if err := db.SaveQuery(ctx, rec); err != nil {
			fmt.Printf("Warning: failed to save query record: %v\n", err)
		}
	}

	json.NewEncoder(w).Encode(models.ChatResponse{
		Success:       true,
		Reply:         reply,
		Calculation:   breakdown,
		Source:        source,
		AIDuration:    aiDuration,
		TotalDuration: time.Since(start).Seconds(),
	})
}

// CalculateVAT computes VAT from either a plain amount or free text.
func (h *Handler) CalculateVAT(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req models.VATRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var breakdown *models.VATBreakdown
	switch {
	case req.Amount != nil:
		exempt := false
		category := ""
		confidence := 0
		if req.Text != "" {
			verdict := exemption.Classify(req.Text)
			exempt = verdict.IsExempt
			category = verdict.Category
			confidence = verdict.Confidence
		}
		var result tax.VATResult
		if req.Inclusive {
			result = tax.VATInclusive(*req.Amount, exempt)
		} else {
			result = tax.VATExclusive(*req.Amount, exempt)
		}
		breakdown = &models.VATBreakdown{
			BaseAmount:      result.BaseAmount,
			VATAmount:       result.VATAmount,
			Total:           result.Total,
			Exempt:          exempt,
			ExemptCategory:  category,
			MatchConfidence: confidence,
		}

	case req.Text != "":
		breakdown = analyze(req.Text)

	default:
		h.sendError(w, http.StatusBadRequest, "either amount or text is required")
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"success":     true,
		"calculation": breakdown,
	})
}

// CalculatePAYE computes annual personal income tax.
func (h *Handler) CalculatePAYE(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req models.PAYERequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !req.GrossIncome.IsPositive() {
		h.sendError(w, http.StatusBadRequest, "grossIncome must be positive")
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"result":  tax.PAYE(req.GrossIncome),
	})
}

// CalculateCIT computes companies income tax.
func (h *Handler) CalculateCIT(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req models.CITRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Turnover.IsNegative() {
		h.sendError(w, http.StatusBadRequest, "turnover must not be negative")
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"result":  tax.CIT(req.Turnover, req.Profit),
	})
}

// CalculateCGT computes capital gains tax.
func (h *Handler) CalculateCGT(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req models.CGTRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"result":  tax.CGT(req.Gain),
	})
}

// GetQueries returns the caller's recent question history.
func (h *Handler) GetQueries(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ctx := r.Context()
	claims, err := auth.GetClaimsFromContext(ctx)
	if err != nil {
		h.sendError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if db.Pool == nil {
		h.sendError(w, http.StatusServiceUnavailable, "database not available")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	records, err := db.RecentQueries(ctx, claims.UserID, limit)
	if err != nil {
		h.sendError(w, http.StatusInternalServerError, fmt.Sprintf("failed to get queries: %v", err))
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"queries": records,
		"count":   len(records),
	})
}

// MonthlyReport builds a CSV of one month's queries. With object storage
// configured the report is archived and a presigned URL returned;
// otherwise the CSV streams directly.
func (h *Handler) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claims, err := auth.GetClaimsFromContext(ctx)
	if err != nil {
		h.sendError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if db.Pool == nil {
		h.sendError(w, http.StatusServiceUnavailable, "database not available")
		return
	}

	now := time.Now()
	year := now.Year()
	month := now.Month()
	if y, err := strconv.Atoi(r.URL.Query().Get("year")); err == nil && y > 2000 {
		year = y
	}
	if m, err := strconv.Atoi(r.URL.Query().Get("month")); err == nil && m >= 1 && m <= 12 {
		month = time.Month(m)
	}

	records, err := db.QueriesForMonth(ctx, claims.UserID, year, month)
	if err != nil {
		h.sendError(w, http.StatusInternalServerError, fmt.Sprintf("failed to get queries: %v", err))
		return
	}

	csvData, err := buildReportCSV(records)
	if err != nil {
		h.sendError(w, http.StatusInternalServerError, "failed to build report")
		return
	}

	filename := fmt.Sprintf("vat_report_%d-%02d_%s.csv", year, int(month), uuid.New().String()[:8])

	if storage.Client != nil {
		objectName, err := storage.UploadReport(ctx, claims.UserID, filename,
			bytes.NewReader(csvData), int64(len(csvData)), "text/csv")
		if err != nil {
			h.sendError(w, http.StatusInternalServerError, fmt.Sprintf("failed to store report: %v", err))
			return
		}
		reportURL, err := storage.GetPresignedURL(ctx, objectName)
		if err != nil {
			h.sendError(w, http.StatusInternalServerError, "failed to presign report")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success":    true,
			"report_url": reportURL,
			"object":     objectName,
			"count":      len(records),
		})
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.Write(csvData)
}

// MonthlyStats returns per-month aggregates of the caller's activity.
func (h *Handler) MonthlyStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ctx := r.Context()
	claims, err := auth.GetClaimsFromContext(ctx)
	if err != nil {
		h.sendError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if db.Pool == nil {
		h.sendError(w, http.StatusServiceUnavailable, "database not available")
		return
	}

	stats, err := db.GetMonthlyStats(ctx, claims.UserID)
	if err != nil {
		h.sendError(w, http.StatusInternalServerError, fmt.Sprintf("failed to get stats: %v", err))
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"stats":   stats,
	})
}

// buildReportCSV renders query records as a CSV report with a totals row.
func buildReportCSV(records []db.QueryRecord) ([]byte, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	if err := cw.Write([]string{"date", "question", "base_amount", "vat_amount", "total", "exempt", "category"}); err != nil {
		return nil, err
	}

	var totalBase, totalVAT float64
	for _, rec := range records {
		totalBase += rec.BaseAmount
		totalVAT += rec.VATAmount
		row := []string{
			rec.CreatedAt.Format("2006-01-02"),
			rec.Question,
			strconv.FormatFloat(rec.BaseAmount, 'f', 2, 64),
			strconv.FormatFloat(rec.VATAmount, 'f', 2, 64),
			strconv.FormatFloat(rec.Total, 'f', 2, 64),
			strconv.FormatBool(rec.IsExempt),
			rec.Category,
		}
		if err := cw.Write(row); err != nil {
			return nil, err
		}
	}
	if err := cw.Write([]string{"", "TOTAL",
		strconv.FormatFloat(totalBase, 'f', 2, 64),
		strconv.FormatFloat(totalVAT, 'f', 2, 64),
		strconv.FormatFloat(totalBase+totalVAT, 'f', 2, 64),
		"", ""}); err != nil {
		return nil, err
	}

	cw.Flush()
	return buf.Bytes(), cw.Error()
}

// createProvider builds the requested AI provider; nil means answer
// deterministically.
func (h *Handler) createProvider(providerName, modelName string) ai.Provider {
	switch providerName {
	case "openai":
		if h.config.AI.OpenAI.APIKey == "" {
			return nil
		}
		model := modelName
		if model == "" {
			model = h.config.AI.OpenAI.Model
		}
		return ai.NewOpenAIProvider(h.config.AI.OpenAI.APIKey, h.config.AI.OpenAI.BaseURL, model)

	case "gemini":
		if h.config.AI.Gemini.APIKey == "" {
			return nil
		}
		model := modelName
		if model == "" {
			model = h.config.AI.Gemini.Model
		}
		return ai.NewGeminiProvider(h.config.AI.Gemini.APIKey, model)

	case "ollama":
		model := modelName
		if model == "" {
			model = h.config.AI.Ollama.Model
		}
		return ai.NewOllamaProvider(h.config.AI.Ollama.BaseURL, model)

	default:
		return nil
	}
}

// sendError sends an error response.
func (h *Handler) sendError(w http.ResponseWriter, statusCode int, message string) {
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// decimalToFloat64 converts a decimal to float64 for persistence.
func decimalToFloat64(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
