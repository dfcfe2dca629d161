package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// QueryRecord is one answered tax question, persisted for history and
// monthly reporting.
type QueryRecord struct {
	ID         uuid.UUID `json:"id"`
	UserID     string    `json:"user_id"`
	Question   string    `json:"question"`
	BaseAmount float64   `json:"base_amount"`
	VATAmount  float64   `json:"vat_amount"`
	Total      float64   `json:"total"`
	IsExempt   bool      `json:"is_exempt"`
	Category   string    `json:"category"`
	Confidence int       `json:"confidence"`
	Provider   string    `json:"provider"`
	Source     string    `json:"source"`
	CreatedAt  time.Time `json:"created_at"`
}

// SaveQuery inserts a record and fills its ID and CreatedAt.
func SaveQuery(ctx context.Context, rec *QueryRecord) error {
	query := `
		INSERT INTO tax_queries (
			user_id, question, base_amount, vat_amount, total,
			is_exempt, category, confidence, provider, source
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`
	err := Pool.QueryRow(ctx, query,
		rec.UserID, rec.Question, rec.BaseAmount, rec.VATAmount, rec.Total,
		rec.IsExempt, rec.Category, rec.Confidence, rec.Provider, rec.Source,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save query record: %w", err)
	}
	return nil
}

// RecentQueries returns the user's latest answered questions, newest first.
func RecentQueries(ctx context.Context, userID string, limit int) ([]QueryRecord, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	query := `
		SELECT id, user_id, question, COALESCE(base_amount, 0), COALESCE(vat_amount, 0),
		       COALESCE(total, 0), is_exempt, COALESCE(category, ''),
		       COALESCE(confidence, 0), COALESCE(provider, ''), COALESCE(source, ''), created_at
		FROM tax_queries
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := Pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var records []QueryRecord
	for rows.Next() {
		var rec QueryRecord
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.Question, &rec.BaseAmount, &rec.VATAmount,
			&rec.Total, &rec.IsExempt, &rec.Category, &rec.Confidence,
			&rec.Provider, &rec.Source, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan query record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// QueriesForMonth returns the user's records inside one calendar month, in
// chronological order, for report generation.
func QueriesForMonth(ctx context.Context, userID string, year int, month time.Month) ([]QueryRecord, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	query := `
		SELECT id, user_id, question, COALESCE(base_amount, 0), COALESCE(vat_amount, 0),
		       COALESCE(total, 0), is_exempt, COALESCE(category, ''),
		       COALESCE(confidence, 0), COALESCE(provider, ''), COALESCE(source, ''), created_at
		FROM tax_queries
		WHERE user_id = $1 AND created_at >= $2 AND created_at < $3
		ORDER BY created_at ASC
	`
	rows, err := Pool.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query month: %w", err)
	}
	defer rows.Close()

	var records []QueryRecord
	for rows.Next() {
		var rec QueryRecord
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.Question, &rec.BaseAmount, &rec.VATAmount,
			&rec.Total, &rec.IsExempt, &rec.Category, &rec.Confidence,
			&rec.Provider, &rec.Source, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan query record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// MonthlyStats aggregates one calendar month of activity.
type MonthlyStats struct {
	Month       string  `json:"month"` // "2026-08"
	QueryCount  int     `json:"query_count"`
	TotalBase   float64 `json:"total_base"`
	TotalVAT    float64 `json:"total_vat"`
	ExemptCount int     `json:"exempt_count"`
}

// GetMonthlyStats returns per-month aggregates for the user, newest first.
func GetMonthlyStats(ctx context.Context, userID string) ([]MonthlyStats, error) {
	query := `
		SELECT to_char(created_at, 'YYYY-MM') AS month,
		       COUNT(*),
		       COALESCE(SUM(base_amount), 0),
		       COALESCE(SUM(vat_amount), 0),
		       COUNT(*) FILTER (WHERE is_exempt)
		FROM tax_queries
		WHERE user_id = $1
		GROUP BY month
		ORDER BY month DESC
		LIMIT 24
	`
	rows, err := Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query stats: %w", err)
	}
	defer rows.Close()

	var stats []MonthlyStats
	for rows.Next() {
		var s MonthlyStats
		if err := rows.Scan(&s.Month, &s.QueryCount, &s.TotalBase, &s.TotalVAT, &s.ExemptCount); err != nil {
			return nil, fmt.Errorf("failed to scan stats row: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
