package service

// insight_service.go
// Single gateway to the Groq text-generation API. Every method degrades to a
// static fallback string on any failure: an unreachable or unconfigured AI
// service must never surface as an HTTP error.

import (
	"context"
	"encoding/json"
	"time"

	"shifttrack/internal/infra"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	FallbackNoShiftData   = "No shift data available for analysis."
	FallbackSummary       = "AI summary is currently unavailable. Your shift data is still being tracked."
	FallbackInsights      = "Insights are currently unavailable. Keep logging shifts to build up your history."
	summaryCacheKeyPrefix = "insight:summary:"
)

type InsightService interface {
	// ShiftSummary generates prose over the user's full shift history.
	// The result is cached per user in Redis.
	ShiftSummary(ctx context.Context, userID string, shiftData interface{}) string
	// AnalyticsInsights generates commentary for one analytics timeframe.
	AnalyticsInsights(ctx context.Context, timeframe string, summaryData interface{}) string
	// ImproveNotes rewrites free-text shift notes; returns the input unchanged
	// when the service is unconfigured or failing.
	ImproveNotes(ctx context.Context, notes string) string
	// AchievementDescription produces a one-line description for an unlocked
	// milestone; fallback is the provided static text.
	AchievementDescription(ctx context.Context, title, fallback string) string
	// BreakerState exposes the circuit state for the health endpoint.
	BreakerState() string
	// InvalidateSummary drops the cached summary after shift writes.
	InvalidateSummary(ctx context.Context, userID string)
}

type insightService struct {
	client   *infra.GroqClient
	breaker  *infra.CircuitBreaker
	rdb      *redis.Client
	cacheTTL time.Duration
}

func NewInsightService(client *infra.GroqClient, rdb *redis.Client, cacheTTLMinutes int) InsightService {
	return &insightService{
		client:   client,
		breaker:  infra.NewCircuitBreaker(infra.DefaultCBConfig()),
		rdb:      rdb,
		cacheTTL: time.Duration(cacheTTLMinutes) * time.Minute,
	}
}

func (s *insightService) ShiftSummary(ctx context.Context, userID string, shiftData interface{}) string {
	key := summaryCacheKeyPrefix + userID
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, key).Result(); err == nil && cached != "" {
			return cached
		}
	}

	text := s.complete(ctx,
		"You are a helpful assistant analysing a worker's shift history. Reply with a short, encouraging summary in plain prose.",
		shiftData, FallbackSummary)

	if s.rdb != nil && text != FallbackSummary {
		if err := s.rdb.Set(ctx, key, text, s.cacheTTL).Err(); err != nil {
			log.Warn().Err(err).Msg("insight: cache write failed")
		}
	}
	return text
}

func (s *insightService) AnalyticsInsights(ctx context.Context, timeframe string, summaryData interface{}) string {
	return s.complete(ctx,
		"You are a work analytics assistant. Given "+timeframe+" shift statistics as JSON, reply with two or three sentences of practical observations.",
		summaryData, FallbackInsights)
}

func (s *insightService) ImproveNotes(ctx context.Context, notes string) string {
	if !s.client.Configured() {
		return notes
	}
	improved := s.complete(ctx,
		"Rewrite the following shift notes to be clearer and more professional. Reply with the rewritten notes only.",
		notes, notes)
	return improved
}

func (s *insightService) AchievementDescription(ctx context.Context, title, fallback string) string {
	return s.complete(ctx,
		"Write a single celebratory sentence for a work-tracking achievement called \""+title+"\".",
		title, fallback)
}

func (s *insightService) BreakerState() string {
	return s.breaker.State().String()
}

func (s *insightService) InvalidateSummary(ctx context.Context, userID string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, summaryCacheKeyPrefix+userID).Err(); err != nil {
		log.Warn().Err(err).Msg("insight: cache invalidation failed")
	}
}

// complete runs one prompt through the circuit breaker and swallows failures.
func (s *insightService) complete(ctx context.Context, system string, data interface{}, fallback string) string {
	if !s.client.Configured() {
		return fallback
	}

	user := ""
	switch v := data.(type) {
	case string:
		user = v
	default:
		encoded, err := json.Marshal(data)
		if err != nil {
			return fallback
		}
		user = string(encoded)
	}

	var text string
	err := s.breaker.Execute(func() error {
		var callErr error
		text, callErr = s.client.Complete(ctx, system, user)
		return callErr
	})
	if err != nil {
		log.Warn().Err(err).Msg("insight: completion failed, using fallback")
		return fallback
	}
	return text
}
