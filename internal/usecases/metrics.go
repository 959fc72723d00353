package usecases

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter             = otel.Meter("usecases")
	LLMTokensUsed     metric.Int64Counter
	AgentPrompts      metric.Int64Counter
	AgentToolCalls    metric.Int64Counter
	AgentCacheLookups metric.Int64Counter
)

func init() {
	var err error
	// Tokens consumed by LLM (input + output)
	LLMTokensUsed, err = meter.Int64Counter(
		"llm_tokens_used_total",
		metric.WithDescription("Total LLM tokens consumed"),
	)
	if err != nil {
		panic(err)
	}

	AgentPrompts, err = meter.Int64Counter(
		"agent_prompts_total",
		metric.WithDescription("Prompts processed by the agent, by outcome"),
	)
	if err != nil {
		panic(err)
	}

	AgentToolCalls, err = meter.Int64Counter(
		"agent_tool_calls_total",
		metric.WithDescription("Tool calls dispatched by the agent, by tool and outcome"),
	)
	if err != nil {
		panic(err)
	}

	AgentCacheLookups, err = meter.Int64Counter(
		"agent_cache_lookups_total",
		metric.WithDescription("Session and task cache lookups, by cache and result"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordLLMTokensUsed records the number of tokens used in an LLM chat operation.
func RecordLLMTokensUsed(ctx context.Context, promptTokens, completionTokens int) {
	LLMTokensUsed.Add(ctx, int64(promptTokens), metric.WithAttributes(
		attribute.String("token_type", "prompt"),
	))
	LLMTokensUsed.Add(ctx, int64(completionTokens), metric.WithAttributes(
		attribute.String("token_type", "completion"),
	))
}

// RecordPromptOutcome records how a prompt was resolved.
func RecordPromptOutcome(ctx context.Context, outcome string) {
	AgentPrompts.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}

// RecordToolCalls records n dispatched calls of a tool.
func RecordToolCalls(ctx context.Context, tool string, outcome string, n int) {
	AgentToolCalls.Add(ctx, int64(n), metric.WithAttributes(
		attribute.String("tool", tool),
		attribute.String("outcome", outcome),
	))
}

// RecordCacheLookup records a hit or a miss on one of the agent caches.
func RecordCacheLookup(ctx context.Context, cache string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	AgentCacheLookups.Add(ctx, 1, metric.WithAttributes(
		attribute.String("cache", cache),
		attribute.String("result", result),
	))
}
