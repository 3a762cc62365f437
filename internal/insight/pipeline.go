package insight

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/verifresh-labs/verifresh-backend/internal/model"
	"go.uber.org/zap"
)

// requiredKeys are the keys the model's JSON response must carry.
var requiredKeys = []string{
	"freshness_score",
	"estimated_shelf_life",
	"quality_assessment",
	"visual_inspection",
	"transit_anomalies",
}

// Result is the outcome of one insight generation. Exactly one of the
// two variants holds: a successfully parsed insight, or the fixed
// degraded placeholder with Err recording the absorbed cause.
type Result struct {
	Insight  model.InsightResult
	Degraded bool
	Err      error
}

// Pipeline generates insights for product records. Generate never fails
// outward: any malfunction is absorbed into the degraded variant so that
// an advisory subsystem can never block the authoritative ledger data.
type Pipeline struct {
	model   ModelInvoker
	metrics Metrics
	logger  *zap.Logger
	now     func() time.Time
}

// NewPipeline constructs an insight pipeline.
func NewPipeline(invoker ModelInvoker, metrics Metrics, logger *zap.Logger) (*Pipeline, error) {
	if invoker == nil {
		return nil, errors.New("model invoker is required")
	}
	if metrics == nil {
		return nil, errors.New("insight metrics is required")
	}
	return &Pipeline{
		model:   invoker,
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
	}, nil
}

// Generate produces an InsightResult for the record, consulting the image
// when one is supplied. The returned Result is always well formed.
func (p *Pipeline) Generate(ctx context.Context, product *model.Product, image *Image) Result {
	started := time.Now()
	res := p.generate(ctx, product, image)
	p.metrics.ObserveGenerate(res.Degraded, started)

	if res.Degraded {
		p.logger.Warn("insight generation degraded",
			zap.Uint64("product_id", product.ProductID),
			zap.Error(res.Err),
		)
	}
	return res
}

func (p *Pipeline) generate(ctx context.Context, product *model.Product, image *Image) Result {
	prompt := buildPrompt(product, image != nil, p.now().Unix())

	raw, err := p.model.Invoke(ctx, prompt, image)
	if err != nil {
		return degraded(fmt.Errorf("invoke model: %w", err))
	}

	parsed, err := parseInsight(raw)
	if err != nil {
		return degraded(err)
	}
	return Result{Insight: parsed}
}

func degraded(err error) Result {
	return Result{
		Insight:  model.DegradedInsight(),
		Degraded: true,
		Err:      err,
	}
}

// parseInsight strips optional code-block fencing from the model's raw
// response and decodes it, requiring all five contract keys.
func parseInsight(raw string) (model.InsightResult, error) {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &fields); err != nil {
		return model.InsightResult{}, fmt.Errorf("parse model response: %w", err)
	}
	for _, key := range requiredKeys {
		if _, ok := fields[key]; !ok {
			return model.InsightResult{}, fmt.Errorf("model response missing key %q", key)
		}
	}

	var insight model.InsightResult
	if err := json.Unmarshal([]byte(cleaned), &insight); err != nil {
		return model.InsightResult{}, fmt.Errorf("decode model response: %w", err)
	}
	return insight, nil
}
