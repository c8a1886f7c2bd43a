package application

import (
	"fmt"
	"time"

	"github.com/costflow/costflow/internal/domain"
	"github.com/costflow/costflow/internal/domain/discount"
	"github.com/costflow/costflow/internal/domain/pipeline"
	"github.com/costflow/costflow/internal/domain/stages"
	"github.com/rs/zerolog"
)

// QuoteService prices a single order:
// load config → apply overrides → parse order → discount → run pipelines.
type QuoteService struct {
	configLoader domain.ConfigLoader
	revisions    domain.RevisionReader
	catalog      discount.Catalog
	logger       zerolog.Logger
	now          func() time.Time
}

func NewQuoteService(
	cl domain.ConfigLoader,
	rr domain.RevisionReader,
	logger zerolog.Logger,
) *QuoteService {
	return &QuoteService{
		configLoader: cl,
		revisions:    rr,
		catalog:      discount.DefaultCatalog(),
		logger:       logger,
		now:          time.Now,
	}
}

// Quote loads the project configuration from projectPath, overlays the
// non-empty choices of overrides and computes the adjusted cost of req.
func (s *QuoteService) Quote(projectPath string, req OrderRequest, overrides domain.ProcessConfiguration) (*domain.Quote, error) {
	cfg, err := s.configLoader.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	process := cfg.Process.Merge(overrides)
	if err := process.Validate(); err != nil {
		return nil, err
	}

	order, err := ParseOrder(req)
	if err != nil {
		return nil, err
	}

	order, err = discount.Apply(order, s.catalog)
	if err != nil {
		return nil, fmt.Errorf("discount: %w", err)
	}

	log := s.logger.With().Str("order_id", order.ID).Logger()
	adj, err := pipeline.Adjust(order, process, pipeline.WithObserver(stageTracer(log)))
	if err != nil {
		return nil, fmt.Errorf("adjusting cost: %w", err)
	}

	log.Debug().
		Str("freight", adj.Freight.Cost.String()).
		Str("weekday", adj.Weekday.String()).
		Str("cost", adj.Cost.String()).
		Msg("cost_adjusted")

	quote := &domain.Quote{
		Order:      order,
		Config:     process,
		Adjustment: adj,
		Timestamp:  s.now().UTC(),
	}

	if s.revisions != nil {
		if hash, err := s.revisions.CommitHash(projectPath); err == nil {
			quote.ConfigRevision = hash
		} else {
			log.Debug().Err(err).Msg("config revision unavailable")
		}
	}

	return quote, nil
}

// Variants lists the registered stage variants of every category.
func Variants() []stages.CategoryVariants {
	return stages.Default().Describe()
}

func stageTracer(log zerolog.Logger) pipeline.Observer {
	return func(cat domain.Category, variant string) {
		log.Debug().
			Str("category", string(cat)).
			Str("variant", variant).
			Msg("stage_executed")
	}
}
