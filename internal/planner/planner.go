package planner

import (
	"math/rand"
	"time"

	"github.com/eyesofbug/VoyageIQ/internal/catalog"
	"go.uber.org/zap"
)

// Planner builds, prices, optimizes and scores trip plans against a
// read-only catalog. All methods are synchronous and request-scoped; the
// only mutable state is the random source, so a Planner should not be
// shared across goroutines.
type Planner struct {
	catalog *catalog.Catalog
	rng     *rand.Rand
	log     *zap.Logger
}

type Option func(*Planner)

// WithRand injects a seedable random source; tests use this for
// deterministic itineraries.
func WithRand(rng *rand.Rand) Option {
	return func(p *Planner) { p.rng = rng }
}

func WithLogger(log *zap.Logger) Option {
	return func(p *Planner) { p.log = log }
}

// Catalog exposes the read-only reference catalog the planner was built on.
func (p *Planner) Catalog() *catalog.Catalog {
	return p.catalog
}

func New(cat *catalog.Catalog, opts ...Option) *Planner {
	p := &Planner{
		catalog: cat,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
