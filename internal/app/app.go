// Package app implements the application layer for peerseek.
package app

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/benbjohnson/clock"
	"go.trai.ch/peerseek/internal/adapters/cache" //nolint:depguard // Caches are built per network by the app
	"go.trai.ch/peerseek/internal/core/domain"
	"go.trai.ch/peerseek/internal/core/ports"
	"go.trai.ch/peerseek/internal/engine/search"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	hasher       ports.Hasher
	metrics      ports.Metrics
	telemetry    ports.Telemetry
	clock        clock.Clock
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	logger ports.Logger,
	hasher ports.Hasher,
	metrics ports.Metrics,
	telemetry ports.Telemetry,
) *App {
	return &App{
		configLoader: loader,
		logger:       logger,
		hasher:       hasher,
		metrics:      metrics,
		telemetry:    telemetry,
		clock:        clock.New(),
	}
}

// WithClock sets the clock used to measure query latency.
func (a *App) WithClock(c clock.Clock) *App {
	a.clock = c
	return a
}

// QueryRequest is a query as supplied by a caller, before parsing.
type QueryRequest struct {
	Start    string
	Target   string
	TTL      int
	Strategy string
	Seed     uint64
	Seeded   bool
}

// Report is the answer to one query.
type Report struct {
	Query    domain.Query
	Result   domain.Result
	Elapsed  time.Duration
	CacheHit bool
}

// BenchRow compares a cold and a warm run of one strategy.
type BenchRow struct {
	Strategy domain.StrategyKind
	Cold     Report
	Warm     Report
}

// FileReport is the outcome of validating one network file.
type FileReport struct {
	Path   string
	Digest string
	Nodes  int
	Err    error
}

// Load reads the network file at path and validates it against its own neighbor bounds.
func (a *App) Load(path string) (*domain.Network, domain.Settings, error) {
	net, settings, err := a.configLoader.Load(path)
	if err != nil {
		return nil, domain.Settings{}, zerr.Wrap(err, "failed to load configuration")
	}

	if err := net.Validate(settings.MinNeighbors, settings.MaxNeighbors); err != nil {
		return nil, domain.Settings{}, zerr.With(err, "path", path)
	}

	return net, settings, nil
}

// NewCache creates an empty result cache bound to net.
func (a *App) NewCache(net *domain.Network, policy domain.KeyPolicy) *cache.Store {
	return cache.NewStore(a.hasher.NetworkDigest(net), policy)
}

// Query answers req against a validated network through store.
// A cache hit returns the result of the original computation, trace included.
func (a *App) Query(ctx context.Context, net *domain.Network, req QueryRequest, store ports.ResultCache) (Report, error) {
	digest := a.hasher.NetworkDigest(net)
	if store.Digest() != digest {
		err := zerr.With(zerr.Wrap(domain.ErrCacheNetworkMismatch, "cannot answer query"), "cache_digest", store.Digest())
		return Report{}, zerr.With(err, "network_digest", digest)
	}

	q, searcher, err := a.prepare(net, req)
	if err != nil {
		return Report{}, err
	}

	name := fmt.Sprintf("%s %s -> %s ttl=%d", q.Strategy, q.Start, q.Target, q.TTL)
	key := fmt.Sprintf("%s/%s/%s/%d/%s", digest, q.Start, q.Target, q.TTL, q.Strategy)
	_, vertex := a.telemetry.Record(ctx, name, ports.WithKey(key))

	started := a.clock.Now()
	res, hit, err := store.GetOrCompute(net, q, searcher)
	elapsed := a.clock.Since(started)
	if err != nil {
		vertex.Complete(err)
		return Report{}, err
	}

	if hit {
		vertex.Cached()
	}
	_, _ = fmt.Fprintf(vertex.Stdout(), "%s, visited %d, messages %d\n", res.Outcome, res.VisitedCount, res.Messages)
	vertex.Complete(nil)

	a.metrics.ObserveQuery(q.Strategy, res, hit, elapsed)

	return Report{Query: q, Result: res, Elapsed: elapsed, CacheHit: hit}, nil
}

// prepare parses req and checks it against net before the cache is consulted,
// so a bad request is never answered from a previous result.
func (a *App) prepare(net *domain.Network, req QueryRequest) (domain.Query, ports.Searcher, error) {
	kind, err := domain.ParseStrategyKind(req.Strategy)
	if err != nil {
		return domain.Query{}, nil, err
	}

	start := domain.NewInternedString(req.Start)
	if !net.Contains(start) {
		return domain.Query{}, nil, zerr.With(zerr.Wrap(domain.ErrInvalidStart, "cannot start query"), "start", req.Start)
	}
	if req.TTL < 0 {
		return domain.Query{}, nil, zerr.With(zerr.Wrap(domain.ErrInvalidTTL, "cannot start query"), "ttl", req.TTL)
	}

	var src search.Source
	if req.Seeded {
		src = search.NewSource(req.Seed)
	}
	searcher, err := search.New(kind, src)
	if err != nil {
		return domain.Query{}, nil, err
	}

	return domain.Query{
		Start:    start,
		Target:   domain.NewInternedString(req.Target),
		TTL:      req.TTL,
		Strategy: kind,
	}, searcher, nil
}

// Bench runs req once per strategy on a fresh cache (cold), then again on a cache
// that one prior run has populated (warm). The strategy in req is ignored.
func (a *App) Bench(ctx context.Context, net *domain.Network, req QueryRequest) ([]BenchRow, error) {
	kinds := domain.StrategyKinds()
	rows := make([]BenchRow, 0, len(kinds))

	for _, kind := range kinds {
		r := req
		r.Strategy = string(kind)

		cold, err := a.Query(ctx, net, r, a.NewCache(net, domain.KeyPolicyQuery))
		if err != nil {
			return nil, err
		}

		store := a.NewCache(net, domain.KeyPolicyQuery)
		if _, err := a.Query(ctx, net, r, store); err != nil {
			return nil, err
		}
		warm, err := a.Query(ctx, net, r, store)
		if err != nil {
			return nil, err
		}

		rows = append(rows, BenchRow{Strategy: kind, Cold: cold, Warm: warm})
	}

	return rows, nil
}

// ValidateFiles loads and validates every path concurrently.
// Reports come back in the order of paths; the returned error joins the errors of every failing file.
func (a *App) ValidateFiles(ctx context.Context, paths ...string) ([]FileReport, error) {
	reports := make([]FileReport, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			reports[i] = a.validateFile(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	errs := make([]error, 0, len(reports))
	for _, r := range reports {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return reports, errors.Join(errs...)
}

func (a *App) validateFile(path string) FileReport {
	net, _, err := a.Load(path)
	if err != nil {
		return FileReport{Path: path, Err: err}
	}

	report := FileReport{Path: path, Digest: a.hasher.NetworkDigest(net), Nodes: net.Len()}
	a.logger.Info("network valid", "path", path, "nodes", report.Nodes, "digest", report.Digest)
	return report
}
