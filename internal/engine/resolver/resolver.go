// Package resolver implements the cache freshness policy and the
// lookup-with-refresh algorithm.
package resolver

import (
	"context"
	"errors"

	"go.trai.ch/crateq/internal/core/domain"
	"go.trai.ch/crateq/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver finds the version record a query refers to, refreshing the local
// index at most once per call.
type Resolver struct {
	cache     ports.IndexCache
	refresher ports.IndexRefresher
	telemetry ports.Telemetry
	logger    ports.Logger
}

// NewResolver creates a new Resolver.
func NewResolver(
	cache ports.IndexCache,
	refresher ports.IndexRefresher,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Resolver {
	return &Resolver{
		cache:     cache,
		refresher: refresher,
		telemetry: telemetry,
		logger:    logger,
	}
}

// Resolve returns the package and the record selected by sel.
//
// With RefreshFirst the index is refreshed before the only lookup. With
// LookupFirst a cache hit returns immediately, and a miss triggers one
// refresh followed by a final lookup.
func (r *Resolver) Resolve(
	ctx context.Context,
	name string,
	sel domain.Selector,
	view domain.View,
) (res *domain.Resolution, err error) {
	if err := view.Validate(); err != nil {
		return nil, err
	}

	ctx, vertex := r.telemetry.Record(ctx, "resolve "+name)
	defer func() {
		vertex.Complete(err)
	}()

	policy := domain.DecideRefresh(view, sel)
	r.logger.Debug("resolving " + name + " (" + sel.String() + ", " + view.String() + ") with policy " + policy.String())

	res = &domain.Resolution{Policy: policy}

	if policy == domain.LookupFirst {
		pkg, rec, err := r.lookup(ctx, name, sel)
		if err == nil {
			vertex.Cached()
			res.Package, res.Version = pkg, rec
			return res, nil
		}
		if !IsMiss(err) {
			return nil, err
		}
		r.logger.Debug(name + " " + sel.String() + " is not cached, refreshing the index")
	}

	if err := r.refresh(ctx, name); err != nil {
		return nil, err
	}
	res.Refreshed = true

	pkg, rec, err := r.lookup(ctx, name, sel)
	if err != nil {
		return nil, zerr.With(err, "refreshed", true)
	}
	res.Package, res.Version = pkg, rec
	return res, nil
}

// IsMiss reports whether err means the cache does not (yet) hold the
// requested package or version.
func IsMiss(err error) bool {
	return errors.Is(err, domain.ErrPackageNotFound) ||
		errors.Is(err, domain.ErrVersionNotFound) ||
		errors.Is(err, domain.ErrNoNormalVersion)
}

func (r *Resolver) lookup(
	ctx context.Context,
	name string,
	sel domain.Selector,
) (pkg *domain.Package, rec *domain.VersionRecord, err error) {
	ctx, vertex := r.telemetry.Record(ctx, "lookup "+name)
	defer func() {
		vertex.Complete(err)
	}()

	pkg, err = r.cache.LookupPackage(ctx, name)
	if err != nil {
		return nil, nil, err
	}
	rec, err = pkg.Select(sel)
	if err != nil {
		return nil, nil, err
	}
	vertex.Log(domain.LogLevelDebug, "selected "+rec.Version)
	return pkg, rec, nil
}

func (r *Resolver) refresh(ctx context.Context, name string) (err error) {
	ctx, vertex := r.telemetry.Record(ctx, "refresh "+name)
	defer func() {
		vertex.Complete(err)
	}()

	return r.refresher.ForceRefresh(ctx, name)
}
