package telemetry

import (
	"context"
	"errors"
	"io"

	"go.trai.ch/peerseek/internal/core/domain"
	"go.trai.ch/peerseek/internal/core/ports"
)

// Tee fans every vertex out to several telemetry backends.
type Tee struct {
	backends []ports.Telemetry
}

// NewTee creates a Tee over backends.
func NewTee(backends ...ports.Telemetry) *Tee {
	return &Tee{backends: backends}
}

// Record starts a vertex on every backend. The returned context carries the tee vertex.
func (t *Tee) Record(ctx context.Context, name string, opts ...ports.VertexOption) (context.Context, ports.Vertex) {
	v := &teeVertex{vertices: make([]ports.Vertex, 0, len(t.backends))}
	for _, b := range t.backends {
		_, bv := b.Record(ctx, name, opts...)
		v.vertices = append(v.vertices, bv)
	}
	return ports.ContextWithVertex(ctx, v), v
}

// Close closes every backend and joins their errors.
func (t *Tee) Close() error {
	var errs []error
	for _, b := range t.backends {
		errs = append(errs, b.Close())
	}
	return errors.Join(errs...)
}

type teeVertex struct {
	vertices []ports.Vertex
}

func (v *teeVertex) Stdout() io.Writer {
	writers := make([]io.Writer, len(v.vertices))
	for i, inner := range v.vertices {
		writers[i] = inner.Stdout()
	}
	return io.MultiWriter(writers...)
}

func (v *teeVertex) Log(level domain.LogLevel, msg string) {
	for _, inner := range v.vertices {
		inner.Log(level, msg)
	}
}

func (v *teeVertex) Complete(err error) {
	for _, inner := range v.vertices {
		inner.Complete(err)
	}
}

func (v *teeVertex) Cached() {
	for _, inner := range v.vertices {
		inner.Cached()
	}
}
