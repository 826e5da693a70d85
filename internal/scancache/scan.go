package scancache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/glintlabs/glint/internal/log"
	"github.com/glintlabs/glint/internal/syntax"
)

// Result is a completed scan. Spans are never mutated after the scan, so a
// cached Result can be shared between previews.
type Result struct {
	Language string
	Spans    []syntax.Span
	Elapsed  time.Duration
}

// Key derives the cache key for a source under a language. Content is hashed
// rather than stored, so long files cost 32 bytes of key.
func Key(language, src string) string {
	sum := sha256.Sum256([]byte(src))
	return language + ":" + hex.EncodeToString(sum[:])
}

type scanInput struct {
	table *syntax.Table
	src   string
}

// ScanCache is the read-through scan cache used by the preview and the scan
// command.
type ScanCache struct {
	store   *InMemory[string, Result]
	through *ReadThrough[string, Result, scanInput]
	ttl     time.Duration
}

// New builds a ScanCache. With enabled false every Scan recomputes, which
// keeps the call sites identical when the cache is configured off.
func New(enabled bool, ttl, cleanupInterval time.Duration, maxEntries int) *ScanCache {
	if ttl <= 0 {
		ttl = DefaultExpiration
	}
	if cleanupInterval <= 0 {
		cleanupInterval = DefaultCleanupInterval
	}

	store := NewInMemory[string, Result]("scan", ttl, cleanupInterval, maxEntries)
	return &ScanCache{
		store:   store,
		through: NewReadThrough[string, Result, scanInput](store, runScan, !enabled),
		ttl:     ttl,
	}
}

func runScan(ctx context.Context, in scanInput) Result {
	start := time.Now()
	spans := syntax.Scan(in.table, in.src)
	elapsed := time.Since(start)

	log.Debug(log.CatScan, "scanned source",
		"language", in.table.Name,
		"bytes", len(in.src),
		"spans", len(spans),
		"elapsed", elapsed,
	)

	return Result{Language: in.table.Name, Spans: spans, Elapsed: elapsed}
}

// Scan returns the span stream for src under table, from cache when possible.
// The boolean reports a cache hit.
func (s *ScanCache) Scan(ctx context.Context, table *syntax.Table, src string) (Result, bool) {
	key := Key(table.Name, src)
	return s.through.Get(ctx, key, scanInput{table: table, src: src}, s.ttl)
}

// Stats returns hit/miss counts for the status bar.
func (s *ScanCache) Stats() Stats {
	return s.store.Stats()
}

// Flush drops all cached scans. The watcher calls this when a previewed file
// changes on disk.
func (s *ScanCache) Flush(ctx context.Context) {
	_ = s.store.Flush(ctx)
}
