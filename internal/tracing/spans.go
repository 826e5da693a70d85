package tracing

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Span attribute keys for scan and render instrumentation.
const (
	AttrSource       = "scan.source"
	AttrLanguage     = "scan.language"
	AttrSourceBytes  = "scan.bytes"
	AttrSpanCount    = "scan.spans"
	AttrUnterminated = "scan.unterminated"
	AttrCacheHit     = "scan.cache_hit"

	AttrTheme       = "render.theme"
	AttrRenderLines = "render.lines"
	AttrRenderWidth = "render.width"

	AttrSessionID = "session.id"
)

// Span names.
const (
	SpanScan   = "glint.scan"
	SpanRender = "glint.render"
)

// StartScan opens a scan span carrying the source identity. Callers must End
// the returned span; EndScan attaches the result attributes first.
func StartScan(ctx context.Context, tracer trace.Tracer, source, language string, sourceBytes int) (context.Context, trace.Span) {
	return tracer.Start(ctx, SpanScan, trace.WithAttributes(
		attribute.String(AttrSource, source),
		attribute.String(AttrLanguage, language),
		attribute.Int(AttrSourceBytes, sourceBytes),
	))
}

// EndScan records the scan outcome on the span and ends it.
func EndScan(span trace.Span, spanCount, unterminated int, cacheHit bool) {
	span.SetAttributes(
		attribute.Int(AttrSpanCount, spanCount),
		attribute.Int(AttrUnterminated, unterminated),
		attribute.Bool(AttrCacheHit, cacheHit),
	)
	span.End()
}

// StartRender opens a render span under ctx.
func StartRender(ctx context.Context, tracer trace.Tracer, theme string, lines, width int) (context.Context, trace.Span) {
	return tracer.Start(ctx, SpanRender, trace.WithAttributes(
		attribute.String(AttrTheme, theme),
		attribute.Int(AttrRenderLines, lines),
		attribute.Int(AttrRenderWidth, width),
	))
}
