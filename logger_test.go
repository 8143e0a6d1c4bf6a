package swr

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopHandler(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		assert.False(t, h.Enabled(context.Background(), level))
	}
	assert.NoError(t, h.Handle(context.Background(), slog.Record{}))
	assert.IsType(t, nopHandler{}, h.WithAttrs([]slog.Attr{slog.String("key", "val")}))
	assert.IsType(t, nopHandler{}, h.WithGroup("group"))
}

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	require.NotNil(t, l)
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		assert.False(t, l.Enabled(context.Background(), level))
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	fb := NewFramebuffer(3, 2)
	fb.Release()

	assert.Contains(t, buf.String(), "framebuffer created")
	assert.Contains(t, buf.String(), "width=3")
}

func TestSetLoggerNilRestoresSilence(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)

	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}

// Rejected triangles and discarded fragments are expected outcomes and
// must not produce log output.
func TestDrawTriangleDoesNotLog(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	fb := NewFramebuffer(4, 4)
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	p, _ := newTestProgram()
	setTriangle(p, red, lowerLeftA, lowerLeftC, lowerLeftB) // back-facing
	DrawTriangle(fb, p)
	setTriangle(p, red, ndc(2, 0, 0), ndc(3, 0, 0), ndc(2, 1, 0)) // off-screen
	DrawTriangle(fb, p)
	p.Uniforms().Discard = true
	drawQuad(fb, p, red, 0)

	assert.Empty(t, buf.String())
}
