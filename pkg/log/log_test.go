package log_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"pr-notes/pkg/log"
)

func TestRequestID(t *testing.T) {
	ctx := log.WithRequestID(context.Background(), "req-1")
	assert.Equal(t, "req-1", log.RequestIDFrom(ctx))
	assert.Equal(t, "", log.RequestIDFrom(context.Background()))
}

func TestInitDoesNotPanic(t *testing.T) {
	for _, cfg := range []log.ZapConfig{
		{Level: "debug", Mode: log.ModeDevelopment, Encoding: log.EncodingConsole, ColorEnabled: true},
		{Level: "bogus", Mode: log.ModeProduction, Encoding: log.EncodingJSON},
	} {
		l := log.Init(cfg)
		assert.NotPanics(t, func() {
			l.Infof(log.WithRequestID(context.Background(), "r"), "hello %s", "world")
			l.Debug(context.Background(), "debug")
		})
	}

	nop := log.NewNop()
	assert.NotPanics(t, func() { nop.Errorf(context.Background(), "x %d", 1) })
}
