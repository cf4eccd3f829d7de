package reqctx

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestMeta(t *testing.T) {
	ctx := context.Background()

	_, ok := RequestMetaFromContext(ctx)
	assert.False(t, ok)
	assert.Empty(t, RequestIDFromContext(ctx))

	meta := &RequestMeta{RequestID: "req-1", ClientIP: "10.0.0.1", RequestedAt: time.Now()}
	ctx = WithRequestMeta(ctx, meta)

	got, ok := RequestMetaFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, meta, got)
	assert.Equal(t, "req-1", RequestIDFromContext(ctx))
}

func TestDetach_KeepsMetaDropsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(WithRequestMeta(context.Background(), &RequestMeta{RequestID: "req-2"}))
	cancel()

	detached := Detach(ctx)
	assert.NoError(t, detached.Err())
	assert.Equal(t, "req-2", RequestIDFromContext(detached))
}
