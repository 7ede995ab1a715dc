package activity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRecord_WritesZapAndPersists(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewWithZap(zap.New(core), "recruitment-portal")

	persisted := make(chan Entry, 1)
	l.SetPersistFunc(func(ctx context.Context, e Entry) error {
		persisted <- e
		return nil
	})

	ctx := WithMeta(context.Background(), Meta{IP: "10.0.0.1", UserAgent: "curl", RequestID: "req-1"})
	l.Record(ctx, "INFO", 42, "LOGIN", "User logged in")

	select {
	case e := <-persisted:
		assert.Equal(t, int64(42), e.ActorID)
		assert.Equal(t, "LOGIN", e.EventType)
		assert.Equal(t, "10.0.0.1", e.IP)
		assert.Equal(t, "curl", e.UserAgent)
		assert.False(t, e.Timestamp.IsZero())
	case <-time.After(2 * time.Second):
		t.Fatal("entry was not persisted")
	}

	entries := logs.FilterMessage("User logged in").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "req-1", entries[0].ContextMap()["request_id"])
}

func TestRecord_PersistFailureIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewWithZap(zap.New(core), "")

	done := make(chan struct{})
	l.SetPersistFunc(func(ctx context.Context, e Entry) error {
		defer close(done)
		return errors.New("db down")
	})

	l.Record(context.Background(), "ERROR", 0, "SIGNUP_CONFLICT", "conflict")
	<-done

	assert.Eventually(t, func() bool {
		return logs.FilterMessage("Failed to persist activity entry").Len() == 1
	}, time.Second, 10*time.Millisecond)

	first := logs.FilterMessage("conflict").All()
	require.Len(t, first, 1)
	assert.Equal(t, zapcore.ErrorLevel, first[0].Level)
	_, hasActor := first[0].ContextMap()["actor_id"]
	assert.False(t, hasActor)
}

func TestMetaFromContext_Empty(t *testing.T) {
	assert.Equal(t, Meta{}, MetaFromContext(context.Background()))
}
