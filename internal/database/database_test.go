package database

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/deppfellow/club-feedback/internal/config"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(url string) *config.Config {
	return &config.Config{
		Primary: config.Primary{Env: "test"},
		Database: config.DatabaseConfig{
			URL:             url,
			MaxConns:        8,
			MinConns:        1,
			ConnMaxLifetime: time.Hour,
			ConnMaxIdleTime: time.Minute,
			TLSSkipVerify:   true,
		},
		Observability: config.DefaultObservabilityConfig(),
	}
}

func TestNewPoolConfig(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("forces tls without verification", func(t *testing.T) {
		cfg := testConfig("postgres://u:p@db.example:5432/app?sslmode=prefer")

		poolCfg, err := newPoolConfig(cfg, &logger, nil)
		require.NoError(t, err)

		require.NotNil(t, poolCfg.ConnConfig.TLSConfig)
		assert.True(t, poolCfg.ConnConfig.TLSConfig.InsecureSkipVerify)
		assert.Empty(t, poolCfg.ConnConfig.Fallbacks)
		assert.Equal(t, "db.example", poolCfg.ConnConfig.Host)
		assert.Equal(t, "app", poolCfg.ConnConfig.Database)
		assert.Equal(t, int32(8), poolCfg.MaxConns)
		assert.Equal(t, int32(1), poolCfg.MinConns)
		assert.Equal(t, time.Hour, poolCfg.MaxConnLifetime)
		assert.Equal(t, time.Minute, poolCfg.MaxConnIdleTime)
	})

	t.Run("sslmode disable still gets verified tls", func(t *testing.T) {
		cfg := testConfig("postgres://u:p@db.example:5432/app?sslmode=disable")
		cfg.Database.TLSSkipVerify = false

		poolCfg, err := newPoolConfig(cfg, &logger, nil)
		require.NoError(t, err)
		require.NotNil(t, poolCfg.ConnConfig.TLSConfig)
		assert.False(t, poolCfg.ConnConfig.TLSConfig.InsecureSkipVerify)
		assert.Equal(t, "db.example", poolCfg.ConnConfig.TLSConfig.ServerName)
		assert.Empty(t, poolCfg.ConnConfig.Fallbacks)
	})

	t.Run("sslmode prefer drops the plaintext fallback", func(t *testing.T) {
		cfg := testConfig("postgres://u:p@db.example:5432/app?sslmode=prefer")
		cfg.Database.TLSSkipVerify = false

		poolCfg, err := newPoolConfig(cfg, &logger, nil)
		require.NoError(t, err)
		require.NotNil(t, poolCfg.ConnConfig.TLSConfig)
		assert.Empty(t, poolCfg.ConnConfig.Fallbacks)
	})

	t.Run("keeps url tls settings when verification is wanted", func(t *testing.T) {
		cfg := testConfig("postgres://u:p@db.example:5432/app?sslmode=verify-full")
		cfg.Database.TLSSkipVerify = false

		poolCfg, err := newPoolConfig(cfg, &logger, nil)
		require.NoError(t, err)
		require.NotNil(t, poolCfg.ConnConfig.TLSConfig)
		assert.False(t, poolCfg.ConnConfig.TLSConfig.InsecureSkipVerify)
		assert.Equal(t, "db.example", poolCfg.ConnConfig.TLSConfig.ServerName)
	})

	t.Run("slow query tracer installed", func(t *testing.T) {
		cfg := testConfig("postgres://u:p@db.example:5432/app")

		poolCfg, err := newPoolConfig(cfg, &logger, nil)
		require.NoError(t, err)
		assert.IsType(t, &slowQueryTracer{}, poolCfg.ConnConfig.Tracer)
	})

	t.Run("local env chains sql logging", func(t *testing.T) {
		cfg := testConfig("postgres://u:p@db.example:5432/app")
		cfg.Primary.Env = "local"

		poolCfg, err := newPoolConfig(cfg, &logger, nil)
		require.NoError(t, err)
		mt, ok := poolCfg.ConnConfig.Tracer.(*multiTracer)
		require.True(t, ok)
		require.Len(t, mt.tracers, 2)
		assert.IsType(t, &tracelog.TraceLog{}, mt.tracers[1])
	})

	t.Run("no tracer without threshold", func(t *testing.T) {
		cfg := testConfig("postgres://u:p@db.example:5432/app")
		cfg.Observability.Logging.SlowQueryThreshold = 0

		poolCfg, err := newPoolConfig(cfg, &logger, nil)
		require.NoError(t, err)
		assert.Nil(t, poolCfg.ConnConfig.Tracer)
	})

	t.Run("invalid url", func(t *testing.T) {
		cfg := testConfig("postgres://u:p@db.example:notaport/app")

		_, err := newPoolConfig(cfg, &logger, nil)
		require.Error(t, err)
	})
}

func TestSlowQueryTracer(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tracer := &slowQueryTracer{
		threshold: 100 * time.Millisecond,
		log:       &logger,
		now:       func() time.Time { return clock },
	}

	ctx := tracer.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT 1"})
	clock = clock.Add(50 * time.Millisecond)
	tracer.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{CommandTag: pgconn.NewCommandTag("SELECT 1")})
	assert.Empty(t, buf.String())

	ctx = tracer.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT 2"})
	clock = clock.Add(250 * time.Millisecond)
	tracer.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{CommandTag: pgconn.NewCommandTag("SELECT 1")})
	assert.Contains(t, buf.String(), "slow query")
	assert.Contains(t, buf.String(), "SELECT 2")
}

type recordingTracer struct {
	name  string
	calls *[]string
}

func (r recordingTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, _ pgx.TraceQueryStartData) context.Context {
	*r.calls = append(*r.calls, r.name+":start")
	return ctx
}

func (r recordingTracer) TraceQueryEnd(_ context.Context, _ *pgx.Conn, _ pgx.TraceQueryEndData) {
	*r.calls = append(*r.calls, r.name+":end")
}

func TestMultiTracer(t *testing.T) {
	var calls []string
	mt := &multiTracer{tracers: []pgx.QueryTracer{
		recordingTracer{name: "a", calls: &calls},
		recordingTracer{name: "b", calls: &calls},
	}}

	ctx := mt.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{})
	mt.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{})

	assert.Equal(t, []string{"a:start", "b:start", "a:end", "b:end"}, calls)
}
