package bootstrap

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MixCalc_Go/internal/config"
	"github.com/osse101/MixCalc_Go/internal/domain"
	"github.com/osse101/MixCalc_Go/internal/mixing"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:            8080,
		LogLevel:        "debug",
		LogFormat:       "json",
		Environment:     "test",
		ServiceName:     "mixcalc",
		Version:         "test",
		MixCacheSize:    8,
		MixCacheTTL:     time.Minute,
		MaxRequestBytes: 1 << 10,
		ShutdownTimeout: time.Second,
	}
}

func TestSetupLogger(t *testing.T) {
	var buf bytes.Buffer
	log := SetupLogger(testConfig(), &buf)
	require.NotNil(t, log)

	out := buf.String()
	assert.Contains(t, out, LogMsgLoggingInitialized)
	assert.Contains(t, out, LogMsgStartingMixCalc)
	assert.Contains(t, out, LogMsgConfigurationLoaded)
	assert.Contains(t, out, `"service":"mixcalc"`)
}

func TestLogConfigWarnings(t *testing.T) {
	var buf bytes.Buffer
	SetupLogger(testConfig(), &buf)
	buf.Reset()

	LogConfigWarnings([]string{"first", "second"})

	out := buf.String()
	assert.Contains(t, out, "first")
	assert.Contains(t, out, "second")
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte(LogMsgConfigWarning)))
}

func TestInitializeServices(t *testing.T) {
	cfg := testConfig()

	svc, err := InitializeServices(cfg)
	require.NoError(t, err)
	require.NotNil(t, svc.Mixing)
	require.NotNil(t, svc.Names)
	require.NotNil(t, svc.Recipes)

	p, err := svc.Names.ResolveProduct("OG Kush")
	require.NoError(t, err)
	assert.Equal(t, domain.OGKush, p)
	assert.Equal(t, 0, svc.Recipes.Len())
}

func TestInitializeServices_BadAliases(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aliases.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	cfg := testConfig()
	cfg.AliasesPath = path

	_, err := InitializeServices(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedInitResolver)
}

type fakeServer struct {
	stopped bool
	err     error
}

func (f *fakeServer) Stop(context.Context) error {
	f.stopped = true
	return f.err
}

func TestGracefulShutdown(t *testing.T) {
	tests := []struct {
		name    string
		stopErr error
		wantLog string
	}{
		{"clean", nil, LogMsgServerStopped},
		{"forced", errors.New("deadline exceeded"), LogMsgServerForcedShutdown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			SetupLogger(testConfig(), &buf)

			srv := &fakeServer{err: tt.stopErr}
			GracefulShutdown(context.Background(), ShutdownComponents{
				Server: srv,
				Mixing: mixing.NewService(4, time.Minute),
			})

			assert.True(t, srv.stopped)
			assert.Contains(t, buf.String(), tt.wantLog)
			assert.Contains(t, buf.String(), LogMsgServerStopped)
		})
	}
}

func TestGracefulShutdown_NilComponents(t *testing.T) {
	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{})
	})
}
