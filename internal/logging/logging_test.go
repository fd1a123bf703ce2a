package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ConsoleOnly(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := New(Options{Level: slog.LevelInfo, Console: &buf})
	require.NoError(t, err)
	defer closer.Close()

	logger.Debug("hidden")
	logger.Info("contracted index", slog.String("label", "b"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=\"contracted index\" label=b")
	assert.NotContains(t, out, "time=")
}

func TestNew_FileGetsDebug(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "tnqecc.log")

	logger, closer, err := New(Options{Level: slog.LevelWarn, Console: &buf, File: path, MaxSizeMB: 5})
	require.NoError(t, err)

	logger.With(slog.String("cmd", "fuse")).Debug("fused", slog.Int("tensors", 2))
	logger.Warn("careful")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=fused cmd=fuse tensors=2")
	assert.Contains(t, string(data), "msg=careful")
	assert.Contains(t, string(data), "time=")

	assert.NotContains(t, buf.String(), "fused")
	assert.Contains(t, buf.String(), "careful")
}

func TestNewLumberjack_Defaults(t *testing.T) {
	l := newLumberjack(Options{File: "x.log"})
	assert.Equal(t, 1, l.MaxSize)
	assert.Equal(t, 2, l.MaxBackups)
	assert.Equal(t, 30, l.MaxAge)

	l = newLumberjack(Options{File: "x.log", MaxSizeMB: 10, MaxBackups: 4, MaxAgeDays: 7})
	assert.Equal(t, 10, l.MaxSize)
	assert.Equal(t, 4, l.MaxBackups)
	assert.Equal(t, 7, l.MaxAge)
}

func TestMultiHandler_Enabled(t *testing.T) {
	var a, b bytes.Buffer
	h := &multiHandler{handlers: []slog.Handler{
		slog.NewTextHandler(&a, &slog.HandlerOptions{Level: slog.LevelError}),
		slog.NewTextHandler(&b, &slog.HandlerOptions{Level: slog.LevelInfo}),
	}}
	logger := slog.New(h.WithGroup("net"))

	logger.Info("hello", slog.Int("n", 1))
	assert.Empty(t, a.String())
	assert.Contains(t, b.String(), "net.n=1")
}
