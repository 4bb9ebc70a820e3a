package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, "0.0.0.0", cfg.HTTPServer.Address)
	require.Equal(t, 9000, cfg.HTTPServer.Port)
	require.Equal(t, 5*time.Second, cfg.HTTPServer.RequestTimeout)
	require.False(t, cfg.Telemetry.Enabled)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "service.yaml")
	content := []byte("env: prod\nhttp_server:\n  port: 9100\n  request_timeout: 2s\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	t.Setenv("USERS_HTTP_SERVER_ADDRESS", "127.0.0.1")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	require.Equal(t, "prod", cfg.Env)
	require.Equal(t, 9100, cfg.HTTPServer.Port)
	require.Equal(t, 2*time.Second, cfg.HTTPServer.RequestTimeout)
	require.Equal(t, "127.0.0.1", cfg.HTTPServer.Address)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestBindFlags_PortOverridesDefault(t *testing.T) {
	chdir(t, t.TempDir())

	v := viper.New()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("port", 9000, "")
	require.NoError(t, fs.Parse([]string{"--port", "9500"}))
	require.NoError(t, BindFlags(v, fs))

	cfg, err := Load(v, "")
	require.NoError(t, err)
	require.Equal(t, 9500, cfg.HTTPServer.Port)
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
