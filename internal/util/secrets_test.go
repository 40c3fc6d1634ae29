package util

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadSecretsFromFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("json with defaults", func(t *testing.T) {
		path := filepath.Join(dir, "secrets.json")
		err := os.WriteFile(path, []byte(`{
			"alphaVantage": {"apiKey": "av"},
			"gpt": {"apiKey": "sk"},
			"digest": {"workers": 3}
		}`), 0o600)
		require.NoError(t, err)

		s, err := LoadSecretsFromFile(path)
		require.NoError(t, err)

		require.Equal(t, "av", s.AlphaVantage.ApiKey)
		require.Equal(t, "https://www.alphavantage.co", s.AlphaVantage.BaseURL)
		require.Equal(t, "gpt", s.Inference.Provider)
		require.Equal(t, "alphaVantage", s.MarketData.Provider)
		require.Equal(t, 3, s.Digest.Workers)
		require.Equal(t, 5, s.Digest.MaxSymbolsPerSubscriber)
		require.Equal(t, 10*time.Second, s.Digest.CallTimeout())
	})

	t.Run("yaml", func(t *testing.T) {
		path := filepath.Join(dir, "secrets.yaml")
		err := os.WriteFile(path, []byte(`
email:
  provider: smtp
smtp:
  host: smtp.example.com
db:
  host: localhost
  user: postgres
  password: postgres
  database: stockpulse
`), 0o600)
		require.NoError(t, err)

		s, err := LoadSecretsFromFile(path)
		require.NoError(t, err)

		require.Equal(t, "smtp", s.Email.Provider)
		require.Equal(t, 587, s.SMTP.Port)
		require.Equal(t,
			"host=localhost port=5432 user=postgres password=postgres dbname=stockpulse sslmode=disable",
			s.Db.ToConnectionStr(),
		)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSecretsFromFile(filepath.Join(dir, "nope.json"))
		require.Error(t, err)
	})
}

func TestSecretsFile(t *testing.T) {
	t.Setenv(secretsPathVar, "")
	t.Setenv(envVar, "dev")
	require.Equal(t, "secrets-dev.json", secretsFile())

	t.Setenv(envVar, "")
	require.Equal(t, "/go/src/app/secrets.json", secretsFile())

	t.Setenv(secretsPathVar, "/tmp/custom.yaml")
	require.Equal(t, "/tmp/custom.yaml", secretsFile())
}
