package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func initializeAlpacaHandler() (AlpacaRepository, error) {
	secretsFile := "../../secrets-dev.json"
	f, err := os.ReadFile(secretsFile)
	if err != nil {
		return nil, fmt.Errorf("could not open secrets-dev.json: %w", err)
	}

	type secrets struct {
		Alpaca struct {
			ApiKey    string `json:"apiKey"`
			ApiSecret string `json:"apiSecret"`
		} `json:"alpaca"`
	}

	s := secrets{}
	err = json.Unmarshal(f, &s)
	if err != nil {
		return nil, err
	}

	return NewAlpacaRepository(s.Alpaca.ApiKey, s.Alpaca.ApiSecret, ""), nil
}

func Test_alpacaRepositoryHandler_GetDailyBars(t *testing.T) {
	// hits the live api
	if true {
		t.Skip()
	}

	handler, err := initializeAlpacaHandler()
	require.NoError(t, err)

	end := time.Now().UTC()
	bars, err := handler.GetDailyBars(context.Background(), "AAPL", end.AddDate(0, 0, -30), end)
	require.NoError(t, err)
	require.NotEmpty(t, bars)

	for i := 1; i < len(bars); i++ {
		require.True(t, bars[i-1].Date.Before(bars[i].Date))
	}
}
