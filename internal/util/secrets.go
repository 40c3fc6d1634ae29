package util

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

const (
	envVar         = "STOCKPULSE_ENV"
	secretsPathVar = "STOCKPULSE_SECRETS"
)

type Secrets struct {
	AlphaVantage AlphaVantageSecrets `json:"alphaVantage" yaml:"alphaVantage"`
	NewsApi      NewsApiSecrets      `json:"newsApi" yaml:"newsApi"`
	Alpaca       AlpacaSecrets       `json:"alpaca" yaml:"alpaca"`
	MarketData   MarketDataSecrets   `json:"marketData" yaml:"marketData"`
	Inference    InferenceSecrets    `json:"inference" yaml:"inference"`
	ChatGPT      GptSecrets          `json:"gpt" yaml:"gpt"`
	Gemini       GeminiSecrets       `json:"gemini" yaml:"gemini"`
	Email        EmailSecrets        `json:"email" yaml:"email"`
	SES          SesSecrets          `json:"ses" yaml:"ses"`
	SMTP         SmtpSecrets         `json:"smtp" yaml:"smtp"`
	Db           DbSecrets           `json:"db" yaml:"db"`
	Digest       DigestSecrets       `json:"digest" yaml:"digest"`
}

type AlphaVantageSecrets struct {
	ApiKey  string `json:"apiKey" yaml:"apiKey"`
	BaseURL string `json:"baseUrl" yaml:"baseUrl" default:"https://www.alphavantage.co"`
}

type NewsApiSecrets struct {
	ApiKey  string `json:"apiKey" yaml:"apiKey"`
	BaseURL string `json:"baseUrl" yaml:"baseUrl" default:"https://newsapi.org"`
}

type AlpacaSecrets struct {
	ApiKey    string `json:"apiKey" yaml:"apiKey"`
	ApiSecret string `json:"apiSecret" yaml:"apiSecret"`
	Endpoint  string `json:"endpoint" yaml:"endpoint"`
}

type MarketDataSecrets struct {
	// alphaVantage, alpaca or yahoo
	Provider string `json:"provider" yaml:"provider" default:"alphaVantage"`
}

type InferenceSecrets struct {
	// gpt or gemini
	Provider string `json:"provider" yaml:"provider" default:"gpt"`
}

type GptSecrets struct {
	ApiKey string `json:"apiKey" yaml:"apiKey"`
	Model  string `json:"model" yaml:"model" default:"gpt-4"`
}

type GeminiSecrets struct {
	ApiKey string `json:"apiKey" yaml:"apiKey"`
	Model  string `json:"model" yaml:"model" default:"gemini-2.5-flash"`
}

type EmailSecrets struct {
	// ses, smtp or log
	Provider string `json:"provider" yaml:"provider" default:"ses"`
}

type SesSecrets struct {
	Region    string `json:"region" yaml:"region" default:"us-east-1"`
	FromEmail string `json:"fromEmail" yaml:"fromEmail" default:"noreply@stockpulse.ai"`
}

type SmtpSecrets struct {
	Host      string `json:"host" yaml:"host"`
	Port      int    `json:"port" yaml:"port" default:"587"`
	Username  string `json:"username" yaml:"username"`
	Password  string `json:"password" yaml:"password"`
	FromEmail string `json:"fromEmail" yaml:"fromEmail"`
}

type DbSecrets struct {
	Host      string `json:"host" yaml:"host"`
	User      string `json:"user" yaml:"user"`
	Port      string `json:"port" yaml:"port" default:"5432"`
	Password  string `json:"password" yaml:"password"`
	Database  string `json:"database" yaml:"database"`
	EnableSsl bool   `json:"enableSsl" yaml:"enableSsl"`
}

func (t DbSecrets) ToConnectionStr() string {
	x := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s",
		t.Host, t.Port, t.User, t.Password, t.Database)
	if !t.EnableSsl {
		x += " sslmode=disable"
	}
	return x
}

type DigestSecrets struct {
	Workers                 int    `json:"workers" yaml:"workers" default:"10"`
	MaxSymbolsPerSubscriber int    `json:"maxSymbolsPerSubscriber" yaml:"maxSymbolsPerSubscriber" default:"5"`
	CallTimeoutSeconds      int    `json:"callTimeoutSeconds" yaml:"callTimeoutSeconds" default:"10"`
	ApiBaseURL              string `json:"apiBaseUrl" yaml:"apiBaseUrl" default:"https://api.stockpulse.ai"`
}

func (d DigestSecrets) CallTimeout() time.Duration {
	return time.Duration(d.CallTimeoutSeconds) * time.Second
}

func secretsFile() string {
	if p := os.Getenv(secretsPathVar); p != "" {
		return p
	}
	switch strings.ToLower(os.Getenv(envVar)) {
	case "dev":
		return "secrets-dev.json"
	case "test":
		return "secrets-test.json"
	}
	return "/go/src/app/secrets.json"
}

func LoadSecrets() (*Secrets, error) {
	return LoadSecretsFromFile(secretsFile())
}

// LoadSecretsFromFile decodes YAML or JSON depending on the extension and
// fills anything left unset from the default tags.
func LoadSecretsFromFile(path string) (*Secrets, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}

	secrets := Secrets{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(f, &secrets)
	default:
		err = json.Unmarshal(f, &secrets)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if err := defaults.Set(&secrets); err != nil {
		return nil, fmt.Errorf("failed to apply defaults: %w", err)
	}

	return &secrets, nil
}
