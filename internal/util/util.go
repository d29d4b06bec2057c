package util

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
)

func Pprint(i interface{}) {
	bytes, err := json.MarshalIndent(i, "", "    ")
	if err != nil {
		panic(err)
	}
	fmt.Println(string(bytes))
}

// Secrets holds the optional provider keys. Missing keys are not errors:
// without the FMP key sector/industry coverage degrades, without the GPT
// key the analyze endpoint is disabled. Brokerage credentials are never
// part of server config - they arrive with the login request.
type Secrets struct {
	FmpApiKey         string `json:"fmp"`
	ChatGPTApiKey     string `json:"gpt"`
	SessionSigningKey string `json:"sessionSigningKey"`
	BrokerageEndpoint string `json:"brokerageEndpoint"`
}

func LoadSecrets() (*Secrets, error) {
	secretsFile := "secrets.json"
	if os.Getenv("PORTFOLIO_ENV") == "dev" {
		secretsFile = "secrets-dev.json"
	} else if os.Getenv("PORTFOLIO_ENV") == "test" {
		secretsFile = "secrets-test.json"
	}

	secrets := Secrets{}
	f, err := os.ReadFile(secretsFile)
	if err == nil {
		if err := json.Unmarshal(f, &secrets); err != nil {
			return nil, fmt.Errorf("could not parse %s: %w", secretsFile, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("could not open %s: %w", secretsFile, err)
	}

	if secrets.FmpApiKey == "" {
		secrets.FmpApiKey = os.Getenv("FMP_API_KEY")
	}
	if secrets.ChatGPTApiKey == "" {
		secrets.ChatGPTApiKey = os.Getenv("CHATGPT_API_KEY")
	}
	if secrets.SessionSigningKey == "" {
		secrets.SessionSigningKey = os.Getenv("SESSION_SIGNING_KEY")
	}
	if secrets.BrokerageEndpoint == "" {
		secrets.BrokerageEndpoint = os.Getenv("BROKERAGE_ENDPOINT")
	}

	// sessions only live as long as the process, so an ephemeral signing
	// key is fine when none is configured
	if secrets.SessionSigningKey == "" {
		secrets.SessionSigningKey = uuid.NewString()
	}

	return &secrets, nil
}
