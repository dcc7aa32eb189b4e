package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Profile is the configuration to start the main server.
type Profile struct {
	// Mode can be "prod" or "dev"
	Mode string
	// Addr is the binding address for the server
	Addr string
	// Port is the binding port for the server
	Port int
	// Data is the data directory
	Data string
	// DSN points to where burnout stores its own data
	DSN string
	// Driver is the database driver (sqlite or postgres)
	Driver string
	// Version is the current version of the server
	Version string

	// DocPath is the fitness reference document used by the chatbot.
	// Plain text or markdown, paragraphs separated by blank lines.
	DocPath string
	// FoodDataPath is a food,calories CSV folded into the chatbot corpus.
	FoodDataPath string

	// AI configuration. The chatbot is disabled when no API key is set.
	AIEnabled             bool    // BURNOUT_AI_ENABLED
	AIBaseURL             string  // BURNOUT_AI_BASE_URL (default: https://api.openai.com/v1)
	AIAPIKey              string  // BURNOUT_AI_API_KEY
	AIEmbeddingModel      string  // BURNOUT_AI_EMBEDDING_MODEL (default: text-embedding-3-small)
	AIEmbeddingDimensions int     // BURNOUT_AI_EMBEDDING_DIMENSIONS (default: 1536)
	AIChatModel           string  // BURNOUT_AI_CHAT_MODEL (default: gpt-4o-mini)
	AIMaxTokens           int     // BURNOUT_AI_MAX_TOKENS (default: 1024)
	AITemperature         float32 // BURNOUT_AI_TEMPERATURE (default: 0.7)
}

func (p *Profile) IsDev() bool {
	return p.Mode != "prod"
}

// IsAIEnabled returns true if the chatbot is enabled and an API key is configured.
func (p *Profile) IsAIEnabled() bool {
	return p.AIEnabled && p.AIAPIKey != ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// FromEnv loads AI configuration from BURNOUT_* environment variables.
func (p *Profile) FromEnv() {
	p.AIEnabled = os.Getenv("BURNOUT_AI_ENABLED") == "true"
	p.AIBaseURL = getEnvOrDefault("BURNOUT_AI_BASE_URL", "https://api.openai.com/v1")
	p.AIAPIKey = os.Getenv("BURNOUT_AI_API_KEY")
	p.AIEmbeddingModel = getEnvOrDefault("BURNOUT_AI_EMBEDDING_MODEL", "text-embedding-3-small")
	p.AIChatModel = getEnvOrDefault("BURNOUT_AI_CHAT_MODEL", "gpt-4o-mini")
	if p.AIEmbeddingDimensions == 0 {
		p.AIEmbeddingDimensions = 1536
	}
	if p.AIMaxTokens == 0 {
		p.AIMaxTokens = 1024
	}
	if p.AITemperature == 0 {
		p.AITemperature = 0.7
	}
}

func checkDataDir(dataDir string) (string, error) {
	// Convert to absolute path if a relative path is supplied.
	if !filepath.IsAbs(dataDir) {
		relativeDir := filepath.Join(filepath.Dir(os.Args[0]), dataDir)
		absDir, err := filepath.Abs(relativeDir)
		if err != nil {
			return "", err
		}
		dataDir = absDir
	}

	// Trim trailing \ or / in case the user supplies one.
	dataDir = strings.TrimRight(dataDir, "\\/")
	if _, err := os.Stat(dataDir); err != nil {
		return "", errors.Wrapf(err, "unable to access data folder %s", dataDir)
	}
	return dataDir, nil
}

func (p *Profile) Validate() error {
	if p.Mode != "dev" && p.Mode != "prod" {
		p.Mode = "dev"
	}

	if p.Driver != "sqlite" && p.Driver != "postgres" {
		return errors.Errorf("unknown db driver %q: only 'sqlite' and 'postgres' are supported", p.Driver)
	}

	dataDir, err := checkDataDir(p.Data)
	if err != nil {
		return err
	}
	p.Data = dataDir

	if p.Driver == "sqlite" && p.DSN == "" {
		dbFile := fmt.Sprintf("burnout_%s.db", p.Mode)
		p.DSN = filepath.Join(dataDir, dbFile)
	}
	if p.Driver == "postgres" && p.DSN == "" {
		return errors.New("a postgres DSN is required when driver is 'postgres'")
	}

	if p.DocPath == "" {
		p.DocPath = filepath.Join(dataDir, "fitness_reference.md")
	}

	return nil
}
