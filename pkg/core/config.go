package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Supported LLM provider names.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Supported history store provider names.
const (
	HistorySQLite   = "sqlite"
	HistoryPostgres = "postgres"
	HistoryMySQL    = "mysql"
	HistoryNone     = "none"
)

// Config contains the complete configuration for a Sahayak client.
//
// It includes settings for:
//   - LLM provider (the upstream reasoning model)
//   - Prompt templates (directory of template files, optional)
//   - Query history persistence (optional)
//
// Example:
//
//	config := &core.Config{
//	    LLM: core.LLMConfig{
//	        Provider: "gemini",
//	        APIKey:   "AIza...",
//	        Model:    "gemini-2.0-flash",
//	    },
//	    Prompts: core.PromptConfig{
//	        Dir: "./prompts",
//	    },
//	}
type Config struct {
	// LLM contains the upstream model configuration.
	LLM LLMConfig `json:"llm"`

	// Prompts contains prompt template configuration.
	Prompts PromptConfig `json:"prompts"`

	// History contains query history configuration (optional).
	History *HistoryConfig `json:"history,omitempty"`
}

// LLMConfig contains configuration for the upstream model.
//
// Supported providers: gemini (default), openai
type LLMConfig struct {
	// Provider is the LLM provider name (gemini, openai).
	Provider string `json:"provider"`

	// APIKey is the API key for the provider. Required; a missing key fails
	// validation at startup before any network call is attempted.
	APIKey string `json:"api_key"`

	// Model is the model name to use (e.g., "gemini-2.0-flash").
	Model string `json:"model"`

	// BaseURL is the base URL for OpenAI-compatible endpoints (optional).
	BaseURL string `json:"base_url,omitempty"`

	// Temperature is the fixed sampling temperature for every request.
	// Default: 0.2.
	Temperature float64 `json:"temperature,omitempty"`

	// TimeoutSeconds bounds each upstream call. Default: 60.
	TimeoutSeconds int `json:"timeout_seconds,omitempty"`
}

// PromptConfig contains configuration for the prompt templates.
type PromptConfig struct {
	// Dir is the directory holding base_prompt.txt and safety_rules.txt.
	// When empty, the compiled-in default templates are used.
	Dir string `json:"dir,omitempty"`
}

// HistoryConfig contains configuration for the query history store.
//
// Supported providers: sqlite, postgres, mysql, none
type HistoryConfig struct {
	// Provider is the history store provider name.
	Provider string `json:"provider"`

	// Config contains provider-specific configuration.
	// For SQLite: db_path, table_name
	// For PostgreSQL: host, port, user, password, db_name, table_name, ssl_mode
	// For MySQL: host, port, user, password, db_name, table_name
	Config map[string]interface{} `json:"config"`
}

// LoadConfigFromEnv loads configuration from environment variables.
//
// The function:
//  1. Searches for .env or .env.example files (up to 5 directory levels up)
//  2. Loads environment variables from the found file
//  3. Parses environment variables into a Config struct
//
// Supported environment variables:
//   - LLM_PROVIDER (gemini, openai; default gemini)
//   - GEMINI_API_KEY (required for the gemini provider)
//   - OPENAI_API_KEY, OPENAI_BASE_URL (openai provider)
//   - LLM_MODEL, LLM_TEMPERATURE, LLM_TIMEOUT_SECONDS
//   - PROMPTS_DIR (directory with base_prompt.txt and safety_rules.txt)
//   - HISTORY_PROVIDER (sqlite, postgres, mysql, none; default sqlite)
//   - SQLITE_PATH, SQLITE_TABLE
//   - POSTGRES_HOST, POSTGRES_PORT, POSTGRES_USER, POSTGRES_PASSWORD, etc.
//   - MYSQL_HOST, MYSQL_PORT, MYSQL_USER, MYSQL_PASSWORD, etc.
//
// Returns a Config instance, or an error if loading fails. Note that a
// missing API key is reported by Validate (and NewClient), not here, so
// callers get the full picture of the loaded configuration first.
//
// Example:
//
//	config, err := core.LoadConfigFromEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
func LoadConfigFromEnv() (*Config, error) {
	// Use FindEnvFile to locate .env file (supports upward search)
	envPath, found := FindEnvFile()
	if found {
		_ = godotenv.Load(envPath)
	} else {
		_ = godotenv.Load()
	}

	llmProvider := getEnvOrDefault("LLM_PROVIDER", ProviderGemini)

	var apiKey, baseURL, defaultModel string
	switch llmProvider {
	case ProviderOpenAI:
		apiKey = os.Getenv("OPENAI_API_KEY")
		baseURL = os.Getenv("OPENAI_BASE_URL")
		defaultModel = "gpt-4o-mini"
	default:
		apiKey = os.Getenv("GEMINI_API_KEY")
		defaultModel = "gemini-2.0-flash"
	}

	temperature := 0.2
	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			temperature = parsed
		}
	}

	timeout, _ := strconv.Atoi(getEnvOrDefault("LLM_TIMEOUT_SECONDS", "60"))

	config := &Config{
		LLM: LLMConfig{
			Provider:       llmProvider,
			APIKey:         apiKey,
			Model:          getEnvOrDefault("LLM_MODEL", defaultModel),
			BaseURL:        baseURL,
			Temperature:    temperature,
			TimeoutSeconds: timeout,
		},
		Prompts: PromptConfig{
			Dir: os.Getenv("PROMPTS_DIR"),
		},
	}

	historyProvider := getEnvOrDefault("HISTORY_PROVIDER", HistorySQLite)
	switch historyProvider {
	case HistoryNone:
		// History disabled.
	case HistoryPostgres:
		port, _ := strconv.Atoi(getEnvOrDefault("POSTGRES_PORT", "5432"))
		config.History = &HistoryConfig{
			Provider: HistoryPostgres,
			Config: map[string]interface{}{
				"host":       getEnvOrDefault("POSTGRES_HOST", "localhost"),
				"port":       port,
				"user":       getEnvOrDefault("POSTGRES_USER", "postgres"),
				"password":   os.Getenv("POSTGRES_PASSWORD"),
				"db_name":    getEnvOrDefault("POSTGRES_DATABASE", "sahayak"),
				"table_name": getEnvOrDefault("POSTGRES_TABLE", "query_history"),
				"ssl_mode":   getEnvOrDefault("POSTGRES_SSLMODE", "disable"),
			},
		}
	case HistoryMySQL:
		port, _ := strconv.Atoi(getEnvOrDefault("MYSQL_PORT", "3306"))
		config.History = &HistoryConfig{
			Provider: HistoryMySQL,
			Config: map[string]interface{}{
				"host":       getEnvOrDefault("MYSQL_HOST", "localhost"),
				"port":       port,
				"user":       getEnvOrDefault("MYSQL_USER", "root"),
				"password":   os.Getenv("MYSQL_PASSWORD"),
				"db_name":    getEnvOrDefault("MYSQL_DATABASE", "sahayak"),
				"table_name": getEnvOrDefault("MYSQL_TABLE", "query_history"),
			},
		}
	default:
		config.History = &HistoryConfig{
			Provider: HistorySQLite,
			Config: map[string]interface{}{
				"db_path":    getEnvOrDefault("SQLITE_PATH", "./sahayak.db"),
				"table_name": getEnvOrDefault("SQLITE_TABLE", "query_history"),
			},
		}
	}

	return config, nil
}

// LoadConfigFromEnvFile loads configuration from a specific .env file.
//
// Parameters:
//   - envPath: Path to the .env file
//
// Returns a Config instance, or an error if loading fails.
func LoadConfigFromEnvFile(envPath string) (*Config, error) {
	if err := godotenv.Load(envPath); err != nil {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}
	return LoadConfigFromEnv()
}

// Validate validates the configuration.
//
// Checks that all required fields are set:
//   - LLM provider must be a supported provider
//   - The API key must be present (ErrMissingAPIKey otherwise)
//
// Validation happens before any network I/O, so a missing key halts startup
// with a clear error rather than failing the first upstream call.
//
// Returns an error if validation fails, nil otherwise.
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case ProviderGemini, ProviderOpenAI:
	case "":
		return NewAssistantError("Validate", ErrInvalidConfig)
	default:
		return NewAssistantError("Validate",
			fmt.Errorf("%w: unknown llm provider %q", ErrInvalidConfig, c.LLM.Provider))
	}

	if c.LLM.APIKey == "" {
		return NewAssistantError("Validate", ErrMissingAPIKey)
	}

	if c.History != nil {
		switch c.History.Provider {
		case HistorySQLite, HistoryPostgres, HistoryMySQL, HistoryNone:
		default:
			return NewAssistantError("Validate",
				fmt.Errorf("%w: unknown history provider %q", ErrInvalidConfig, c.History.Provider))
		}
	}

	return nil
}

// getEnvOrDefault gets an environment variable or returns the default value.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// FindEnvFile searches for .env or .env.example files.
//
// The search:
//  1. Checks the current directory
//  2. Searches up to 5 directory levels up
//  3. Returns the first .env or .env.example file found
//
// Returns:
//   - path: Path to the found file (empty if not found)
//   - found: True if a file was found, false otherwise
func FindEnvFile() (string, bool) {
	if _, err := os.Stat(".env"); err == nil {
		return ".env", true
	}
	if _, err := os.Stat(".env.example"); err == nil {
		return ".env.example", true
	}

	dir, _ := os.Getwd()
	for i := 0; i < 5; i++ {
		envPath := filepath.Join(dir, ".env")
		envExamplePath := filepath.Join(dir, ".env.example")

		if _, err := os.Stat(envPath); err == nil {
			return envPath, true
		}
		if _, err := os.Stat(envExamplePath); err == nil {
			return envExamplePath, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", false
}
