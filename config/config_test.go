package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           "8082",
			AppEnv:         "production",
			BaseURL:        "https://kootaah.org",
			AllowedOrigins: []string{"https://kootaah.org"},
		},
		Greeting: GreetingConfig{
			EndpointURL:    "https://generator.example.com/v1/messages",
			TimeoutSeconds: 30,
		},
		Submission: SubmissionConfig{
			UploadDelayMillis: 1500,
			MaxFileSizeMB:     10,
		},
	}
}

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"missing port", func(c *Config) { c.Server.Port = "" }, "PORT is required"},
		{"missing base url", func(c *Config) { c.Server.BaseURL = "" }, "BASE_URL is required"},
		{"missing origins", func(c *Config) { c.Server.AllowedOrigins = nil }, "ALLOWED_CORS_ORIGINS is required"},
		{"missing greeting url", func(c *Config) { c.Greeting.EndpointURL = "" }, "GREETING_API_URL is required"},
		{"zero greeting timeout", func(c *Config) { c.Greeting.TimeoutSeconds = 0 }, "GREETING_TIMEOUT_SECONDS must be positive"},
		{"negative upload delay", func(c *Config) { c.Submission.UploadDelayMillis = -1 }, "SUBMISSION_UPLOAD_DELAY_MS must not be negative"},
		{"zero max file size", func(c *Config) { c.Submission.MaxFileSizeMB = 0 }, "SUBMISSION_MAX_FILE_SIZE_MB must be positive"},
		{"profiling without endpoint", func(c *Config) { c.Profiling.Enabled = true }, "O11Y_PROFILING_ENDPOINT is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestConfig_ZeroUploadDelayIsAllowed(t *testing.T) {
	cfg := validConfig()
	cfg.Submission.UploadDelayMillis = 0

	assert.NoError(t, cfg.Validate())
}

func TestConfig_IsDevelopment(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected bool
	}{
		{
			name: "development environment",
			config: &Config{
				Server: ServerConfig{AppEnv: "development"},
			},
			expected: true,
		},
		{
			name: "debug gin mode",
			config: &Config{
				Server: ServerConfig{GinMode: "debug"},
			},
			expected: true,
		},
		{
			name: "production environment",
			config: &Config{
				Server: ServerConfig{AppEnv: "production", GinMode: "release"},
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.IsDevelopment())
		})
	}
}

func TestConfig_IsProduction(t *testing.T) {
	assert.True(t, (&Config{Server: ServerConfig{AppEnv: "production"}}).IsProduction())
	assert.False(t, (&Config{Server: ServerConfig{AppEnv: "development"}}).IsProduction())
	assert.False(t, (&Config{Server: ServerConfig{AppEnv: "staging"}}).IsProduction())
}
