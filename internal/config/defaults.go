package config

import "time"

// Environment names recognised by [App.Environment].
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

const defaultDotEnvFile = ".env"

// defaults returns the lowest-priority configuration layer.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      "volunteer-hub",
			TokenDuration:    7 * 24 * time.Hour,
			PasswordHashCost: 10,
			Environment:      EnvProduction,
			Version:          "dev",
			LogLevel:         "debug",
		},
		Server: Server{
			HTTPAddress:    "localhost:5000",
			RequestTimeout: 30 * time.Second,
			AllowedOrigins: []string{"http://localhost:5173"},
		},
		Storage: Storage{
			Images: Images{
				Bucket: "event-images",
			},
		},
	}
}
