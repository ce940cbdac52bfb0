package driven

// ConfigStore provides access to application configuration.
// Implementations handle persistence (e.g., TOML files) and type
// conversion.
type ConfigStore interface {
	// GetString retrieves a string configuration value.
	// Returns empty string if the key doesn't exist or isn't a string.
	GetString(key string) string

	// GetStringSlice retrieves a string slice configuration value.
	// Returns nil if the key doesn't exist or isn't a slice.
	GetStringSlice(key string) []string

	// GetBool retrieves a boolean configuration value.
	// Returns false if the key doesn't exist or isn't a boolean.
	GetBool(key string) bool

	// Set stores a configuration value. The value is persisted immediately.
	Set(key string, value any) error

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}
