package config

const (
	defaultLogDir              = "~/.local/share/castfetch/logs"
	defaultLogFormat           = "console"
	defaultLogLevel            = "info"
	defaultFetchMode           = "http"
	defaultFetchBinary         = "curl"
	defaultFetchTimeoutSeconds = 300
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Fetch: Fetch{
			Mode:           defaultFetchMode,
			Binary:         defaultFetchBinary,
			TimeoutSeconds: defaultFetchTimeoutSeconds,
		},
		History: History{
			Enabled: true,
		},
	}
}
