package config

// Config holds runtime settings for the userdesk CLI.
//
// Fields:
//   - APIBaseURL: base URL of the user-management API, including the /api prefix.
//   - DatabasePath: SQLite file holding the persisted credential pair.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIBaseURL   string
	DatabasePath string
	LogLevel     string
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000/api"
	c.DatabasePath = "data/userdesk.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
