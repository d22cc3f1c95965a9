package domain

// Config represents the minimal Toolbelt configuration loaded from toolbelt.yaml.
type Config struct {
	History  HistoryConfig
	Fetch    FetchConfig
	Defaults DefaultsConfig
	Paths    PathsConfig
}

type HistoryConfig struct {
	Enabled bool
	// Masking replaces stored input previews with a fixed placeholder so
	// sensitive payloads never land on disk.
	Masking bool
}

type FetchConfig struct {
	// TimeoutMS bounds the TLS handshake used by the certificate lookup.
	TimeoutMS int
}

type DefaultsConfig struct {
	CSVDelimiter string
	JSONIndent   int
	BarcodeSize  int
}

type PathsConfig struct {
	HistoryDir string
	ExportsDir string
}

// DefaultConfig provides sane defaults if toolbelt.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		History: HistoryConfig{Enabled: true, Masking: true},
		Fetch:   FetchConfig{TimeoutMS: 10_000},
		Defaults: DefaultsConfig{
			CSVDelimiter: ",",
			JSONIndent:   2,
			BarcodeSize:  256,
		},
		Paths: PathsConfig{
			HistoryDir: "history",
			ExportsDir: "exports",
		},
	}
}
