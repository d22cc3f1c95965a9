package config

type yamlConfig struct {
	Toolbelt struct {
		History struct {
			Enabled *bool `yaml:"enabled"`
			Masking *bool `yaml:"masking"`
		} `yaml:"history"`

		Fetch struct {
			TimeoutMS int `yaml:"timeout_ms"`
		} `yaml:"fetch"`

		Defaults struct {
			CSVDelimiter string `yaml:"csv_delimiter"`
			JSONIndent   int    `yaml:"json_indent"`
			BarcodeSize  int    `yaml:"barcode_size"`
		} `yaml:"defaults"`

		Paths struct {
			HistoryDir string `yaml:"history_dir"`
			ExportsDir string `yaml:"exports_dir"`
		} `yaml:"paths"`
	} `yaml:"toolbelt"`
}
