package config

// Configuration is the exportable type of the node configuration
type Configuration struct {
	Logger struct {
		Format string `default:"default"`
		Debug  bool   `default:"false"`
	}
	Network struct {
		Name string `default:"mainnet" env:"SPV_NETWORK"`
	}
	Storage struct {
		HeaderFile string `default:"/var/lib/spvkit/headers.bin" env:"HEADER_FILE"`
		HeaderDB   string `default:"" env:"HEADER_DB"`
	}
}
