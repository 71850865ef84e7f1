package config

// Config lever node config
type Config struct {
	API    API     `json:"api"`
	Client Client  `json:"client"`
	Risk   Risk    `json:"risk"`
	Tokens []Token `json:"tokens"`
}

// API api server config
type API struct {
	Port int `json:"port"`
}

// Client api client config, used by the cli subcommands
type Client struct {
	Endpoint string `json:"endpoint"`
}

// Risk risk parameters
type Risk struct {
	CloseFactorBps      uint64 `json:"close_factor_bps"`
	LiquidationBonusBps uint64 `json:"liquidation_bonus_bps"`
	PriceTimeoutSeconds int64  `json:"price_timeout_seconds"`
}

// Token genesis token listing. Price is the opening usd price in token units
// and seeds a manual feed at boot.
type Token struct {
	AssetID  string `json:"asset_id"`
	Symbol   string `json:"symbol"`
	LTV      uint64 `json:"ltv"`
	Decimals int32  `json:"decimals"`
	Price    string `json:"price"`
}

func defaultConfig(cfg *Config) {
	if cfg.API.Port == 0 {
		cfg.API.Port = 9000
	}

	if cfg.Client.Endpoint == "" {
		cfg.Client.Endpoint = "http://localhost:9000"
	}

	if cfg.Risk.CloseFactorBps == 0 {
		cfg.Risk.CloseFactorBps = 5000
	}

	if cfg.Risk.LiquidationBonusBps == 0 {
		cfg.Risk.LiquidationBonusBps = 500
	}

	if cfg.Risk.PriceTimeoutSeconds == 0 {
		cfg.Risk.PriceTimeoutSeconds = 3600
	}
}
