package models

// Config is the singleton payout configuration shown to users and edited by
// the admin. All fields are free-form strings, as the frontend renders them.
type Config struct {
	WalletAddress string `json:"walletAddress"`
	StandardFee   string `json:"standardFee"`
	PriorityFee   string `json:"priorityFee"`
	Balance       string `json:"balance"`
}

// DefaultConfig is what a never-written config collection reads as.
func DefaultConfig() Config {
	return Config{
		WalletAddress: "demoWallet123",
		StandardFee:   "5000",
		PriorityFee:   "12000",
		Balance:       "100000",
	}
}

// ConfigPatch is a partial update: only non-empty fields overwrite the
// stored value.
type ConfigPatch struct {
	WalletAddress string `json:"walletAddress"`
	StandardFee   string `json:"standardFee"`
	PriorityFee   string `json:"priorityFee"`
	Balance       string `json:"balance"`
}

// Apply overwrites the fields present in the patch and returns the result.
func (p ConfigPatch) Apply(cfg Config) Config {
	if p.WalletAddress != "" {
		cfg.WalletAddress = p.WalletAddress
	}
	if p.Balance != "" {
		cfg.Balance = p.Balance
	}
	if p.StandardFee != "" {
		cfg.StandardFee = p.StandardFee
	}
	if p.PriorityFee != "" {
		cfg.PriorityFee = p.PriorityFee
	}
	return cfg
}

// IsZero reports whether the patch changes nothing.
func (p ConfigPatch) IsZero() bool {
	return p == ConfigPatch{}
}
