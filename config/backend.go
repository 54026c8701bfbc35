package config

import "strings"

const (
	defaultBackendDevURL  = "http://127.0.0.1:5000"
	defaultBackendProdURL = "https://spendwise-backend-7ul1.onrender.com"
)

// BackendConfig describes where the SpendWise REST API lives.
//
// When BaseURL is empty the gateway picks DevURL for pages served from localhost
// or 127.0.0.1 and ProdURL for every other host.
type BackendConfig struct {
	BaseURL string `env:"BACKEND_BASE_URL"`
	DevURL  string `env:"BACKEND_DEV_URL"  envDefault:"http://127.0.0.1:5000"`
	ProdURL string `env:"BACKEND_PROD_URL" envDefault:"https://spendwise-backend-7ul1.onrender.com"`
}

// Sanitize trims trailing slashes and restores defaults for blank URLs.
func (b *BackendConfig) Sanitize() {
	b.BaseURL = strings.TrimRight(strings.TrimSpace(b.BaseURL), "/")
	b.DevURL = strings.TrimRight(strings.TrimSpace(b.DevURL), "/")
	b.ProdURL = strings.TrimRight(strings.TrimSpace(b.ProdURL), "/")
	if b.DevURL == "" {
		b.DevURL = defaultBackendDevURL
	}
	if b.ProdURL == "" {
		b.ProdURL = defaultBackendProdURL
	}
}
