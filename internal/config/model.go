// internal/config/model.go
//
// Typed configuration model.
//
// Context
// -------
// These structs define the shape of the configuration tree that
// `internal/config/loader.go` builds from three overlay layers:
//
//   • optional `.env`                       – dotenv values,
//   • `conf/global.yaml`                    – primary static file,
//   • `SEO_`-prefixed environment overrides – highest precedence.
//
// Any value whose string begins with the prefix `vault:` is resolved
// through the configured secret resolver *before* unmarshalling, so the
// model never stores Vault URIs, only plain strings.
//
// Validation happens immediately after unmarshal; the app fails fast if
// required fields are missing.
//
// Notes
// -----
//   • Struct tags use `koanf:"…"`, not `yaml:"…"`.  Koanf ignores `yaml` tags
//     unless configured otherwise.
//   • Durations are written as Go duration strings ("5s", "10m").
//   • The `Paths` block is filled at runtime; YAML must not try to set it.
//   • Oxford commas, two spaces after periods.  No em-dash.

package config

import (
	"fmt"
	"strings"
	"time"
)

//
// HTTP section
//

// HTTP holds web-server tunables.
type HTTP struct {
	ListenAddr   string        `koanf:"listen_addr"   validate:"required,hostname_port"`
	ForceHTTPS   bool          `koanf:"force_https"`
	ReadTimeout  time.Duration `koanf:"read_timeout"  validate:"gte=0"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"gte=0"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"  validate:"gte=0"`

	// PublicURL is the origin prefixed to canonical and hreflang hrefs.
	// Empty keeps them root-relative.
	PublicURL string `koanf:"public_url" validate:"omitempty,url"`
}

//
// Log section
//

// Log selects the minimum level written to both the file and console cores.
type Log struct {
	Level string `koanf:"level" validate:"omitempty,oneof=debug info warn error"`
}

//
// Routing section
//

// Routing configures the localized-route rewrite.
type Routing struct {
	// LangHeader receives the resolved language on a rewrite.
	LangHeader string `koanf:"lang_header"`

	// ExcludedPrefixes are never rewritten (static assets, API, metrics).
	ExcludedPrefixes []string `koanf:"excluded_prefixes"`

	// ReservedPrefixes are first segments owned by other routers.  The
	// localized route table must not collide with any of them.
	ReservedPrefixes []string `koanf:"reserved_prefixes"`
}

//
// Reference data section
//

// Endpoints are paths relative to Refdata.BaseURL.
type Endpoints struct {
	Categories    string `koanf:"categories"`
	Subcategories string `koanf:"subcategories"`
	Countries     string `koanf:"countries"`
	Cities        string `koanf:"cities"`
}

// Refdata configures where reference data comes from and how long it lives.
type Refdata struct {
	Source       string        `koanf:"source"        validate:"required,oneof=http sql"`
	BaseURL      string        `koanf:"base_url"      validate:"omitempty,url"`
	Endpoints    Endpoints     `koanf:"endpoints"`
	FetchTimeout time.Duration `koanf:"fetch_timeout" validate:"gte=0"`

	// TTL == 0 keeps the first successful snapshot for the process lifetime.
	TTL time.Duration `koanf:"ttl" validate:"gte=0"`

	// Redis snapshot store; empty RedisAddr disables it.
	RedisAddr     string        `koanf:"redis_addr"     validate:"omitempty,hostname_port"`
	RedisPassword string        `koanf:"redis_password"`
	RedisDB       int           `koanf:"redis_db"       validate:"gte=0"`
	RedisTTL      time.Duration `koanf:"redis_ttl"      validate:"gte=0"`

	// MemoSize bounds the slug-normalization memo.
	MemoSize int `koanf:"memo_size" validate:"gte=0"`
}

//
// Database section
//

// Database holds the DSN template and its secret.
//
// The *template* (`DSN`) is kept in YAML so operators can tweak host, port,
// or flags without touching Vault.  When it contains one `%s` verb the
// *secret* (`Password`) is substituted there at runtime.
type Database struct {
	DSN      string `koanf:"dsn"`
	Password string `koanf:"password"`
}

// ResolvedDSN returns DSN with Password substituted into its `%s` verb.
func (d Database) ResolvedDSN() string {
	if strings.Count(d.DSN, "%s") == 1 {
		return fmt.Sprintf(d.DSN, d.Password)
	}
	return d.DSN
}

//
// Paths section (runtime only)
//

// Paths is resolved at runtime, never set in YAML or env.  The loader
// discovers `Root` (repo root or SEO_ROOT override) so later code can build
// absolute file paths.
type Paths struct {
	Root string // SEO_ROOT or discovered parent
}

//
// Root aggregate
//

// Config is the immutable aggregate returned by Load() and cached in an
// atomic.Pointer for lock-free reads throughout the app lifetime.
type Config struct {
	HTTP     HTTP     `koanf:"http"`
	Log      Log      `koanf:"log"`
	Routing  Routing  `koanf:"routing"`
	Refdata  Refdata  `koanf:"refdata"`
	Database Database `koanf:"database"`
	Paths    Paths    `koanf:"-"` // not loaded from config files
}

/*──────────────────────────── defaults ────────────────────────────────────*/

// applyDefaults fills zero values that have a sensible default.
func applyDefaults(c *Config) {
	if c.HTTP.ReadTimeout == 0 {
		c.HTTP.ReadTimeout = 10 * time.Second
	}
	if c.HTTP.WriteTimeout == 0 {
		c.HTTP.WriteTimeout = 15 * time.Second
	}
	if c.HTTP.IdleTimeout == 0 {
		c.HTTP.IdleTimeout = 60 * time.Second
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Routing.LangHeader == "" {
		c.Routing.LangHeader = "X-Lang"
	}
	if c.Routing.ExcludedPrefixes == nil {
		c.Routing.ExcludedPrefixes = []string{"/api/", "/static/", "/metrics", "/healthz"}
	}
	e := &c.Refdata.Endpoints
	if e.Categories == "" {
		e.Categories = "/api/categories/"
	}
	if e.Subcategories == "" {
		e.Subcategories = "/api/subcategories/"
	}
	if e.Countries == "" {
		e.Countries = "/api/countries/"
	}
	if e.Cities == "" {
		e.Cities = "/api/cities/"
	}
	if c.Refdata.FetchTimeout == 0 {
		c.Refdata.FetchTimeout = 5 * time.Second
	}
	if c.Refdata.RedisTTL == 0 {
		c.Refdata.RedisTTL = 10 * time.Minute
	}
	if c.Refdata.MemoSize == 0 {
		c.Refdata.MemoSize = 4096
	}
}
