// internal/config/loader.go
//
// Configuration loader and hot-reloader.
//
/*
Context
--------
`Load()` builds one immutable `Config` struct from three layers (highest
precedence last):

  1. Optional `.env` file at `<root>/conf/.env`.
  2. `conf/global.yaml`.
  3. Environment variables prefixed `SEO_`, where `__` maps to “.”
     (e.g., `SEO_HTTP__LISTEN_ADDR → http.listen_addr`).

After merging, string values that start with `vault:` are handed to the
secret resolver (see WithSecretResolver), then the tree is unmarshalled
into strongly-typed structs, defaulted, validated, enriched with the
runtime root path, and cached in an `atomic.Pointer` for lock-free reads.
`Reload()` calls `Load()` again with the same options and swaps the
pointer.

Instrumentation
---------------
  • DEBUG spans – root discovery, YAML read, env overlay.
  • ERROR spans – YAML parse, env overlay, secret, unmarshal, validation.
  • INFO  span  – final “config loaded” with key highlights.
  • Logs use the global *sugared* logger (`zap.S()`) so early boot issues
    surface even before the file logger is installed.

Notes
-----
  • `rootDir()` climbs the cwd tree until it finds `conf/global.yaml`;
    this lets `go run ./cmd/web` work from any sub-directory.
  • Oxford commas, two spaces after periods.
*/
package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

const (
	envPrefix    = "SEO_"
	secretPrefix = "vault:"
)

var (
	current  atomic.Pointer[Config]
	lastOpts atomic.Pointer[[]Option]
)

/*──────────────────────────── options ─────────────────────────────────────*/

// SecretResolver turns a "vault:…" reference into its plain value.
type SecretResolver func(ctx context.Context, ref string) (string, error)

type loadOptions struct {
	root     string
	resolver SecretResolver
	ctx      context.Context
}

// Option customises Load.
type Option func(*loadOptions)

// WithRoot skips root discovery.
func WithRoot(dir string) Option {
	return func(o *loadOptions) { o.root = dir }
}

// WithSecretResolver installs the resolver for "vault:" values.  Without
// one, any such value fails validation.
func WithSecretResolver(ctx context.Context, fn SecretResolver) Option {
	return func(o *loadOptions) {
		o.ctx = ctx
		o.resolver = fn
	}
}

/*──────────────────────────── root discovery ───────────────────────────────*/

// rootDir resolves SEO_ROOT or climbs directories until conf/global.yaml is
// found.  Falls back to executable heuristic for production layout.
func rootDir() string {
	if r := os.Getenv("SEO_ROOT"); r != "" {
		return r
	}

	wd, _ := os.Getwd()
	dir := wd
	for {
		if _, err := os.Stat(filepath.Join(dir, "conf", "global.yaml")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir { // reached filesystem root
			break
		}
		dir = parent
	}

	exe, _ := os.Executable()
	if filepath.Base(filepath.Dir(exe)) == "bin" {
		return filepath.Dir(filepath.Dir(exe))
	}
	return wd
}

/*─────────────────────────────── loader ───────────────────────────────────*/

// Load reads .env, YAML, env overrides, resolves secrets, validates, and
// caches Config.
func Load(opts ...Option) (*Config, error) {
	o := loadOptions{ctx: context.Background()}
	for _, fn := range opts {
		fn(&o)
	}
	root := o.root
	if root == "" {
		root = rootDir()
	}
	zap.S().Debugw("config root resolved", "root", root)

	// .env (optional, no error if missing)
	_ = godotenv.Load(filepath.Join(root, "conf", ".env"))

	k := koanf.New(".")

	yamlPath := filepath.Join(root, "conf", "global.yaml")
	if err := k.Load(file.Provider(yamlPath), yaml.Parser()); err != nil {
		zap.S().Errorw("config yaml load failed", "file", yamlPath, "err", err)
		return nil, fmt.Errorf("config: read %s: %w", yamlPath, err)
	}
	zap.S().Debugw("config yaml loaded", "file", yamlPath)

	// Env overrides: SEO_HTTP__LISTEN_ADDR → http.listen_addr
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		zap.S().Errorw("config env overlay failed", "err", err)
		return nil, fmt.Errorf("config: env overlay: %w", err)
	}

	if err := resolveSecrets(o.ctx, k, o.resolver); err != nil {
		zap.S().Errorw("config secret resolution failed", "err", err)
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		zap.S().Errorw("config unmarshal failed", "err", err)
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	applyDefaults(&cfg)
	cfg.Paths.Root = root
	if err := validateStruct(&cfg); err != nil {
		zap.S().Errorw("config validation failed", "err", err)
		return nil, fmt.Errorf("config: %w", err)
	}

	current.Store(&cfg)
	lastOpts.Store(&opts)
	zap.S().Infow("config loaded",
		"listen_addr", cfg.HTTP.ListenAddr,
		"force_https", cfg.HTTP.ForceHTTPS,
		"refdata_source", cfg.Refdata.Source,
		"refdata_ttl", cfg.Refdata.TTL,
		"root", cfg.Paths.Root,
	)
	return &cfg, nil
}

// envKey maps SEO_REFDATA__BASE_URL to refdata.base_url.
func envKey(s string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimPrefix(s, envPrefix), "__", "."))
}

// resolveSecrets replaces every "vault:" string in k.  With no resolver the
// values are left for the validator to reject.
func resolveSecrets(ctx context.Context, k *koanf.Koanf, fn SecretResolver) error {
	if fn == nil {
		return nil
	}
	for key, val := range k.All() {
		s, ok := val.(string)
		if !ok || !strings.HasPrefix(s, secretPrefix) {
			continue
		}
		plain, err := fn(ctx, s)
		if err != nil {
			return fmt.Errorf("config: resolve %s: %w", key, err)
		}
		if err := k.Set(key, plain); err != nil {
			return fmt.Errorf("config: set %s: %w", key, err)
		}
	}
	return nil
}

/*──────────────────────────── helpers ─────────────────────────────────────*/

// Get returns the last successfully loaded Config, or nil.
func Get() *Config { return current.Load() }

// Reload re-runs Load with the options of the previous call.
func Reload() error {
	var opts []Option
	if p := lastOpts.Load(); p != nil {
		opts = *p
	}
	_, err := Load(opts...)
	return err
}
