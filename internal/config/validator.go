// internal/config/validator.go
//
// Thin wrapper around go-playground/validator.
//
// Context
// -------
// `internal/config/loader.go` calls `validateStruct` immediately after it
// unmarshals the merged Koanf tree into a `Config` instance.  Any tag
// mismatch or validation error aborts startup, ensuring the binary never
// runs with partial, malformed, or missing configuration.
//
// Field rules live in struct tags.  Rules that span sections (the chosen
// reference-data source decides which other section is required) are
// registered here as a struct-level validation.
//
// Notes
// -----
//   • Oxford commas, two spaces after periods.

package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

//
// validator instance (package-level singleton)
//

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New()
	val.RegisterStructValidation(crossSection, Config{})
	return val
}

// crossSection enforces:
//   - source=http needs refdata.base_url
//   - source=sql needs database.dsn
//   - no value may still carry an unresolved "vault:" reference
func crossSection(sl validator.StructLevel) {
	c := sl.Current().Interface().(Config)

	switch c.Refdata.Source {
	case "http":
		if c.Refdata.BaseURL == "" {
			sl.ReportError(c.Refdata.BaseURL, "Refdata.BaseURL", "BaseURL", "required_for_http", "")
		}
	case "sql":
		if c.Database.DSN == "" {
			sl.ReportError(c.Database.DSN, "Database.DSN", "DSN", "required_for_sql", "")
		}
	}

	for name, val := range map[string]string{
		"Database.Password":     c.Database.Password,
		"Refdata.RedisPassword": c.Refdata.RedisPassword,
	} {
		if strings.HasPrefix(val, secretPrefix) {
			sl.ReportError(val, name, name, "unresolved_secret", "")
		}
	}
}

//
// public API
//

// validateStruct returns the first validation error, or nil on success.
func validateStruct(c *Config) error {
	return v.Struct(c)
}
