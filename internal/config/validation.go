package config

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Dynamic token patterns that must not appear in configuration values.
// They indicate shell or template variables the user expected to expand.
var dynamicTokenPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\{[^}]+\}`),        // ${VAR}
	regexp.MustCompile(`\{\{[^}]+\}\}`),      // {{VAR}}
	regexp.MustCompile(`\$[A-Z_][A-Z0-9_]*`), // $VAR
}

// Validate checks the configuration for correctness. An empty API key is
// valid; the CLI asks for one interactively.
func Validate(cfg *Config) error {
	in := cfg.Installer
	errs := validateDynamicTokens([]field{
		{"installer.server_url", in.ServerURL, false},
		{"installer.api_key", in.APIKey, true},
	})

	if ve := serverURLError(in.ServerURL); ve != nil {
		ve.Field = "installer.server_url"
		errs = append(errs, *ve)
	}
	for _, link := range []field{
		{"installer.dashboard_url", in.DashboardURL, false},
		{"installer.docs_url", in.DocsURL, false},
	} {
		if !isHTTPURL(link.value) {
			errs = append(errs, ValidationError{
				Field:   link.name,
				Message: "must be an http or https URL",
				Value:   link.value,
				Wrapped: ErrInvalidConfig,
			})
		}
	}
	if in.APIKey != "" {
		if ve := apiKeyError(in.APIKey, in.DemoKey); ve != nil {
			ve.Field = "installer.api_key"
			errs = append(errs, *ve)
		}
	}

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

// field is a named configuration value under validation.
type field struct {
	name   string
	value  string
	secret bool
}

// ValidateAPIKey checks that key is at least MinAPIKeyLength characters.
// The configured demo key is always accepted.
func ValidateAPIKey(key, demoKey string) error {
	if ve := apiKeyError(key, demoKey); ve != nil {
		return ve
	}
	return nil
}

// ValidateServerURL checks that raw is an absolute http or https URL.
func ValidateServerURL(raw string) error {
	if ve := serverURLError(raw); ve != nil {
		return ve
	}
	return nil
}

func apiKeyError(key, demoKey string) *ValidationError {
	if key != "" && key == demoKey {
		return nil
	}
	if n := len([]rune(key)); n < MinAPIKeyLength {
		return &ValidationError{
			Field:   "api_key",
			Message: fmt.Sprintf("must be at least %d characters, got %d", MinAPIKeyLength, n),
			Wrapped: ErrAPIKeyTooShort,
		}
	}
	return nil
}

func serverURLError(raw string) *ValidationError {
	if !isHTTPURL(raw) {
		return &ValidationError{
			Field:   "server_url",
			Message: "must be an http or https URL with a host",
			Value:   raw,
			Wrapped: ErrInvalidServerURL,
		}
	}
	return nil
}

// NormalizeAPIKey trims surrounding whitespace and folds compatibility
// characters (full-width letters, non-breaking spaces) that appear when a
// key is pasted from a web page.
func NormalizeAPIKey(key string) string {
	return strings.TrimSpace(norm.NFKC.String(key))
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// validateDynamicTokens reports values that still contain variable references.
func validateDynamicTokens(fields []field) []ValidationError {
	var errs []ValidationError
	for _, f := range fields {
		for _, p := range dynamicTokenPatterns {
			if p.MatchString(f.value) {
				ve := ValidationError{
					Field:   f.name,
					Message: "contains an unexpanded variable reference",
					Wrapped: ErrDynamicToken,
				}
				if !f.secret {
					ve.Value = f.value
				}
				errs = append(errs, ve)
				break
			}
		}
	}
	return errs
}
