// Package directive parses the options of a //worldgen:world directive.
package directive

import (
	"fmt"
	"strings"
)

// Defaults for the two library import paths written into generated files.
const (
	DefaultDriverImport   = "github.com/tebeka/selenium"
	DefaultCucumberImport = "github.com/cucumber/godog"
)

// Options are the parsed directive options of one generation invocation.
type Options struct {
	// ConcurrencyGuard makes the generated constructor enforce the
	// geckodriver single-session limit when firefox is selected.
	ConcurrencyGuard bool
	// DriverImport is the import path of the webdriver library.
	DriverImport string
	// CucumberImport is the import path of the cucumber library.
	CucumberImport string
}

// Defaults returns the options used when a key is omitted.
func Defaults() Options {
	return Options{
		ConcurrencyGuard: true,
		DriverImport:     DefaultDriverImport,
		CucumberImport:   DefaultCucumberImport,
	}
}

// Parse parses a comma-separated `key = value` list. Omitted keys take their
// defaults, an empty list yields all defaults, a trailing comma is tolerated
// and duplicate keys are last-wins.
func Parse(args string) (Options, error) {
	opts := Defaults()

	for _, pair := range strings.Split(args, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return opts, fmt.Errorf("expected key=value, got %q", pair)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "enable-concurrency-guard":
			switch value {
			case "true":
				opts.ConcurrencyGuard = true
			case "false":
				opts.ConcurrencyGuard = false
			default:
				return opts, fmt.Errorf("enable-concurrency-guard must be true or false, got %q", value)
			}
		case "driver-library-path":
			if value == "" {
				return opts, fmt.Errorf("driver-library-path must not be empty")
			}
			opts.DriverImport = value
		case "cucumber-library-path":
			if value == "" {
				return opts, fmt.Errorf("cucumber-library-path must not be empty")
			}
			opts.CucumberImport = value
		default:
			return opts, fmt.Errorf("unknown option %q", key)
		}
	}

	return opts, nil
}
