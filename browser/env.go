package browser

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Defaults for the environment variables read by ConfigFromEnv.
const (
	DefaultDriverURL  = "http://localhost:4444"
	DefaultHostURL    = "http://localhost:8080"
	DefaultWindowSize = "1920x1080"
)

// WindowSize is a browser window size in pixels.
type WindowSize struct {
	Width  int
	Height int
}

// Config is the resolved runtime configuration of one world instance.
type Config struct {
	Browser    Kind
	DriverURL  string
	HostURL    string
	Headless   bool
	WindowSize WindowSize
}

// ConfigFromEnv resolves the configuration from the process environment:
// BROWSER (required), DRIVER_URL, HOST_URL, HEADLESS and WINDOW_SIZE.
// HEADLESS defaults to true; any value other than the literal "true"
// disables headless mode.
func ConfigFromEnv() (Config, error) {
	var cfg Config

	browser, ok := os.LookupEnv("BROWSER")
	if !ok {
		return cfg, fmt.Errorf("BROWSER environment variable is not set: %s", supportedSet)
	}
	kind, err := ParseKind(browser)
	if err != nil {
		return cfg, err
	}
	cfg.Browser = kind

	cfg.DriverURL = envDefault("DRIVER_URL", DefaultDriverURL)
	cfg.HostURL = envDefault("HOST_URL", DefaultHostURL)
	cfg.Headless = envDefault("HEADLESS", "true") == "true"

	size, err := ParseWindowSize(envDefault("WINDOW_SIZE", DefaultWindowSize))
	if err != nil {
		return cfg, err
	}
	cfg.WindowSize = size

	return cfg, nil
}

func envDefault(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

// ParseWindowSize parses a WIDTHxHEIGHT value such as "1920x1080".
func ParseWindowSize(s string) (WindowSize, error) {
	w, h, ok := strings.Cut(s, "x")
	if !ok {
		return WindowSize{}, fmt.Errorf("invalid WINDOW_SIZE %q: expected format WIDTHxHEIGHT", s)
	}
	width, err := strconv.ParseUint(w, 10, 32)
	if err != nil {
		return WindowSize{}, fmt.Errorf("invalid WINDOW_SIZE %q: expected format WIDTHxHEIGHT", s)
	}
	height, err := strconv.ParseUint(h, 10, 32)
	if err != nil {
		return WindowSize{}, fmt.Errorf("invalid WINDOW_SIZE %q: expected format WIDTHxHEIGHT", s)
	}
	return WindowSize{Width: int(width), Height: int(height)}, nil
}
