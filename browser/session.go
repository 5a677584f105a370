package browser

import (
	"context"
	"fmt"

	"github.com/tebeka/selenium"
)

// StartOptions controls webdriver bring-up for one world instance.
type StartOptions struct {
	// ConcurrencyGuard enforces the geckodriver single-session limit by
	// scanning Args when the selected browser is firefox.
	ConcurrencyGuard bool
	// Args is the command line scanned by the guard, usually os.Args[1:].
	Args []string
}

// Session is an established webdriver session together with the resolved
// configuration it was built from. The session owns the driver handle.
type Session struct {
	Driver     selenium.WebDriver
	Browser    Kind
	DriverURL  string
	HostURL    string
	Headless   bool
	WindowSize WindowSize
}

// Start resolves the environment configuration and starts a webdriver
// session against DRIVER_URL. There is no retry: any failure is returned
// immediately and no partial session is ever produced.
func Start(ctx context.Context, opts StartOptions) (*Session, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return StartWithConfig(ctx, cfg, opts)
}

// StartWithConfig starts a session from an already-resolved configuration.
func StartWithConfig(ctx context.Context, cfg Config, opts StartOptions) (*Session, error) {
	if cfg.Browser == Firefox && opts.ConcurrencyGuard {
		if err := CheckFirefoxConcurrency(opts.Args); err != nil {
			return nil, err
		}
	}

	// selenium's transport does not take a context, so cancellation is
	// only observed between steps.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	caps := cfg.Browser.capabilities(cfg.Headless, cfg.WindowSize)
	driver, err := selenium.NewRemote(caps, cfg.DriverURL)
	if err != nil {
		return nil, fmt.Errorf("starting %s session: %w (make sure %s is running at %s)",
			cfg.Browser, err, cfg.Browser.DriverServer(), cfg.DriverURL)
	}

	if cfg.Browser == Firefox {
		// Firefox restores the window dimensions of the previous session,
		// so the size must be applied after the session starts.
		if err := driver.ResizeWindow("", cfg.WindowSize.Width, cfg.WindowSize.Height); err != nil {
			driver.Quit()
			return nil, fmt.Errorf("resizing firefox window to %dx%d: %w",
				cfg.WindowSize.Width, cfg.WindowSize.Height, err)
		}
	}

	return &Session{
		Driver:     driver,
		Browser:    cfg.Browser,
		DriverURL:  cfg.DriverURL,
		HostURL:    cfg.HostURL,
		Headless:   cfg.Headless,
		WindowSize: cfg.WindowSize,
	}, nil
}
