package gen

import "text/template"

var worldTemplate = template.Must(template.New("world").Parse(worldTemplateText))

const worldTemplateText = `// Code generated by worldgen. DO NOT EDIT.

{{range .Header}}{{.}}
{{end}}package {{.Package}}

import (
	"context"
	"fmt"
{{if .Guard}}	"os"
{{end}}
{{range .Imports}}	"{{.}}"
{{end}})

{{range .Prefix}}{{.}}
{{end}}type {{.Name}} struct {
	driver     {{.DriverPkg}}.WebDriver
	driverURL  string
	hostURL    string
	headless   bool
	windowSize browser.WindowSize
}

// {{.New}} builds the world from the process environment and starts a
// webdriver session. It must be called exactly once per scenario by the
// cucumber lifecycle.
func {{.New}}(ctx context.Context) (*{{.Name}}, error) {
	sess, err := browser.Start(ctx, browser.StartOptions{{"{"}}{{if .Guard}}
		ConcurrencyGuard: true,
		Args:             os.Args[1:],
	{{end}}})
	if err != nil {
		return nil, err
	}
	return &{{.Name}}{
		driver:     sess.Driver,
		driverURL:  sess.DriverURL,
		hostURL:    sess.HostURL,
		headless:   sess.Headless,
		windowSize: sess.WindowSize,
	}, nil
}

// Driver returns the webdriver session of the world.
func (w *{{.Name}}) Driver() {{.DriverPkg}}.WebDriver {
	return w.driver
}

// DriverURL returns the webdriver server URL of the world. It is defined by
// the DRIVER_URL environment variable and defaults to "http://localhost:4444".
func (w *{{.Name}}) DriverURL() string {
	return w.driverURL
}

// HostURL returns the base URL of the application under test. It is defined
// by the HOST_URL environment variable and defaults to "http://localhost:8080".
func (w *{{.Name}}) HostURL() string {
	return w.hostURL
}

// Headless reports whether the browser runs in headless mode. It is defined
// by the HEADLESS environment variable and defaults to true.
func (w *{{.Name}}) Headless() bool {
	return w.headless
}

// WindowSize returns the width and height of the browser window. It is
// defined by the WINDOW_SIZE environment variable and defaults to 1920x1080.
func (w *{{.Name}}) WindowSize() (int, int) {
	return w.windowSize.Width, w.windowSize.Height
}

// GotoPath navigates to the given path under the host URL and returns the
// world so that calls can be chained.
func (w *{{.Name}}) GotoPath(path string) (*{{.Name}}, error) {
	url := w.hostURL + path
	if err := w.driver.Get(url); err != nil {
		return nil, fmt.Errorf("navigating to %s: %w", url, err)
	}
	return w, nil
}

type {{.Key}} struct{}

// {{.Initializer}} registers the world lifecycle on a godog scenario
// context: the world is built before each scenario and its webdriver session
// is closed afterwards.
func {{.Initializer}}(sc *{{.CucumberPkg}}.ScenarioContext) {
	sc.Before(func(ctx context.Context, _ *{{.CucumberPkg}}.Scenario) (context.Context, error) {
		world, err := {{.New}}(ctx)
		if err != nil {
			return ctx, err
		}
		return context.WithValue(ctx, {{.Key}}{}, world), nil
	})
	sc.After(func(ctx context.Context, _ *{{.CucumberPkg}}.Scenario, err error) (context.Context, error) {
		if world, ok := ctx.Value({{.Key}}{}).(*{{.Name}}); ok {
			world.driver.Quit()
		}
		return ctx, err
	})
}

// {{.FromContext}} returns the world stored in the scenario context by
// {{.Initializer}}.
func {{.FromContext}}(ctx context.Context) (*{{.Name}}, bool) {
	world, ok := ctx.Value({{.Key}}{}).(*{{.Name}})
	return world, ok
}
`
