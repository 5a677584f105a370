// Package browser starts webdriver sessions for generated worlds,
// parametrized by process environment variables.
package browser

import (
	"fmt"

	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"
	"github.com/tebeka/selenium/firefox"
)

// Kind identifies a supported browser backend.
type Kind string

const (
	Chrome  Kind = "chrome"
	Firefox Kind = "firefox"
	Edge    Kind = "edge"
)

const supportedSet = `supported browsers are "chrome", "firefox" and "edge"`

// ParseKind resolves a BROWSER environment variable value.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case Chrome, Firefox, Edge:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unsupported browser %q: %s", s, supportedSet)
}

func (k Kind) String() string { return string(k) }

// DriverServer returns the name of the local webdriver server for the kind,
// used in startup error hints.
func (k Kind) DriverServer() string {
	switch k {
	case Firefox:
		return "geckodriver"
	case Edge:
		return "msedgedriver"
	default:
		return "chromedriver"
	}
}

// capabilities builds the startup capabilities for the kind. Firefox gets no
// window-size argument here: it restores the previous session's window
// dimensions, so its size is applied after the session starts instead.
func (k Kind) capabilities(headless bool, size WindowSize) selenium.Capabilities {
	caps := selenium.Capabilities{"browserName": k.browserName()}
	switch k {
	case Firefox:
		ff := firefox.Capabilities{}
		if headless {
			ff.Args = append(ff.Args, "-headless")
		}
		caps.AddFirefox(ff)
	case Edge:
		caps["ms:edgeOptions"] = map[string]interface{}{"args": chromiumArgs(headless, size)}
	default:
		caps.AddChrome(chrome.Capabilities{Args: chromiumArgs(headless, size)})
	}
	return caps
}

func (k Kind) browserName() string {
	if k == Edge {
		return "MicrosoftEdge"
	}
	return string(k)
}

func chromiumArgs(headless bool, size WindowSize) []string {
	args := []string{
		"--no-sandbox",
		fmt.Sprintf("--window-size=%d,%d", size.Width, size.Height),
	}
	if headless {
		args = append(args, "--headless")
	}
	return args
}
