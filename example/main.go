// The example suite runs the generated AppWorld against a local
// application. Start a webdriver server first, e.g. `chromedriver
// --port=4444`, then run with `BROWSER=chrome go run ./example`.
//
// The world skeleton this suite was generated from:
//
//	package main
//
//	// AppWorld is the cucumber world for the example suite.
//	//worldgen:world
//	type AppWorld struct{}
package main

import (
	"context"
	"errors"
	"os"

	"github.com/cucumber/godog"
)

func main() {
	suite := godog.TestSuite{
		Name:                "example",
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format: "pretty",
			Paths:  []string{"example/features"},
		},
	}
	os.Exit(suite.Run())
}

func InitializeScenario(sc *godog.ScenarioContext) {
	InitializeAppWorldScenario(sc)
	sc.Step(`^I open the "([^"]*)" page$`, iOpenThePage)
	sc.Step(`^the page title is "([^"]*)"$`, thePageTitleIs)
}

func iOpenThePage(ctx context.Context, path string) error {
	world, ok := AppWorldFromContext(ctx)
	if !ok {
		return errors.New("world is not initialized")
	}
	_, err := world.GotoPath(path)
	return err
}

func thePageTitleIs(ctx context.Context, want string) error {
	world, ok := AppWorldFromContext(ctx)
	if !ok {
		return errors.New("world is not initialized")
	}
	title, err := world.Driver().Title()
	if err != nil {
		return err
	}
	if title != want {
		return errors.New("unexpected page title: " + title)
	}
	return nil
}
