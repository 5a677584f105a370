package main

import (
	"context"
	"errors"
	"testing"

	"github.com/chriserin/worldgen/browser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tebeka/selenium"
)

// fakeDriver overrides only the calls GotoPath uses.
type fakeDriver struct {
	selenium.WebDriver
	gotoURL string
	err     error
}

func (f *fakeDriver) Get(url string) error {
	f.gotoURL = url
	return f.err
}

func TestGotoPath_ConcatenatesHostURLAndPath(t *testing.T) {
	fd := &fakeDriver{}
	world := &AppWorld{driver: fd, hostURL: "http://localhost:8080"}

	ret, err := world.GotoPath("/login")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/login", fd.gotoURL)
	assert.Same(t, world, ret)
}

func TestGotoPath_NavigationErrorNamesURL(t *testing.T) {
	fd := &fakeDriver{err: errors.New("connection reset")}
	world := &AppWorld{driver: fd, hostURL: "http://localhost:8080"}

	_, err := world.GotoPath("/login")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "navigating to http://localhost:8080/login")
	assert.Contains(t, err.Error(), "connection reset")
}

func TestAccessors(t *testing.T) {
	world := &AppWorld{
		driverURL:  "http://localhost:4444",
		hostURL:    "http://localhost:8080",
		headless:   true,
		windowSize: browser.WindowSize{Width: 1920, Height: 1080},
	}

	assert.Equal(t, "http://localhost:4444", world.DriverURL())
	assert.Equal(t, "http://localhost:8080", world.HostURL())
	assert.True(t, world.Headless())
	width, height := world.WindowSize()
	assert.Equal(t, 1920, width)
	assert.Equal(t, 1080, height)
}

func TestAppWorldFromContext(t *testing.T) {
	world := &AppWorld{}
	ctx := context.WithValue(context.Background(), appWorldCtxKey{}, world)

	got, ok := AppWorldFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, world, got)

	_, ok = AppWorldFromContext(context.Background())
	assert.False(t, ok)
}
