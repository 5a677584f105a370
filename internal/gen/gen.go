// Package gen renders the generated world definition.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"path"
	"regexp"
	"sort"
	"unicode"
	"unicode/utf8"

	"github.com/chriserin/worldgen/internal/directive"
	"github.com/chriserin/worldgen/internal/parser"
)

// browserImport is the runtime package the generated constructor delegates to.
const browserImport = "github.com/chriserin/worldgen/browser"

// World is everything needed to render one generated definition.
type World struct {
	Skeleton *parser.Skeleton
	Options  directive.Options
}

type templateData struct {
	Package     string
	Header      []string
	Prefix      []string
	Imports     []string
	Name        string
	DriverPkg   string
	CucumberPkg string
	Guard       bool
	New         string
	Initializer string
	FromContext string
	Key         string
}

// Render produces the gofmt-formatted source of the generated file.
func Render(w World) ([]byte, error) {
	sk := w.Skeleton

	driverPkg := importName(w.Options.DriverImport)
	cucumberPkg := importName(w.Options.CucumberImport)
	if err := checkImportNames(driverPkg, cucumberPkg); err != nil {
		return nil, err
	}

	imports := []string{browserImport, w.Options.CucumberImport, w.Options.DriverImport}
	sort.Strings(imports)

	data := templateData{
		Package:     sk.Package,
		Header:      sk.Header,
		Prefix:      sk.Prefix,
		Imports:     imports,
		Name:        sk.Name,
		DriverPkg:   driverPkg,
		CucumberPkg: cucumberPkg,
		Guard:       w.Options.ConcurrencyGuard,
	}
	if sk.Exported {
		data.New = "New" + sk.Name
		data.Initializer = "Initialize" + sk.Name + "Scenario"
		data.FromContext = sk.Name + "FromContext"
	} else {
		data.New = "new" + title(sk.Name)
		data.Initializer = "initialize" + title(sk.Name) + "Scenario"
		data.FromContext = sk.Name + "FromContext"
	}
	data.Key = lower(sk.Name) + "CtxKey"

	var buf bytes.Buffer
	if err := worldTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering world %s: %w", sk.Name, err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting world %s: %w", sk.Name, err)
	}
	return src, nil
}

// Generated files import these packages under fixed identifiers, so a
// configured library path must not resolve to one of them.
var reservedImportNames = map[string]bool{
	"browser": true,
	"context": true,
	"fmt":     true,
	"os":      true,
}

func checkImportNames(driverPkg, cucumberPkg string) error {
	if driverPkg == cucumberPkg {
		return fmt.Errorf("driver-library-path and cucumber-library-path both resolve to package %q", driverPkg)
	}
	if reservedImportNames[driverPkg] {
		return fmt.Errorf("driver-library-path package name %q collides with an import of the generated file", driverPkg)
	}
	if reservedImportNames[cucumberPkg] {
		return fmt.Errorf("cucumber-library-path package name %q collides with an import of the generated file", cucumberPkg)
	}
	return nil
}

var versionSuffix = regexp.MustCompile(`^v[0-9]+$`)

// importName guesses the package identifier of an import path, skipping a
// trailing major-version element such as /v2.
func importName(importPath string) string {
	name := path.Base(importPath)
	if versionSuffix.MatchString(name) {
		name = path.Base(path.Dir(importPath))
	}
	return name
}

func title(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

func lower(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}
