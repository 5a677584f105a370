package parser

import (
	"errors"
	"fmt"
	"go/scanner"
	"go/token"
	"strings"
)

// Directive is the marker comment that worldgen looks for in a skeleton file.
const Directive = "//worldgen:world"

// Skeleton is a matched world declaration extracted from a skeleton file.
type Skeleton struct {
	Package  string   // package name from the package clause
	Header   []string // comment lines above the package clause, e.g. a license
	Prefix   []string // comment lines around the directive, emitted above the type
	Args     string   // raw directive arguments, unparsed
	Name     string   // identifier of the declared world type
	Exported bool
}

// ErrShape is returned for any declaration that is not one of the two
// accepted shapes.
var ErrShape = errors.New("worldgen requires a bare declaration like `type AppWorld struct{}` or `type appWorld struct{}`")

// ParseFile matches the skeleton file grammar: an optional comment header,
// a package clause, a //worldgen:world directive surrounded by optional
// comment lines, and a single empty struct declaration. Anything else is a
// fatal shape error.
func ParseFile(filename string, content []byte) (*Skeleton, error) {
	lines := strings.Split(string(content), "\n")
	sk := &Skeleton{}

	i := 0

	// Header comments before the package clause
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			i++
			continue
		}
		if strings.HasPrefix(trimmed, "//") {
			sk.Header = append(sk.Header, lines[i])
			i++
			continue
		}
		break
	}

	// Package clause
	if i >= len(lines) || !strings.HasPrefix(strings.TrimSpace(lines[i]), "package ") {
		return nil, errors.New("missing package clause")
	}
	sk.Package = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(lines[i]), "package"))
	i++

	// Directive and pass-through prefix comments
	sawDirective := false
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			i++
			continue
		}
		if args, ok := directiveArgs(trimmed); ok {
			if sawDirective {
				return nil, fmt.Errorf("duplicate %s directive", Directive)
			}
			sawDirective = true
			sk.Args = args
			i++
			continue
		}
		if strings.HasPrefix(trimmed, "//") {
			sk.Prefix = append(sk.Prefix, lines[i])
			i++
			continue
		}
		break
	}
	if !sawDirective {
		return nil, fmt.Errorf("no %s directive found", Directive)
	}

	rest := strings.Join(lines[i:], "\n")
	if strings.TrimSpace(rest) == "" {
		return nil, errors.New("a type declaration must be supplied after the directive")
	}

	name, err := matchDeclaration(filename, rest)
	if err != nil {
		return nil, err
	}
	sk.Name = name
	sk.Exported = token.IsExported(name)
	return sk, nil
}

// directiveArgs reports whether a trimmed comment line is the worldgen
// directive and returns its raw arguments.
func directiveArgs(trimmed string) (string, bool) {
	if !strings.HasPrefix(trimmed, Directive) {
		return "", false
	}
	rest := strings.TrimPrefix(trimmed, Directive)
	if rest != "" && !strings.HasPrefix(rest, " ") && !strings.HasPrefix(rest, "\t") {
		return "", false
	}
	return strings.TrimSpace(rest), true
}

// matchDeclaration checks that src consists of exactly the token sequence
// `type IDENT struct { }` and returns the identifier.
func matchDeclaration(filename string, src string) (string, error) {
	fset := token.NewFileSet()
	file := fset.AddFile(filename, fset.Base(), len(src))

	var invalid bool
	var sc scanner.Scanner
	sc.Init(file, []byte(src), func(token.Position, string) { invalid = true }, 0)

	type item struct {
		tok token.Token
		lit string
	}
	var items []item
	for {
		_, tok, lit := sc.Scan()
		if tok == token.EOF {
			break
		}
		items = append(items, item{tok, lit})
		if len(items) > 6 {
			return "", ErrShape
		}
	}
	if invalid {
		return "", ErrShape
	}

	// A trailing semicolon is inserted by the scanner after the closing brace.
	if len(items) == 6 && items[5].tok == token.SEMICOLON {
		items = items[:5]
	}
	if len(items) != 5 ||
		items[0].tok != token.TYPE ||
		items[1].tok != token.IDENT ||
		items[2].tok != token.STRUCT ||
		items[3].tok != token.LBRACE ||
		items[4].tok != token.RBRACE {
		return "", ErrShape
	}
	return items[1].lit, nil
}
