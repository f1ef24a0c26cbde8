/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package specifier classifies module specifiers.
package specifier

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"bennypowers.dev/resolvewith/builtin"
	"bennypowers.dev/resolvewith/paths"
)

// ErrInvalid indicates a specifier that can never resolve, such as an empty
// string or a malformed package name.
var ErrInvalid = errors.New("invalid module specifier")

// Kind indicates the type of specifier.
type Kind int

const (
	// KindBuiltin is a core module, e.g. "path" or "node:path".
	KindBuiltin Kind = iota
	// KindRelative starts with "./" or "../", or is "." or "..".
	KindRelative
	// KindAbsolute is an absolute filesystem path or a file: URL.
	KindAbsolute
	// KindPackage is a bare package name with an optional subpath.
	KindPackage
)

func (k Kind) String() string {
	switch k {
	case KindBuiltin:
		return "builtin"
	case KindRelative:
		return "relative"
	case KindAbsolute:
		return "absolute"
	default:
		return "package"
	}
}

// Specifier represents a parsed module specifier.
type Specifier struct {
	// Kind is the type of specifier.
	Kind Kind

	// Builtin is the "node:"-prefixed identifier of a core module.
	Builtin string

	// Path is the forward-slash path of a relative or absolute specifier.
	Path string

	// Package is the directory name under node_modules (e.g. "@scope/pkg").
	Package string

	// Subpath is the exports key requested from the package: "." or "./x".
	Subpath string

	// Protocol is "npm" or "jsr" when the specifier carried that prefix.
	Protocol string

	// Raw is the original specifier string.
	Raw string
}

// packagePattern matches @scope/pkg/path, pkg/path, or bare pkg.
var packagePattern = regexp.MustCompile(`^(@[^/]+/[^/]+|[^/@][^/]*)(/.*)?$`)

// Parse classifies spec. Core modules are checked first so that no file or
// package on disk can shadow them.
func Parse(spec string, builtins *builtin.Registry) (*Specifier, error) {
	if spec == "" {
		return nil, fmt.Errorf("%w: empty specifier", ErrInvalid)
	}

	if id, ok := builtins.Canonical(spec); ok {
		return &Specifier{Kind: KindBuiltin, Builtin: id, Raw: spec}, nil
	}

	if paths.IsFileURL(spec) {
		p, err := paths.FromFileURL(spec)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
		}
		return &Specifier{Kind: KindAbsolute, Path: p, Raw: spec}, nil
	}

	posix := paths.ToPosix(spec)
	if isRelative(posix) {
		return &Specifier{Kind: KindRelative, Path: posix, Raw: spec}, nil
	}
	if paths.IsAbs(posix) {
		return &Specifier{Kind: KindAbsolute, Path: paths.Clean(posix), Raw: spec}, nil
	}

	return parsePackage(spec)
}

func isRelative(spec string) bool {
	return spec == "." || spec == ".." ||
		strings.HasPrefix(spec, "./") || strings.HasPrefix(spec, "../")
}

func parsePackage(spec string) (*Specifier, error) {
	name := spec
	protocol := ""
	if rest, ok := strings.CutPrefix(spec, "npm:"); ok {
		name, protocol = rest, "npm"
	} else if rest, ok := strings.CutPrefix(spec, "jsr:"); ok {
		name, protocol = rest, "jsr"
	}

	matches := packagePattern.FindStringSubmatch(name)
	if len(matches) != 3 {
		return nil, fmt.Errorf("%w: %q is not a valid package name", ErrInvalid, spec)
	}
	pkg, sub := matches[1], matches[2]

	if protocol != "" {
		pkg = stripVersion(pkg)
	}
	if strings.HasPrefix(pkg, ".") || strings.ContainsAny(pkg, `\%`) {
		return nil, fmt.Errorf("%w: %q is not a valid package name", ErrInvalid, spec)
	}

	if protocol == "jsr" {
		if !strings.HasPrefix(pkg, "@") {
			return nil, fmt.Errorf("%w: jsr packages must be scoped: %q", ErrInvalid, spec)
		}
		pkg = jsrToNPMCompatPackage(pkg)
	}

	subpath := "."
	if sub != "" && sub != "/" {
		subpath = "." + sub
	}

	return &Specifier{
		Kind:     KindPackage,
		Package:  pkg,
		Subpath:  subpath,
		Protocol: protocol,
		Raw:      spec,
	}, nil
}

// stripVersion drops a version range from npm:/jsr: names, e.g.
// "@scope/pkg@^1.0.0" becomes "@scope/pkg".
func stripVersion(pkg string) string {
	scoped := strings.HasPrefix(pkg, "@")
	name := strings.TrimPrefix(pkg, "@")
	if i := strings.LastIndex(name, "@"); i > 0 {
		name = name[:i]
	}
	if scoped {
		return "@" + name
	}
	return name
}

// jsrToNPMCompatPackage converts a JSR package name to its npm compatibility
// layer name, as installed by `npx jsr add`: @scope/pkg becomes @jsr/scope__pkg.
func jsrToNPMCompatPackage(pkg string) string {
	scopedPkg := strings.TrimPrefix(pkg, "@")
	return "@jsr/" + strings.Replace(scopedPkg, "/", "__", 1)
}

// IsPackage returns true if this names a package.
func (s *Specifier) IsPackage() bool {
	return s.Kind == KindPackage
}

// IsPath returns true for relative and absolute specifiers.
func (s *Specifier) IsPath() bool {
	return s.Kind == KindRelative || s.Kind == KindAbsolute
}
