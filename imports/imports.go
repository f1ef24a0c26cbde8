/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package imports finds the module specifiers a JavaScript file loads.
//
// Sources are parsed with tree-sitter, so comments, strings that merely look
// like imports, and syntax errors elsewhere in the file do not confuse the
// scan. Only string-literal specifiers are reported; computed ones such as
// import(name) cannot be resolved statically and are skipped.
package imports

import (
	"errors"
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"
	javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
)

// ErrParse indicates tree-sitter produced no syntax tree.
var ErrParse = errors.New("failed to parse source")

// Kind is the syntactic form that loads a module.
type Kind string

const (
	// KindStatic is an import declaration: import x from "spec".
	KindStatic Kind = "static"
	// KindReexport is an export declaration with a source: export * from "spec".
	KindReexport Kind = "reexport"
	// KindDynamic is an import() expression.
	KindDynamic Kind = "dynamic"
	// KindRequire is a CommonJS require() call.
	KindRequire Kind = "require"
)

// Import is one module reference found in a source file.
type Import struct {
	Specifier string `json:"specifier"`
	Kind      Kind   `json:"kind"`
	// Line is 1-based.
	Line int `json:"line"`
}

const (
	nodeImportStatement = "import_statement"
	nodeExportStatement = "export_statement"
	nodeCallExpression  = "call_expression"
	nodeString          = "string"
	nodeStringFragment  = "string_fragment"
	nodeImport          = "import"
	nodeIdentifier      = "identifier"
)

var language = sitter.NewLanguage(javascript.Language())

// Scan returns the imports in src in source order.
func Scan(src []byte) ([]Import, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(language); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	tree := parser.Parse(src, nil)
	if tree == nil {
		return nil, ErrParse
	}
	defer tree.Close()

	var found []Import
	stack := []*sitter.Node{tree.RootNode()}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if imp, ok := classify(node, src); ok {
			found = append(found, imp)
		}

		for i := int(node.ChildCount()) - 1; i >= 0; i-- {
			if child := node.Child(uint(i)); child != nil {
				stack = append(stack, child)
			}
		}
	}
	return found, nil
}

func classify(node *sitter.Node, src []byte) (Import, bool) {
	var kind Kind
	var source *sitter.Node

	switch node.Kind() {
	case nodeImportStatement:
		kind, source = KindStatic, node.ChildByFieldName("source")
	case nodeExportStatement:
		kind, source = KindReexport, node.ChildByFieldName("source")
	case nodeCallExpression:
		kind, source = callKind(node, src)
	}

	if source == nil || source.Kind() != nodeString {
		return Import{}, false
	}
	spec, ok := stringContent(source, src)
	if !ok {
		return Import{}, false
	}
	return Import{
		Specifier: spec,
		Kind:      kind,
		Line:      int(node.StartPosition().Row) + 1,
	}, true
}

// callKind recognizes import("x") and require("x"), returning the argument.
func callKind(node *sitter.Node, src []byte) (Kind, *sitter.Node) {
	fn := node.ChildByFieldName("function")
	args := node.ChildByFieldName("arguments")
	if fn == nil || args == nil || args.NamedChildCount() == 0 {
		return "", nil
	}

	switch {
	case fn.Kind() == nodeImport:
		return KindDynamic, args.NamedChild(0)
	case fn.Kind() == nodeIdentifier && fn.Utf8Text(src) == "require" && args.NamedChildCount() == 1:
		return KindRequire, args.NamedChild(0)
	}
	return "", nil
}

// stringContent returns a string literal's text without quotes. Literals
// with escape sequences are rejected rather than decoded.
func stringContent(node *sitter.Node, src []byte) (string, bool) {
	var text string
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		if child == nil {
			continue
		}
		if child.Kind() != nodeStringFragment {
			return "", false
		}
		text += child.Utf8Text(src)
	}
	return text, text != ""
}
