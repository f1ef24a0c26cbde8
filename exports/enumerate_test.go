/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package exports

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumerate(t *testing.T) {
	pkg := fstest.MapFS{
		"package.json":        {Data: []byte(`{}`)},
		"README.md":           {Data: []byte(`# pkg`)},
		"lib/index.js":        {Data: []byte(`export {}`)},
		"lib/util.js":         {Data: []byte(`export {}`)},
		"lib/nested/deep.js":  {Data: []byte(`export {}`)},
		"lib/styles.css":      {Data: []byte(`:root {}`)},
		"feature/index.js":    {Data: []byte(`export {}`)},
		"internal/secret.js":  {Data: []byte(`export {}`)},
		"icons/icon-close.js": {Data: []byte(`export {}`)},
		"icons/sub/icon-x.js": {Data: []byte(`export {}`)},
	}
	v := mustParse(t, `{
		".": "./lib/index.js",
		"./lib/*": "./lib/*.js",
		"./lib/*.js": "./lib/*.js",
		"./feature": "./feature/index.js",
		"./icons/*": "./icons/icon-*.js",
		"./internal/*": null
	}`)

	got, err := Enumerate(pkg, v, DefaultConditions)
	require.NoError(t, err)

	assert.Equal(t, []Entry{
		{Key: ".", Target: "./lib/index.js"},
		{Key: "./feature", Target: "./feature/index.js"},
		{Key: "./icons/close", Target: "./icons/icon-close.js"},
		{Key: "./lib/index", Target: "./lib/index.js"},
		{Key: "./lib/index.js", Target: "./lib/index.js"},
		{Key: "./lib/nested/deep", Target: "./lib/nested/deep.js"},
		{Key: "./lib/nested/deep.js", Target: "./lib/nested/deep.js"},
		{Key: "./lib/util", Target: "./lib/util.js"},
		{Key: "./lib/util.js", Target: "./lib/util.js"},
	}, got)
}

func TestEnumerate_ConditionalPattern(t *testing.T) {
	pkg := fstest.MapFS{
		"esm/a.mjs": {Data: []byte(`export {}`)},
		"cjs/a.cjs": {Data: []byte(`module.exports = {}`)},
	}
	v := mustParse(t, `{
		"./*": {"import": "./esm/*.mjs", "require": "./cjs/*.cjs"}
	}`)

	got, err := Enumerate(pkg, v, []string{"require"})
	require.NoError(t, err)
	assert.Equal(t, []Entry{{Key: "./a", Target: "./cjs/a.cjs"}}, got)
}

func TestEscapeMeta(t *testing.T) {
	assert.Equal(t, `lib/\[id\]/`, escapeMeta("lib/[id]/"))
	assert.Equal(t, "plain/", escapeMeta("plain/"))
}
