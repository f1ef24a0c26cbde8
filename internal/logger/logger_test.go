/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerbose(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})

	SetVerbose(false)
	Info("loaded config %s", "/project/.config/resolve.yaml")
	Debug("resolved %q", "koa")
	Warn("ignoring %s", "broken/package.json")
	out := buf.String()
	assert.NotContains(t, out, "loaded config")
	assert.NotContains(t, out, "resolved")
	assert.Contains(t, out, "ignoring broken/package.json")

	buf.Reset()
	SetVerbose(true)
	Info("loaded config %s", "/project/.config/resolve.yaml")
	Debug("resolved %q", "koa")
	out = buf.String()
	assert.Contains(t, out, "loaded config /project/.config/resolve.yaml")
	assert.Contains(t, out, `resolved "koa"`)
}
