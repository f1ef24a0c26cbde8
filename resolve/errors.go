/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolve

import (
	"errors"

	"bennypowers.dev/resolvewith/specifier"
)

// Sentinel errors for resolution. A specifier that simply does not resolve
// is not an error: Resolve returns the empty string for it.
var (
	// ErrInvalidSpecifier indicates an empty or malformed specifier.
	ErrInvalidSpecifier = specifier.ErrInvalid

	// ErrInvalidBase indicates a base location that cannot be used,
	// such as a file URL on a remote host.
	ErrInvalidBase = errors.New("invalid base location")
)
