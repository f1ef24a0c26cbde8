/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package paths

import "path"

// NodeModulesDir is the conventional dependency directory name.
const NodeModulesDir = "node_modules"

// NodeModulesPaths lists the candidate dependency directories for start,
// nearest first: start/node_modules, its parent's node_modules, and so on
// up to and including the root's node_modules.
//
// An ancestor that is itself named node_modules gets no candidate of its own,
// so a start inside an installed dependency never yields
// node_modules/node_modules. When start lies inside projectRoot the skip is
// disabled. No existence checks are performed.
func NodeModulesPaths(start, projectRoot string) []string {
	vol, dir := SplitVolume(Clean(start))
	if dir == "" || dir == "." {
		dir = "/"
	}

	keepNested := projectRoot != "" && Within(Clean(start), Clean(projectRoot))

	var candidates []string
	for {
		if keepNested || path.Base(dir) != NodeModulesDir {
			candidates = append(candidates, vol+path.Join(dir, NodeModulesDir))
		}
		parent := path.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return candidates
}
