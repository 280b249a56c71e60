// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2018 The Decred developers
// Copyright (c) 2026 The treapkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version provides a single location to house the version information
// for the utilities provided in this repository.
package version

import (
	"fmt"
	"strings"
)

// semanticAlphabet defines the allowed characters for the pre-release and
// build portions of a semantic version string.
const semanticAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-"

// These constants define the application version and follow the semantic
// versioning 2.0.0 spec (http://semver.org/).
const (
	Major uint = 0
	Minor uint = 1
	Patch uint = 0
)

var (
	// PreRelease may be overridden during the build process with:
	// '-ldflags "-X github.com/treapkit/treap/internal/version.PreRelease=foo"'
	PreRelease = "dev"

	// BuildMetadata may be overridden during the build process with:
	// '-ldflags "-X github.com/treapkit/treap/internal/version.BuildMetadata=foo"'
	BuildMetadata = ""
)

// normalize returns the passed string stripped of every character that is
// not in the allowed alphabet.  Dots are kept when allowDot is set.
func normalize(str string, allowDot bool) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(semanticAlphabet, r) || (allowDot && r == '.') {
			return r
		}
		return -1
	}, str)
}

// String returns the application version as a properly formed string per the
// semantic versioning 2.0.0 spec.
func String() string {
	version := fmt.Sprintf("%d.%d.%d", Major, Minor, Patch)
	if preRelease := normalize(PreRelease, true); preRelease != "" {
		version += "-" + preRelease
	}
	if build := normalize(BuildMetadata, true); build != "" {
		version += "+" + build
	}
	return version
}
