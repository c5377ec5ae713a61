/*
Copyright 2026 The Chartpack Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package version

import (
	"runtime"
	"strings"

	"github.com/blang/semver"
)

// Set at build time via ldflags.
var (
	version   = "unknown"
	gitCommit = ""
	buildDate = ""
)

type Info struct {
	Version   string
	GitCommit string
	BuildDate string
	GoVersion string
	Compiler  string
	Platform  string
}

// Get returns the version information for the running binary.
func Get() *Info {
	return &Info{
		Version:   version,
		GitCommit: gitCommit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
		Compiler:  runtime.Compiler,
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// ParseVersion parses a semver version string, tolerating a leading "v".
func ParseVersion(version string) (semver.Version, error) {
	// Strip the leading 'v' in our version strings
	return semver.Parse(strings.TrimPrefix(version, "v"))
}
