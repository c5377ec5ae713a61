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

package app

import (
	"errors"
	"io"

	"github.com/chartpack/chartpack/cmd/chartpack/app/cmd"
)

// Run executes the chartpack command line.
func Run(out, stderr io.Writer) error {
	c := cmd.NewChartpackCommand(out, stderr)
	return c.Execute()
}

// ExitCode extracts the exit code to finish with from an error returned by
// Run. An external tool's non-zero exit code is forwarded; everything else,
// including the no-images condition, maps to 1.
func ExitCode(err error) int {
	var exitCoder interface{ ExitCode() int }
	if errors.As(err, &exitCoder) {
		if code := exitCoder.ExitCode(); code != 0 {
			return code
		}
	}
	return 1
}
