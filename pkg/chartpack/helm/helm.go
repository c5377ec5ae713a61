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

package helm

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"

	"github.com/blang/semver"
	shell "github.com/kballard/go-shellquote"
	"github.com/pkg/errors"

	"github.com/chartpack/chartpack/pkg/chartpack/color"
	"github.com/chartpack/chartpack/pkg/chartpack/constants"
	"github.com/chartpack/chartpack/pkg/chartpack/util"
)

// VersionRegex extracts version from "helm version", for instance: "v3.12.3"
var VersionRegex = regexp.MustCompile(`v?(\d[\w.\-]+)`)

// MinimumVersion is the oldest helm whose `template` command accepts a
// positional release name. Helm v2 used `--name` instead.
var MinimumVersion = semver.MustParse("3.0.0")

// BinVer returns the version of the helm binary found in PATH.
func BinVer() (semver.Version, error) {
	cmd := exec.Command("helm", "version", "--short")
	b, err := util.RunCmdOut(cmd)
	if err != nil {
		return semver.Version{}, fmt.Errorf("helm version command failed %q: %w", string(b), err)
	}
	raw := string(b)
	matches := VersionRegex.FindStringSubmatch(raw)
	if len(matches) == 0 {
		return semver.Version{}, fmt.Errorf("unable to parse output: %q", raw)
	}
	return semver.ParseTolerant(matches[1])
}

// CheckVersion fails when the helm binary in PATH is older than v3.
func CheckVersion() error {
	ver, err := BinVer()
	if err != nil {
		return err
	}
	if ver.LT(MinimumVersion) {
		return fmt.Errorf("helm version %s is too old, chartpack requires helm %s or later", ver, MinimumVersion)
	}
	return nil
}

// Render runs `helm template` on the chart and writes the rendered manifest
// to manifestPath. The release name is fixed: the resulting archive does not
// depend on it.
func Render(out io.Writer, chart, valuesFile, manifestPath string) error {
	f, err := os.Create(manifestPath)
	if err != nil {
		return errors.Wrap(err, "creating manifest file")
	}
	defer f.Close()

	args := []string{"helm", "template", constants.DefaultReleaseName, chart}
	if valuesFile != "" {
		args = append(args, "-f", valuesFile)
	}
	color.Default.Fprintln(out, "+", shell.Join(args...))

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdout = f
	cmd.Stderr = os.Stderr

	if err := util.RunCmd(cmd); err != nil {
		return errors.Wrapf(err, "rendering chart %s", chart)
	}
	return nil
}
