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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/blang/semver"
	"github.com/pkg/errors"

	"github.com/chartpack/chartpack/pkg/chartpack/util"
	"github.com/chartpack/chartpack/testutil"
)

func TestBinVer(t *testing.T) {
	tests := []struct {
		description string
		output      string
		expected    semver.Version
		shouldErr   bool
	}{
		{
			description: "helm 3 short output",
			output:      "v3.12.3+gc8b9489\n",
			expected:    semver.MustParse("3.12.3"),
		},
		{
			description: "helm 2 short output",
			output:      "Client: v2.17.0+ga690bad\n",
			expected:    semver.MustParse("2.17.0"),
		},
		{
			description: "no version in output",
			output:      "unknown\n",
			shouldErr:   true,
		},
	}

	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			defer func(c util.Command) { util.DefaultExecCommand = c }(util.DefaultExecCommand)
			util.DefaultExecCommand = testutil.CmdRunOut("helm version --short", test.output)

			ver, err := BinVer()

			testutil.CheckErrorAndDeepEqual(t, test.shouldErr, err, test.expected, ver)
		})
	}
}

func TestCheckVersion(t *testing.T) {
	tests := []struct {
		description string
		output      string
		err         error
		shouldErr   bool
	}{
		{
			description: "helm 3 is accepted",
			output:      "v3.12.3+gc8b9489\n",
		},
		{
			description: "helm 2 is too old",
			output:      "Client: v2.17.0+ga690bad\n",
			shouldErr:   true,
		},
		{
			description: "helm not runnable",
			err:         errors.New("executable file not found"),
			shouldErr:   true,
		},
	}

	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			defer func(c util.Command) { util.DefaultExecCommand = c }(util.DefaultExecCommand)
			util.DefaultExecCommand = testutil.CmdRunOutErr("helm version --short", test.output, test.err)

			err := CheckVersion()

			testutil.CheckError(t, test.shouldErr, err)
		})
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		description string
		chart       string
		valuesFile  string
		command     string
		manifest    string
		err         error
		shouldErr   bool
	}{
		{
			description: "render local chart",
			chart:       "./mychart",
			command:     "helm template offline ./mychart",
			manifest:    "apiVersion: v1\nkind: Pod\n",
		},
		{
			description: "render with values file",
			chart:       "stable/nginx",
			valuesFile:  "values.yaml",
			command:     "helm template offline stable/nginx -f values.yaml",
			manifest:    "kind: Deployment\n",
		},
		{
			description: "helm failure is fatal",
			chart:       "./broken",
			command:     "helm template offline ./broken",
			err:         errors.New("BUG"),
			shouldErr:   true,
		},
	}

	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			defer func(c util.Command) { util.DefaultExecCommand = c }(util.DefaultExecCommand)
			util.DefaultExecCommand = testutil.CmdRunOutErr(test.command, test.manifest, test.err)

			manifestPath := filepath.Join(t.TempDir(), "rendered.yaml")
			var out bytes.Buffer

			err := Render(&out, test.chart, test.valuesFile, manifestPath)

			testutil.CheckError(t, test.shouldErr, err)
			if test.shouldErr {
				return
			}

			content, err := os.ReadFile(manifestPath)
			if err != nil {
				t.Fatalf("reading manifest: %s", err)
			}
			testutil.CheckDeepEqual(t, test.manifest, string(content))
			testutil.CheckDeepEqual(t, "+ "+test.command+"\n", out.String())
		})
	}
}
