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

package yq

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"

	"github.com/chartpack/chartpack/pkg/chartpack/util"
	"github.com/chartpack/chartpack/testutil"
)

func extractCommand(manifestPath string) string {
	return "yq eval -r " + ImageQuery + " " + manifestPath
}

func TestExtract(t *testing.T) {
	tests := []struct {
		description string
		output      string
		err         error
		expected    []string
		shouldErr   bool
	}{
		{
			description: "duplicates are removed and the result is sorted",
			output:      "b:1\na:1\na:1\n",
			expected:    []string{"a:1", "b:1"},
		},
		{
			description: "dedup is case-sensitive, references are not normalized",
			output:      "nginx\nNginx\nnginx:latest\n",
			expected:    []string{"Nginx", "nginx", "nginx:latest"},
		},
		{
			description: "blank lines and surrounding whitespace are dropped",
			output:      "  a:1  \n\n\nb:1\n",
			expected:    []string{"a:1", "b:1"},
		},
		{
			description: "no images",
			output:      "",
			expected:    nil,
		},
		{
			description: "yq failure is fatal",
			err:         errors.New("BUG"),
			shouldErr:   true,
		},
	}

	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			defer func(c util.Command) { util.DefaultExecCommand = c }(util.DefaultExecCommand)
			util.DefaultExecCommand = testutil.CmdRunOutErr(extractCommand("rendered.yaml"), test.output, test.err)

			images, err := Extract(&bytes.Buffer{}, "rendered.yaml")

			testutil.CheckErrorAndDeepEqual(t, test.shouldErr, err, test.expected, images)
		})
	}
}

func TestWriteImageList(t *testing.T) {
	tests := []struct {
		description string
		images      []string
		expected    string
	}{
		{
			description: "non-empty list ends with a newline",
			images:      []string{"a:1", "b:1"},
			expected:    "a:1\nb:1\n",
		},
		{
			description: "empty list writes an empty file",
			images:      nil,
			expected:    "",
		},
	}

	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "images.txt")

			err := WriteImageList(test.images, path)

			content, readErr := os.ReadFile(path)
			if readErr != nil {
				t.Fatalf("reading image list: %s", readErr)
			}
			testutil.CheckErrorAndDeepEqual(t, false, err, test.expected, string(content))
		})
	}
}
