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

// Package yq extracts container image references from a rendered manifest
// by delegating the tree walk to the yq binary.
package yq

import (
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"

	shell "github.com/kballard/go-shellquote"
	"github.com/pkg/errors"

	"github.com/chartpack/chartpack/pkg/chartpack/color"
	"github.com/chartpack/chartpack/pkg/chartpack/util"
)

// ImageQuery walks every node of the manifest and yields its non-empty
// `image` field, one match per line. Requires yq v4.
const ImageQuery = `.. | .image? // "" | select(. != "")`

// ErrNoImages is returned when the rendered manifest references no images.
var ErrNoImages = errors.New("no images found in rendered manifest")

// Extract runs yq over the manifest and returns the referenced images,
// deduplicated by exact string match and sorted lexicographically. Image
// references are not normalized: `nginx` and `nginx:latest` stay distinct.
func Extract(out io.Writer, manifestPath string) ([]string, error) {
	args := []string{"yq", "eval", "-r", ImageQuery, manifestPath}
	color.Default.Fprintln(out, "+", shell.Join(args...))

	cmd := exec.Command(args[0], args[1:]...)
	b, err := util.RunCmdOut(cmd)
	if err != nil {
		return nil, errors.Wrap(err, "extracting images")
	}

	seen := map[string]bool{}
	var images []string
	for _, line := range strings.Split(string(b), "\n") {
		image := strings.TrimSpace(line)
		if image == "" || seen[image] {
			continue
		}
		seen[image] = true
		images = append(images, image)
	}
	sort.Strings(images)

	return images, nil
}

// WriteImageList persists the image list as newline-separated text. A
// non-empty list ends with a trailing newline; an empty list writes an
// empty file.
func WriteImageList(images []string, path string) error {
	content := strings.Join(images, "\n")
	if len(images) > 0 {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.Wrap(err, "writing image list")
	}
	return nil
}
