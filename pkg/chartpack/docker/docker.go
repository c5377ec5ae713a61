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

// Package docker pulls and archives images through the docker CLI.
package docker

import (
	"io"
	"os/exec"

	shell "github.com/kballard/go-shellquote"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/chartpack/chartpack/pkg/chartpack/color"
	"github.com/chartpack/chartpack/pkg/chartpack/util"
)

// Pull fetches each image in order with `docker pull`. Pulls are strictly
// sequential and the first failure aborts the remaining ones.
func Pull(out io.Writer, images []string) error {
	for _, image := range images {
		color.Green.Fprintf(out, "Pulling %s\n", image)

		args := []string{"docker", "pull", image}
		color.Default.Fprintln(out, "+", shell.Join(args...))

		cmd := exec.Command(args[0], args[1:]...)
		cmd.Stdout = out
		cmd.Stderr = out

		if err := util.RunCmd(cmd); err != nil {
			return errors.Wrapf(err, "pulling %s", image)
		}
	}
	return nil
}

// Save bundles all images into a single tar archive with `docker save`.
// An empty image list is a no-op: the pipeline aborts before ever getting
// here without images, so only log it.
func Save(out io.Writer, images []string, output string) error {
	if len(images) == 0 {
		logrus.Warn("no images to save, skipping docker save")
		return nil
	}

	args := append([]string{"docker", "save", "-o", output}, images...)
	color.Default.Fprintln(out, "+", shell.Join(args...))

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdout = out
	cmd.Stderr = out

	if err := util.RunCmd(cmd); err != nil {
		return errors.Wrapf(err, "saving images to %s", output)
	}
	return nil
}
