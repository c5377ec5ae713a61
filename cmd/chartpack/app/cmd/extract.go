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

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chartpack/chartpack/pkg/chartpack/runner"
)

// NewCmdExtract describes the CLI command to render a chart and print the
// unique, sorted list of images it references.
func NewCmdExtract(out io.Writer) *cobra.Command {
	return NewCmd(out, "extract").
		WithDescription("Render a chart and list every image it references").
		WithExample("List the images of a local chart", "extract -c ./mychart").
		WithFlags(AddExtractFlags).
		WithRequiredFlags("chart").
		NoArgs(doExtract)
}

func doExtract(out io.Writer) error {
	images, err := runner.NewRunner(opts).Extract(out)
	if err != nil {
		return err
	}
	for _, image := range images {
		fmt.Fprintln(out, image)
	}
	return nil
}
