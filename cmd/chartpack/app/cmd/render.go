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
	"io"

	"github.com/spf13/cobra"

	"github.com/chartpack/chartpack/pkg/chartpack/runner"
)

// NewCmdRender describes the CLI command to run only the render stage.
func NewCmdRender(out io.Writer) *cobra.Command {
	return NewCmd(out, "render").
		WithDescription("Render a chart and write the manifest, without pulling images").
		WithExample("Render a local chart", "render -c ./mychart -m rendered.yaml").
		WithFlags(AddRenderFlags).
		WithRequiredFlags("chart").
		NoArgs(doRender)
}

func doRender(out io.Writer) error {
	return runner.NewRunner(opts).Render(out)
}
