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
	"github.com/spf13/pflag"

	"github.com/chartpack/chartpack/pkg/chartpack/constants"
	"github.com/chartpack/chartpack/pkg/chartpack/runner"
)

// NewCmdPack describes the CLI command to run the full pipeline: render the
// chart, extract the image list, pull every image and archive them.
func NewCmdPack(out io.Writer) *cobra.Command {
	return NewCmd(out, "pack").
		WithDescription("Render a chart, then pull and archive every image it references").
		WithExample("Pack a local chart", "pack -c ./mychart").
		WithExample("Pack a chart from a repo with custom values", "pack -c stable/nginx-ingress -f values.yaml -o nginx.tar").
		WithFlags(func(f *pflag.FlagSet) {
			AddExtractFlags(f)
			f.StringVarP(&opts.OutputPath, "output", "o", constants.DefaultOutputPath, "Path to the image archive output file")
		}).
		WithRequiredFlags("chart").
		NoArgs(doPack)
}

func doPack(out io.Writer) error {
	return runner.NewRunner(opts).Run(out)
}
