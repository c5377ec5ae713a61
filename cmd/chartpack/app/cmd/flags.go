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
	flag "github.com/spf13/pflag"

	"github.com/chartpack/chartpack/pkg/chartpack/constants"
)

// AddRenderFlags registers the flags shared by every command that renders
// a chart.
func AddRenderFlags(f *flag.FlagSet) {
	f.StringVarP(&opts.Chart, "chart", "c", "", "Path to a chart directory, or a repo-qualified chart name")
	f.StringVarP(&opts.ValuesFile, "values", "f", "", "Values file for the chart (optional)")
	f.StringVarP(&opts.ManifestPath, "manifest", "m", constants.DefaultManifestPath, "Path to the rendered manifest output file")
}

// AddExtractFlags registers the flags shared by every command that extracts
// the image list.
func AddExtractFlags(f *flag.FlagSet) {
	AddRenderFlags(f)
	f.StringVarP(&opts.ImagesPath, "images-file", "i", constants.DefaultImagesPath, "Path to the image list output file")
}
