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

// Package runner drives the render, extract, pull and save stages of the
// packing pipeline, strictly in that order.
package runner

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/chartpack/chartpack/pkg/chartpack/color"
	"github.com/chartpack/chartpack/pkg/chartpack/docker"
	"github.com/chartpack/chartpack/pkg/chartpack/helm"
	"github.com/chartpack/chartpack/pkg/chartpack/yq"
)

// Options configures a single pipeline run. All output paths are created
// fresh on every run; nothing persists between runs.
type Options struct {
	// Chart is a chart directory path or a repo-qualified chart name.
	Chart string

	// ValuesFile optionally overrides the chart's default values.
	ValuesFile string

	// ManifestPath is where the rendered manifest is written.
	ManifestPath string

	// ImagesPath is where the extracted image list is written.
	ImagesPath string

	// OutputPath is where the image archive is written.
	OutputPath string
}

// Runner executes the packing pipeline for one chart.
type Runner struct {
	opts Options
}

func NewRunner(opts Options) *Runner {
	return &Runner{opts: opts}
}

// Render runs the render stage: the chart is templated with a fixed release
// name and the manifest is written to ManifestPath.
func (r *Runner) Render(out io.Writer) error {
	if err := helm.CheckVersion(); err != nil {
		return err
	}

	if metadata, ok := helm.LocalChartMetadata(r.opts.Chart); ok {
		logrus.Infof("packing chart %s, version %s", metadata.Name, metadata.Version)
	}

	return helm.Render(out, r.opts.Chart, r.opts.ValuesFile, r.opts.ManifestPath)
}

// Extract runs the render and extract stages and persists the image list to
// ImagesPath. It returns yq.ErrNoImages when the manifest references no
// images; later stages must not run in that case.
func (r *Runner) Extract(out io.Writer) ([]string, error) {
	if err := r.Render(out); err != nil {
		return nil, err
	}

	images, err := yq.Extract(out, r.opts.ManifestPath)
	if err != nil {
		return nil, err
	}

	if err := yq.WriteImageList(images, r.opts.ImagesPath); err != nil {
		return nil, err
	}

	if len(images) == 0 {
		return nil, yq.ErrNoImages
	}
	return images, nil
}

// Run executes the full pipeline: render, extract, pull, save. The first
// failing stage aborts the run.
func (r *Runner) Run(out io.Writer) error {
	images, err := r.Extract(out)
	if err != nil {
		return err
	}

	color.Default.Fprintln(out, "Found images:")
	for _, image := range images {
		color.Default.Fprintf(out, "  %s\n", image)
	}

	if err := docker.Pull(out, images); err != nil {
		return err
	}

	if err := docker.Save(out, images, r.opts.OutputPath); err != nil {
		return err
	}

	color.Green.Fprintf(out, "Done. Images saved to %s\n", r.opts.OutputPath)
	return nil
}
