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
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v2"
)

// ChartMetadata holds the Chart.yaml fields chartpack reports on.
type ChartMetadata struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// LocalChartMetadata reads Chart.yaml when the chart reference is a local
// directory. Repo-qualified chart names and unreadable metadata return false;
// the metadata only feeds an informational log line and is never required.
func LocalChartMetadata(chart string) (*ChartMetadata, bool) {
	buf, err := os.ReadFile(filepath.Join(chart, "Chart.yaml"))
	if err != nil {
		return nil, false
	}

	var metadata ChartMetadata
	if err := yaml.Unmarshal(buf, &metadata); err != nil || metadata.Name == "" {
		return nil, false
	}
	return &metadata, true
}
