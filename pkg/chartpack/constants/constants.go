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

package constants

import (
	"github.com/sirupsen/logrus"
)

const (
	// DefaultReleaseName is the synthetic release name passed to `helm
	// template`. The archive is release-agnostic, so any fixed name works.
	DefaultReleaseName = "offline"

	// DefaultManifestPath is where the rendered manifest is written.
	DefaultManifestPath = "rendered.yaml"

	// DefaultImagesPath is where the extracted image list is written.
	DefaultImagesPath = "images.txt"

	// DefaultOutputPath is where the image archive is written.
	DefaultOutputPath = "images.tar"
)

// DefaultLogLevel is the default global verbosity
const DefaultLogLevel = logrus.WarnLevel
