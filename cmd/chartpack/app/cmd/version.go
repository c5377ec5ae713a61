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
	"encoding/json"
	"io"
	"text/template"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/chartpack/chartpack/pkg/chartpack/version"
)

var versionFormat = "{{.Version}}\n"

// NewCmdVersion describes the CLI command to print the version information.
func NewCmdVersion(out io.Writer) *cobra.Command {
	return NewCmd(out, "version").
		WithDescription("Print the version information").
		WithExample("Print the full build information", "version --format '{{json .}}'").
		WithFlags(func(f *pflag.FlagSet) {
			f.StringVar(&versionFormat, "format", versionFormat, "Format of the output with go-template")
		}).
		NoArgs(doVersion)
}

func doVersion(out io.Writer) error {
	tmpl, err := template.New("version").Funcs(funcsMap()).Parse(versionFormat)
	if err != nil {
		return errors.Wrap(err, "parsing template")
	}
	if err := tmpl.Execute(out, version.Get()); err != nil {
		return errors.Wrap(err, "executing template")
	}
	return nil
}

func funcsMap() template.FuncMap {
	return template.FuncMap{
		"json": func(v interface{}) (string, error) {
			b, err := json.Marshal(v)
			return string(b), err
		},
	}
}
