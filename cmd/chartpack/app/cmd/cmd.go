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

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/chartpack/chartpack/pkg/chartpack/constants"
	"github.com/chartpack/chartpack/pkg/chartpack/runner"
)

var (
	opts runner.Options
	v    string
)

var rootCmd = &cobra.Command{
	Use:           "chartpack",
	Short:         "Pull and archive the container images referenced by a Helm chart, for offline use.",
	SilenceErrors: true,
	SilenceUsage:  true,
}

func NewChartpackCommand(out, stderr io.Writer) *cobra.Command {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return SetUpLogs(stderr, v)
	}

	rootCmd.AddCommand(NewCmdPack(out))
	rootCmd.AddCommand(NewCmdRender(out))
	rootCmd.AddCommand(NewCmdExtract(out))
	rootCmd.AddCommand(NewCmdVersion(out))
	rootCmd.AddCommand(NewCmdCompletion(out))

	rootCmd.PersistentFlags().StringVarP(&v, "verbosity", "v", constants.DefaultLogLevel.String(), "Log level (debug, info, warn, error, fatal, panic)")
	return rootCmd
}

func SetUpLogs(stdErr io.Writer, level string) error {
	logrus.SetOutput(stdErr)
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Wrap(err, "parsing log level")
	}
	logrus.SetLevel(lvl)
	return nil
}
