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

package testutil

import (
	"fmt"
	"os/exec"
	"strings"
)

// FakeCmd is a fake implementation of the util.Command interface that
// checks an ordered list of expected command lines.
type FakeCmd struct {
	runs []run
}

type run struct {
	command string
	output  []byte
	err     error
}

// CmdRun expects a command to be run without output.
func CmdRun(command string) *FakeCmd {
	return new(FakeCmd).AndRun(command)
}

// CmdRunErr expects a command to be run and fail with the given error.
func CmdRunErr(command string, err error) *FakeCmd {
	return new(FakeCmd).AndRunErr(command, err)
}

// CmdRunOut expects a command to be run and produce the given output.
func CmdRunOut(command string, output string) *FakeCmd {
	return new(FakeCmd).AndRunOut(command, output)
}

// CmdRunOutErr expects a command to be run and fail with the given output and error.
func CmdRunOutErr(command string, output string, err error) *FakeCmd {
	return new(FakeCmd).AndRunOutErr(command, output, err)
}

func (c *FakeCmd) AndRun(command string) *FakeCmd {
	c.runs = append(c.runs, run{command: command})
	return c
}

func (c *FakeCmd) AndRunErr(command string, err error) *FakeCmd {
	c.runs = append(c.runs, run{command: command, err: err})
	return c
}

func (c *FakeCmd) AndRunOut(command string, output string) *FakeCmd {
	c.runs = append(c.runs, run{command: command, output: []byte(output)})
	return c
}

func (c *FakeCmd) AndRunOutErr(command string, output string, err error) *FakeCmd {
	c.runs = append(c.runs, run{command: command, output: []byte(output), err: err})
	return c
}

func (c *FakeCmd) popRun(actualCommand string) (*run, error) {
	if len(c.runs) == 0 {
		return nil, fmt.Errorf("unexpected command: %s", actualCommand)
	}

	expected := c.runs[0]
	c.runs = c.runs[1:]

	if expected.command != actualCommand {
		return nil, fmt.Errorf("expected: %s. Got: %s", expected.command, actualCommand)
	}
	return &expected, nil
}

func (c *FakeCmd) RunCmdOut(cmd *exec.Cmd) ([]byte, error) {
	expected, err := c.popRun(strings.Join(cmd.Args, " "))
	if err != nil {
		return nil, err
	}
	return expected.output, expected.err
}

func (c *FakeCmd) RunCmd(cmd *exec.Cmd) error {
	actualCommand := strings.Join(cmd.Args, " ")
	expected, err := c.popRun(actualCommand)
	if err != nil {
		return err
	}
	if expected.output != nil {
		if cmd.Stdout == nil {
			return fmt.Errorf("expected RunCmdOut(%s) to be called. Got RunCmd(%s)", expected.command, actualCommand)
		}
		cmd.Stdout.Write(expected.output)
	}
	return expected.err
}

// Remaining returns the expected commands that were never run.
func (c *FakeCmd) Remaining() []string {
	var commands []string
	for _, r := range c.runs {
		commands = append(commands, r.command)
	}
	return commands
}
