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

package color

import (
	"bytes"
	"io"
	"testing"

	"github.com/chartpack/chartpack/testutil"
)

func compareText(t *testing.T, expected, actual string, expectedN int, actualN int, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("did not expect error when formatting text but got %s", err)
	}
	if actual != expected {
		t.Errorf("formatting not applied to text. Expected %q but got %q", expected, actual)
	}
	if actualN != expectedN {
		t.Errorf("expected %d bytes written, but got %d", expectedN, actualN)
	}
}

func useTerminal(t *testing.T, isTerminal bool) {
	t.Helper()
	prev := IsTerminal
	IsTerminal = func(_ io.Writer) bool { return isTerminal }
	t.Cleanup(func() { IsTerminal = prev })
}

func TestFprint(t *testing.T) {
	useTerminal(t, true)

	var b bytes.Buffer
	n, err := Green.Fprint(&b, "It's not easy being")
	expected := "\033[32mIt's not easy being\033[0m"
	compareText(t, expected, b.String(), len(expected), n, err)
}

func TestFprintln(t *testing.T) {
	useTerminal(t, true)

	var b bytes.Buffer
	n, err := Green.Fprintln(&b, "2", "less", "chars!")
	expected := "\033[32m2 less chars!\033[0m\n"
	compareText(t, expected, b.String(), len(expected), n, err)
}

func TestFprintf(t *testing.T) {
	useTerminal(t, true)

	var b bytes.Buffer
	n, err := Green.Fprintf(&b, "It's been %d %s", 1, "week")
	expected := "\033[32mIt's been 1 week\033[0m"
	compareText(t, expected, b.String(), len(expected), n, err)
}

func TestFprintNoTTY(t *testing.T) {
	useTerminal(t, false)

	var b bytes.Buffer
	expected := "It's not easy being"
	n, err := Green.Fprint(&b, expected)
	compareText(t, expected, b.String(), len(expected), n, err)
}

func TestFprintlnNoTTY(t *testing.T) {
	useTerminal(t, false)

	var b bytes.Buffer
	n, err := Green.Fprintln(&b, "2", "less", "chars!")
	expected := "2 less chars!\n"
	compareText(t, expected, b.String(), len(expected), n, err)
}

func TestFprintfNoTTY(t *testing.T) {
	useTerminal(t, false)

	var b bytes.Buffer
	n, err := Green.Fprintf(&b, "It's been %d %s", 1, "week")
	expected := "It's been 1 week"
	compareText(t, expected, b.String(), len(expected), n, err)
}

func TestSprintNone(t *testing.T) {
	testutil.CheckDeepEqual(t, "plain", None.Sprint("plain"))
}
