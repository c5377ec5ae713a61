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

import "fmt"

// Color can be used to format text using ANSI escape codes so it can be printed
// to the terminal in color.
type Color int

var (
	// LightRed can format text to be displayed to the terminal in light red.
	LightRed = Color(91)
	// LightGreen can format text to be displayed to the terminal in light green.
	LightGreen = Color(92)
	// LightYellow can format text to be displayed to the terminal in light yellow.
	LightYellow = Color(93)
	// LightBlue can format text to be displayed to the terminal in light blue.
	LightBlue = Color(94)
	// Red can format text to be displayed to the terminal in red.
	Red = Color(31)
	// Green can format text to be displayed to the terminal in green.
	Green = Color(32)
	// Yellow can format text to be displayed to the terminal in yellow.
	Yellow = Color(33)
	// Blue can format text to be displayed to the terminal in blue.
	Blue = Color(34)
	// None uses the default terminal style.
	None = Color(0)

	// Default is the style used for most output.
	Default = Blue
)

// Sprint will format the operands such that they are surrounded by the ANSI
// escape sequence required to display the text in color.
func (c Color) Sprint(a ...interface{}) string {
	if c == None {
		return fmt.Sprint(a...)
	}
	text := fmt.Sprint(a...)
	return fmt.Sprintf("\033[%dm%s\033[0m", c, text)
}

// Sprintf formats according to the format specifier and wraps the result in
// the ANSI escape sequence.
func (c Color) Sprintf(format string, a ...interface{}) string {
	return c.Sprint(fmt.Sprintf(format, a...))
}
