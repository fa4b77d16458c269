// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

// A FormatError reports that the input is not a valid TrueType font, or
// that a structural invariant (an offset, a length, a required table) was
// violated.
type FormatError string

func (e FormatError) Error() string {
	return "truetype: invalid font: " + string(e)
}

// An UnsupportedError reports that the input uses a valid but unimplemented
// TrueType feature, such as a CFF outline or an unrecognized cmap format.
type UnsupportedError string

func (e UnsupportedError) Error() string {
	return "truetype: unsupported feature: " + string(e)
}

// A HintingError reports that the bytecode interpreter could not finish
// running a program: division by zero, or a step/stack budget was exceeded.
type HintingError string

func (e HintingError) Error() string {
	return "truetype: hinting: " + string(e)
}

// DivideByZero is returned when hinting bytecode executes DIV with a zero
// divisor. It is returned from Parse (when the font program divides by
// zero) or from NewInstance (when the control value program does).
const DivideByZero = HintingError("division by zero")

// HintingAborted is returned when the interpreter exceeds its instruction
// step budget or its call-stack depth, which is how malformed or
// adversarial bytecode (infinite loops, unbounded recursion) is bounded.
const HintingAborted = HintingError("aborted: instruction budget or call depth exceeded")
