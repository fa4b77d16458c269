// Copyright 2012 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

import "golang.org/x/image/math/fixed"

// f26dot6 is a 26.6 fixed point number: the rasterizer's and hinting VM's
// native unit. We reuse golang.org/x/image/math/fixed's type instead of a
// hand-rolled one so that the public API composes with the rest of the
// golang.org/x/image ecosystem (see face.go).
type f26dot6 = fixed.Int26_6

// f2dot14 is a 2.14 fixed point number, used for unit vectors (projection,
// freedom, dual projection).
type f2dot14 int16

// f10dot22 is a 10.22 fixed point number, used for the FUnit-to-pixel scale
// factor derived from ppem and unitsPerEm (§3 "Instance").
type f10dot22 int32

func roundedDiv64(a, b int64) int64 {
	if b == 0 {
		return 0
	}
	neg := (a < 0) != (b < 0)
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	q := (a + b/2) / b
	if neg {
		q = -q
	}
	return q
}

// fixMul computes (a*b) with the given binary-point shift applied to the
// product, rounding to nearest. This is the spec's generic "FIX_MUL".
func fixMul(a, b int64, shift uint) int64 {
	neg := (a < 0) != (b < 0)
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	half := int64(1) << (shift - 1)
	p := (a*b + half) >> shift
	if neg {
		p = -p
	}
	return p
}

// scaleForPPEM computes the §3 instance scale, scale = round(ppem*2^22/upem),
// a 10.22 fixed point number.
func scaleForPPEM(ppem int, unitsPerEm int32) f10dot22 {
	return f10dot22(roundedDiv64(int64(ppem)<<22, int64(unitsPerEm)))
}

// funitsToPixels converts a FUnit value to 26.6 pixel units given an
// instance scale, per §3: funits * scale, a 10.22 x 26.6(funits<<6)
// product shifted back down by 22 bits.
func funitsToPixels(funits int32, scale f10dot22) f26dot6 {
	return f26dot6(fixMul(int64(funits)<<6, int64(scale), 22))
}

func (x f26dot6) abs() f26dot6 {
	if x < 0 {
		return -x
	}
	return x
}

func f26dot6Mul(a, b f26dot6) f26dot6 {
	return f26dot6(fixMul(int64(a), int64(b), 6))
}

func f26dot6Div(a, b f26dot6) f26dot6 {
	if b == 0 {
		return 0
	}
	neg := (a < 0) != (b < 0)
	aa, bb := int64(a), int64(b)
	if aa < 0 {
		aa = -aa
	}
	if bb < 0 {
		bb = -bb
	}
	q := (aa << 6) / bb
	if neg {
		q = -q
	}
	return f26dot6(q)
}

func dotProduct(x, y f26dot6, v [2]f2dot14) f26dot6 {
	return f26dot6(fixMul(int64(x), int64(v[0]), 14) + fixMul(int64(y), int64(v[1]), 14))
}
