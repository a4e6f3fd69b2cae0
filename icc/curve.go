// seehuhn.de/go/colorspace - colour spaces and conversions between them
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package icc

import (
	"math"
	"sort"
	"sync"
)

// Curve is a one-dimensional transfer function, as used for the tone
// reproduction curves (TRCs) of ICC profiles.
//
// Exactly one of the following representations is used, in this order of
// precedence:
//   - Table: a sampled curve (curveType with n>1)
//   - FuncType and Params: a parametric curve (parametricCurveType)
//   - Gamma: y = x^Gamma (curveType with n=1, or n=0 for Gamma 1)
//
// A Curve must not be modified once it is in use.  It is then safe for
// concurrent use.
type Curve struct {
	Gamma float64

	// FuncType selects one of the ICC parametric functions, with
	// coefficients Params = [g, a, b, c, d, e, f]:
	//   - type 0: y = x^g
	//   - type 1: y = (ax+b)^g for x >= -b/a, else y = 0
	//   - type 2: y = (ax+b)^g + c for x >= -b/a, else y = c
	//   - type 3: y = (ax+b)^g for x >= d, else y = cx
	//   - type 4: y = (ax+b)^g + e for x >= d, else y = cx + f
	FuncType int
	Params   []float64

	// Table holds evenly spaced samples for inputs from 0 to 1.
	Table []uint16

	inverseOnce  sync.Once
	inverseTable []float64
}

var numParams = [5]int{1, 3, 4, 5, 7}

// DecodeCurve decodes a curveType or parametricCurveType tag.
func DecodeCurve(data []byte) (*Curve, error) {
	if len(data) < 12 {
		return nil, errInvalidTagData
	}

	switch string(data[0:4]) {
	case "curv":
		n := getUint32(data, 8)
		switch {
		case n == 0:
			return &Curve{Gamma: 1}, nil
		case n == 1:
			if len(data) < 14 {
				return nil, errInvalidTagData
			}
			// u8Fixed8Number
			return &Curve{Gamma: float64(getUint16(data, 12)) / 256}, nil
		case uint64(len(data)) < 12+2*uint64(n):
			return nil, errInvalidTagData
		}
		table := make([]uint16, n)
		for i := range table {
			table[i] = getUint16(data, 12+2*i)
		}
		return &Curve{Table: table}, nil

	case "para":
		funcType := int(getUint16(data, 8))
		if funcType >= len(numParams) {
			return nil, errInvalidTagData
		}
		n := numParams[funcType]
		if len(data) < 12+4*n {
			return nil, errInvalidTagData
		}
		params := make([]float64, n)
		for i := range params {
			params[i] = getS15Fixed16(data, 12+4*i)
		}
		return &Curve{FuncType: funcType, Params: params}, nil

	default:
		return nil, errUnexpectedType
	}
}

// Encode converts the curve to ICC tag data.
func (c *Curve) Encode() []byte {
	switch {
	case c.Table != nil:
		buf := make([]byte, 12+2*len(c.Table))
		copy(buf, "curv")
		putUint32(buf, 8, uint32(len(c.Table)))
		for i, v := range c.Table {
			putUint16(buf, 12+2*i, v)
		}
		return buf
	case c.Params != nil:
		n := len(c.Params)
		if c.FuncType < len(numParams) {
			n = min(n, numParams[c.FuncType])
		}
		buf := make([]byte, 12+4*n)
		copy(buf, "para")
		putUint16(buf, 8, uint16(c.FuncType))
		for i := range n {
			putS15Fixed16(buf, 12+4*i, c.Params[i])
		}
		return buf
	case c.Gamma == 1:
		buf := make([]byte, 12)
		copy(buf, "curv")
		return buf
	default:
		buf := make([]byte, 14)
		copy(buf, "curv")
		putUint32(buf, 8, 1)
		putUint16(buf, 12, uint16(math.Round(c.Gamma*256)))
		return buf
	}
}

// Evaluate computes the output value for an input value x in [0, 1].
// Inputs and outputs are clamped to [0, 1], as required by the ICC
// specification.
func (c *Curve) Evaluate(x float64) float64 {
	return clamp(c.eval(clamp(x, 0, 1)), 0, 1)
}

// Invert computes the input value for an output value y in [0, 1].
// This is the inverse of Evaluate.
func (c *Curve) Invert(y float64) float64 {
	return clamp(c.invert(clamp(y, 0, 1)), 0, 1)
}

// EvaluateSigned evaluates the curve without clamping, for use with
// extended-range colour values.  Negative inputs are mapped to the negative
// of the output for -x.  Parametric and gamma curves are extended beyond 1
// using their formula, sampled curves are clamped.
func (c *Curve) EvaluateSigned(x float64) float64 {
	if x < 0 {
		return -c.EvaluateSigned(-x)
	}
	if c.Table != nil {
		return c.Evaluate(x)
	}
	return c.eval(x)
}

// InvertSigned is the inverse of EvaluateSigned.
func (c *Curve) InvertSigned(y float64) float64 {
	if y < 0 {
		return -c.InvertSigned(-y)
	}
	if c.Table != nil {
		return c.Invert(y)
	}
	return c.invert(y)
}

// IsIdentity returns true if the curve maps every input to itself.
func (c *Curve) IsIdentity() bool {
	switch {
	case c.Table != nil:
		return false
	case c.Params != nil:
		return c.FuncType == 0 && c.Params[0] == 1
	default:
		return c.Gamma == 1
	}
}

func (c *Curve) eval(x float64) float64 {
	switch {
	case c.Table != nil:
		return c.evalSampled(x)
	case c.Params != nil:
		return c.evalParametric(x)
	case c.Gamma != 0:
		if x <= 0 {
			return 0
		}
		return math.Pow(x, c.Gamma)
	default:
		return x
	}
}

func (c *Curve) param(i int) float64 {
	if i < len(c.Params) {
		return c.Params[i]
	}
	return 0
}

func (c *Curve) evalParametric(x float64) float64 {
	g, a, b := c.param(0), c.param(1), c.param(2)
	pow := func(v float64) float64 {
		if v <= 0 {
			return 0
		}
		return math.Pow(v, g)
	}

	switch c.FuncType {
	case 0:
		return pow(x)
	case 1:
		if x >= -b/a {
			return pow(a*x + b)
		}
		return 0
	case 2:
		cc := c.param(3)
		if x >= -b/a {
			return pow(a*x+b) + cc
		}
		return cc
	case 3:
		cc, d := c.param(3), c.param(4)
		if x >= d {
			return pow(a*x + b)
		}
		return cc * x
	case 4:
		cc, d, e, f := c.param(3), c.param(4), c.param(5), c.param(6)
		if x >= d {
			return pow(a*x+b) + e
		}
		return cc*x + f
	}
	return x
}

func (c *Curve) invert(y float64) float64 {
	switch {
	case c.Table != nil:
		return c.invertSampled(y)
	case c.Params != nil:
		return c.invertParametric(y)
	case c.Gamma != 0:
		if y <= 0 {
			return 0
		}
		return math.Pow(y, 1/c.Gamma)
	default:
		return y
	}
}

func (c *Curve) invertParametric(y float64) float64 {
	g, a, b := c.param(0), c.param(1), c.param(2)
	if g == 0 || a == 0 && c.FuncType != 0 {
		return 0
	}
	root := func(v float64) float64 {
		if v <= 0 {
			return 0
		}
		return math.Pow(v, 1/g)
	}

	switch c.FuncType {
	case 0:
		return root(y)
	case 1:
		return (root(y) - b) / a
	case 2:
		return (root(y-c.param(3)) - b) / a
	case 3:
		cc, d := c.param(3), c.param(4)
		if y < cc*d {
			if cc == 0 {
				return 0
			}
			return y / cc
		}
		return (root(y) - b) / a
	case 4:
		cc, d, e, f := c.param(3), c.param(4), c.param(5), c.param(6)
		if y < cc*d+f {
			if cc == 0 {
				return 0
			}
			return (y - f) / cc
		}
		return (root(y-e) - b) / a
	}
	return y
}

func (c *Curve) evalSampled(x float64) float64 {
	n := len(c.Table)
	if n == 1 {
		return float64(c.Table[0]) / 65535
	}
	pos := x * float64(n-1)
	idx := int(pos)
	if idx >= n-1 {
		return float64(c.Table[n-1]) / 65535
	}
	frac := pos - float64(idx)
	v0 := float64(c.Table[idx]) / 65535
	v1 := float64(c.Table[idx+1]) / 65535
	return v0 + frac*(v1-v0)
}

func (c *Curve) invertSampled(y float64) float64 {
	c.inverseOnce.Do(c.buildInverseTable)

	n := len(c.inverseTable)
	pos := y * float64(n-1)
	idx := int(pos)
	if idx >= n-1 {
		return c.inverseTable[n-1]
	}
	frac := pos - float64(idx)
	return c.inverseTable[idx] + frac*(c.inverseTable[idx+1]-c.inverseTable[idx])
}

// buildInverseTable tabulates the inverse of a monotonic sampled curve.
func (c *Curve) buildInverseTable() {
	const invSize = 4096
	inv := make([]float64, invSize)
	n := len(c.Table)

	for i := range inv {
		target := uint16(float64(i) / (invSize - 1) * 65535)

		// smallest idx with Table[idx] >= target
		idx := sort.Search(n, func(j int) bool {
			return c.Table[j] >= target
		})

		switch {
		case idx == 0:
			inv[i] = 0
		case idx >= n:
			inv[i] = 1
		default:
			v0 := float64(c.Table[idx-1])
			v1 := float64(c.Table[idx])
			if v1 == v0 {
				inv[i] = float64(idx) / float64(n-1)
			} else {
				frac := (float64(target) - v0) / (v1 - v0)
				inv[i] = (float64(idx-1) + frac) / float64(n-1)
			}
		}
	}
	c.inverseTable = inv
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
