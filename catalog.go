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

package colorspace

import (
	"fmt"
	"slices"
	"sync"

	"golang.org/x/exp/maps"
)

// ConvertFunc converts a colour from one colour space to another.
//
// The optional arguments carry parameters of the conversion, for example
// the peak luminance used by the JzAzBz conversions.  Functions which do
// not use extra arguments ignore them.
type ConvertFunc func(c *Color, args ...float64) *Color

// Converter converts colours between two fixed colour spaces.
// It is obtained from [Catalog.Converter].
type Converter func(c *Color, args ...float64) (*Color, error)

// Edge is a conversion registered with a [Catalog].
type Edge struct {
	From, To ID
	Convert  ConvertFunc
}

// Catalog holds a set of colour space conversions, together with the graph
// used to find chains of conversions between spaces which are not
// connected directly.
//
// The graph is derived from the registered edges by [Catalog.Build].  It is
// not updated automatically when edges are added or removed; until the
// graph is rebuilt, conversions may use a stale graph.  If a chain found in
// a stale graph uses an edge which is no longer registered, the conversion
// fails with a [NoConversionError] for the missing step.
//
// A Catalog is safe for concurrent use.
type Catalog struct {
	mu    sync.RWMutex
	edges []Edge

	// graph is replaced, never modified, once it has been published.
	graph map[ID][]ID
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Register adds a conversion from one colour space to another.
//
// No checks are performed: several conversions for the same pair of
// spaces may be registered, in which case the first one is used.
// The new edge becomes visible to path finding only after the next call
// to [Catalog.Build].
func (cat *Catalog) Register(from, to ID, fn ConvertFunc) {
	cat.mu.Lock()
	cat.edges = append(cat.edges, Edge{From: from, To: to, Convert: fn})
	cat.mu.Unlock()
}

// Clear removes all registered conversions.
// The conversion graph is not rebuilt.
func (cat *Catalog) Clear() {
	cat.mu.Lock()
	cat.edges = nil
	cat.mu.Unlock()
}

// Build rebuilds the conversion graph from the registered conversions.
func (cat *Catalog) Build() {
	cat.mu.Lock()
	cat.buildLocked()
	cat.mu.Unlock()
}

func (cat *Catalog) buildLocked() {
	graph := make(map[ID][]ID)
	for _, e := range cat.edges {
		graph[e.From] = append(graph[e.From], e.To)
	}
	cat.graph = graph
}

// Edges returns a copy of the list of registered conversions,
// in registration order.
func (cat *Catalog) Edges() []Edge {
	cat.mu.RLock()
	defer cat.mu.RUnlock()
	return slices.Clone(cat.edges)
}

// Spaces returns the sorted list of all colour spaces which occur in
// registered conversions.
func (cat *Catalog) Spaces() []ID {
	cat.mu.RLock()
	seen := make(map[ID]bool)
	for _, e := range cat.edges {
		seen[e.From] = true
		seen[e.To] = true
	}
	cat.mu.RUnlock()

	res := maps.Keys(seen)
	slices.Sort(res)
	return res
}

// FindPath returns the shortest chain of colour spaces leading from one
// space to another, using the current conversion graph.
//
// The path starts with from and ends with to.  If from equals to, the path
// consists of this single space.  If several paths of the same length exist,
// the path using the earliest registered edges is returned.
// If to cannot be reached from from, nil is returned.
//
// Paths are minimal in the number of steps, not in the numerical error of
// the resulting conversion.
func (cat *Catalog) FindPath(from, to ID) []ID {
	if from == to {
		return []ID{from}
	}

	cat.mu.RLock()
	graph := cat.graph
	cat.mu.RUnlock()

	prev := map[ID]ID{from: from}
	queue := []ID{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range graph[cur] {
			if _, seen := prev[next]; seen {
				continue
			}
			prev[next] = cur
			if next == to {
				return tracePath(prev, from, to)
			}
			queue = append(queue, next)
		}
	}
	return nil
}

func tracePath(prev map[ID]ID, from, to ID) []ID {
	path := []ID{to}
	for cur := to; cur != from; {
		cur = prev[cur]
		path = append(path, cur)
	}
	slices.Reverse(path)
	return path
}

// lookup returns the first registered conversion from one space to another.
func (cat *Catalog) lookup(from, to ID) ConvertFunc {
	cat.mu.RLock()
	defer cat.mu.RUnlock()
	for _, e := range cat.edges {
		if e.From == from && e.To == to {
			return e.Convert
		}
	}
	return nil
}

// Converter returns a function which converts colours from one colour space
// to another.
//
// If a conversion between the two spaces has been registered directly, this
// conversion is used.  Otherwise, the conversion graph is searched for a
// chain of conversions.  The steps of the chain are looked up each time the
// returned function is called, and all extra arguments are passed to every
// step.  Missing (NaN) channel values are replaced by zero before the first
// step.
func (cat *Catalog) Converter(from, to ID) (Converter, error) {
	if fn := cat.lookup(from, to); fn != nil {
		return func(c *Color, args ...float64) (*Color, error) {
			return fn(c.resolveMissing(), args...), nil
		}, nil
	}

	path := cat.FindPath(from, to)
	if len(path) < 2 {
		return nil, &NoConversionError{From: from, To: to}
	}

	conv := func(c *Color, args ...float64) (*Color, error) {
		c = c.resolveMissing()
		for i := 1; i < len(path); i++ {
			step := cat.lookup(path[i-1], path[i])
			if step == nil {
				return nil, &NoConversionError{From: path[i-1], To: path[i]}
			}
			c = step(c, args...)
		}
		return c, nil
	}
	return conv, nil
}

// Convert converts a colour into the given colour space.
//
// If the conversion graph has not been built yet, it is built first.
// The graph is not rebuilt if conversions are registered later; use
// [Catalog.Build] for this.
//
// If c is already in the space to, c itself is returned.
func (cat *Catalog) Convert(c *Color, to ID, args ...float64) (*Color, error) {
	cat.mu.Lock()
	if len(cat.graph) == 0 {
		cat.buildLocked()
	}
	cat.mu.Unlock()

	if c.Space == to {
		return c, nil
	}

	conv, err := cat.Converter(c.Space, to)
	if err != nil {
		return nil, err
	}
	return conv(c, args...)
}

// NoConversionError is returned if no conversion between two colour spaces
// is available.
type NoConversionError struct {
	From, To ID
}

func (e *NoConversionError) Error() string {
	return fmt.Sprintf("colorspace: no conversion found from %q to %q", e.From, e.To)
}

// Default is the catalog which holds the conversions between the built-in
// colour spaces.  It is used by the package-level conversion functions.
var Default = NewCatalog()

// RegisterConversion adds a conversion to the [Default] catalog.
func RegisterConversion(from, to ID, fn ConvertFunc) {
	Default.Register(from, to, fn)
}

// BuildConversionGraph rebuilds the conversion graph of the [Default]
// catalog.
func BuildConversionGraph() {
	Default.Build()
}

// ClearConversionRegistry removes all conversions from the [Default]
// catalog.  The conversion graph is not rebuilt.
func ClearConversionRegistry() {
	Default.Clear()
}

// FindConversionPath finds a chain of conversions in the [Default] catalog.
// See [Catalog.FindPath].
func FindConversionPath(from, to ID) []ID {
	return Default.FindPath(from, to)
}

// ConversionFunc returns a converter between two colour spaces, using the
// [Default] catalog.  See [Catalog.Converter].
func ConversionFunc(from, to ID) (Converter, error) {
	return Default.Converter(from, to)
}

// Convert converts a colour into the given colour space, using the
// [Default] catalog.  See [Catalog.Convert].
func Convert(c *Color, to ID, args ...float64) (*Color, error) {
	return Default.Convert(c, to, args...)
}
