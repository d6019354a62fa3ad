// Package styles defines how timeline primitives are written as SVG.
//
// The sink package maps data coordinates to pixels and hands each primitive
// (job segment, end marker, text, frame) to a [Style]. Two styles ship:
//
//   - [Simple]: crisp strokes and a sans-serif font
//   - handdrawn: wobbly, seeded strokes and a comic font
//
// All coordinates passed to a Style are SVG pixels with y pointing down.
package styles
