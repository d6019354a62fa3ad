// Package handdrawn provides an XKCD-inspired sketchy style for timelines.
//
// Job bars are drawn as slightly bent quadratic curves, markers and frames
// get jittered vertices, and text uses a comic font stack. The jitter is
// derived from a seed and the element's identity, so the same timeline
// rendered twice with the same seed is byte-identical:
//
//	style := handdrawn.New(42)
//	svg := sink.RenderSVG(fig, sink.WithStyle(style))
package handdrawn
