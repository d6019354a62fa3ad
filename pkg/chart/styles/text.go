package styles

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

const (
	textColor  = "#333"
	charWidth  = 0.55
	minCharPad = 2.0
)

// EscapeXML escapes s for use in SVG text and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// TextWidth estimates the rendered width of s at the given font size.
func TextWidth(s string, size float64) float64 {
	return float64(len([]rune(s)))*size*charWidth + minCharPad
}

func writeText(buf *bytes.Buffer, t Text, family string) {
	anchor := t.Anchor
	if anchor == "" {
		anchor = AnchorStart
	}
	fmt.Fprintf(buf, `  <text class="%s" x="%.2f" y="%.2f" font-family="%s" font-size="%.1f" text-anchor="%s" fill="%s"`,
		EscapeXML(t.Class), t.X, t.Y, family, t.Size, anchor, textColor)
	if t.Rotate != 0 {
		fmt.Fprintf(buf, ` transform="rotate(%.1f %.2f %.2f)"`, t.Rotate, t.X, t.Y)
	}
	fmt.Fprintf(buf, ">%s</text>\n", EscapeXML(t.Content))
}
