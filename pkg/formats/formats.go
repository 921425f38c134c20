// Package formats provides parsers and writers for Wavefront OBJ meshes
// and MTL material libraries.
package formats

import "fmt"

// Note: OBJ (mesh geometry) is implemented in obj.go / obj_write.go
// Note: MTL (material library) is implemented in mtl.go

// ParseError describes a malformed line in an OBJ or MTL file.
// Parsing is fail-fast: the first bad line aborts the whole parse.
type ParseError struct {
	Line int    // 1-based line number
	Text string // raw line text
	Msg  string // what was wrong
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Msg, e.Text)
}

// parseErrorf builds a *ParseError with a formatted message.
func parseErrorf(line int, text, format string, args ...interface{}) *ParseError {
	return &ParseError{Line: line, Text: text, Msg: fmt.Sprintf(format, args...)}
}

// Color is an RGB triple with components in [0,1].
type Color struct {
	R, G, B float64
}
