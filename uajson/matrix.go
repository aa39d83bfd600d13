package uajson

import "github.com/amine-amaach/opcua-json-codec/ua"

// WriteMatrix emits a Matrix encoded outside a Variant wrapper: nested
// JSON arrays of the matrix's rank, with no envelope and no dimensions
// field — the shape is implicit in the nesting. Use WriteVariant instead
// when the matrix is itself a Variant's payload; that form adds the
// Type/Dimensions envelope in reversible mode.
func (e *Encoder) WriteMatrix(m ua.Matrix) error {
	if err := e.checkDepth(); err != nil {
		return err
	}
	return e.writeMatrixShape(m.TypeID, m.Dimensions, m.Elements)
}

// WriteMatrixField emits a Matrix as a keyed object field.
func (e *Encoder) WriteMatrixField(key string, m ua.Matrix) error {
	if err := e.w.name(key); err != nil {
		return err
	}
	return e.WriteMatrix(m)
}
