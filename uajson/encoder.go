package uajson

// Encoder is a single-threaded, non-suspending JSON encoder bound to one
// output sink and one EncodingContext. It is reusable across encodings
// via reset, but must not be shared across goroutines — EncodeBatch
// gives each worker its own Encoder against the same, read-only,
// EncodingContext instead.
type Encoder struct {
	w          *writer
	ctx        *EncodingContext
	reversible bool
}

// NewEncoder returns a reversible Encoder bound to ctx.
func NewEncoder(ctx *EncodingContext) *Encoder {
	return &Encoder{w: newWriter(), ctx: ctx, reversible: true}
}

// Reset rebinds the Encoder to a fresh top-level context, discarding any
// buffered output. The EncodingContext is unchanged.
func (e *Encoder) Reset() {
	e.w.reset()
}

// SetReversible toggles reversible/non-reversible mode. Only change this
// between top-level encodings, never mid-encoding.
func (e *Encoder) SetReversible(reversible bool) {
	e.reversible = reversible
}

// Reversible reports the current mode.
func (e *Encoder) Reversible() bool { return e.reversible }

// Context returns the bound EncodingContext.
func (e *Encoder) Context() *EncodingContext { return e.ctx }

// Text materializes the JSON text written so far. Call it once per
// encoding, before the next Reset.
func (e *Encoder) Text() (string, error) {
	return e.w.text()
}

// BeginObject and EndObject are exposed directly for callers that
// assemble an enclosing object by hand. WriteStructure opens and closes
// the object around a StructureCodec's fields itself, so a codec only
// writes fields.
func (e *Encoder) BeginObject() error { return e.w.beginObject() }
func (e *Encoder) EndObject() error   { return e.w.endObject() }
func (e *Encoder) BeginArray() error  { return e.w.beginArray() }
func (e *Encoder) EndArray() error    { return e.w.endArray() }

// Name writes a field name inside the currently open object, for callers
// assembling fields by hand.
func (e *Encoder) Name(key string) error { return e.w.name(key) }

func (e *Encoder) checkDepth() error {
	return e.ctx.Limits.checkDepth(e.w.depth())
}
