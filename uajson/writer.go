package uajson

import (
	"fmt"
	"io"

	"github.com/djherbis/buffer"
)

const defaultSinkSize = 4096

// sinkPool backs every writer's growable output buffer with pooled
// memory chunks, the same pattern the teacher's vendored OPC UA server
// uses for its binary-protocol send/receive buffers
// (bufferPool = buffer.NewMemPoolAt(...), buffer.NewPartitionAt(bufferPool)).
var sinkPool = buffer.NewMemPoolAt(int64(defaultSinkSize))

type containerKind byte

const (
	containerTop containerKind = iota
	containerObject
	containerArray
)

type frame struct {
	kind        containerKind
	count       int
	expectValue bool
}

// writer emits well-formed JSON tokens: it tracks a stack of container
// contexts and inserts commas and colons automatically. It never
// interprets the values it is given; primitive and composite emitters
// above it are responsible for formatting.
type writer struct {
	sink  buffer.Buffer
	stack []frame
}

func newWriter() *writer {
	w := &writer{sink: buffer.NewPartitionAt(sinkPool)}
	w.stack = append(w.stack, frame{kind: containerTop})
	return w
}

// reset discards any buffered output and returns the writer to a fresh
// top-level context, ready for the next encoding.
func (w *writer) reset() {
	w.sink.Reset()
	w.stack = w.stack[:1]
	w.stack[0] = frame{kind: containerTop}
}

func (w *writer) depth() int {
	return len(w.stack) - 1
}

func (w *writer) writeRaw(s string) error {
	if _, err := w.sink.Write([]byte(s)); err != nil {
		return wrapError(SinkFailure, err, "sink write failed")
	}
	return nil
}

func (w *writer) writeByte(c byte) error {
	if _, err := w.sink.Write([]byte{c}); err != nil {
		return wrapError(SinkFailure, err, "sink write failed")
	}
	return nil
}

// writeJSONString writes s as a double-quoted, RFC 7159-escaped JSON
// string token. It does not participate in comma/colon bookkeeping —
// callers emitting a bare string value go through valuePrologue first.
func (w *writer) writeJSONString(s string) error {
	if err := w.writeByte('"'); err != nil {
		return err
	}
	for _, r := range s {
		switch r {
		case '"':
			if err := w.writeRaw(`\"`); err != nil {
				return err
			}
		case '\\':
			if err := w.writeRaw(`\\`); err != nil {
				return err
			}
		case '\n':
			if err := w.writeRaw(`\n`); err != nil {
				return err
			}
		case '\r':
			if err := w.writeRaw(`\r`); err != nil {
				return err
			}
		case '\t':
			if err := w.writeRaw(`\t`); err != nil {
				return err
			}
		default:
			if r < 0x20 {
				if err := w.writeRaw(fmt.Sprintf(`\u%04x`, r)); err != nil {
					return err
				}
				continue
			}
			if _, err := w.sink.Write([]byte(string(r))); err != nil {
				return wrapError(SinkFailure, err, "sink write failed")
			}
		}
	}
	return w.writeByte('"')
}

// valuePrologue inserts the comma/expectValue bookkeeping that must
// happen immediately before any value token (scalar, object, or array)
// is written. It fails with InvalidState if a keyed value is attempted
// without a preceding name().
func (w *writer) valuePrologue() error {
	top := &w.stack[len(w.stack)-1]
	if top.kind == containerObject {
		if !top.expectValue {
			return newError(InvalidState, "value written inside an object without a preceding name")
		}
		top.expectValue = false
	} else if top.count > 0 {
		if err := w.writeByte(','); err != nil {
			return err
		}
	}
	top.count++
	return nil
}

// name writes a field name inside the currently open object. It is
// illegal outside an object, or when the previous name has not yet
// received its value.
func (w *writer) name(key string) error {
	top := &w.stack[len(w.stack)-1]
	if top.kind != containerObject {
		return newError(InvalidState, "name %q written outside an open object", key)
	}
	if top.expectValue {
		return newError(InvalidState, "name %q written before the previous field's value", key)
	}
	if top.count > 0 {
		if err := w.writeByte(','); err != nil {
			return err
		}
	}
	if err := w.writeJSONString(key); err != nil {
		return err
	}
	top.expectValue = true
	return w.writeByte(':')
}

func (w *writer) beginObject() error {
	if err := w.valuePrologue(); err != nil {
		return err
	}
	if err := w.writeByte('{'); err != nil {
		return err
	}
	w.stack = append(w.stack, frame{kind: containerObject})
	return nil
}

func (w *writer) endObject() error {
	top := &w.stack[len(w.stack)-1]
	if top.kind != containerObject {
		return newError(InvalidState, "endObject called without a matching beginObject")
	}
	if top.expectValue {
		return newError(InvalidState, "object closed with a name awaiting its value")
	}
	w.stack = w.stack[:len(w.stack)-1]
	return w.writeByte('}')
}

func (w *writer) beginArray() error {
	if err := w.valuePrologue(); err != nil {
		return err
	}
	if err := w.writeByte('['); err != nil {
		return err
	}
	w.stack = append(w.stack, frame{kind: containerArray})
	return nil
}

func (w *writer) endArray() error {
	top := &w.stack[len(w.stack)-1]
	if top.kind != containerArray {
		return newError(InvalidState, "endArray called without a matching beginArray")
	}
	w.stack = w.stack[:len(w.stack)-1]
	return w.writeByte(']')
}

// writeValueRaw emits a pre-formatted JSON value token (a number literal,
// `true`/`false`/`null`, or an already-escaped string) as the current
// value slot.
func (w *writer) writeValueRaw(token string) error {
	if err := w.valuePrologue(); err != nil {
		return err
	}
	return w.writeRaw(token)
}

// writeValueString emits s as a JSON string in the current value slot.
func (w *writer) writeValueString(s string) error {
	if err := w.valuePrologue(); err != nil {
		return err
	}
	return w.writeJSONString(s)
}

// text materializes everything written so far. It drains the underlying
// sink; call it once, at the end of an encoding pass, before reset.
func (w *writer) text() (string, error) {
	data, err := io.ReadAll(w.sink)
	if err != nil {
		return "", wrapError(SinkFailure, err, "sink read failed")
	}
	return string(data), nil
}
