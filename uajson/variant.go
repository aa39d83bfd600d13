package uajson

import (
	"reflect"
	"time"

	"github.com/amine-amaach/opcua-json-codec/ua"
)

// WriteVariant emits a Variant. Reversible mode wraps scalars and arrays
// as {"Type": t, "Body": ...}, adding "Dimensions" for a matrix. Non-
// reversible mode emits the body alone, nested to match its logical
// shape; some element types (NodeId, QualifiedName, LocalizedText,
// StatusCode) still produce object or omitted output under their own
// rules even in non-reversible mode.
func (e *Encoder) WriteVariant(v ua.Variant) error {
	if v.IsNull() {
		return e.w.writeValueRaw("null")
	}
	if err := e.checkDepth(); err != nil {
		return err
	}
	if !e.reversible {
		return e.writeVariantBody(v)
	}
	if err := e.w.beginObject(); err != nil {
		return err
	}
	if err := e.WriteByteField("Type", byte(v.TypeID)); err != nil {
		return err
	}
	if err := e.w.name("Body"); err != nil {
		return err
	}
	if err := e.writeVariantBody(v); err != nil {
		return err
	}
	if v.Shape == ua.ShapeMatrix {
		m := v.Value.(ua.Matrix)
		if err := e.w.name("Dimensions"); err != nil {
			return err
		}
		if err := e.writeUint32Slice(m.Dimensions); err != nil {
			return err
		}
	}
	return e.w.endObject()
}

// WriteVariantField emits a Variant as a keyed object field.
func (e *Encoder) WriteVariantField(key string, v ua.Variant) error {
	if err := e.w.name(key); err != nil {
		return err
	}
	return e.WriteVariant(v)
}

func (e *Encoder) writeVariantBody(v ua.Variant) error {
	switch v.Shape {
	case ua.ShapeScalar:
		return e.writeElement(v.TypeID, v.Value)
	case ua.ShapeArray:
		return e.writeElementSlice(v.TypeID, v.Value)
	case ua.ShapeMatrix:
		m := v.Value.(ua.Matrix)
		if e.reversible {
			// Reversible mode's Body is the flat row-major element list;
			// shape comes from the separate Dimensions field WriteVariant
			// writes alongside it. Only the non-reversible bare-value form
			// nests elements to match the matrix's logical shape.
			return e.writeElementSlice(m.TypeID, m.Elements)
		}
		return e.writeMatrixShape(m.TypeID, m.Dimensions, m.Elements)
	default:
		return newError(UnknownType, "unrecognized Variant shape %d", v.Shape)
	}
}

// writeElementSlice emits a one-dimensional slice of elements of type t.
// Value is typically a concrete Go slice (e.g. []int32), but []interface{}
// is also accepted so callers can build heterogeneous-looking arrays of a
// single declared type without reflecting their own slice type.
func (e *Encoder) writeElementSlice(t ua.BuiltinType, slice interface{}) error {
	if err := e.w.beginArray(); err != nil {
		return err
	}
	rv := reflect.ValueOf(slice)
	n := 0
	if rv.IsValid() && rv.Kind() == reflect.Slice {
		n = rv.Len()
	}
	if err := e.ctx.Limits.checkArrayLength(n); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := e.writeElement(t, rv.Index(i).Interface()); err != nil {
			return err
		}
	}
	return e.w.endArray()
}

// writeMatrixShape recursively nests elements into arrays matching
// dimensions, row-major.
func (e *Encoder) writeMatrixShape(t ua.BuiltinType, dimensions []uint32, elements []interface{}) error {
	if err := e.checkDepth(); err != nil {
		return err
	}
	if len(dimensions) == 1 {
		if err := e.ctx.Limits.checkArrayLength(len(elements)); err != nil {
			return err
		}
		if err := e.w.beginArray(); err != nil {
			return err
		}
		for _, el := range elements {
			if err := e.writeElement(t, el); err != nil {
				return err
			}
		}
		return e.w.endArray()
	}
	stride := 1
	for _, d := range dimensions[1:] {
		stride *= int(d)
	}
	if err := e.ctx.Limits.checkArrayLength(int(dimensions[0])); err != nil {
		return err
	}
	if err := e.w.beginArray(); err != nil {
		return err
	}
	for i := 0; i < int(dimensions[0]); i++ {
		start := i * stride
		if err := e.writeMatrixShape(t, dimensions[1:], elements[start:start+stride]); err != nil {
			return err
		}
	}
	return e.w.endArray()
}

func (e *Encoder) writeUint32Slice(vs []uint32) error {
	if err := e.w.beginArray(); err != nil {
		return err
	}
	for _, v := range vs {
		if err := e.WriteUInt32(v); err != nil {
			return err
		}
	}
	return e.w.endArray()
}

// writeElement dispatches a single element of built-in type t to the
// matching unkeyed emitter. This is the recursion point shared by scalar,
// array, and matrix rendering, and by nested Variant arrays (TypeVariant
// recurses back into WriteVariant, each element a full Variant object in
// reversible mode or its bare form otherwise).
func (e *Encoder) writeElement(t ua.BuiltinType, value interface{}) error {
	switch t {
	case ua.TypeBoolean:
		return e.WriteBoolean(value.(bool))
	case ua.TypeSByte:
		return e.WriteSByte(value.(int8))
	case ua.TypeByte:
		return e.WriteByte(value.(uint8))
	case ua.TypeInt16:
		return e.WriteInt16(value.(int16))
	case ua.TypeUInt16:
		return e.WriteUInt16(value.(uint16))
	case ua.TypeInt32:
		return e.WriteInt32(value.(int32))
	case ua.TypeUInt32:
		return e.WriteUInt32(value.(uint32))
	case ua.TypeInt64:
		return e.WriteInt64(value.(int64))
	case ua.TypeUInt64:
		return e.WriteUInt64(value.(uint64))
	case ua.TypeFloat:
		return e.WriteFloat(value.(float32))
	case ua.TypeDouble:
		return e.WriteDouble(value.(float64))
	case ua.TypeString:
		return e.WriteString(value.(string))
	case ua.TypeDateTime:
		return e.WriteDateTime(value.(time.Time))
	case ua.TypeGUID:
		return e.WriteGUID(value.(ua.GUID))
	case ua.TypeByteString:
		return e.WriteByteString(value.(ua.ByteString))
	case ua.TypeXMLElement:
		return e.WriteXMLElement(value.(ua.XMLElement))
	case ua.TypeNodeID:
		id, _ := value.(ua.NodeID)
		return e.WriteNodeID(id)
	case ua.TypeExpandedNodeID:
		return e.WriteExpandedNodeID(value.(ua.ExpandedNodeID))
	case ua.TypeStatusCode:
		return e.WriteStatusCode(value.(ua.StatusCode))
	case ua.TypeQualifiedName:
		return e.WriteQualifiedName(value.(ua.QualifiedName))
	case ua.TypeLocalizedText:
		return e.WriteLocalizedText(value.(ua.LocalizedText))
	case ua.TypeExtensionObject:
		eo, _ := value.(*ua.ExtensionObject)
		return e.WriteExtensionObject(eo)
	case ua.TypeDataValue:
		return e.writeVariantDataValue(value.(ua.DataValue))
	case ua.TypeVariant:
		return e.WriteVariant(value.(ua.Variant))
	case ua.TypeDiagnosticInfo:
		di, _ := value.(*ua.DiagnosticInfo)
		return e.WriteDiagnosticInfo(di)
	default:
		return newError(UnknownType, "unrecognized Variant element type id %d", t)
	}
}

// writeVariantDataValue renders a DataValue element inside a Variant's
// Body. Unlike a keyed DataValue field, an element slot must always
// produce a value token, so an all-default DataValue still writes {}
// rather than nothing.
func (e *Encoder) writeVariantDataValue(v ua.DataValue) error {
	if v.Value.IsNull() && v.Status == ua.Good && !v.HasSourceTimestamp() && !v.HasSourcePicoseconds() && !v.HasServerTimestamp() && !v.HasServerPicoseconds() {
		if err := e.w.beginObject(); err != nil {
			return err
		}
		return e.w.endObject()
	}
	return e.WriteDataValue(v)
}
