package uajson

import (
	"strconv"

	"github.com/amine-amaach/opcua-json-codec/ua"
)

// WriteStructure looks up value's codec by typeID in the bound
// EncodingContext's DataTypeManager and delegates field emission back into
// it. The codec describes field names and order; this package supplies
// only the enclosing object.
func (e *Encoder) WriteStructure(typeID ua.ExpandedNodeID, value interface{}) error {
	if err := e.checkDepth(); err != nil {
		return err
	}
	codec, ok := e.ctx.DataTypes.CodecFor(typeID)
	if !ok {
		return newError(UnknownType, "no StructureCodec registered for %s", typeID.String())
	}
	if err := e.w.beginObject(); err != nil {
		return err
	}
	if err := codec.Encode(e, value); err != nil {
		return err
	}
	return e.w.endObject()
}

// WriteStructureField emits a structure as a keyed object field. It is
// also the signature StructureCodec implementations call back into to
// recurse into a nested structure field.
func (e *Encoder) WriteStructureField(key string, typeID ua.ExpandedNodeID, value interface{}) error {
	if err := e.w.name(key); err != nil {
		return err
	}
	return e.WriteStructure(typeID, value)
}

// WriteEnum emits an enumeration value: the bare ordinal in reversible
// mode, or "Name_Value" in non-reversible mode.
func (e *Encoder) WriteEnum(v ua.Enum) error {
	if e.reversible {
		return e.w.writeValueRaw(strconv.FormatInt(int64(v.EnumOrdinal()), 10))
	}
	return e.w.writeValueString(v.EnumName() + "_" + strconv.FormatInt(int64(v.EnumOrdinal()), 10))
}

// WriteEnumField emits an enumeration as a keyed object field.
func (e *Encoder) WriteEnumField(key string, v ua.Enum) error {
	if err := e.w.name(key); err != nil {
		return err
	}
	return e.WriteEnum(v)
}
