package ua

// Enum is implemented by generated enumeration types so the encoder can
// render them as a bare ordinal (reversible mode) or as "Name_Value"
// (non-reversible mode) without reflection.
type Enum interface {
	EnumOrdinal() int32
	EnumName() string
}

// Decoder is the minimal shape a complementary JSON decoder would need to
// satisfy for a StructureCodec.Decode to round-trip a structure. This
// package does not implement a decoder — only the encoder is in scope —
// so Decoder exists purely to give StructureCodec.Decode a concrete
// signature to be reversible with, per the Context & tables component.
type Decoder interface {
	// Field returns the Decoder positioned at the named field of the
	// current object, or ok == false if the field is absent.
	Field(name string) (Decoder, bool)
	// Finish releases any resources held by the Decoder.
	Finish() error
}

// StructureCodec knows how to encode and decode one structured or
// enumerated DataType, identified by its encoding NodeID. A DataTypeManager
// maps encoding ids to codecs; the Variant/structure dispatch in the
// encoder looks codecs up by id and calls back into Encode so the codec
// only has to describe field names and order, never JSON mechanics.
// Neither method takes an encoding context: StructureEncoder already
// exposes every field writer a codec needs, including WriteStructureField
// for recursing into nested structures and Variants, so a codec never
// needs to reach past it into the encoder's own tables and limits.
type StructureCodec interface {
	// Encode writes value's fields into enc, in the codec's declared
	// field order. enc is positioned inside an open JSON object.
	Encode(enc StructureEncoder, value interface{}) error
	// Decode reads a value back out of dec. Never called by this
	// package; present so a codec implementation can serve both
	// directions from one type.
	Decode(dec Decoder) (interface{}, error)
}

// StructureEncoder is the subset of the encoder a StructureCodec needs:
// keyed field emitters plus a way to recurse into nested structures and
// Variants. Declared in package ua (rather than depended on from uajson)
// so StructureCodec implementations never need to import the encoder
// package themselves.
type StructureEncoder interface {
	WriteBooleanField(name string, v bool) error
	WriteSByteField(name string, v int8) error
	WriteByteField(name string, v uint8) error
	WriteInt16Field(name string, v int16) error
	WriteUInt16Field(name string, v uint16) error
	WriteInt32Field(name string, v int32) error
	WriteUInt32Field(name string, v uint32) error
	WriteInt64Field(name string, v int64) error
	WriteUInt64Field(name string, v uint64) error
	WriteFloatField(name string, v float32) error
	WriteDoubleField(name string, v float64) error
	WriteStringField(name string, v string) error
	WriteNodeIDField(name string, v NodeID) error
	WriteExpandedNodeIDField(name string, v ExpandedNodeID) error
	WriteStatusCodeField(name string, v StatusCode) error
	WriteQualifiedNameField(name string, v QualifiedName) error
	WriteLocalizedTextField(name string, v LocalizedText) error
	WriteVariantField(name string, v Variant) error
	WriteDataValueField(name string, v DataValue) error
	WriteExtensionObjectField(name string, v *ExtensionObject) error
	WriteDiagnosticInfoField(name string, v *DiagnosticInfo) error
	WriteEnumField(name string, v Enum) error
	WriteStructureField(name string, typeID ExpandedNodeID, value interface{}) error
}
