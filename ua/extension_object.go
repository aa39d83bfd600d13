package ua

// ExtensionObjectEncoding tags how an ExtensionObject's Body is encoded.
type ExtensionObjectEncoding byte

const (
	// ExtensionObjectNone marks a JSON-encoded body: raw JSON text with
	// no Encoding field in the reversible envelope.
	ExtensionObjectNone ExtensionObjectEncoding = 0
	// ExtensionObjectBinary marks a base64-encoded binary body.
	ExtensionObjectBinary ExtensionObjectEncoding = 1
	// ExtensionObjectXML marks an XML body.
	ExtensionObjectXML ExtensionObjectEncoding = 2
)

// ExtensionObject envelopes an encoded structure: a JSON text fragment, an
// XML fragment, or opaque binary bytes, tagged with the structure's
// encoding NodeID. A nil *ExtensionObject encodes as JSON null.
type ExtensionObject struct {
	TypeID   ExpandedNodeID
	Encoding ExtensionObjectEncoding
	// Body holds exactly the payload named by Encoding:
	//   ExtensionObjectNone:   json.RawMessage (or any encoding/json-marshalable value)
	//   ExtensionObjectXML:    XMLElement
	//   ExtensionObjectBinary: ByteString
	Body interface{}
}

// NewJSONExtensionObject wraps a JSON-encoded body.
func NewJSONExtensionObject(typeID ExpandedNodeID, body interface{}) *ExtensionObject {
	return &ExtensionObject{TypeID: typeID, Encoding: ExtensionObjectNone, Body: body}
}

// NewXMLExtensionObject wraps an XML-encoded body.
func NewXMLExtensionObject(typeID ExpandedNodeID, body XMLElement) *ExtensionObject {
	return &ExtensionObject{TypeID: typeID, Encoding: ExtensionObjectXML, Body: body}
}

// NewBinaryExtensionObject wraps a binary-encoded body.
func NewBinaryExtensionObject(typeID ExpandedNodeID, body ByteString) *ExtensionObject {
	return &ExtensionObject{TypeID: typeID, Encoding: ExtensionObjectBinary, Body: body}
}
