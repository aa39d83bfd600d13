package uajson

import "github.com/amine-amaach/opcua-json-codec/ua"

// EncodeMessage wraps a top-level request or response as the
// transport-visible envelope {"TypeId": <NodeId>, "Body": <encoded
// structure>} and returns the resulting JSON text. It resets e first, so
// any partially buffered output from a prior encoding is discarded.
//
// A caller that only knows typeID's namespace URI — not the local index
// it resolves to, e.g. a message forwarded from another server's address
// space — leaves NamespaceURI set instead of a populated NamespaceIndex on
// the NodeID itself. EncodeMessage resolves that URI back to this
// context's namespace index via NamespaceTable.IndexOf (registering it if
// it is new) before encoding TypeId, so the emitted NodeId always carries
// a local index.
func EncodeMessage(e *Encoder, typeID ua.ExpandedNodeID, body interface{}) (string, error) {
	e.Reset()
	typeNodeID := resolveTypeIDNamespace(e.Context(), typeID)
	if err := e.w.beginObject(); err != nil {
		return "", err
	}
	if err := e.WriteNodeIDField("TypeId", typeNodeID); err != nil {
		return "", err
	}
	if err := e.WriteStructureField("Body", typeID, body); err != nil {
		return "", err
	}
	if err := e.w.endObject(); err != nil {
		return "", err
	}
	return e.Text()
}

// resolveTypeIDNamespace returns id's NodeID, rewritten to carry a local
// namespace index when id instead carries a NamespaceURI. The URI is
// looked up via NamespaceTable.IndexOf and registered with Add only if
// it has not been seen in this context before.
func resolveTypeIDNamespace(ctx *EncodingContext, id ua.ExpandedNodeID) ua.NodeID {
	if id.NamespaceURI == "" || id.NodeID == nil {
		return id.NodeID
	}
	index, ok := ctx.Namespaces.IndexOf(id.NamespaceURI)
	if !ok {
		index = ctx.Namespaces.Add(id.NamespaceURI)
	}
	return withNamespaceIndex(id.NodeID, index)
}

// withNamespaceIndex returns id with its namespace index replaced by
// index, preserving its identifier kind and value.
func withNamespaceIndex(id ua.NodeID, index uint16) ua.NodeID {
	switch n := id.(type) {
	case ua.NodeIDNumeric:
		return ua.NewNodeIDNumeric(index, n.ID)
	case ua.NodeIDString:
		return ua.NewNodeIDString(index, n.ID)
	case ua.NodeIDGUID:
		return ua.NewNodeIDGUID(index, n.ID)
	case ua.NodeIDOpaque:
		return ua.NewNodeIDOpaque(index, n.ID)
	default:
		return id
	}
}
