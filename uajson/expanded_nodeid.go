package uajson

import "github.com/amine-amaach/opcua-json-codec/ua"

// WriteExpandedNodeID emits an ExpandedNodeID as a JSON object: IdType,
// Id, Namespace, ServerUri. Namespace is a string in both modes when an
// explicit NamespaceURI is attached (it overrides the numeric index);
// ServerUri is omitted at server index 0 and otherwise follows the same
// reversible/non-reversible split as Namespace.
func (e *Encoder) WriteExpandedNodeID(id ua.ExpandedNodeID) error {
	if id.NodeID == nil && id.NamespaceURI == "" && id.ServerIndex == 0 {
		return e.w.writeValueRaw("null")
	}
	if err := e.w.beginObject(); err != nil {
		return err
	}
	if id.NodeID != nil {
		if err := e.writeNodeIDIdentifierFields(id.NodeID); err != nil {
			return err
		}
	}
	if err := e.writeExpandedNamespaceField(id); err != nil {
		return err
	}
	if err := e.writeServerURIField(id.ServerIndex); err != nil {
		return err
	}
	return e.w.endObject()
}

// WriteExpandedNodeIDField emits an ExpandedNodeID as a keyed object
// field.
func (e *Encoder) WriteExpandedNodeIDField(key string, id ua.ExpandedNodeID) error {
	if err := e.w.name(key); err != nil {
		return err
	}
	return e.WriteExpandedNodeID(id)
}

func (e *Encoder) writeExpandedNamespaceField(id ua.ExpandedNodeID) error {
	if id.NamespaceURI != "" {
		return e.WriteStringField("Namespace", id.NamespaceURI)
	}
	var index uint16
	if id.NodeID != nil {
		index = namespaceIndexOf(id.NodeID)
	}
	return e.writeNamespaceField(index)
}

func (e *Encoder) writeServerURIField(serverIndex uint32) error {
	if serverIndex == 0 {
		return nil
	}
	if !e.reversible {
		if uri, ok := e.ctx.Servers.URIAt(serverIndex); ok {
			return e.WriteStringField("ServerUri", uri)
		}
	}
	return e.WriteUInt32Field("ServerUri", serverIndex)
}
