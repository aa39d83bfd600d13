package uajson

import (
	"sync"

	"github.com/amine-amaach/opcua-json-codec/ua"
)

// NamespaceTable resolves namespace indices to and from the URIs they
// stand for within one encoding session. Index 0 is always
// "http://opcfoundation.org/UA/" and need not be added explicitly.
type NamespaceTable struct {
	mu   sync.RWMutex
	uris []string
}

// NewNamespaceTable returns a table seeded with the OPC UA namespace at
// index 0.
func NewNamespaceTable() *NamespaceTable {
	return &NamespaceTable{uris: []string{"http://opcfoundation.org/UA/"}}
}

// Add appends uri and returns its index, or returns the existing index
// if uri is already present.
func (t *NamespaceTable) Add(uri string) uint16 {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, u := range t.uris {
		if u == uri {
			return uint16(i)
		}
	}
	t.uris = append(t.uris, uri)
	return uint16(len(t.uris) - 1)
}

// URIAt returns the URI at index, or false if index is out of range.
func (t *NamespaceTable) URIAt(index uint16) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if int(index) >= len(t.uris) {
		return "", false
	}
	return t.uris[index], true
}

// IndexOf returns the index of uri, or false if it has not been added.
func (t *NamespaceTable) IndexOf(uri string) (uint16, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for i, u := range t.uris {
		if u == uri {
			return uint16(i), true
		}
	}
	return 0, false
}

// ServerTable resolves server indices to and from the URIs of servers
// referenced by ExpandedNodeIDs. Index 0 always denotes the local server.
type ServerTable struct {
	mu   sync.RWMutex
	uris []string
}

// NewServerTable returns a table seeded with the local server at index 0.
func NewServerTable() *ServerTable {
	return &ServerTable{uris: []string{""}}
}

// Add appends uri and returns its index, or the existing index if uri is
// already present.
func (t *ServerTable) Add(uri string) uint32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, u := range t.uris {
		if u == uri {
			return uint32(i)
		}
	}
	t.uris = append(t.uris, uri)
	return uint32(len(t.uris) - 1)
}

// URIAt returns the URI at index, or false if index is out of range.
func (t *ServerTable) URIAt(index uint32) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if int(index) >= len(t.uris) {
		return "", false
	}
	return t.uris[index], true
}

// IndexOf returns the index of uri, or false if it has not been added.
func (t *ServerTable) IndexOf(uri string) (uint32, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for i, u := range t.uris {
		if u == uri {
			return uint32(i), true
		}
	}
	return 0, false
}

// DataTypeManager maps a structure's encoding NodeID to the StructureCodec
// that knows how to read and write its fields. Modeled on
// github.com/awcullen/opcua/ua's binary encoding registry
// (RegisterBinaryEncodingID / FindTypeForBinaryEncodingID), which pairs a
// sync.Map keyed by id with one keyed by reflect.Type; here the second
// map isn't needed because callers pass the TypeID explicitly rather
// than relying on reflection over a registered Go type.
type DataTypeManager struct {
	codecs sync.Map // map[ua.ExpandedNodeID]ua.StructureCodec
}

// NewDataTypeManager returns an empty DataTypeManager.
func NewDataTypeManager() *DataTypeManager {
	return &DataTypeManager{}
}

// Register associates a StructureCodec with a structure's encoding id.
// Re-registering the same id with a different codec panics, mirroring
// RegisterBinaryEncodingID's duplicate-registration guard.
func (m *DataTypeManager) Register(id ua.ExpandedNodeID, codec ua.StructureCodec) {
	if existing, dup := m.codecs.LoadOrStore(id, codec); dup && !sameCodec(existing.(ua.StructureCodec), codec) {
		panic("uajson: duplicate StructureCodec registered for " + id.String())
	}
}

// sameCodec reports whether a and b are the same StructureCodec value.
// A StructureCodec implementation is free to hold a non-comparable field
// (a slice, map, or func), which would make == panic at runtime instead
// of reporting a clean false; recover turns that case into "not the
// same", which is the conservative answer Register wants — an
// unprovable match is treated as a conflicting registration, not a
// silent no-op.
func sameCodec(a, b ua.StructureCodec) (same bool) {
	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	return a == b
}

// CodecFor returns the StructureCodec registered for id, or false if none
// has been registered.
func (m *DataTypeManager) CodecFor(id ua.ExpandedNodeID) (ua.StructureCodec, bool) {
	v, ok := m.codecs.Load(id)
	if !ok {
		return nil, false
	}
	return v.(ua.StructureCodec), true
}
