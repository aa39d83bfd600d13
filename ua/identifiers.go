// Package ua holds the OPC UA built-in value types the codec operates on:
// identifiers (NodeID family), names and text (QualifiedName,
// LocalizedText), status codes, the polymorphic Variant/Matrix pair, and
// the envelope types (DataValue, ExtensionObject, DiagnosticInfo).
//
// Where the shape already matches, these are plain aliases of
// github.com/awcullen/opcua/ua, the OPC UA value types this project's
// sibling OPC UA packages already depend on. Types the upstream binary
// codec has no use for — the tagged Variant, Matrix, and the
// JSON-flavored DataValue/ExtensionObject/DiagnosticInfo — are defined
// here instead.
package ua

import (
	opcua "github.com/awcullen/opcua/ua"
	"github.com/google/uuid"
)

// NodeID identifies a Node. It is one of NodeIDNumeric, NodeIDString,
// NodeIDGUID, or NodeIDOpaque.
type NodeID = opcua.NodeID

// NodeIDNumeric is a NodeID carrying a uint32 identifier (IdType 0).
type NodeIDNumeric = opcua.NodeIDNumeric

// NodeIDString is a NodeID carrying a string identifier (IdType 1).
type NodeIDString = opcua.NodeIDString

// NodeIDGUID is a NodeID carrying a GUID identifier (IdType 2).
type NodeIDGUID = opcua.NodeIDGUID

// NodeIDOpaque is a NodeID carrying a ByteString identifier (IdType 3).
type NodeIDOpaque = opcua.NodeIDOpaque

// NewNodeIDNumeric, NewNodeIDString, NewNodeIDGUID and NewNodeIDOpaque
// construct the corresponding NodeID variant.
var (
	NewNodeIDNumeric = opcua.NewNodeIDNumeric
	NewNodeIDString  = opcua.NewNodeIDString
	NewNodeIDGUID    = opcua.NewNodeIDGUID
	NewNodeIDOpaque  = opcua.NewNodeIDOpaque
	ParseNodeID      = opcua.ParseNodeID
)

// ExpandedNodeID is a NodeID qualified by an optional namespace URI and a
// server index, for references that cross namespace or server boundaries.
type ExpandedNodeID = opcua.ExpandedNodeID

// NewExpandedNodeID wraps a local NodeID with a zero ServerIndex and no
// NamespaceURI.
var NewExpandedNodeID = opcua.NewExpandedNodeID

// NilExpandedNodeID is the expanded nil NodeID.
var NilExpandedNodeID = opcua.NilExpandedNodeID

// QualifiedName pairs a namespace index with a name.
type QualifiedName = opcua.QualifiedName

// LocalizedText pairs text with an optional locale.
type LocalizedText = opcua.LocalizedText

// StatusCode is the 32-bit result code of a service call. The zero value
// is Good.
type StatusCode = opcua.StatusCode

// Good is the zero StatusCode.
const Good = opcua.Good

// ByteString is an opaque byte sequence, rendered as base64 in JSON.
type ByteString = opcua.ByteString

// XMLElement carries verbatim XML text.
type XMLElement = opcua.XMLElement

// GUID is a 128-bit globally unique identifier.
type GUID = uuid.UUID
