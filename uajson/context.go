package uajson

// EncodingOptions are the small set of knobs OPC UA Part 6's JSON mapping
// leaves implementation-defined. Mirrors the toggle Eclipse Milo's own
// JsonEncodingOptions exposes for the same choice.
type EncodingOptions struct {
	// ValidateExtensionObjectBodies, when true, makes the ExtensionObject
	// emitter reject a JSON body that does not parse as well-formed JSON
	// instead of embedding it verbatim. Off by default: the encoder does
	// not otherwise validate user structures (spec Non-goals), and most
	// callers already hold a json.RawMessage they trust.
	ValidateExtensionObjectBodies bool
}

// EncodingContext bundles the lookup tables and limits an encoding pass
// consults. It is read-only during encoding and may be shared across many
// Encoder instances running on different goroutines; the tables' own
// locking gives readers a consistent view without the encoder needing to
// coordinate.
type EncodingContext struct {
	Namespaces *NamespaceTable
	Servers    *ServerTable
	DataTypes  *DataTypeManager
	Limits     EncodingLimits
	Options    EncodingOptions
}

// NewEncodingContext returns a context with empty namespace/server tables
// (each seeded with its index-0 default), an empty DataTypeManager, and
// DefaultEncodingLimits.
func NewEncodingContext() *EncodingContext {
	return &EncodingContext{
		Namespaces: NewNamespaceTable(),
		Servers:    NewServerTable(),
		DataTypes:  NewDataTypeManager(),
		Limits:     DefaultEncodingLimits(),
	}
}
