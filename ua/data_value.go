package ua

import "time"

// DataValue holds a Variant value alongside its quality and timestamps.
// Shaped after github.com/awcullen/opcua/ua.DataValue, with Value typed
// as the JSON codec's tagged Variant rather than an untyped interface{},
// and the timestamp/picoseconds pairs typed as pointers so each of the
// four fields carries its own, independent presence — a picoseconds
// value can be set with its paired timestamp absent, and vice versa.
type DataValue struct {
	Value             Variant
	Status            StatusCode
	SourceTimestamp   *time.Time
	SourcePicoseconds *uint16
	ServerTimestamp   *time.Time
	ServerPicoseconds *uint16
}

// NilDataValue is the zero DataValue: a null Variant, Good status, and
// no timestamps or picoseconds.
var NilDataValue = DataValue{}

// NewDataValue constructs a DataValue from its six fields. Pass nil for
// any timestamp or picoseconds field that should be absent.
func NewDataValue(value Variant, status StatusCode, sourceTimestamp *time.Time, sourcePicoseconds *uint16, serverTimestamp *time.Time, serverPicoseconds *uint16) DataValue {
	return DataValue{value, status, sourceTimestamp, sourcePicoseconds, serverTimestamp, serverPicoseconds}
}

// HasSourceTimestamp reports whether SourceTimestamp is set.
func (d DataValue) HasSourceTimestamp() bool {
	return d.SourceTimestamp != nil
}

// HasServerTimestamp reports whether ServerTimestamp is set.
func (d DataValue) HasServerTimestamp() bool {
	return d.ServerTimestamp != nil
}

// HasSourcePicoseconds reports whether SourcePicoseconds is set.
func (d DataValue) HasSourcePicoseconds() bool {
	return d.SourcePicoseconds != nil
}

// HasServerPicoseconds reports whether ServerPicoseconds is set.
func (d DataValue) HasServerPicoseconds() bool {
	return d.ServerPicoseconds != nil
}
