package uajson

// EncodingLimits bounds the sizes the encoder will produce without
// failing with EncodingLimitExceeded. Zero means "unbounded" for a given
// field, matching github.com/awcullen/opcua's convention of treating a
// zero max-size as "no limit". MaxMessageSize is carried with the other
// limits but is not checked by the encoder.
type EncodingLimits struct {
	MaxStringLength   int
	MaxArrayLength    int
	MaxMessageSize    int
	MaxRecursionDepth int
}

// DefaultEncodingLimits mirrors the OPC UA default transport quotas:
// 64K strings, 64K byte strings, no hard array/message cap beyond what
// the transport already enforces, and a recursion depth generous enough
// for deeply nested structures without risking a runaway stack.
func DefaultEncodingLimits() EncodingLimits {
	return EncodingLimits{
		MaxStringLength:   65536,
		MaxArrayLength:    0,
		MaxMessageSize:    0,
		MaxRecursionDepth: 100,
	}
}

func (l EncodingLimits) checkStringLength(n int) error {
	if l.MaxStringLength > 0 && n > l.MaxStringLength {
		return newError(EncodingLimitExceeded, "string length %d exceeds limit %d", n, l.MaxStringLength)
	}
	return nil
}

func (l EncodingLimits) checkArrayLength(n int) error {
	if l.MaxArrayLength > 0 && n > l.MaxArrayLength {
		return newError(EncodingLimitExceeded, "array length %d exceeds limit %d", n, l.MaxArrayLength)
	}
	return nil
}

func (l EncodingLimits) checkDepth(depth int) error {
	if l.MaxRecursionDepth > 0 && depth > l.MaxRecursionDepth {
		return newError(EncodingLimitExceeded, "nesting depth %d exceeds limit %d", depth, l.MaxRecursionDepth)
	}
	return nil
}
