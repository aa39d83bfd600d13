package uajson

import (
	"encoding/base64"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/amine-amaach/opcua-json-codec/ua"
)

// dateTimeMin and dateTimeMax are the clamping bounds for DateTime
// values, per OPC UA Part 6 §5.2.6: values outside [min, max] clamp to
// the nearer bound rather than failing.
var (
	dateTimeMin = time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)
	dateTimeMax = time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)
)

func clampDateTime(t time.Time) time.Time {
	u := t.UTC()
	if u.Before(dateTimeMin) {
		return dateTimeMin
	}
	if u.After(dateTimeMax) {
		return dateTimeMax
	}
	return u
}

func formatFloat(v float64, bits int) string {
	switch {
	case math.IsNaN(v):
		return `"NaN"`
	case math.IsInf(v, 1):
		return `"Infinity"`
	case math.IsInf(v, -1):
		return `"-Infinity"`
	}
	s := strconv.FormatFloat(v, 'f', -1, bits)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// WriteBoolean and WriteBooleanField emit a Boolean value unkeyed and
// keyed, respectively.
func (e *Encoder) WriteBoolean(v bool) error {
	if v {
		return e.w.writeValueRaw("true")
	}
	return e.w.writeValueRaw("false")
}

func (e *Encoder) WriteBooleanField(key string, v bool) error {
	if err := e.w.name(key); err != nil {
		return err
	}
	return e.WriteBoolean(v)
}

func (e *Encoder) WriteSByte(v int8) error {
	return e.w.writeValueRaw(strconv.FormatInt(int64(v), 10))
}
func (e *Encoder) WriteSByteField(key string, v int8) error {
	if err := e.w.name(key); err != nil {
		return err
	}
	return e.WriteSByte(v)
}

func (e *Encoder) WriteByte(v byte) error {
	return e.w.writeValueRaw(strconv.FormatUint(uint64(v), 10))
}
func (e *Encoder) WriteByteField(key string, v byte) error {
	if err := e.w.name(key); err != nil {
		return err
	}
	return e.WriteByte(v)
}

func (e *Encoder) WriteInt16(v int16) error {
	return e.w.writeValueRaw(strconv.FormatInt(int64(v), 10))
}
func (e *Encoder) WriteInt16Field(key string, v int16) error {
	if err := e.w.name(key); err != nil {
		return err
	}
	return e.WriteInt16(v)
}

func (e *Encoder) WriteUInt16(v uint16) error {
	return e.w.writeValueRaw(strconv.FormatUint(uint64(v), 10))
}
func (e *Encoder) WriteUInt16Field(key string, v uint16) error {
	if err := e.w.name(key); err != nil {
		return err
	}
	return e.WriteUInt16(v)
}

func (e *Encoder) WriteInt32(v int32) error {
	return e.w.writeValueRaw(strconv.FormatInt(int64(v), 10))
}
func (e *Encoder) WriteInt32Field(key string, v int32) error {
	if err := e.w.name(key); err != nil {
		return err
	}
	return e.WriteInt32(v)
}

func (e *Encoder) WriteUInt32(v uint32) error {
	return e.w.writeValueRaw(strconv.FormatUint(uint64(v), 10))
}
func (e *Encoder) WriteUInt32Field(key string, v uint32) error {
	if err := e.w.name(key); err != nil {
		return err
	}
	return e.WriteUInt32(v)
}

// WriteInt64 and WriteUInt64 quote the decimal value, since 64-bit
// integers beyond 2^53 lose precision in JSON consumers that decode
// numbers as float64.
func (e *Encoder) WriteInt64(v int64) error {
	return e.w.writeValueString(strconv.FormatInt(v, 10))
}
func (e *Encoder) WriteInt64Field(key string, v int64) error {
	if err := e.w.name(key); err != nil {
		return err
	}
	return e.WriteInt64(v)
}

func (e *Encoder) WriteUInt64(v uint64) error {
	return e.w.writeValueString(strconv.FormatUint(v, 10))
}
func (e *Encoder) WriteUInt64Field(key string, v uint64) error {
	if err := e.w.name(key); err != nil {
		return err
	}
	return e.WriteUInt64(v)
}

func (e *Encoder) WriteFloat(v float32) error {
	return e.w.writeValueRaw(formatFloat(float64(v), 32))
}
func (e *Encoder) WriteFloatField(key string, v float32) error {
	if err := e.w.name(key); err != nil {
		return err
	}
	return e.WriteFloat(v)
}

func (e *Encoder) WriteDouble(v float64) error {
	return e.w.writeValueRaw(formatFloat(v, 64))
}
func (e *Encoder) WriteDoubleField(key string, v float64) error {
	if err := e.w.name(key); err != nil {
		return err
	}
	return e.WriteDouble(v)
}

func (e *Encoder) WriteString(v string) error {
	if err := e.ctx.Limits.checkStringLength(len(v)); err != nil {
		return err
	}
	return e.w.writeValueString(v)
}
func (e *Encoder) WriteStringField(key string, v string) error {
	if err := e.w.name(key); err != nil {
		return err
	}
	return e.WriteString(v)
}

func (e *Encoder) WriteDateTime(v time.Time) error {
	return e.w.writeValueString(clampDateTime(v).Format("2006-01-02T15:04:05Z"))
}
func (e *Encoder) WriteDateTimeField(key string, v time.Time) error {
	if err := e.w.name(key); err != nil {
		return err
	}
	return e.WriteDateTime(v)
}

func (e *Encoder) WriteGUID(v ua.GUID) error {
	return e.w.writeValueString(strings.ToUpper(v.String()))
}
func (e *Encoder) WriteGUIDField(key string, v ua.GUID) error {
	if err := e.w.name(key); err != nil {
		return err
	}
	return e.WriteGUID(v)
}

func (e *Encoder) WriteByteString(v ua.ByteString) error {
	if err := e.ctx.Limits.checkStringLength(len(v)); err != nil {
		return err
	}
	return e.w.writeValueString(base64.StdEncoding.EncodeToString([]byte(v)))
}
func (e *Encoder) WriteByteStringField(key string, v ua.ByteString) error {
	if err := e.w.name(key); err != nil {
		return err
	}
	return e.WriteByteString(v)
}

func (e *Encoder) WriteXMLElement(v ua.XMLElement) error {
	return e.w.writeValueString(string(v))
}
func (e *Encoder) WriteXMLElementField(key string, v ua.XMLElement) error {
	if err := e.w.name(key); err != nil {
		return err
	}
	return e.WriteXMLElement(v)
}
