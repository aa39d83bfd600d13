package uajson

import (
	"encoding/json"
	"testing"

	"github.com/amine-amaach/opcua-json-codec/ua"
)

func TestWriteExtensionObjectJSONBodyNoEncodingField(t *testing.T) {
	typeID := ua.NewExpandedNodeID(ua.NewNodeIDNumeric(2, 42))
	eo := ua.NewJSONExtensionObject(typeID, json.RawMessage(`{"a":1}`))
	got := encodeOne(t, func(e *Encoder) error { return e.WriteExtensionObject(eo) })
	want := `{"TypeId":{"Id":42,"Namespace":2},"Body":{"a":1}}`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteExtensionObjectXMLBodyHasEncodingField(t *testing.T) {
	typeID := ua.NewExpandedNodeID(ua.NewNodeIDNumeric(2, 42))
	eo := ua.NewXMLExtensionObject(typeID, ua.XMLElement("<a/>"))
	got := encodeOne(t, func(e *Encoder) error { return e.WriteExtensionObject(eo) })
	want := `{"TypeId":{"Id":42,"Namespace":2},"Encoding":2,"Body":"<a/>"}`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteExtensionObjectNonReversibleBodyAlone(t *testing.T) {
	typeID := ua.NewExpandedNodeID(ua.NewNodeIDNumeric(2, 42))
	eo := ua.NewJSONExtensionObject(typeID, json.RawMessage(`{"a":1}`))
	ctx := NewEncodingContext()
	e := NewEncoder(ctx)
	e.SetReversible(false)
	if err := e.WriteExtensionObject(eo); err != nil {
		t.Fatalf("WriteExtensionObject: %v", err)
	}
	got, err := e.Text()
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	want := `{"a":1}`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteExtensionObjectNilIsNull(t *testing.T) {
	got := encodeOne(t, func(e *Encoder) error { return e.WriteExtensionObject(nil) })
	if got != "null" {
		t.Errorf("got %q, want null", got)
	}
}
