package uajson

import (
	"testing"

	"github.com/amine-amaach/opcua-json-codec/ua"
)

func TestWriteNodeIDStringReversible(t *testing.T) {
	got := encodeOne(t, func(e *Encoder) error {
		return e.WriteNodeID(ua.NewNodeIDString(1, "foo"))
	})
	want := `{"IdType":1,"Id":"foo","Namespace":1}`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteNodeIDNonReversibleResolvesNamespace(t *testing.T) {
	ctx := NewEncodingContext()
	ctx.Namespaces.Add("")
	ctx.Namespaces.Add("urn:eclipse:milo:test2")
	e := NewEncoder(ctx)
	e.SetReversible(false)

	if err := e.WriteNodeID(ua.NewNodeIDString(2, "foo")); err != nil {
		t.Fatalf("WriteNodeID: %v", err)
	}
	got, err := e.Text()
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	want := `{"IdType":1,"Id":"foo","Namespace":"urn:eclipse:milo:test2"}`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteNodeIDNumericOmitsIdType(t *testing.T) {
	got := encodeOne(t, func(e *Encoder) error {
		return e.WriteNodeID(ua.NewNodeIDNumeric(0, 85))
	})
	want := `{"Id":85}`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteNodeIDNil(t *testing.T) {
	got := encodeOne(t, func(e *Encoder) error { return e.WriteNodeID(nil) })
	if got != "null" {
		t.Errorf("WriteNodeID(nil) = %q, want null", got)
	}
}
