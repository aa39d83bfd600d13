package uajson

import (
	"testing"

	"github.com/amine-amaach/opcua-json-codec/ua"
)

func TestWriteStatusCodeNonReversibleSymbol(t *testing.T) {
	ctx := NewEncodingContext()
	e := NewEncoder(ctx)
	e.SetReversible(false)

	if err := e.WriteStatusCode(ua.StatusCode(1083310080)); err != nil {
		t.Fatalf("WriteStatusCode: %v", err)
	}
	got, err := e.Text()
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	want := `{"Code":1083310080,"Symbol":"Uncertain_InitialValue"}`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteStatusCodeFieldGoodNonReversibleOmitted(t *testing.T) {
	got := func() string {
		e := NewEncoder(NewEncodingContext())
		e.SetReversible(false)
		if err := e.BeginObject(); err != nil {
			t.Fatalf("BeginObject: %v", err)
		}
		if err := e.WriteStatusCodeField("Status", ua.Good); err != nil {
			t.Fatalf("WriteStatusCodeField: %v", err)
		}
		if err := e.EndObject(); err != nil {
			t.Fatalf("EndObject: %v", err)
		}
		text, err := e.Text()
		if err != nil {
			t.Fatalf("Text: %v", err)
		}
		return text
	}()
	if got != "{}" {
		t.Errorf("got %q, want {}", got)
	}
}

func TestWriteStatusCodeReversibleGoodEmitted(t *testing.T) {
	got := encodeOne(t, func(e *Encoder) error { return e.WriteStatusCode(ua.Good) })
	if got != "0" {
		t.Errorf("got %q, want 0", got)
	}
}

func TestWriteStatusCodeUnkeyedNonReversibleGoodIsEmpty(t *testing.T) {
	ctx := NewEncodingContext()
	e := NewEncoder(ctx)
	e.SetReversible(false)

	if err := e.WriteStatusCode(ua.Good); err != nil {
		t.Fatalf("WriteStatusCode: %v", err)
	}
	got, err := e.Text()
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if got != "" {
		t.Errorf("got %q, want empty string", got)
	}
}
