package uajson

import (
	"testing"

	"github.com/amine-amaach/opcua-json-codec/ua"
)

type colorEnum int32

func (c colorEnum) EnumOrdinal() int32 { return int32(c) }
func (c colorEnum) EnumName() string {
	switch c {
	case 0:
		return "Red"
	case 1:
		return "Green"
	default:
		return "Blue"
	}
}

func TestWriteStructureDispatchesThroughRegisteredCodec(t *testing.T) {
	ctx := NewEncodingContext()
	typeID := ua.NewExpandedNodeID(ua.NewNodeIDNumeric(1, 100))
	ctx.DataTypes.Register(typeID, pointCodec{})

	e := NewEncoder(ctx)
	if err := e.WriteStructure(typeID, pointStruct{X: 5, Y: -3}); err != nil {
		t.Fatalf("WriteStructure: %v", err)
	}
	got, err := e.Text()
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	want := `{"X":5,"Y":-3}`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteStructureFieldUnknownTypeErrors(t *testing.T) {
	ctx := NewEncodingContext()
	typeID := ua.NewExpandedNodeID(ua.NewNodeIDNumeric(1, 999))
	e := NewEncoder(ctx)
	if err := e.BeginObject(); err != nil {
		t.Fatalf("BeginObject: %v", err)
	}
	err := e.WriteStructureField("Body", typeID, pointStruct{})
	if err == nil {
		t.Fatal("expected an error for an unregistered structure type")
	}
	ee, ok := err.(*EncodingError)
	if !ok || ee.Kind != UnknownType {
		t.Fatalf("got %v, want UnknownType EncodingError", err)
	}
}

func TestWriteEnumReversibleIsBareOrdinal(t *testing.T) {
	got := encodeOne(t, func(e *Encoder) error { return e.WriteEnum(colorEnum(1)) })
	if got != "1" {
		t.Errorf("got %q, want 1", got)
	}
}

func TestWriteEnumNonReversibleIsNameUnderscoreValue(t *testing.T) {
	ctx := NewEncodingContext()
	e := NewEncoder(ctx)
	e.SetReversible(false)
	if err := e.WriteEnum(colorEnum(1)); err != nil {
		t.Fatalf("WriteEnum: %v", err)
	}
	got, err := e.Text()
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	want := `"Green_1"`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteEnumField(t *testing.T) {
	got := func() string {
		e := NewEncoder(NewEncodingContext())
		if err := e.BeginObject(); err != nil {
			t.Fatalf("BeginObject: %v", err)
		}
		if err := e.WriteEnumField("Color", colorEnum(2)); err != nil {
			t.Fatalf("WriteEnumField: %v", err)
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
	want := `{"Color":2}`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
