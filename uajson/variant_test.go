package uajson

import (
	"testing"

	"github.com/amine-amaach/opcua-json-codec/ua"
)

func TestWriteVariantMatrixReversible(t *testing.T) {
	m := ua.NewMatrix(ua.TypeInt32, []uint32{2, 3}, []interface{}{
		int32(0), int32(2), int32(3),
		int32(1), int32(3), int32(4),
	})
	got := encodeOne(t, func(e *Encoder) error {
		return e.WriteVariant(ua.NewMatrixVariant(m))
	})
	want := `{"Type":6,"Body":[0,2,3,1,3,4],"Dimensions":[2,3]}`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteVariantMatrixNonReversible(t *testing.T) {
	m := ua.NewMatrix(ua.TypeInt32, []uint32{2, 3}, []interface{}{
		int32(0), int32(2), int32(3),
		int32(1), int32(3), int32(4),
	})
	ctx := NewEncodingContext()
	e := NewEncoder(ctx)
	e.SetReversible(false)
	if err := e.WriteVariant(ua.NewMatrixVariant(m)); err != nil {
		t.Fatalf("WriteVariant: %v", err)
	}
	got, err := e.Text()
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	want := `[[0,2,3],[1,3,4]]`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteVariantNullIsJSONNull(t *testing.T) {
	got := encodeOne(t, func(e *Encoder) error { return e.WriteVariant(ua.NilVariant) })
	if got != "null" {
		t.Errorf("got %q, want null", got)
	}
}

func TestWriteVariantScalarReversible(t *testing.T) {
	got := encodeOne(t, func(e *Encoder) error {
		return e.WriteVariant(ua.NewScalarVariant(ua.TypeString, "hello"))
	})
	want := `{"Type":12,"Body":"hello"}`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteVariantArrayOfInt32(t *testing.T) {
	got := encodeOne(t, func(e *Encoder) error {
		return e.WriteVariant(ua.NewArrayVariant(ua.TypeInt32, []int32{1, 2, 3}))
	})
	want := `{"Type":6,"Body":[1,2,3]}`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
