package uajson

import (
	"testing"
	"time"

	"github.com/amine-amaach/opcua-json-codec/ua"
)

func TestWriteDataValueAllFieldsPresent(t *testing.T) {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	sourcePico := uint16(7)
	serverPico := uint16(9)
	dv := ua.NewDataValue(
		ua.NewScalarVariant(ua.TypeBoolean, true),
		ua.StatusCode(0x80340000),
		&ts, &sourcePico,
		&ts, &serverPico,
	)
	got := encodeOne(t, func(e *Encoder) error { return e.WriteDataValue(dv) })
	want := `{"Value":{"Type":1,"Body":true},"Status":2150891520,"SourceTimestamp":"2024-01-02T03:04:05Z","SourcePicoseconds":7,"ServerTimestamp":"2024-01-02T03:04:05Z","ServerPicoseconds":9}`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteDataValueOnlyValueOmitsOthers(t *testing.T) {
	dv := ua.NewDataValue(ua.NewScalarVariant(ua.TypeBoolean, true), ua.Good, nil, nil, nil, nil)
	got := encodeOne(t, func(e *Encoder) error { return e.WriteDataValue(dv) })
	want := `{"Value":{"Type":1,"Body":true}}`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteDataValuePicosecondsIndependentOfTimestamp(t *testing.T) {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	sourcePico := uint16(100)
	serverPico := uint16(200)

	// SourceTimestamp omitted, SourcePicoseconds still present.
	dv := ua.NewDataValue(
		ua.NewScalarVariant(ua.TypeString, "foo"),
		ua.StatusCode(0x2F0000),
		nil, &sourcePico,
		&ts, &serverPico,
	)
	got := encodeOne(t, func(e *Encoder) error { return e.WriteDataValue(dv) })
	want := `{"Value":{"Type":12,"Body":"foo"},"Status":3080192,"SourcePicoseconds":100,"ServerTimestamp":"2024-01-02T03:04:05Z","ServerPicoseconds":200}`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// SourcePicoseconds omitted, SourceTimestamp still present.
	dv2 := ua.NewDataValue(
		ua.NewScalarVariant(ua.TypeString, "foo"),
		ua.StatusCode(0x2F0000),
		&ts, nil,
		&ts, &serverPico,
	)
	got2 := encodeOne(t, func(e *Encoder) error { return e.WriteDataValue(dv2) })
	want2 := `{"Value":{"Type":12,"Body":"foo"},"Status":3080192,"SourceTimestamp":"2024-01-02T03:04:05Z","ServerTimestamp":"2024-01-02T03:04:05Z","ServerPicoseconds":200}`
	if got2 != want2 {
		t.Errorf("got %q, want %q", got2, want2)
	}
}

func TestWriteDataValueFieldAllDefaultOmitsKey(t *testing.T) {
	got := func() string {
		e := NewEncoder(NewEncodingContext())
		if err := e.BeginObject(); err != nil {
			t.Fatalf("BeginObject: %v", err)
		}
		if err := e.WriteDataValueField("Result", ua.NilDataValue); err != nil {
			t.Fatalf("WriteDataValueField: %v", err)
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
