package uajson

import (
	"fmt"
	"testing"
)

func TestEncodeBatchPreservesInputOrder(t *testing.T) {
	ctx := NewEncodingContext()
	items := make([]BatchItem, 20)
	for i := range items {
		i := i
		items[i] = BatchItem{Encode: func(e *Encoder) (string, error) {
			if err := e.WriteInt32(int32(i)); err != nil {
				return "", err
			}
			return e.Text()
		}}
	}

	results := EncodeBatch(ctx, true, 4, items)
	if len(results) != len(items) {
		t.Fatalf("got %d results, want %d", len(results), len(items))
	}
	for i, r := range results {
		if r.Err != nil {
			t.Fatalf("item %d: %v", i, r.Err)
		}
		want := fmt.Sprintf("%d", i)
		if r.Text != want {
			t.Errorf("item %d: got %q, want %q", i, r.Text, want)
		}
	}
}

func TestEncodeBatchEmpty(t *testing.T) {
	results := EncodeBatch(NewEncodingContext(), true, 4, nil)
	if len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
}

func TestEncodeBatchCarriesPerItemErrors(t *testing.T) {
	ctx := NewEncodingContext()
	items := []BatchItem{
		{Encode: func(e *Encoder) (string, error) {
			// Naming a field outside any open object is an InvalidState
			// violation, not a panic — EncodeBatch must surface it per item.
			if err := e.Name("x"); err != nil {
				return "", err
			}
			return e.Text()
		}},
		{Encode: func(e *Encoder) (string, error) {
			if err := e.WriteBoolean(true); err != nil {
				return "", err
			}
			return e.Text()
		}},
	}
	results := EncodeBatch(ctx, true, 2, items)
	if results[0].Err == nil {
		t.Error("expected an InvalidState error from the first item, got nil")
	}
	if results[1].Err != nil || results[1].Text != "true" {
		t.Errorf("got %+v, want Text=true, Err=nil", results[1])
	}
}
