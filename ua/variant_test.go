package ua

import "testing"

func TestNewMatrixPanicsOnDimensionMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected NewMatrix to panic on a dimension/element mismatch")
		}
	}()
	NewMatrix(TypeInt32, []uint32{2, 2}, []interface{}{int32(1), int32(2), int32(3)})
}

func TestVariantIsNull(t *testing.T) {
	if !NilVariant.IsNull() {
		t.Error("NilVariant.IsNull() = false, want true")
	}
	if NewScalarVariant(TypeBoolean, true).IsNull() {
		t.Error("scalar Variant.IsNull() = true, want false")
	}
}
