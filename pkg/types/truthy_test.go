package types

import "testing"

func TestTruthy(t *testing.T) {
	var nilPtr *int
	one := 1
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"nil", nil, false},
		{"true", true, true},
		{"false", false, false},
		{"int zero", 0, false},
		{"int", 44, true},
		{"negative int", -1, true},
		{"int8 zero", int8(0), false},
		{"uint", uint(3), true},
		{"uint zero", uint64(0), false},
		{"float zero", 0.0, false},
		{"float", 0.5, true},
		{"float32 zero", float32(0), false},
		{"empty string", "", false},
		{"string zero", "0", false},
		{"string false", "false", true},
		{"string", "cashew rope", true},
		{"empty slice", []any{}, false},
		{"nil slice", []string(nil), false},
		{"slice", []int{0}, true},
		{"empty map", map[string]any{}, false},
		{"map", map[string]any{"k": nil}, true},
		{"nil pointer", nilPtr, false},
		{"pointer", &one, true},
		{"struct", struct{}{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truthy(tt.value); got != tt.want {
				t.Errorf("Truthy(%#v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
