package model

import "testing"

func TestParseFuelType(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  FuelType
		ok    bool
	}{
		{name: "regular", input: "REGULAR", want: FuelRegular, ok: true},
		{name: "diesel", input: "DIESEL", want: FuelDiesel, ok: true},
		{name: "super", input: "SUPER", want: FuelSuper, ok: true},
		{name: "lowercase is not accepted", input: "diesel", ok: false},
		{name: "unknown type", input: "KEROSENE", ok: false},
		{name: "empty string", input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseFuelType(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseFuelType(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Fatalf("ParseFuelType(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
