package pdfparse

import "testing"

func TestDecomposeSKU(t *testing.T) {
	tests := []struct {
		sku   string
		want  DecomposedSKU
		valid bool
	}{
		{"CARRERA-8892/R80/56", DecomposedSKU{Brand: "CARRERA-8892", ColorCode: "R80", Size: 56}, true},
		{"HEXAGON/0086/52", DecomposedSKU{Brand: "HEXAGON", ColorCode: "0086", Size: 52}, true},
		{" SA1066/807/20 ", DecomposedSKU{Brand: "SA1066", ColorCode: "807", Size: 20}, true},
		{"X/Y/99", DecomposedSKU{Brand: "X", ColorCode: "Y", Size: 99}, true},

		{"ONLYTWO/56", DecomposedSKU{}, false},
		{"A/B/C/56", DecomposedSKU{}, false},
		{"/R80/56", DecomposedSKU{}, false},
		{"CARRERA//56", DecomposedSKU{}, false},
		{"CARRERA/R80/5", DecomposedSKU{}, false},
		{"CARRERA/R80/560", DecomposedSKU{}, false},
		{"CARRERA/R80/ab", DecomposedSKU{}, false},
		{"CARRERA/R80/19", DecomposedSKU{}, false},
		{"CARRERA/R80/00", DecomposedSKU{}, false},
		{"", DecomposedSKU{}, false},
	}
	for _, tt := range tests {
		got, err := DecomposeSKU(tt.sku)
		if tt.valid {
			if err != nil {
				t.Errorf("DecomposeSKU(%q) unexpected error: %v", tt.sku, err)
				continue
			}
			if got != tt.want {
				t.Errorf("DecomposeSKU(%q) = %+v, want %+v", tt.sku, got, tt.want)
			}
			continue
		}
		if err == nil {
			t.Errorf("DecomposeSKU(%q) = %+v, want error", tt.sku, got)
		}
	}
}
