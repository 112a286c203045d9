package constants

import "testing"

func TestNormalizeVendor(t *testing.T) {
	tests := []struct{ in, want string }{
		{"ModernOptical", "modernoptical"},
		{"  SAFILO  ", "safilo"},
		{"mysafilo.com", "mysafilo.com"},
	}
	for _, tt := range tests {
		if got := NormalizeVendor(tt.in); got != tt.want {
			t.Errorf("NormalizeVendor(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsKnownVendor(t *testing.T) {
	for _, v := range AllVendors() {
		if !IsKnownVendor(v) {
			t.Errorf("IsKnownVendor(%q) = false", v)
		}
	}
	if IsKnownVendor("luxfra.example") {
		t.Error("raw domain fallback must not be a known vendor")
	}
	if !IsKnownVendor(" ModernOptical ") {
		t.Error("identity check must normalize")
	}
}

func TestIsPDFAttachment(t *testing.T) {
	tests := []struct {
		contentType, fileName string
		want                  bool
	}{
		{"application/pdf", "receipt.pdf", true},
		{"APPLICATION/PDF", "", true},
		{"application/octet-stream", "Order_Receipt.PDF", true},
		{"application/octet-stream", "receipt.docx", false},
		{"image/png", "scan.png", false},
		{"", "noextension", false},
	}
	for _, tt := range tests {
		if got := IsPDFAttachment(tt.contentType, tt.fileName); got != tt.want {
			t.Errorf("IsPDFAttachment(%q, %q) = %v, want %v", tt.contentType, tt.fileName, got, tt.want)
		}
	}
}
