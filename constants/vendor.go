package constants

import "strings"

// VendorID is the normalized identity of an optical-frame supplier.
type VendorID string

// Known vendors. The detector may also return a raw sender domain as a
// fallback identity, which will not appear in this list.
const (
	VendorModernOptical VendorID = "modernoptical"
	VendorSafilo        VendorID = "safilo"
)

var allVendors = []VendorID{
	VendorModernOptical,
	VendorSafilo,
}

// AllVendors returns the known vendor identities as strings.
func AllVendors() []string {
	result := make([]string, len(allVendors))
	for i, v := range allVendors {
		result[i] = string(v)
	}
	return result
}

// NormalizeVendor lowercases and trims a vendor identity string.
func NormalizeVendor(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsKnownVendor reports whether the identity maps to a registered vendor
// rather than a raw-domain fallback.
func IsKnownVendor(identity string) bool {
	n := VendorID(NormalizeVendor(identity))
	for _, v := range allVendors {
		if v == n {
			return true
		}
	}
	return false
}
