package pdfparse

import (
	"fmt"
	"strconv"
	"strings"
)

// DecomposedSKU is the result of splitting a vendor SKU token.
type DecomposedSKU struct {
	Brand     string
	ColorCode string
	Size      int
}

// DecomposeSKU splits a Safilo receipt SKU of the fixed form
// BRAND/COLORCODE/SIZE into its three components. The size component must
// be a two-digit eye size in the 20-99 range. Any other shape is
// unparseable and reported to the caller as an error.
func DecomposeSKU(sku string) (DecomposedSKU, error) {
	parts := strings.Split(strings.TrimSpace(sku), "/")
	if len(parts) != 3 {
		return DecomposedSKU{}, fmt.Errorf("sku %q: want 3 /-separated components, got %d", sku, len(parts))
	}
	brand := strings.TrimSpace(parts[0])
	color := strings.TrimSpace(parts[1])
	sizeStr := strings.TrimSpace(parts[2])
	if brand == "" || color == "" {
		return DecomposedSKU{}, fmt.Errorf("sku %q: empty component", sku)
	}
	if len(sizeStr) != 2 {
		return DecomposedSKU{}, fmt.Errorf("sku %q: size %q is not two digits", sku, sizeStr)
	}
	size, err := strconv.Atoi(sizeStr)
	if err != nil {
		return DecomposedSKU{}, fmt.Errorf("sku %q: size %q is not numeric", sku, sizeStr)
	}
	if size < 20 || size > 99 {
		return DecomposedSKU{}, fmt.Errorf("sku %q: eye size %d out of range", sku, size)
	}
	return DecomposedSKU{Brand: brand, ColorCode: color, Size: size}, nil
}
