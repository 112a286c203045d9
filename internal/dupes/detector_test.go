package dupes

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

type fakeStore struct {
	orders []StoredOrder
	err    error
}

func (s *fakeStore) ListOrderIdentities(_ context.Context, _ uuid.UUID, _ string) ([]StoredOrder, error) {
	return s.orders, s.err
}

func TestCheckDuplicate(t *testing.T) {
	accountID := uuid.New()
	stored := []StoredOrder{
		{
			Vendor:        "modernoptical",
			OrderNumber:   "1484047",
			AccountNumber: "AZ6372",
			CustomerName:  "PARADISE VALLEY EYECARE",
		},
		{
			Vendor:      "modernoptical",
			OrderNumber: "9000001",
			// older row persisted before tie-break fields were captured
		},
	}

	tests := []struct {
		name          string
		strict        bool
		orderNumber   string
		customerName  string
		accountNumber string
		wantDup       bool
	}{
		{
			name:   "all fields agree",
			strict: true, orderNumber: "1484047",
			customerName: "PARADISE VALLEY EYECARE", accountNumber: "AZ6372",
			wantDup: true,
		},
		{
			name:   "case and whitespace insensitive",
			strict: true, orderNumber: " 1484047 ",
			customerName: "paradise valley eyecare", accountNumber: "az6372",
			wantDup: true,
		},
		{
			name:   "different order number",
			strict: true, orderNumber: "1484048",
			customerName: "PARADISE VALLEY EYECARE", accountNumber: "AZ6372",
			wantDup: false,
		},
		{
			name:   "strict: one field disagrees",
			strict: true, orderNumber: "1484047",
			customerName: "DESERT RIDGE OPTICAL", accountNumber: "AZ6372",
			wantDup: false,
		},
		{
			name:   "strict: missing fields cannot deny",
			strict: true, orderNumber: "9000001",
			customerName: "ANYONE", accountNumber: "XX1",
			wantDup: true,
		},
		{
			name:   "strict: new order missing fields",
			strict: true, orderNumber: "1484047",
			wantDup: true,
		},
		{
			name:   "lenient: one agreeing field outweighs a disagreeing one",
			strict: false, orderNumber: "1484047",
			customerName: "DESERT RIDGE OPTICAL", accountNumber: "AZ6372",
			wantDup: true,
		},
		{
			name:   "lenient: all comparable fields disagree",
			strict: false, orderNumber: "1484047",
			customerName: "DESERT RIDGE OPTICAL", accountNumber: "NM2210",
			wantDup: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDetector(&fakeStore{orders: stored}, tt.strict, nil)
			res, err := d.Check(context.Background(), accountID, "modernoptical", tt.orderNumber, tt.customerName, tt.accountNumber)
			if err != nil {
				t.Fatalf("Check: %v", err)
			}
			if res.IsDuplicate != tt.wantDup {
				t.Fatalf("IsDuplicate = %v, want %v (%s)", res.IsDuplicate, tt.wantDup, res.Message)
			}
			if res.Message == "" {
				t.Error("result must carry a message")
			}
		})
	}
}

func TestCheckEmptyOrderNumberSkips(t *testing.T) {
	d := NewDetector(&fakeStore{orders: []StoredOrder{{OrderNumber: ""}}}, true, nil)
	res, err := d.Check(context.Background(), uuid.New(), "modernoptical", "  ", "X", "Y")
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if res.IsDuplicate {
		t.Fatal("empty order number must never be a duplicate")
	}
}

func TestCheckStoreError(t *testing.T) {
	boom := errors.New("db down")
	d := NewDetector(&fakeStore{err: boom}, true, nil)
	_, err := d.Check(context.Background(), uuid.New(), "modernoptical", "1484047", "", "")
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped store error", err)
	}
}
