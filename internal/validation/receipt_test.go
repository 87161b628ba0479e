package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mmeshcher/receipt-processor/internal/model"
)

func validReceipt() *model.Receipt {
	return &model.Receipt{
		Retailer:     "Target",
		PurchaseDate: "2022-01-01",
		PurchaseTime: "13:01",
		Items:        []model.Item{},
		Total:        "35.35",
	}
}

func TestIsValidReceipt(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *model.Receipt)
		valid  bool
	}{
		{
			name:   "minimal well-formed receipt",
			modify: func(r *model.Receipt) {},
			valid:  true,
		},
		{
			name:   "numeric total text",
			modify: func(r *model.Receipt) { r.Total = "0" },
			valid:  true,
		},
		{
			name:   "date without calendar check",
			modify: func(r *model.Receipt) { r.PurchaseDate = "2021-13-99" },
			valid:  true,
		},
		{
			name:   "time without range check",
			modify: func(r *model.Receipt) { r.PurchaseTime = "99:99" },
			valid:  true,
		},
		{
			name:   "missing retailer",
			modify: func(r *model.Receipt) { r.Retailer = "" },
			valid:  false,
		},
		{
			name:   "missing purchase date",
			modify: func(r *model.Receipt) { r.PurchaseDate = "" },
			valid:  false,
		},
		{
			name:   "bad purchase date",
			modify: func(r *model.Receipt) { r.PurchaseDate = "2022/01/01" },
			valid:  false,
		},
		{
			name:   "missing purchase time",
			modify: func(r *model.Receipt) { r.PurchaseTime = "" },
			valid:  false,
		},
		{
			name:   "bad purchase time",
			modify: func(r *model.Receipt) { r.PurchaseTime = "1:3" },
			valid:  false,
		},
		{
			name:   "missing items",
			modify: func(r *model.Receipt) { r.Items = nil },
			valid:  false,
		},
		{
			name:   "missing total",
			modify: func(r *model.Receipt) { r.Total = "" },
			valid:  false,
		},
		{
			name:   "non numeric total",
			modify: func(r *model.Receipt) { r.Total = "ten dollars" },
			valid:  false,
		},
		{
			name:   "boolean total token",
			modify: func(r *model.Receipt) { r.Total = "true" },
			valid:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validReceipt()
			tt.modify(r)
			assert.Equal(t, tt.valid, IsValidReceipt(r))
		})
	}
}

func TestIsValidReceipt_Nil(t *testing.T) {
	assert.False(t, IsValidReceipt(nil))
}

func TestIsDateFormatValid(t *testing.T) {
	tests := []struct {
		date  string
		valid bool
	}{
		{"2012-12-05", true},
		{"2000-01-01", true},
		{"2012-12", false},
		{"202-12-12", false},
		{"tuesday", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			if got := IsDateFormatValid(tt.date); got != tt.valid {
				t.Fatalf("IsDateFormatValid(%q) = %v, want %v", tt.date, got, tt.valid)
			}
		})
	}
}

func TestIsTimeFormatValid(t *testing.T) {
	tests := []struct {
		time  string
		valid bool
	}{
		{"13:12", true},
		{"1:00", true},
		{"11111:00", false},
		{"1:3", false},
		{"1233", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.time, func(t *testing.T) {
			if got := IsTimeFormatValid(tt.time); got != tt.valid {
				t.Fatalf("IsTimeFormatValid(%q) = %v, want %v", tt.time, got, tt.valid)
			}
		})
	}
}
