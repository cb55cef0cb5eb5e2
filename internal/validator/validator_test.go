package validator

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/shopspring/decimal"
)

type sample struct {
	Color   string           `binding:"omitempty,hex_color"`
	Amount  *decimal.Decimal `binding:"required,decimal_gt0"`
	Balance *decimal.Decimal `binding:"omitempty,decimal_gte0"`
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestRegister(t *testing.T) {
	Register()

	tests := []struct {
		name    string
		input   sample
		wantErr bool
	}{
		{"valid", sample{Color: "#FF9500", Amount: dec("12.50"), Balance: dec("0")}, false},
		{"short_color", sample{Color: "#abc", Amount: dec("1")}, false},
		{"bad_color", sample{Color: "orange", Amount: dec("1")}, true},
		{"missing_amount", sample{}, true},
		{"zero_amount", sample{Amount: dec("0")}, true},
		{"negative_amount", sample{Amount: dec("-0.01")}, true},
		{"negative_balance", sample{Amount: dec("1"), Balance: dec("-5")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(&tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}
