package billing

import (
	"testing"

	"github.com/dinesync/pos-api/internal/domain/enum"
	"github.com/dinesync/pos-api/pkg/money"
	"github.com/stretchr/testify/assert"
)

func m(s string) money.Money { return money.MustFromString(s) }

func TestComputeReferenceBill(t *testing.T) {
	// Subtotal 100, 10% discount, service charge 5, tax 13%.
	b := Compute(m("100"), enum.DiscountTypePercentage, m("10"), m("5"), m("13")).Rounded()

	assert.Equal(t, "10.00", b.DiscountAmount.StringFixed2())
	assert.Equal(t, "90.00", b.NetSubTotal.StringFixed2())
	assert.Equal(t, "95.00", b.TaxableAmount.StringFixed2())
	assert.Equal(t, "12.35", b.TaxAmount.StringFixed2())
	assert.Equal(t, "107.35", b.GrandTotal.StringFixed2())
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name          string
		subTotal      string
		discountType  enum.DiscountType
		discountValue string
		serviceCharge string
		taxPct        string
		wantDiscount  string
		wantTaxable   string
		wantTax       string
		wantTotal     string
	}{
		{
			name:     "no discount",
			subTotal: "100", discountType: enum.DiscountTypePercentage, discountValue: "0",
			serviceCharge: "5", taxPct: "13",
			wantDiscount: "0.00", wantTaxable: "105.00", wantTax: "13.65", wantTotal: "118.65",
		},
		{
			name:     "full percentage discount still taxes the service charge",
			subTotal: "100", discountType: enum.DiscountTypePercentage, discountValue: "100",
			serviceCharge: "5", taxPct: "13",
			wantDiscount: "100.00", wantTaxable: "5.00", wantTax: "0.65", wantTotal: "5.65",
		},
		{
			name:     "fixed discount taken verbatim",
			subTotal: "80", discountType: enum.DiscountTypeFixed, discountValue: "15",
			serviceCharge: "5", taxPct: "13",
			wantDiscount: "15.00", wantTaxable: "70.00", wantTax: "9.10", wantTotal: "79.10",
		},
		{
			name:     "negative discount value yields zero discount",
			subTotal: "100", discountType: enum.DiscountTypeFixed, discountValue: "-10",
			serviceCharge: "0", taxPct: "13",
			wantDiscount: "0.00", wantTaxable: "100.00", wantTax: "13.00", wantTotal: "113.00",
		},
		{
			name:     "zero tax and zero service charge",
			subTotal: "50", discountType: enum.DiscountTypePercentage, discountValue: "20",
			serviceCharge: "0", taxPct: "0",
			wantDiscount: "10.00", wantTaxable: "40.00", wantTax: "0.00", wantTotal: "40.00",
		},
		{
			name:     "zero subtotal",
			subTotal: "0", discountType: enum.DiscountTypePercentage, discountValue: "10",
			serviceCharge: "5", taxPct: "13",
			wantDiscount: "0.00", wantTaxable: "5.00", wantTax: "0.65", wantTotal: "5.65",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Compute(m(tt.subTotal), tt.discountType, m(tt.discountValue), m(tt.serviceCharge), m(tt.taxPct)).Rounded()

			assert.Equal(t, tt.wantDiscount, b.DiscountAmount.StringFixed2(), "discount amount")
			assert.Equal(t, tt.wantTaxable, b.TaxableAmount.StringFixed2(), "taxable amount")
			assert.Equal(t, tt.wantTax, b.TaxAmount.StringFixed2(), "tax amount")
			assert.Equal(t, tt.wantTotal, b.GrandTotal.StringFixed2(), "grand total")
		})
	}
}

func TestComputeKeepsFullPrecisionBetweenSteps(t *testing.T) {
	// 33.33 at 7.5% discount produces a sub-cent discount; rounding must
	// happen once at the end, not per step.
	b := Compute(m("33.33"), enum.DiscountTypePercentage, m("7.5"), m("0"), m("13"))

	assert.Equal(t, "2.49975", b.DiscountAmount.String())
	assert.Equal(t, b.TaxableAmount.Add(b.TaxAmount).String(), b.GrandTotal.String())

	rounded := b.Rounded()
	assert.Equal(t, "2.50", rounded.DiscountAmount.StringFixed2())
}

func TestComputeTotalIdentity(t *testing.T) {
	// grand total == taxable + tax, and taxable == subtotal - discount + service
	// charge, for a spread of inputs.
	cases := [][5]string{
		{"100", "10", "5", "13", "PERCENTAGE"},
		{"249.99", "33", "10", "13", "PERCENTAGE"},
		{"18", "5", "0", "8.25", "FIXED"},
		{"0.01", "0", "0", "13", "FIXED"},
	}

	for _, c := range cases {
		dt := enum.DiscountTypePercentage
		if c[4] == "FIXED" {
			dt = enum.DiscountTypeFixed
		}
		b := Compute(m(c[0]), dt, m(c[1]), m(c[2]), m(c[3]))

		assert.True(t, b.TaxableAmount.Equal(b.SubTotal.Sub(b.DiscountAmount).Add(b.ServiceCharge)),
			"taxable identity for subtotal %s", c[0])
		assert.True(t, b.GrandTotal.Equal(b.TaxableAmount.Add(b.TaxAmount)),
			"total identity for subtotal %s", c[0])
	}
}
