// Package billing turns an order subtotal and a discount specification into a
// fully itemized bill breakdown. The computation is pure: it never fails, never
// rounds between steps, and has no side effects.
package billing

import (
	"github.com/dinesync/pos-api/internal/domain/enum"
	"github.com/dinesync/pos-api/pkg/money"
)

// Breakdown is the itemized result of a bill computation. All fields keep full
// precision; call Rounded before persisting.
type Breakdown struct {
	SubTotal       money.Money
	DiscountType   enum.DiscountType
	DiscountValue  money.Money
	DiscountAmount money.Money
	NetSubTotal    money.Money
	ServiceCharge  money.Money
	TaxableAmount  money.Money
	TaxPct         money.Money
	TaxAmount      money.Money
	GrandTotal     money.Money
}

// Compute derives a bill breakdown from an order subtotal, a discount
// specification and the configured service charge and tax rate.
//
// The step order matters and is load-bearing:
//  1. a non-positive discount value yields a zero discount
//  2. PERCENTAGE discounts apply against the order subtotal
//  3. FIXED discounts are taken verbatim
//  4. the net subtotal is the subtotal less the discount
//  5. the service charge is added before tax, so it is itself taxed
//     (deliberate policy, not an accident)
//  6. tax applies to the taxable amount
//  7. the grand total is taxable amount plus tax
//
// Callers are responsible for rejecting negative discount values upstream;
// the calculator itself is total over its inputs.
func Compute(subTotal money.Money, discountType enum.DiscountType, discountValue, serviceCharge, taxPct money.Money) Breakdown {
	discountAmount := money.Zero
	if discountValue.IsPositive() {
		if discountType == enum.DiscountTypePercentage {
			discountAmount = subTotal.Percent(discountValue)
		} else {
			discountAmount = discountValue
		}
	}

	netSubTotal := subTotal.Sub(discountAmount)
	taxableAmount := netSubTotal.Add(serviceCharge)
	taxAmount := taxableAmount.Percent(taxPct)
	grandTotal := taxableAmount.Add(taxAmount)

	return Breakdown{
		SubTotal:       subTotal,
		DiscountType:   discountType,
		DiscountValue:  discountValue,
		DiscountAmount: discountAmount,
		NetSubTotal:    netSubTotal,
		ServiceCharge:  serviceCharge,
		TaxableAmount:  taxableAmount,
		TaxPct:         taxPct,
		TaxAmount:      taxAmount,
		GrandTotal:     grandTotal,
	}
}

// Rounded returns a copy with every monetary field rounded to 2 decimal
// places, the form in which a bill is persisted.
func (b Breakdown) Rounded() Breakdown {
	b.SubTotal = b.SubTotal.Round2()
	b.DiscountAmount = b.DiscountAmount.Round2()
	b.NetSubTotal = b.NetSubTotal.Round2()
	b.ServiceCharge = b.ServiceCharge.Round2()
	b.TaxableAmount = b.TaxableAmount.Round2()
	b.TaxAmount = b.TaxAmount.Round2()
	b.GrandTotal = b.GrandTotal.Round2()
	return b
}
