package orderControllers

import "github.com/Long182k/E-Commercial-Server/models"

const (
	taxRate          = 0.10
	flatShippingFee  = 50.0
	freeShippingOver = 1000.0
	discountRate     = 0.05
	discountOver     = 2000.0
)

// ComputeSummary derives the pricing breakdown from a cart snapshot. It is a
// pure function and is re-run on every request: the checkout preview and the
// actual order placement each compute their own summary, because the cart may
// have changed in between.
func ComputeSummary(items []models.CartItemView) models.PricingSummary {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}

	tax := subtotal * taxRate

	shipping := flatShippingFee
	if subtotal > freeShippingOver {
		shipping = 0
	}

	var discount float64
	if subtotal > discountOver {
		discount = subtotal * discountRate
	}

	return models.PricingSummary{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Discount: discount,
		Total:    subtotal + tax + shipping - discount,
	}
}
