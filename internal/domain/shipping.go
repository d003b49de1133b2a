package domain

type ShippingMethod string

const (
	ShippingStandard ShippingMethod = "STANDARD"
	ShippingExpress  ShippingMethod = "EXPRESS"
	ShippingPriority ShippingMethod = "PRIORITY"
)

// Flat surcharges in cents. An unrecognized or absent method adds nothing.
var shippingSurcharges = map[ShippingMethod]int64{
	ShippingStandard: 580,
	ShippingExpress:  1250,
	ShippingPriority: 2495,
}

func SurchargeFor(method string) int64 {
	return shippingSurcharges[ShippingMethod(method)]
}
