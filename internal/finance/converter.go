package finance

// NetFactor is the fraction of a gross amount left after the fixed 20%
// deduction. It is a business constant; if per-client rates ever become a
// requirement the rate must be passed explicitly instead.
const NetFactor = 0.8

// ToNet converts a gross delivery amount to its net equivalent.
func ToNet(gross float64) float64 {
	return gross * NetFactor
}

// ToGross converts a net delivery amount back to its gross equivalent.
// ToGross(ToNet(x)) == x up to floating-point rounding.
func ToGross(net float64) float64 {
	return net / NetFactor
}
