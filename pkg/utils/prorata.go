package utils

// ProRataShare computes a holder's share of a distribution: amount * units /
// supply with floor division. The per-distribution rounding residual stays
// with the distributor's custody and is bounded by supply-1 smallest units.
func ProRataShare(amount, units, supply int64) int64 {
	if supply <= 0 || units <= 0 || amount <= 0 {
		return 0
	}
	return amount * units / supply
}

// ProRataResidual returns the undistributed remainder after paying every
// holder their floor share.
func ProRataResidual(amount int64, unitsByHolder []int64, supply int64) int64 {
	paid := int64(0)
	for _, units := range unitsByHolder {
		paid += ProRataShare(amount, units, supply)
	}
	return amount - paid
}
