package attribution

// Residual returns the points the rule decomposition could not attribute.
func Residual(b Breakdown) int {
	return b.Points(CategoryUnattributed)
}

// Verify reports whether the breakdown reconciles exactly against the
// authoritative total.
func Verify(b Breakdown, authoritativeTotal int) bool {
	return b.CategorySum()+Residual(b) == authoritativeTotal
}
