// interpolator.go - first-order approach of a register toward its ROM target

package votrax

// interpolate advances reg one tick toward target using the canonical
// 7/8-step geometric approach with a 2x-scaled target: the register settles
// near 16*target, not target, because target is shifted left by one on every
// application. Because reg>>3 truncates, every reg with reg>>3 == 2*target
// (16*target <= reg <= 16*target+7) is a fixed point; approached from below
// the register lands exactly on 16*target.
func interpolate(reg, target uint32) uint32 {
	return reg - (reg >> 3) + (target << 1)
}
