//go:build !floateq

package valid

// Generated methods are not available while the package is loaded with the
// floateq tag, so this file is not analyzed.
func closeTo(a, b Path) bool { return a.EqAbsAll(b, 1e-9) }
