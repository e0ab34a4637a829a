package testdata

func compare(a, b int, s []int) bool {
	if a == a { // Noncompliant
		return true
	}
	if a == b {
		return false
	}
	x := a - a // Noncompliant
	y := a + a
	z := a*2 - a*2 // Noncompliant
	_ = s[0] != s[1]
	_ = s[0] != s[0] // Noncompliant
	_ = (a < b) && (a < b) // Noncompliant
	_ = a /* same */ >= a // Noncompliant
	return x+y+z > 0 && b > a
}
