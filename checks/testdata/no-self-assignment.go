package testdata

type point struct{ x, y int }

func update(p *point, a, b int) {
	a = a // Noncompliant
	p.x = p.x // Noncompliant
	p.x = p.y
	a, b = b, a
	a, b = a, 2 // Noncompliant
	a += a
	for i := 0; i < 1; i++ {
		a := a
		_ = a
	}
	_ = b
}
