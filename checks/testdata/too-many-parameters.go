package testdata

type receiver struct{}

func few(a, b, c int) {}

func many(a, b, c, d, e, f, g, h int) {} // Noncompliant

func exactly(a, b, c, d int, e, f string, g bool) {}

func unnamed(int, int, int, int, int, int, int, string) {} // Noncompliant

func (r *receiver) method(a, b, c, d, e, f, g int) {}

var literal = func(a, b, c, d, e, f, g, h int) {} // Noncompliant

func outer(fn func(a, b, c, d, e, f, g, h int)) {}
