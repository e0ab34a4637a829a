package generic

type number interface {
	~int | ~float64
}

func Sum[T number](values []T) (total T) {
	for _, v := range values {
		total += v
	}
	return
}

var raw = `line one
  line two`

func apply(f func(int) int, xs ...int) []int {
	out := make([]int, 0, len(xs))
	for _, x := range xs {
		out = append(out, f(x))
	}
	return out
}

func use() {
	double := func(x int) int { return x * 2 }
	_ = apply(double, 1, 2, 3)
	switch y := 2; {
	case y > 1:
	default:
	}
	var ch = make(chan int, 1)
	select {
	case v := <-ch:
		_ = v
	default:
	}
loop:
	for {
		break loop
	}
}
