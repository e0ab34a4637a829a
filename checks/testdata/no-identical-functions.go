package testdata

type recv struct{}

func first(items []string) int {
	total := 0
	for _, item := range items {
		total += len(item)
	}
	return total
}

func second(items []string) int { // Noncompliant
	total := 0
	for _, item := range items {
		total += len(item)
	}
	return total
}

func third(items []string) int {
	total := 1
	for _, item := range items {
		total += len(item)
	}
	return total
}

func short() int { return 1 }

func alsoShort() int { return 1 }

func (r *recv) method(items []string) int { // Noncompliant
	total := 0
	for _, item := range items {
		// A comment does not make it different.
		total += len(item)
	}
	return total
}
