package basic

import (
	"fmt"
	"strings"
)

// Greeting is what Hello says.
const Greeting = "héllo, 世界" // Not ASCII.

type point struct {
	x, y int // Coordinates.
}

func (p *point) add(q point) point {
	return point{p.x + q.x, p.y + q.y}
}

/*
Hello prints a greeting
for each name.
*/
func Hello(names ...string) {
	for i, name := range names {
		if i > 0 && name != "" {
			fmt.Println(strings.ToUpper(name)); continue
		} else if i == 0 {
			break
		}
		fmt.Println(Greeting, name)
	}
}
