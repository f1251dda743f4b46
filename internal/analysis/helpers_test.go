package analysis

import "fmt"

func formatted(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
