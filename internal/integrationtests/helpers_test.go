package integration_tests

import "fmt"

func formatted(v float64) string {
	return fmt.Sprintf("%.6f", v)
}
