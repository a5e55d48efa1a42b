package dict_test

import (
	"fmt"

	"github.com/hkarlsen/go-fn-utils/dict"
)

func ExampleGetOr() {
	m := map[string]int{"a": 1}
	fmt.Println(dict.GetOr(m, "a", 3), dict.GetOr(m, "b", 3))
	// Output: 1 3
}

func ExampleFold() {
	prices := map[string]float64{"tea": 2.5, "scone": 3.0}
	total := dict.Fold(prices, func(acc float64, _ string, p float64) float64 {
		return acc + p
	}, 0)
	fmt.Println(total)
	// Output: 5.5
}

func ExampleMerge() {
	defaults := map[string]int{"port": 8080, "workers": 4}
	overrides := map[string]int{"port": 9090}
	fmt.Println(dict.Merge(defaults, overrides)["port"])
	// Output: 9090
}
