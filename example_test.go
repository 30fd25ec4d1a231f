package metrics_test

import (
	"fmt"
	"log"

	"github.com/nicksonwcmak/metrics"
)

func ExampleNewEuclidean() {
	m := metrics.NewEuclidean[float64]()

	d, err := m.Dist([]float64{0, 0}, []float64{3, 4})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(d)
	// Output: 5
}

func ExampleNewPAdic() {
	m, err := metrics.NewPAdic[int64](2)
	if err != nil {
		log.Fatal(err)
	}

	d, _ := m.Dist(8, 0)
	fmt.Println(d)
	// Output: 0.125
}

func ExampleStringHamming() {
	d, err := metrics.StringHamming{}.Dist("karolin", "kathrin")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(d)

	_, err = metrics.StringHamming{}.Dist("ab", "abc")
	fmt.Println(err)
	// Output:
	// 3
	// incompatible lengths: 2 and 3
}

func ExampleLoadConfig() {
	cfg, err := metrics.LoadConfig([]byte(`{"kind":"lp","p":"inf"}`), nil)
	if err != nil {
		log.Fatal(err)
	}

	m, err := metrics.NewVectorMetric(cfg)
	if err != nil {
		log.Fatal(err)
	}

	d, _ := m.Dist([]float64{1, 5, 2}, []float64{4, 1, 2})
	fmt.Println(cfg.Kind, cfg.P, d)
	// Output: lp inf 4
}
