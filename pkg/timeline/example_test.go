package timeline_test

import (
	"fmt"

	"github.com/matzehuels/jobtimeline/pkg/timeline"
)

func ExampleCompute() {
	workers := []string{"gpu-1", "gpu-0", "gpu-1", "gpu-1"}
	begin := []float64{0, 0, 4, 6}
	end := []float64{5, 3, 7, 9}

	l, err := timeline.Compute(workers, begin, end, timeline.Options{GroupNum: 2, GroupRadius: 0.3})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(l.Axis.Values())
	for i := range workers {
		fmt.Printf("%s row=%d pos=%.2f\n", workers[i], l.Rows[i], l.Positions[i])
	}
	// Output:
	// [gpu-0 gpu-1]
	// gpu-1 row=1 pos=1.00
	// gpu-0 row=0 pos=0.00
	// gpu-1 row=1 pos=1.15
	// gpu-1 row=1 pos=1.30
}

func ExampleOffsetAt() {
	fmt.Println(timeline.Wave(timeline.Period(2), 2))
	// Output: [0 1 2 1 0 -1 -2 -1]
}

func ExampleCompute_lengthMismatch() {
	_, err := timeline.Compute([]int{1, 2}, []float64{0}, []float64{1}, timeline.Options{GroupNum: 2})
	fmt.Println(err)
	// Output: length of workers, begin, end should be equal, but got (2, 1, 1)
}
