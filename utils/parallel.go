package utils

import (
	"image"
	"runtime"
	"sync"

	"go.viam.com/utils"
)

// ParallelFactor controls the max level of parallelization. This might be useful
// to set in tests where too much parallelism actually slows tests down in
// aggregate.
var ParallelFactor = runtime.GOMAXPROCS(0)

func init() {
	if ParallelFactor <= 0 {
		ParallelFactor = 1
	}
}

// ParallelForEachRow calls f once for every row in [0, rows). Rows are split into at most
// ParallelFactor contiguous bands, each handled by its own goroutine. f must only touch
// state owned by its row.
func ParallelForEachRow(rows int, f func(y int)) {
	if rows <= 0 {
		return
	}
	groups := MinInt(ParallelFactor, rows)
	if groups <= 1 {
		for y := 0; y < rows; y++ {
			f(y)
		}
		return
	}
	bandSize := rows / groups
	extra := rows % groups

	var wait sync.WaitGroup
	wait.Add(groups)
	from := 0
	for g := 0; g < groups; g++ {
		to := from + bandSize
		if g < extra {
			to++
		}
		start, end := from, to
		utils.PanicCapturingGo(func() {
			defer wait.Done()
			for y := start; y < end; y++ {
				f(y)
			}
		})
		from = to
	}
	wait.Wait()
}

// ParallelForEachPixel loops through the image and calls f for each [x, y] position.
// Work is split by rows; see ParallelForEachRow.
func ParallelForEachPixel(size image.Point, f func(x, y int)) {
	ParallelForEachRow(size.Y, func(y int) {
		for x := 0; x < size.X; x++ {
			f(x, y)
		}
	})
}
