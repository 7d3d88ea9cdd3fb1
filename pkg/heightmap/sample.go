package heightmap

import (
	"context"
	"runtime"
	"sync"
)

// Source is anything that can be sampled at a point of the plane.
// *noise.Field satisfies it.
type Source interface {
	Evaluate(x, y float64) float64
}

// Sample evaluates src once per pixel of grid. Rows are split into bands
// across workers goroutines; workers <= 0 uses one per CPU.
// The context is checked between rows.
func Sample(ctx context.Context, src Source, grid Grid, workers int) (*Heightmap, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > grid.Height {
		workers = grid.Height
	}

	hm := New(grid)
	rowsPerWorker := grid.Height / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		startRow := w * rowsPerWorker
		endRow := startRow + rowsPerWorker
		if w == workers-1 {
			endRow = grid.Height
		}

		wg.Add(1)
		go func(startRow, endRow int) {
			defer wg.Done()
			for py := startRow; py < endRow; py++ {
				if ctx.Err() != nil {
					return
				}
				row := hm.Values[py*grid.Width : (py+1)*grid.Width]
				for px := range row {
					row[px] = src.Evaluate(grid.Point(px, py))
				}
			}
		}(startRow, endRow)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return hm, nil
}
