package mapgen

// neighborKernel counts the eight surrounding cells and ignores the center
var neighborKernel = [3][3]int{
	{1, 1, 1},
	{1, 0, 1},
	{1, 1, 1},
}

// CountNeighbors returns, for every cell in column-major order, the number
// of mines among its surrounding cells. Mine cells get 0.
//
// The mine indicator grid is convolved with neighborKernel; cells outside
// the board contribute nothing.
func CountNeighbors(width, height int, mines []int) []int {
	grid := make([][]int, width)
	for x := range grid {
		grid[x] = make([]int, height)
	}
	for _, idx := range mines {
		grid[idx/height][idx%height] = 1
	}

	counts := convolveSame(grid, neighborKernel)

	out := make([]int, 0, width*height)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			if grid[x][y] == 1 {
				out = append(out, 0)
				continue
			}
			out = append(out, counts[x][y])
		}
	}
	return out
}

// convolveSame is a 2D convolution with a 3x3 kernel, output the same size as
// the input and zero padding at the edges.
func convolveSame(grid [][]int, kernel [3][3]int) [][]int {
	width := len(grid)
	out := make([][]int, width)
	for x := 0; x < width; x++ {
		height := len(grid[x])
		out[x] = make([]int, height)
		for y := 0; y < height; y++ {
			sum := 0
			for kx := -1; kx <= 1; kx++ {
				for ky := -1; ky <= 1; ky++ {
					nx, ny := x+kx, y+ky
					if nx < 0 || nx >= width || ny < 0 || ny >= height {
						continue
					}
					// kernel is flipped
					sum += grid[nx][ny] * kernel[1-kx][1-ky]
				}
			}
			out[x][y] = sum
		}
	}
	return out
}
