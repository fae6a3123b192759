package gridmenu

// GenerateGrid lays out rows*cols points evenly inside a width×height
// surface. Point (i, j) sits at ((i+1)*width/(rows+1), (j+1)*height/(cols+1)),
// emitted with j varying fastest. Non-positive rows or cols yield an empty
// slice.
func GenerateGrid(rows, cols int, width, height float64) []Vec2 {
	if rows <= 0 || cols <= 0 {
		return []Vec2{}
	}
	points := make([]Vec2, 0, rows*cols)
	for i := 0; i < rows; i++ {
		x := float64(i+1) * width / float64(rows+1)
		for j := 0; j < cols; j++ {
			points = append(points, Vec2{
				X: x,
				Y: float64(j+1) * height / float64(cols+1),
			})
		}
	}
	return points
}
