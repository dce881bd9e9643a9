package spatial

// octant transform matrices.
// For each octant, a (dx, dy) sweep pair maps to a world offset via:
//
//	worldX = cx + dx*xx + dy*xy
//	worldY = cy + dx*yx + dy*yy
//
// where dx sweeps horizontally within the row and dy is the fixed row index.
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// ComputeFOV returns the cells visible from origin within radius, using
// recursive shadowcasting over the transparency mask. Opaque cells are lit
// when reached but block everything behind them. The origin is always
// visible; an out-of-bounds origin panics with ErrOutOfBounds.
func ComputeFOV(transparent *Mask, origin Point, radius int) *Mask {
	transparent.mustContain(origin)
	visible := NewMask(transparent.Width, transparent.Height)
	visible.Set(origin.X, origin.Y, true)
	for _, m := range octants {
		castLight(transparent, visible, origin.X, origin.Y, 1, 1.0, 0.0, radius, m[0], m[1], m[2], m[3])
	}
	return visible
}

// castLight casts light for one octant.
//   - j is the current row (distance from origin along the main axis)
//   - dy = -j is fixed for the entire inner sweep
//   - dx sweeps from -j to 0 within the row
//   - lSlope = (dx - 0.5) / (dy + 0.5), rSlope = (dx + 0.5) / (dy - 0.5)
func castLight(transparent, visible *Mask, cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int) {
	if start < end {
		return
	}
	radiusSq := radius * radius
	newStart := start

	for j := row; j <= radius; j++ {
		dy := -j
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			wx := cx + dx*xx + dy*xy
			wy := cy + dx*yx + dy*yy

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			if dx*dx+dy*dy <= radiusSq && transparent.InBounds(wx, wy) {
				visible.Cells[wy*visible.Width+wx] = true
			}

			opaque := !transparent.At(wx, wy)

			if blocked {
				if opaque {
					newStart = rSlope
				} else {
					blocked = false
					start = newStart
				}
			} else if opaque && j < radius {
				blocked = true
				castLight(transparent, visible, cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
