package t2048

// compactRow drops empty cells, keeping tile order.
func compactRow(row Row) []int {
	tiles := make([]int, 0, Size)
	for _, v := range row {
		if v != 0 {
			tiles = append(tiles, v)
		}
	}
	return tiles
}

// mergeTiles merges equal neighbours of a compacted row from left to right.
// A merged tile never merges again in the same pass, so [2 2 2] becomes [4 2].
func mergeTiles(tiles []int) (merged []int, points int) {
	merged = make([]int, 0, len(tiles))
	for i := 0; i < len(tiles); {
		if i+1 < len(tiles) && tiles[i] == tiles[i+1] {
			sum := tiles[i] + tiles[i+1]
			merged = append(merged, sum)
			points += sum
			i += 2
			continue
		}
		merged = append(merged, tiles[i])
		i++
	}
	return merged, points
}

// padRow right-pads tiles with zeros to a full row.
func padRow(tiles []int) Row {
	var row Row
	copy(row[:], tiles)
	return row
}

// slideRowLeft is the leftward transform all four directions derive from.
func slideRowLeft(row Row) (Row, int) {
	merged, points := mergeTiles(compactRow(row))
	return padRow(merged), points
}

// reverseRow returns row with its elements in reverse order.
func reverseRow(row Row) Row {
	var result Row
	for i := range Size {
		result[i] = row[Size-1-i]
	}
	return result
}
