package truthtable

// Domain returns all 2^n boolean vectors of length n in ascending
// binary-counting order, with bit 0 mapped to the leftmost column.
// The order is deterministic across calls.
func Domain(n int) [][]bool {
	rows := make([][]bool, 0, 1<<n)
	for v := 0; v < 1<<n; v++ {
		row := make([]bool, n)
		for i := 0; i < n; i++ {
			row[i] = v&(1<<i) != 0
		}
		rows = append(rows, row)
	}
	return rows
}
