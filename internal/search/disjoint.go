package search

import "sort"

// IsSeparating reports whether the weighted sums coeffs produces over
// the valid rows share no value with the weighted sums it produces over
// the invalid rows.
func IsSeparating(coeffs Composition, valid, invalid [][]bool) bool {
	seen := make(map[int]struct{}, len(valid))
	for _, row := range valid {
		seen[dot(coeffs, row)] = struct{}{}
	}
	for _, row := range invalid {
		if _, ok := seen[dot(coeffs, row)]; ok {
			return false
		}
	}
	return true
}

// Tallies returns the distinct weighted sums coeffs produces over rows,
// sorted ascending. For a separating vector applied to the valid rows
// this is the constraint's admissible-count set.
func Tallies(coeffs Composition, rows [][]bool) []int {
	seen := make(map[int]struct{}, len(rows))
	for _, row := range rows {
		seen[dot(coeffs, row)] = struct{}{}
	}
	tallies := make([]int, 0, len(seen))
	for t := range seen {
		tallies = append(tallies, t)
	}
	sort.Ints(tallies)
	return tallies
}

func dot(coeffs Composition, row []bool) int {
	sum := 0
	for i, set := range row {
		if set {
			sum += coeffs[i]
		}
	}
	return sum
}
