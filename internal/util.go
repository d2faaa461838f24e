package internal

import "fmt"

// Pairs splits a flat list of alternating x,y values into coordinate pairs.
func Pairs(flat []int) ([][2]int, error) {
	if len(flat)%2 != 0 {
		return nil, fmt.Errorf("odd number of coordinates: %d", len(flat))
	}
	pairs := make([][2]int, 0, len(flat)/2)
	for i := 0; i+1 < len(flat); i += 2 {
		pairs = append(pairs, [2]int{flat[i], flat[i+1]})
	}
	return pairs, nil
}
