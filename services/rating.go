package services

import "math"

// displayRating turns the rated-order aggregate of a restaurant into its
// display rating. The average is rounded UP to the nearest integer: ratings
// [4,5] average 4.5 and display as 5, [3,3,4] average 3.33 and display as 4.
// Zero rated orders display as 0.
//
// This is the only place the rounding rule lives; every caller goes through
// here.
func displayRating(sum, count int64) int {
	if count == 0 {
		return 0
	}
	return int(math.Ceil(float64(sum) / float64(count)))
}
