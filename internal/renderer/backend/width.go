package backend

import "github.com/rivo/uniseg"

// StringWidth returns the number of terminal columns s occupies.
func StringWidth(s string) int {
	return uniseg.StringWidth(s)
}

// eachCluster calls fn for every grapheme cluster of s with its display
// width, stopping early when fn returns false.
func eachCluster(s string, fn func(cluster string, width int) bool) {
	state := -1
	for s != "" {
		var cluster string
		var width int
		cluster, s, width, state = uniseg.FirstGraphemeClusterInString(s, state)
		if !fn(cluster, width) {
			return
		}
	}
}

// drawClusters lays s out from column x on a row of the given width,
// calling set for each visible cluster. It returns the column after s.
func drawClusters(x, width int, s string, set func(col int, cluster string, w int)) int {
	col := x
	eachCluster(s, func(cluster string, w int) bool {
		if w == 0 {
			w = 1
		}
		if col+w > width {
			return false
		}
		if col >= 0 {
			set(col, cluster, w)
		}
		col += w
		return true
	})
	return col
}
