// Code generated by hand for testing. DO NOT EDIT.

package generated

func deep(xs []int) int {
	n := 0
	for _, x := range xs {
		if x > 0 {
			if x > 10 {
				n++
			}
		}
	}

	return n
}
