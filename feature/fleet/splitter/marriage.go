package splitter

type marriageHalf struct {
	flags  []bool
	images []string
}

// splitMarriage halves the married flags and hands each stage the images of
// its married flags. Every married flag owns len(images)/trueFlags images, in
// original order; the remainder goes to the last stage with a married flag.
// Images of an entry without married flags are not assigned.
func splitMarriage(flags []bool, images []string) [2]marriageHalf {
	mid := (len(flags) + 1) / 2
	halves := [2][]bool{
		append([]bool{}, flags[:mid]...),
		append([]bool{}, flags[mid:]...),
	}

	married := countTrue(flags)
	perFlag := 0
	if married > 0 {
		perFlag = len(images) / married
	}

	var out [2]marriageHalf
	offset := 0
	for side, half := range halves {
		n := countTrue(half) * perFlag
		end := min(offset+n, len(images))
		out[side] = marriageHalf{
			flags:  half,
			images: append([]string{}, images[offset:end]...),
		}
		offset = end
	}

	if offset < len(images) {
		for side := len(out) - 1; side >= 0; side-- {
			if countTrue(out[side].flags) > 0 {
				out[side].images = append(out[side].images, images[offset:]...)
				break
			}
		}
	}
	return out
}

func countTrue(flags []bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}
