package pipeline

// collapse groups identical raw titles within a batch, returning the
// distinct titles in first-occurrence order with their occurrence counts.
// Grouping is on the exact raw string — normalization happens inside the
// engine, and two raw variants of the same role still parse to identical
// results, so collapsing pre-normalization only ever costs a few duplicate
// parses, never correctness.
func collapse(batch []string) ([]string, []int) {
	if len(batch) == 0 {
		return nil, nil
	}

	index := make(map[string]int, len(batch))
	titles := make([]string, 0, len(batch))
	counts := make([]int, 0, len(batch))

	for _, title := range batch {
		if i, seen := index[title]; seen {
			counts[i]++
			continue
		}
		index[title] = len(titles)
		titles = append(titles, title)
		counts = append(counts, 1)
	}
	return titles, counts
}
