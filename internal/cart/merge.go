package cart

// mergeLine folds an incoming line into the list. A line with the same
// identity absorbs the incoming quantity and keeps every other field from the
// first add; otherwise the line is appended, preserving add order. The input
// slice is never mutated.
func mergeLine(lines []CartLine, incoming CartLine) []CartLine {
	out := make([]CartLine, len(lines))
	copy(out, lines)

	for i := range out {
		if sameIdentity(out[i], incoming) {
			out[i].Quantity += incoming.Quantity
			return out
		}
	}
	return append(out, incoming)
}

// removeLine drops every line whose (productId, sizeKey, colorKey) triple
// matches exactly. Unlike mergeLine, the size comparison is case-sensitive:
// a removal with a differently-cased size leaves the line in place. That
// asymmetry matches long-standing client behavior and is pinned by tests.
func removeLine(lines []CartLine, productID, sizeKey, colorKey string) []CartLine {
	out := make([]CartLine, 0, len(lines))
	for _, line := range lines {
		if line.ProductID == productID && line.SizeKey == sizeKey && line.ColorKey == colorKey {
			continue
		}
		out = append(out, line)
	}
	return out
}
