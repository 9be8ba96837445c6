package index

import "contentc/internal/resolve"

// CategoryQuestions lists, per category index, the question indices in that category.
type CategoryQuestions [][]int

// Build groups question indices by category. Every category gets an entry, empty
// ones included, and indices keep question input order.
func Build(categoryCount int, questions []resolve.Question) CategoryQuestions {
	out := make(CategoryQuestions, categoryCount)
	for i := range out {
		out[i] = []int{}
	}
	for _, q := range questions {
		out[q.Category] = append(out[q.Category], q.Index)
	}
	return out
}

// Counts returns the list length of every category.
func (c CategoryQuestions) Counts() []int {
	counts := make([]int, len(c))
	for i, list := range c {
		counts[i] = len(list)
	}
	return counts
}
