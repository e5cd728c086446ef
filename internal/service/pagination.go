package service

// QuestionsPerPage is the size of a page of questions
const QuestionsPerPage = 10

// Paginate returns the 1-based page of items. Pages beyond the data, and
// pages below 1, are empty.
func Paginate[T any](items []T, page int) []T {
	if page < 1 || page-1 > len(items)/QuestionsPerPage {
		return []T{}
	}

	start := (page - 1) * QuestionsPerPage
	if start >= len(items) {
		return []T{}
	}
	end := min(start+QuestionsPerPage, len(items))

	return items[start:end]
}
