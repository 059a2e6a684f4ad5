package pagination

// Block is the paging summary returned with every per-type result.
type Block struct {
	TotalResults int `json:"total_results"`
	TotalPages   int `json:"total_pages"`
	CurrentPage  int `json:"current_page"`
	PerPage      int `json:"per_page"`
}

// Calculate builds a Block from the engine-reported match count.
// currentPage and perPage are echoed; perPage is expected to be >= 1.
func Calculate(totalResults, currentPage, perPage int) Block {
	if totalResults < 0 {
		totalResults = 0
	}
	return Block{
		TotalResults: totalResults,
		TotalPages:   totalPages(totalResults, perPage),
		CurrentPage:  currentPage,
		PerPage:      perPage,
	}
}

func totalPages(totalResults, perPage int) int {
	if totalResults == 0 || perPage <= 0 {
		return 0
	}
	return (totalResults + perPage - 1) / perPage
}
