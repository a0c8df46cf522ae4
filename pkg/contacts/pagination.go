package contacts

func getTotalPages(totalCount int64, limit int64) int64 {
	if limit == 0 {
		return 0
	}
	return (totalCount + limit - 1) / limit
}

// pageExists allows page 1 of an empty collection so an empty store lists cleanly.
func pageExists(page int64, totalPages int64) bool {
	if page < 1 {
		return false
	}
	return page == 1 || page <= totalPages
}
