package model

// PageWindowSize is the maximum number of page buttons shown at once.
const PageWindowSize = 5

// PageButton is one entry of the page window.
type PageButton struct {
	Page      int  `json:"page"`
	IsCurrent bool `json:"is_current"`
}

// DerivePageWindow returns the contiguous pages to display around current.
// It is empty when there is at most one page. A current page outside [1, total]
// keeps the window in range and marks no button as current.
func DerivePageWindow(current, total int) []PageButton {
	if total <= 1 {
		return nil
	}

	anchor := min(max(current, 1), total)
	size := min(PageWindowSize, total)

	start := anchor - size/2
	start = max(start, 1)
	if start+size-1 > total {
		start = total - size + 1
	}

	window := make([]PageButton, 0, size)
	for p := start; p < start+size; p++ {
		window = append(window, PageButton{Page: p, IsCurrent: p == current})
	}
	return window
}

// HasPrev reports whether a previous page exists.
func HasPrev(current int) bool { return current > 1 }

// HasNext reports whether a next page exists.
func HasNext(current, total int) bool { return current < total }
