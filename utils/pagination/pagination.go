// Package pagination slices a filtered or ranked list into zero-indexed
// pages and computes the page-number strip the listing pages render.
package pagination

// Ellipsis is the marker value inside Page.Numbers standing for a "..."
// gap in the page-number strip.
const Ellipsis = -1

// maxPlainPages is the largest page count shown without an ellipsis.
const maxPlainPages = 5

// windowSize is how many pages the sliding window around the current page
// shows at most.
const windowSize = 3

// Page describes one page of a list: the half-open slice bounds into the
// source, and the number strip to render.
type Page struct {
	Start      int   `json:"start"` // inclusive
	End        int   `json:"end"`   // exclusive
	Current    int   `json:"current"`
	PageSize   int   `json:"page_size"`
	Total      int   `json:"total"`
	TotalPages int   `json:"total_pages"`
	Numbers    []int `json:"numbers"` // page indexes, with Ellipsis markers
}

// Paginate computes the page bounds and number strip for a list of total
// items viewed at zero-indexed page with the given page size. An
// out-of-range page clamps into the valid range; a non-positive size
// defaults to 10.
func Paginate(total, page, size int) Page {
	if size <= 0 {
		size = 10
	}
	totalPages := (total + size - 1) / size

	if totalPages == 0 {
		return Page{PageSize: size, Total: total}
	}

	if page < 0 {
		page = 0
	}
	if page > totalPages-1 {
		page = totalPages - 1
	}

	start := page * size
	end := start + size
	if end > total {
		end = total
	}

	return Page{
		Start:      start,
		End:        end,
		Current:    page,
		PageSize:   size,
		Total:      total,
		TotalPages: totalPages,
		Numbers:    numberStrip(totalPages, page),
	}
}

// numberStrip builds the page-number list: all pages when few enough,
// otherwise first and last page with a sliding window of up to windowSize
// pages around current. Near the edges the window shifts instead of
// shrinking, so no ellipsis ever stands in for a gap of zero pages.
func numberStrip(totalPages, current int) []int {
	if totalPages <= maxPlainPages {
		out := make([]int, totalPages)
		for i := range out {
			out[i] = i
		}
		return out
	}

	last := totalPages - 1
	low := current - 1
	high := current + 1
	if low < 1 {
		low = 1
		high = low + windowSize - 1
	}
	if high > last-1 {
		high = last - 1
		low = high - windowSize + 1
	}
	if low < 1 {
		low = 1
	}

	out := []int{0}
	if low > 1 {
		out = append(out, Ellipsis)
	}
	for p := low; p <= high; p++ {
		out = append(out, p)
	}
	if high < last-1 {
		out = append(out, Ellipsis)
	}
	out = append(out, last)
	return out
}
