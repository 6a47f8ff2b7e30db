package services

import "goblog/models"

const PostsPerPage = 5

// Page is one fixed-size slice of the reverse-chronological post listing.
type Page struct {
	Posts      []models.Post
	Number     int
	PerPage    int
	Total      int64
	TotalPages int
}

func (p *Page) HasPrev() bool { return p.Number > 1 }
func (p *Page) HasNext() bool { return p.Number < p.TotalPages }
func (p *Page) PrevPage() int { return p.Number - 1 }
func (p *Page) NextPage() int { return p.Number + 1 }

// Windows returns the page numbers rendered in the pagination strip: one page
// at each edge and a window around the current page, with 0 marking a gap.
func (p *Page) Windows() []int {
	const (
		edge         = 1
		leftCurrent  = 1
		rightCurrent = 2
	)

	var nums []int
	last := 0
	for n := 1; n <= p.TotalPages; n++ {
		inLeftEdge := n <= edge
		inRightEdge := n > p.TotalPages-edge
		inWindow := n >= p.Number-leftCurrent && n <= p.Number+rightCurrent
		if inLeftEdge || inRightEdge || inWindow {
			if last != 0 && n-last > 1 {
				nums = append(nums, 0)
			}
			nums = append(nums, n)
			last = n
		}
	}
	return nums
}

func totalPages(total int64, perPage int) int {
	pages := int((total + int64(perPage) - 1) / int64(perPage))
	if pages < 1 {
		pages = 1
	}
	return pages
}
