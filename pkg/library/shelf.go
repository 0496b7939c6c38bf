package library

import (
	"sort"
	"strings"
)

// Shelf is a named, ordered sequence of books. Order is caller-visible:
// books keep insertion order until SortBooksByTitle reorders them.
type Shelf struct {
	Name  string // also the category label matched during organize
	Books []Book
}

// NewShelf creates a shelf with the given name and initial books.
func NewShelf(name string, books ...Book) *Shelf {
	s := &Shelf{Name: name}
	s.AddBooks(books...)
	return s
}

// AddBooks appends the given books, in the order provided, after any books
// already on the shelf. No deduplication and no category check against the
// shelf name.
func (s *Shelf) AddBooks(books ...Book) {
	s.Books = append(s.Books, books...)
}

// SortBooksByTitle reorders the shelf in place, ascending by case-folded
// title. The sort is stable: books with equal titles keep their previous
// relative order.
func (s *Shelf) SortBooksByTitle() {
	sort.SliceStable(s.Books, func(i, j int) bool {
		return strings.ToLower(s.Books[i].Title) < strings.ToLower(s.Books[j].Title)
	})
}

// Categories returns the distinct category values among the shelf's current
// books. An empty shelf yields an empty set.
func (s *Shelf) Categories() map[string]bool {
	cats := make(map[string]bool, len(s.Books))
	for _, b := range s.Books {
		cats[b.Category] = true
	}
	return cats
}
