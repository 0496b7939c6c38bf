package library

import (
	"fmt"
	"strings"
)

// Catalog exposes the organizing and reporting operations over one room.
// It borrows the room for its lifetime and keeps no state of its own; all
// operations assume exclusive, sequential access to the room.
type Catalog struct {
	room *Room
}

// NewCatalog creates a catalog over the given room.
// Returns ErrNilRoom if room is nil.
func NewCatalog(room *Room) (*Catalog, error) {
	if room == nil {
		return nil, ErrNilRoom
	}
	return &Catalog{room: room}, nil
}

// Room returns the room this catalog operates on.
func (c *Catalog) Room() *Room {
	return c.room
}

// OrganizeBooksByCategory distributes a pile of loose books onto the room's
// existing shelves. Each book goes to the first shelf whose name equals the
// book's category (exact, case-sensitive match) and is appended after any
// books already there. A book whose category matches no shelf name is
// dropped: the catalog never creates shelves, and it keeps no record of
// unplaced books. The pile itself is not mutated, and books bound for the
// same shelf keep their relative order from the pile.
func (c *Catalog) OrganizeBooksByCategory(pile []Book) {
	for _, b := range pile {
		for _, s := range c.room.Shelves {
			if s.Name == b.Category {
				s.AddBooks(b)
				break
			}
		}
	}
}

// SortBooksOnAllShelves sorts every shelf by title, in room order. Each
// shelf is sorted independently; see Shelf.SortBooksByTitle for the
// ordering rule.
func (c *Catalog) SortBooksOnAllShelves() {
	for _, s := range c.room.Shelves {
		s.SortBooksByTitle()
	}
}

// Dump renders the whole room as display text: each shelf in room order,
// each book in shelf order. The output is deterministic for a given room
// state and has no side effects; it is display text, not an exchange
// format.
func (c *Catalog) Dump() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Room: %s\n", c.room.Owner)
	for _, s := range c.room.Shelves {
		fmt.Fprintf(&sb, "  Shelf: %s\n", s.Name)
		for _, b := range s.Books {
			fmt.Fprintf(&sb, "    - %s by %s [%s]\n", b.Title, b.Author, b.Category)
		}
	}
	return sb.String()
}

// VerifyCategoryPlacement checks that each category appears on at most one
// shelf in the room. Returns an error wrapping ErrCategorySplit naming the
// first category found on two shelves, or nil if the placement is clean.
func (c *Catalog) VerifyCategoryPlacement() error {
	seen := make(map[string]string) // category -> shelf name
	for _, s := range c.room.Shelves {
		for cat := range s.Categories() {
			if prev, ok := seen[cat]; ok && prev != s.Name {
				return fmt.Errorf("%w: %q on shelves %q and %q", ErrCategorySplit, cat, prev, s.Name)
			}
			seen[cat] = s.Name
		}
	}
	return nil
}

// Record is one row of the catalog's tabular view: a book together with
// the name of the shelf it sits on.
type Record struct {
	BookID   string `json:"book_id"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Category string `json:"category"`
	ISBN     string `json:"isbn,omitempty"`
	Shelf    string `json:"shelf"`
}

// Records returns one Record per shelved book, in room order then shelf
// order. Books never placed on a shelf do not appear.
func (c *Catalog) Records() []Record {
	var rows []Record
	for _, s := range c.room.Shelves {
		for _, b := range s.Books {
			rows = append(rows, Record{
				BookID:   b.ID,
				Title:    b.Title,
				Author:   b.Author,
				Category: b.Category,
				ISBN:     b.ISBN,
				Shelf:    s.Name,
			})
		}
	}
	return rows
}
