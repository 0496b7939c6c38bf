package library

import "testing"

func TestShelfAddBooks(t *testing.T) {
	t.Run("appends in given order", func(t *testing.T) {
		s := NewShelf("Fiction")
		s.AddBooks(
			Book{ID: "b1", Title: "One"},
			Book{ID: "b2", Title: "Two"},
		)
		s.AddBooks(Book{ID: "b3", Title: "Three"})
		if len(s.Books) != 3 {
			t.Fatalf("expected 3 books, got %d", len(s.Books))
		}
		for i, want := range []string{"b1", "b2", "b3"} {
			if s.Books[i].ID != want {
				t.Fatalf("position %d: expected %s, got %s", i, want, s.Books[i].ID)
			}
		}
	})

	t.Run("no deduplication", func(t *testing.T) {
		s := NewShelf("Fiction")
		b := Book{ID: "b1", Title: "One"}
		s.AddBooks(b, b)
		if len(s.Books) != 2 {
			t.Fatalf("expected 2 books, got %d", len(s.Books))
		}
	})
}

func TestShelfSortBooksByTitle(t *testing.T) {
	t.Run("sorts ascending", func(t *testing.T) {
		s := NewShelf("Fiction",
			Book{ID: "b1", Title: "Charlie"},
			Book{ID: "b2", Title: "Alpha"},
			Book{ID: "b3", Title: "Bravo"},
		)
		s.SortBooksByTitle()
		for i, want := range []string{"Alpha", "Bravo", "Charlie"} {
			if s.Books[i].Title != want {
				t.Fatalf("position %d: expected %s, got %s", i, want, s.Books[i].Title)
			}
		}
	})

	t.Run("equal titles keep relative order", func(t *testing.T) {
		s := NewShelf("Fiction",
			Book{ID: "A1", Title: "Zeta"},
			Book{ID: "A2", Title: "Alpha"},
			Book{ID: "A3", Title: "Zeta"},
		)
		s.SortBooksByTitle()
		for i, want := range []string{"A2", "A1", "A3"} {
			if s.Books[i].ID != want {
				t.Fatalf("position %d: expected %s, got %s", i, want, s.Books[i].ID)
			}
		}
	})

	t.Run("case is folded", func(t *testing.T) {
		s := NewShelf("Fiction",
			Book{ID: "b1", Title: "banana"},
			Book{ID: "b2", Title: "Apple"},
		)
		s.SortBooksByTitle()
		if s.Books[0].Title != "Apple" {
			t.Fatalf("expected Apple first, got %s", s.Books[0].Title)
		}
	})

	t.Run("count and identity unchanged", func(t *testing.T) {
		s := NewShelf("Fiction",
			Book{ID: "b1", Title: "B"},
			Book{ID: "b2", Title: "A"},
		)
		s.SortBooksByTitle()
		if len(s.Books) != 2 {
			t.Fatalf("expected 2 books, got %d", len(s.Books))
		}
	})
}

func TestShelfCategories(t *testing.T) {
	t.Run("duplicates collapse", func(t *testing.T) {
		s := NewShelf("Mixed",
			Book{ID: "b1", Category: "SciFi"},
			Book{ID: "b2", Category: "SciFi"},
			Book{ID: "b3", Category: "History"},
		)
		cats := s.Categories()
		if len(cats) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(cats))
		}
		if !cats["SciFi"] || !cats["History"] {
			t.Fatalf("expected SciFi and History, got %v", cats)
		}
	})

	t.Run("empty shelf yields empty set", func(t *testing.T) {
		s := NewShelf("Empty")
		if len(s.Categories()) != 0 {
			t.Fatalf("expected empty set, got %v", s.Categories())
		}
	})
}
