package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IrinaKra/Bookshelf/pkg/library"
)

func TestSaveBook(t *testing.T) {
	s := newTestStore(t)

	t.Run("generates ID when missing", func(t *testing.T) {
		saved, err := s.SaveBook(library.Book{Title: "Clean Code", Author: "Robert C. Martin", Category: "Programming"})
		require.NoError(t, err)
		assert.NotEmpty(t, saved.ID)
	})

	t.Run("keeps caller ID", func(t *testing.T) {
		saved, err := s.SaveBook(library.Book{ID: "b001", Title: "I, Robot", Author: "Isaac Asimov", Category: "Sci-Fi"})
		require.NoError(t, err)
		assert.Equal(t, "b001", saved.ID)
	})
}

func TestGetBookNotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.GetBook("missing")
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestPileInsertionOrder(t *testing.T) {
	s := newTestStore(t)
	for _, id := range []string{"b1", "b2", "b3"} {
		_, err := s.SaveBook(library.Book{ID: id, Title: id, Author: "x", Category: "c"})
		require.NoError(t, err)
	}

	pile, err := s.Pile()
	require.NoError(t, err)
	require.Len(t, pile, 3)
	for i, want := range []string{"b1", "b2", "b3"} {
		assert.Equal(t, want, pile[i].ID)
	}
}

func TestRecordPlacements(t *testing.T) {
	s := newTestStore(t)
	books := []library.Book{
		{ID: "f1", Title: "Brave New World", Author: "Aldous Huxley", Category: "Dystopian"},
		{ID: "f2", Title: "I, Robot", Author: "Isaac Asimov", Category: "Sci-Fi"},
		{ID: "f3", Title: "Do Androids Dream of Electric Sheep?", Author: "Philip K. Dick", Category: "Sci-Fi"},
	}
	for _, b := range books {
		_, err := s.SaveBook(b)
		require.NoError(t, err)
	}

	room := library.NewRoom("Bob", library.NewShelf("Sci-Fi"), library.NewShelf("Dystopian"))
	catalog, err := library.NewCatalog(room)
	require.NoError(t, err)

	pile, err := s.Pile()
	require.NoError(t, err)
	catalog.OrganizeBooksByCategory(pile)
	require.NoError(t, s.RecordPlacements(room))

	t.Run("shelved books come back per shelf in position order", func(t *testing.T) {
		shelved, err := s.Shelved()
		require.NoError(t, err)
		require.Len(t, shelved["Sci-Fi"], 2)
		assert.Equal(t, "f2", shelved["Sci-Fi"][0].ID)
		assert.Equal(t, "f3", shelved["Sci-Fi"][1].ID)
		require.Len(t, shelved["Dystopian"], 1)
		assert.Equal(t, "f1", shelved["Dystopian"][0].ID)
	})

	t.Run("shelved books leave the pile", func(t *testing.T) {
		pile, err := s.Pile()
		require.NoError(t, err)
		assert.Empty(t, pile)
	})

	t.Run("re-recording an emptier room returns books to the pile", func(t *testing.T) {
		require.NoError(t, s.RecordPlacements(library.NewRoom("Bob")))
		pile, err := s.Pile()
		require.NoError(t, err)
		assert.Len(t, pile, 3)
	})
}

func TestListBooks(t *testing.T) {
	s := newTestStore(t)
	_, err := s.SaveBook(library.Book{ID: "p1", Title: "Pile Book", Author: "x", Category: "Poetry"})
	require.NoError(t, err)
	_, err = s.SaveBook(library.Book{ID: "s1", Title: "Shelved Book", Author: "y", Category: "Sci-Fi"})
	require.NoError(t, err)

	room := library.NewRoom("Bob", library.NewShelf("Sci-Fi"))
	catalog, err := library.NewCatalog(room)
	require.NoError(t, err)
	pile, err := s.Pile()
	require.NoError(t, err)
	catalog.OrganizeBooksByCategory(pile)
	require.NoError(t, s.RecordPlacements(room))

	all, err := s.ListBooks()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "p1", all[0].ID, "pile books come first")
	assert.Empty(t, all[0].Shelf)
	assert.Equal(t, "s1", all[1].ID)
	assert.Equal(t, "Sci-Fi", all[1].Shelf)
}
