// Book row access for the inventory store.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/IrinaKra/Bookshelf/pkg/library"
)

// StoredBook is a book together with its recorded placement. Shelf is empty
// while the book sits in the pile.
type StoredBook struct {
	library.Book
	Shelf string
}

// newBookID returns a UUID v7, falling back to v4 if the clock misbehaves.
func newBookID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// SaveBook inserts a book into the pile. A missing ID is generated; the
// returned book carries the final ID.
func (s *Store) SaveBook(b library.Book) (library.Book, error) {
	db, err := s.conn()
	if err != nil {
		return library.Book{}, err
	}

	if b.ID == "" {
		b.ID = newBookID()
	}
	_, err = db.Exec(
		`INSERT INTO books (book_id, title, author, category, isbn, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		b.ID, b.Title, b.Author, b.Category, b.ISBN,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return library.Book{}, fmt.Errorf("insert book: %w", err)
	}
	return b, nil
}

// GetBook returns the book with the given ID.
// Returns ErrBookNotFound if no such row exists.
func (s *Store) GetBook(id string) (StoredBook, error) {
	db, err := s.conn()
	if err != nil {
		return StoredBook{}, err
	}

	row := db.QueryRow(
		`SELECT book_id, title, author, category, isbn, shelf_name
		 FROM books WHERE book_id = ?`, id)
	b, err := scanBook(row)
	if errors.Is(err, sql.ErrNoRows) {
		return StoredBook{}, ErrBookNotFound
	}
	if err != nil {
		return StoredBook{}, fmt.Errorf("get book: %w", err)
	}
	return b, nil
}

// Pile returns the unshelved books in insertion order.
func (s *Store) Pile() ([]library.Book, error) {
	rows, err := s.queryBooks(`WHERE shelf_name IS NULL ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	books := make([]library.Book, 0, len(rows))
	for _, r := range rows {
		books = append(books, r.Book)
	}
	return books, nil
}

// Shelved returns the recorded placements: shelf name to books, each
// shelf's books ordered by recorded position.
func (s *Store) Shelved() (map[string][]library.Book, error) {
	rows, err := s.queryBooks(`WHERE shelf_name IS NOT NULL ORDER BY shelf_name, position`)
	if err != nil {
		return nil, err
	}
	shelved := make(map[string][]library.Book)
	for _, r := range rows {
		shelved[r.Shelf] = append(shelved[r.Shelf], r.Book)
	}
	return shelved, nil
}

// ListBooks returns every book in the inventory, pile first (insertion
// order), then shelved books by shelf and position.
func (s *Store) ListBooks() ([]StoredBook, error) {
	return s.queryBooks(`ORDER BY shelf_name IS NOT NULL, shelf_name, position, rowid`)
}

// RecordPlacements replaces all recorded placements with the current state
// of the room: every book on a shelf gets that shelf's name and its index
// on the shelf; every other book returns to the pile. Books in the room
// that are not in the inventory are ignored.
func (s *Store) RecordPlacements(room *library.Room) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin placements: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE books SET shelf_name = NULL, position = NULL`); err != nil {
		return fmt.Errorf("clear placements: %w", err)
	}
	for _, shelf := range room.Shelves {
		for i, b := range shelf.Books {
			_, err := tx.Exec(
				`UPDATE books SET shelf_name = ?, position = ? WHERE book_id = ?`,
				shelf.Name, i, b.ID,
			)
			if err != nil {
				return fmt.Errorf("record placement for %s: %w", b.ID, err)
			}
		}
	}
	return tx.Commit()
}

// queryBooks runs a SELECT over the books table with the given tail clause.
func (s *Store) queryBooks(tail string) ([]StoredBook, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		`SELECT book_id, title, author, category, isbn, shelf_name FROM books ` + tail)
	if err != nil {
		return nil, fmt.Errorf("query books: %w", err)
	}
	defer rows.Close()

	var out []StoredBook
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate books: %w", err)
	}
	return out, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanBook(sc scanner) (StoredBook, error) {
	var b StoredBook
	var isbn, shelf sql.NullString
	if err := sc.Scan(&b.ID, &b.Title, &b.Author, &b.Category, &isbn, &shelf); err != nil {
		return StoredBook{}, err
	}
	b.ISBN = isbn.String
	b.Shelf = shelf.String
	return b, nil
}
