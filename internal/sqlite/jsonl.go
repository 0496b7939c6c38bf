// JSONL import/export for the inventory. Writes use the temp-file, flush,
// rename pattern so a crashed export never leaves a half-written file.
package sqlite

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"

	"github.com/IrinaKra/Bookshelf/pkg/library"
)

var jsonCodec = jsoniter.ConfigFastest

// bookRecord is the JSONL wire shape of one book.
type bookRecord struct {
	ID       string `json:"id,omitempty"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Category string `json:"category"`
	ISBN     string `json:"isbn,omitempty"`
}

// ImportJSONL reads books from a JSONL file into the pile, one JSON object
// per line. Blank and malformed lines are skipped. Returns the number of
// books imported.
func (s *Store) ImportJSONL(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	count := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec bookRecord
		if err := jsonCodec.Unmarshal(line, &rec); err != nil {
			continue
		}
		_, err := s.SaveBook(library.Book{
			ID:       rec.ID,
			Title:    rec.Title,
			Author:   rec.Author,
			Category: rec.Category,
			ISBN:     rec.ISBN,
		})
		if err != nil {
			return count, err
		}
		count++
	}
	if err := sc.Err(); err != nil {
		return count, fmt.Errorf("scanning %s: %w", path, err)
	}
	return count, nil
}

// WriteRecordsJSONL atomically writes catalog records to a JSONL file, one
// object per line in record order.
func WriteRecordsJSONL(path string, rows []library.Record) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".jsonl-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	for _, row := range rows {
		line, err := jsonCodec.Marshal(row)
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("marshaling record: %w", err)
		}
		if _, err := w.Write(line); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing record: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing newline: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing records: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing records: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming into place: %w", err)
	}
	return nil
}
