package library

import "errors"

// Catalog errors.
var (
	// ErrNilRoom is returned by NewCatalog when given a nil room.
	ErrNilRoom = errors.New("catalog requires a room")

	// ErrCategorySplit is returned by VerifyCategoryPlacement when the same
	// category is found on more than one shelf.
	ErrCategorySplit = errors.New("category appears on more than one shelf")
)
