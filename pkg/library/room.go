package library

// Room is a collection of shelves belonging to one owner. The room owns its
// shelves; shelves are held by pointer so catalog mutations are visible to
// whoever built the room.
type Room struct {
	Owner   string
	Shelves []*Shelf
}

// NewRoom creates a room for the given owner with the initial shelves.
func NewRoom(owner string, shelves ...*Shelf) *Room {
	return &Room{Owner: owner, Shelves: shelves}
}

// AddShelf appends the shelf to the room. Shelf names are not checked for
// uniqueness; organize matches against the first shelf with a given name.
func (r *Room) AddShelf(s *Shelf) {
	r.Shelves = append(r.Shelves, s)
}
