package library

import "testing"

func TestRoomAddShelf(t *testing.T) {
	room := NewRoom("Bob")
	room.AddShelf(NewShelf("Fiction"))
	room.AddShelf(NewShelf("History"))
	room.AddShelf(NewShelf("Fiction")) // duplicate names are allowed

	if len(room.Shelves) != 3 {
		t.Fatalf("expected 3 shelves, got %d", len(room.Shelves))
	}
	for i, want := range []string{"Fiction", "History", "Fiction"} {
		if room.Shelves[i].Name != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, room.Shelves[i].Name)
		}
	}
}
