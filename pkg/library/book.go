package library

// Book is a plain value describing one book. All fields are set at
// construction and never mutated by this package; identity is the ID.
type Book struct {
	ID       string // opaque identifier, unique per book
	Title    string
	Author   string
	Category string // grouping key matched against shelf names
	ISBN     string // optional
}
