package core

// IDGenerator produces identifiers for new rows
type IDGenerator interface {
	NewID() string
}
