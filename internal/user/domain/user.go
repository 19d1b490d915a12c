package domain

type ID uint64

type User struct {
	ID    ID
	Name  string
	Email string
}

// Role is declared alongside the user model but no operation consults it yet.
type Role int

const (
	RoleAdmin Role = iota
	RoleUser
	RoleGuest
)
