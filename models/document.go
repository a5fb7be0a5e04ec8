package models

import "strings"

// Document is the single root aggregate persisted to disk. Every piece of
// application state lives in one of its three collections; the store owns
// the durable form and everything else works on copies.
type Document struct {
	Users    []User    `json:"users"`
	Products []Product `json:"products"`
	Orders   []Order   `json:"orders"`

	// Revision is the optimistic-concurrency counter stamped on snapshots
	// and checked on submit. It never reaches the data file.
	Revision uint64 `json:"-"`
}

// Clone returns a deep copy. Mutating the copy never touches the original,
// including nested slices and maps.
func (d *Document) Clone() *Document {
	next := &Document{
		Users:    make([]User, len(d.Users)),
		Products: make([]Product, len(d.Products)),
		Orders:   make([]Order, len(d.Orders)),
		Revision: d.Revision,
	}
	copy(next.Users, d.Users)
	for i, p := range d.Products {
		next.Products[i] = p.Clone()
	}
	for i, o := range d.Orders {
		next.Orders[i] = o.Clone()
	}
	return next
}

// Product returns a pointer into the document's product collection, or nil
// if no product has the given id.
func (d *Document) Product(id string) *Product {
	for i := range d.Products {
		if d.Products[i].ID == id {
			return &d.Products[i]
		}
	}
	return nil
}

// Order returns a pointer into the document's order collection, or nil.
func (d *Document) Order(id string) *Order {
	for i := range d.Orders {
		if d.Orders[i].ID == id {
			return &d.Orders[i]
		}
	}
	return nil
}

// UserByEmail looks a user up by email, case-insensitively. Email is the
// unique login key.
func (d *Document) UserByEmail(email string) *User {
	for i := range d.Users {
		if strings.EqualFold(d.Users[i].Email, email) {
			return &d.Users[i]
		}
	}
	return nil
}
