package database

import (
	"github.com/moonfeed/moonfeed/model"
)

// Filter selects entities on a single field.
// Equals compares the field value, InArray checks membership
// in a list-valued field. Exactly one of the two is set.
type Filter struct {
	Key     string
	Equals  string
	InArray string
}

// Database bundles every entity collection
type Database struct {
	Users       *Users
	Posts       *Posts
	Profiles    *Profiles
	MemberTypes *MemberTypes
}

// New creates empty collections and seeds the membership plans.
// There is no create operation for member types on the public
// surface, so the two plans ship with the store
func New() *Database {
	db := &Database{
		Users:       &Users{},
		Posts:       &Posts{},
		Profiles:    &Profiles{},
		MemberTypes: &MemberTypes{},
	}

	db.MemberTypes.Create(model.MemberType{Id: "basic", Discount: 0, MonthPostsLimit: 20})
	db.MemberTypes.Create(model.MemberType{Id: "business", Discount: 5, MonthPostsLimit: 100})

	return db
}
