package model

// User struct defines how a user account must be
type User struct {
	Id                  string   `json:"id"`
	FirstName           string   `json:"firstName"`
	LastName            string   `json:"lastName"`
	Email               string   `json:"email"`
	SubscribedToUserIds []string `json:"subscribedToUserIds"`
}

// UserPatch defines the body struct of the user patch route,
// every field is optional
type UserPatch struct {
	FirstName           *string   `json:"firstName,omitempty"`
	LastName            *string   `json:"lastName,omitempty"`
	Email               *string   `json:"email,omitempty"`
	SubscribedToUserIds *[]string `json:"subscribedToUserIds,omitempty"`
}

// SubscribeBody defines the body struct of the subscribe
// and unsubscribe routes
type SubscribeBody struct {
	UserId string `json:"userId"`
}
