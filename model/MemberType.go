package model

// MemberType struct defines a membership plan,
// referenced by profiles through MemberTypeId
type MemberType struct {
	Id              string `json:"id"`
	Discount        int    `json:"discount"`
	MonthPostsLimit int    `json:"monthPostsLimit"`
}

// MemberTypePatch defines the body struct of the member type patch route
type MemberTypePatch struct {
	Discount        *int `json:"discount,omitempty"`
	MonthPostsLimit *int `json:"monthPostsLimit,omitempty"`
}
