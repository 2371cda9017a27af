package schema

import (
	"github.com/graphql-go/graphql"
	"github.com/moonfeed/moonfeed/database"
	"github.com/moonfeed/moonfeed/model"
)

// sourceUser normalizes the resolved parent, which is a value when
// it came from a list scan and a pointer when it came from a
// point lookup or a mutation
func sourceUser(src interface{}) model.User {
	switch u := src.(type) {
	case model.User:
		return u
	case *model.User:
		if u != nil {
			return *u
		}
	}

	return model.User{}
}

func sourceProfile(src interface{}) model.Profile {
	switch p := src.(type) {
	case model.Profile:
		return p
	case *model.Profile:
		if p != nil {
			return *p
		}
	}

	return model.Profile{}
}

// outputTypes declares the four entity output types. The user type
// references itself and every other type, so its field map is a
// thunk evaluated when the schema is assembled, not at declaration
func (c *Core) outputTypes() (userType, postType, profileType, memberTypeType *graphql.Object) {
	postType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Post",
		Fields: graphql.Fields{
			"id":      &graphql.Field{Type: graphql.ID},
			"title":   &graphql.Field{Type: graphql.String},
			"content": &graphql.Field{Type: graphql.String},
			"userId":  &graphql.Field{Type: graphql.String},
		},
	})

	memberTypeType = graphql.NewObject(graphql.ObjectConfig{
		Name: "MemberType",
		Fields: graphql.Fields{
			"id":              &graphql.Field{Type: graphql.ID},
			"discount":        &graphql.Field{Type: graphql.Int},
			"monthPostsLimit": &graphql.Field{Type: graphql.Int},
		},
	})

	profileType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Profile",
		Fields: graphql.Fields{
			"id":           &graphql.Field{Type: graphql.ID},
			"avatar":       &graphql.Field{Type: graphql.String},
			"sex":          &graphql.Field{Type: graphql.String},
			"birthday":     &graphql.Field{Type: graphql.Int},
			"country":      &graphql.Field{Type: graphql.String},
			"street":       &graphql.Field{Type: graphql.String},
			"city":         &graphql.Field{Type: graphql.String},
			"memberTypeId": &graphql.Field{Type: graphql.String},
			"userId":       &graphql.Field{Type: graphql.String},
			"memberType": &graphql.Field{
				Type: memberTypeType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					profile := sourceProfile(p.Source)
					memberType := c.db.MemberTypes.FindOne(&database.Filter{Key: "id", Equals: profile.MemberTypeId})
					if memberType == nil {
						return nil, nil
					}
					return memberType, nil
				},
			},
		},
	})

	user := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: (graphql.FieldsThunk)(func() graphql.Fields {
			return graphql.Fields{
				"id":                  &graphql.Field{Type: graphql.ID},
				"firstName":           &graphql.Field{Type: graphql.String},
				"lastName":            &graphql.Field{Type: graphql.String},
				"email":               &graphql.Field{Type: graphql.String},
				"subscribedToUserIds": &graphql.Field{Type: graphql.NewList(graphql.String)},
				"userSubscribedTo": &graphql.Field{
					Type: graphql.NewList(userType),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						user := sourceUser(p.Source)
						return c.db.Users.FindMany(&database.Filter{Key: "subscribedToUserIds", InArray: user.Id}), nil
					},
				},
				"subscribedToUser": &graphql.Field{
					Type: graphql.NewList(userType),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						user := sourceUser(p.Source)
						// dangling ids stay as null entries, edges are
						// never existence-checked
						out := make([]*model.User, 0, len(user.SubscribedToUserIds))
						for _, id := range user.SubscribedToUserIds {
							out = append(out, c.db.Users.FindOne(&database.Filter{Key: "id", Equals: id}))
						}
						return out, nil
					},
				},
				"posts": &graphql.Field{
					Type: graphql.NewList(postType),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						user := sourceUser(p.Source)
						return c.db.Posts.FindMany(&database.Filter{Key: "userId", Equals: user.Id}), nil
					},
				},
				"profile": &graphql.Field{
					Type: profileType,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						user := sourceUser(p.Source)
						profile := c.db.Profiles.FindOne(&database.Filter{Key: "userId", Equals: user.Id})
						if profile == nil {
							return nil, nil
						}
						return profile, nil
					},
				},
				"memberType": &graphql.Field{
					Type: memberTypeType,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						user := sourceUser(p.Source)
						profile := c.db.Profiles.FindOne(&database.Filter{Key: "userId", Equals: user.Id})
						if profile == nil {
							return nil, nil
						}
						memberType := c.db.MemberTypes.FindOne(&database.Filter{Key: "id", Equals: profile.MemberTypeId})
						if memberType == nil {
							return nil, nil
						}
						return memberType, nil
					},
				},
			}
		}),
	})

	userType = user
	return userType, postType, profileType, memberTypeType
}
