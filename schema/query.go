package schema

import (
	"github.com/graphql-go/graphql"
	"github.com/moonfeed/moonfeed/database"
	"github.com/moonfeed/moonfeed/model"
)

// Single-entity lookups shared by the query root and the REST
// surface. Lists never fail, an empty result is a valid answer.

// GetUser returns the user by id or NotFound
func (c *Core) GetUser(id string) (*model.User, error) {
	user := c.db.Users.FindOne(&database.Filter{Key: "id", Equals: id})
	if user == nil {
		return nil, NotFound(ErrUserNotFound)
	}

	return user, nil
}

// GetPost returns the post by id or NotFound
func (c *Core) GetPost(id string) (*model.Post, error) {
	post := c.db.Posts.FindOne(&database.Filter{Key: "id", Equals: id})
	if post == nil {
		return nil, NotFound(ErrPostNotFound)
	}

	return post, nil
}

// GetProfile returns the profile by id or NotFound
func (c *Core) GetProfile(id string) (*model.Profile, error) {
	profile := c.db.Profiles.FindOne(&database.Filter{Key: "id", Equals: id})
	if profile == nil {
		return nil, NotFound(ErrProfileNotFound)
	}

	return profile, nil
}

// GetMemberType returns the member type by id or NotFound
func (c *Core) GetMemberType(id string) (*model.MemberType, error) {
	memberType := c.db.MemberTypes.FindOne(&database.Filter{Key: "id", Equals: id})
	if memberType == nil {
		return nil, NotFound(ErrMemberTypeNotFound)
	}

	return memberType, nil
}

func (c *Core) queryType(userType, postType, profileType, memberTypeType *graphql.Object) *graphql.Object {
	idArg := graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
	}

	return graphql.NewObject(graphql.ObjectConfig{
		Name: "BasicQuery",
		Fields: graphql.Fields{
			"users": &graphql.Field{
				Type: graphql.NewList(userType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return c.db.Users.FindMany(nil), nil
				},
			},
			"posts": &graphql.Field{
				Type: graphql.NewList(postType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return c.db.Posts.FindMany(nil), nil
				},
			},
			"profiles": &graphql.Field{
				Type: graphql.NewList(profileType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return c.db.Profiles.FindMany(nil), nil
				},
			},
			"memberTypes": &graphql.Field{
				Type: graphql.NewList(memberTypeType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return c.db.MemberTypes.FindMany(nil), nil
				},
			},
			"user": &graphql.Field{
				Type: userType,
				Args: idArg,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					user, err := c.GetUser(argString(p.Args, "id"))
					if err != nil {
						return nil, err
					}
					return user, nil
				},
			},
			"post": &graphql.Field{
				Type: postType,
				Args: idArg,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					post, err := c.GetPost(argString(p.Args, "id"))
					if err != nil {
						return nil, err
					}
					return post, nil
				},
			},
			"profile": &graphql.Field{
				Type: profileType,
				Args: idArg,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					profile, err := c.GetProfile(argString(p.Args, "id"))
					if err != nil {
						return nil, err
					}
					return profile, nil
				},
			},
			"memberType": &graphql.Field{
				Type: memberTypeType,
				Args: idArg,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					memberType, err := c.GetMemberType(argString(p.Args, "id"))
					if err != nil {
						return nil, err
					}
					return memberType, nil
				},
			},
		},
	})
}
