package schema

import (
	"github.com/graphql-go/graphql"
	"github.com/moonfeed/moonfeed/database"
	"github.com/moonfeed/moonfeed/model"
)

// Mutation handlers, shared by the mutation root and the REST
// surface. Every handler validates first, with all reads done
// before the single mutating store call; a failed precondition
// aborts with a typed error and performs no write.

// CreateUser stores a new user
func (c *Core) CreateUser(fields model.User) (*model.User, error) {
	user := c.db.Users.Create(fields)
	if user == nil {
		return nil, BadRequest(ErrUserNotCreated)
	}

	c.publish("created", "user", user.Id)
	return user, nil
}

// CreatePost stores a new post. The referenced userId is not
// validated, matching the examined surface
func (c *Core) CreatePost(fields model.Post) (*model.Post, error) {
	post := c.db.Posts.Create(fields)
	if post == nil {
		return nil, BadRequest(ErrPostNotCreated)
	}

	c.publish("created", "post", post.Id)
	return post, nil
}

// CreateProfile validates the member type, the user and the
// one-profile-per-user invariant before writing
func (c *Core) CreateProfile(fields model.Profile) (*model.Profile, error) {
	if c.db.MemberTypes.FindOne(&database.Filter{Key: "id", Equals: fields.MemberTypeId}) == nil {
		return nil, BadRequest(ErrMemberTypeWasNotFound)
	}

	if c.db.Users.FindOne(&database.Filter{Key: "id", Equals: fields.UserId}) == nil {
		return nil, BadRequest(ErrUserNotFound)
	}

	if c.db.Profiles.FindOne(&database.Filter{Key: "userId", Equals: fields.UserId}) != nil {
		return nil, BadRequest(ErrUserAlreadyHasProfile)
	}

	profile := c.db.Profiles.Create(fields)
	if profile == nil {
		return nil, BadRequest(ErrProfileNotCreated)
	}

	c.publish("created", "profile", profile.Id)
	return profile, nil
}

// UpdateUser merges provided fields into an existing user
func (c *Core) UpdateUser(id string, patch model.UserPatch) (*model.User, error) {
	if c.db.Users.FindOne(&database.Filter{Key: "id", Equals: id}) == nil {
		return nil, BadRequest(ErrUserNotFound)
	}

	user := c.db.Users.Change(id, patch)
	if user == nil {
		return nil, BadRequest(ErrUserNotFound)
	}

	c.publish("updated", "user", user.Id)
	return user, nil
}

// UpdatePost merges provided fields into an existing post
func (c *Core) UpdatePost(id string, patch model.PostPatch) (*model.Post, error) {
	if c.db.Posts.FindOne(&database.Filter{Key: "id", Equals: id}) == nil {
		return nil, BadRequest(ErrPostNotFound)
	}

	post := c.db.Posts.Change(id, patch)
	if post == nil {
		return nil, BadRequest(ErrPostNotFound)
	}

	c.publish("updated", "post", post.Id)
	return post, nil
}

// UpdateProfile merges provided fields into an existing profile
func (c *Core) UpdateProfile(id string, patch model.ProfilePatch) (*model.Profile, error) {
	if c.db.Profiles.FindOne(&database.Filter{Key: "id", Equals: id}) == nil {
		return nil, BadRequest(ErrProfileNotFound)
	}

	profile := c.db.Profiles.Change(id, patch)
	if profile == nil {
		return nil, BadRequest(ErrProfileNotFound)
	}

	c.publish("updated", "profile", profile.Id)
	return profile, nil
}

// UpdateMemberType merges provided fields into an existing member type
func (c *Core) UpdateMemberType(id string, patch model.MemberTypePatch) (*model.MemberType, error) {
	if c.db.MemberTypes.FindOne(&database.Filter{Key: "id", Equals: id}) == nil {
		return nil, BadRequest(ErrMemberTypeNotFound)
	}

	memberType := c.db.MemberTypes.Change(id, patch)
	if memberType == nil {
		return nil, BadRequest(ErrMemberTypeNotFound)
	}

	c.publish("updated", "memberType", memberType.Id)
	return memberType, nil
}

// DeletePost removes an existing post
func (c *Core) DeletePost(id string) (*model.Post, error) {
	if c.db.Posts.FindOne(&database.Filter{Key: "id", Equals: id}) == nil {
		return nil, BadRequest(ErrPostWasNotFound)
	}

	post := c.db.Posts.Delete(id)
	if post == nil {
		return nil, BadRequest(ErrPostWasNotFound)
	}

	c.publish("deleted", "post", id)
	return post, nil
}

// SubscribeTo appends an outgoing subscription edge. The target id
// is not existence-checked and duplicates are allowed, both match
// the examined surface
func (c *Core) SubscribeTo(id string, subscribeToId string) (*model.User, error) {
	user := c.db.Users.FindOne(&database.Filter{Key: "id", Equals: id})
	if user == nil {
		return nil, NotFound(ErrUserNotFound)
	}

	subscriptions := append(append([]string{}, user.SubscribedToUserIds...), subscribeToId)

	updated := c.db.Users.Change(id, model.UserPatch{SubscribedToUserIds: &subscriptions})
	if updated == nil {
		return nil, BadRequest(ErrUserNotFound)
	}

	c.publish("subscribed", "user", id)
	return updated, nil
}

// UnsubscribeFrom removes the first occurrence of the edge, so a
// doubled edge survives one unsubscribe
func (c *Core) UnsubscribeFrom(id string, unsubscribeFromId string) (*model.User, error) {
	user := c.db.Users.FindOne(&database.Filter{Key: "id", Equals: id})
	if user == nil {
		return nil, NotFound(ErrUserNotFound)
	}

	index := -1
	for i, subscription := range user.SubscribedToUserIds {
		if subscription == unsubscribeFromId {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, BadRequest(ErrUserNotSubscribed)
	}

	subscriptions := append([]string{}, user.SubscribedToUserIds[:index]...)
	subscriptions = append(subscriptions, user.SubscribedToUserIds[index+1:]...)

	updated := c.db.Users.Change(id, model.UserPatch{SubscribedToUserIds: &subscriptions})
	if updated == nil {
		return nil, BadRequest(ErrUserNotFound)
	}

	c.publish("unsubscribed", "user", id)
	return updated, nil
}

func (c *Core) mutationType(userType, postType, profileType, memberTypeType *graphql.Object) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "BasicMutation",
		Fields: graphql.Fields{
			"createUser": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"user": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createUserInput())},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					in := argMap(p.Args, "user")
					user, err := c.CreateUser(model.User{
						FirstName: argString(in, "firstName"),
						LastName:  argString(in, "lastName"),
						Email:     argString(in, "email"),
					})
					if err != nil {
						return nil, err
					}
					return user, nil
				},
			},
			"createPost": &graphql.Field{
				Type: postType,
				Args: graphql.FieldConfigArgument{
					"post": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createPostInput())},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					in := argMap(p.Args, "post")
					post, err := c.CreatePost(model.Post{
						UserId:  argString(in, "userId"),
						Title:   argString(in, "title"),
						Content: argString(in, "content"),
					})
					if err != nil {
						return nil, err
					}
					return post, nil
				},
			},
			"createProfile": &graphql.Field{
				Type: profileType,
				Args: graphql.FieldConfigArgument{
					"profile": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createProfileInput())},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					in := argMap(p.Args, "profile")
					profile, err := c.CreateProfile(model.Profile{
						UserId:       argString(in, "userId"),
						Avatar:       argString(in, "avatar"),
						Sex:          argString(in, "sex"),
						Birthday:     argInt(in, "birthday"),
						Country:      argString(in, "country"),
						Street:       argString(in, "street"),
						City:         argString(in, "city"),
						MemberTypeId: argString(in, "memberTypeId"),
					})
					if err != nil {
						return nil, err
					}
					return profile, nil
				},
			},
			"updateUser": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"user": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateUserInput())},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					in := argMap(p.Args, "user")
					user, err := c.UpdateUser(argString(in, "id"), model.UserPatch{
						FirstName: optString(in, "firstName"),
						LastName:  optString(in, "lastName"),
						Email:     optString(in, "email"),
					})
					if err != nil {
						return nil, err
					}
					return user, nil
				},
			},
			"updatePost": &graphql.Field{
				Type: postType,
				Args: graphql.FieldConfigArgument{
					"post": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updatePostInput())},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					in := argMap(p.Args, "post")
					post, err := c.UpdatePost(argString(in, "id"), model.PostPatch{
						Title:   optString(in, "title"),
						Content: optString(in, "content"),
					})
					if err != nil {
						return nil, err
					}
					return post, nil
				},
			},
			"updateProfile": &graphql.Field{
				Type: profileType,
				Args: graphql.FieldConfigArgument{
					"profile": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateProfileInput())},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					in := argMap(p.Args, "profile")
					profile, err := c.UpdateProfile(argString(in, "id"), model.ProfilePatch{
						Avatar:       optString(in, "avatar"),
						Sex:          optString(in, "sex"),
						Birthday:     optInt(in, "birthday"),
						Country:      optString(in, "country"),
						Street:       optString(in, "street"),
						City:         optString(in, "city"),
						MemberTypeId: optString(in, "memberTypeId"),
					})
					if err != nil {
						return nil, err
					}
					return profile, nil
				},
			},
			"updateMemberType": &graphql.Field{
				Type: memberTypeType,
				Args: graphql.FieldConfigArgument{
					"memberType": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateMemberTypeInput())},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					in := argMap(p.Args, "memberType")
					memberType, err := c.UpdateMemberType(argString(in, "id"), model.MemberTypePatch{
						Discount:        optInt(in, "discount"),
						MonthPostsLimit: optInt(in, "monthPostsLimit"),
					})
					if err != nil {
						return nil, err
					}
					return memberType, nil
				},
			},
			"subscribeTo": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"id":            &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"subscribeToId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					user, err := c.SubscribeTo(argString(p.Args, "id"), argString(p.Args, "subscribeToId"))
					if err != nil {
						return nil, err
					}
					return user, nil
				},
			},
			"unsubscribeFrom": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"id":                &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"unsubscribeFromId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					user, err := c.UnsubscribeFrom(argString(p.Args, "id"), argString(p.Args, "unsubscribeFromId"))
					if err != nil {
						return nil, err
					}
					return user, nil
				},
			},
		},
	})
}
