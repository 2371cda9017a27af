package schema

import (
	"github.com/graphql-go/graphql"
)

// Creation inputs require every field; update inputs require only
// the identifying id and merge whatever else is provided.

func createUserInput() *graphql.InputObject {
	return graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateUserInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"firstName": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"lastName":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"email":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})
}

func createPostInput() *graphql.InputObject {
	return graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreatePostInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"userId":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"title":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"content": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})
}

func createProfileInput() *graphql.InputObject {
	return graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateProfileInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"userId":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"avatar":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"sex":          &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"birthday":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
			"country":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"street":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"city":         &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"memberTypeId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})
}

func updateUserInput() *graphql.InputObject {
	return graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateUserInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"id":        &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"firstName": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"lastName":  &graphql.InputObjectFieldConfig{Type: graphql.String},
			"email":     &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})
}

func updatePostInput() *graphql.InputObject {
	return graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdatePostInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"id":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"title":   &graphql.InputObjectFieldConfig{Type: graphql.String},
			"content": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})
}

func updateProfileInput() *graphql.InputObject {
	return graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateProfileInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"id":           &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"avatar":       &graphql.InputObjectFieldConfig{Type: graphql.String},
			"sex":          &graphql.InputObjectFieldConfig{Type: graphql.String},
			"birthday":     &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"country":      &graphql.InputObjectFieldConfig{Type: graphql.String},
			"street":       &graphql.InputObjectFieldConfig{Type: graphql.String},
			"city":         &graphql.InputObjectFieldConfig{Type: graphql.String},
			"memberTypeId": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})
}

func updateMemberTypeInput() *graphql.InputObject {
	return graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateMemberTypeInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"id":              &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"discount":        &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"monthPostsLimit": &graphql.InputObjectFieldConfig{Type: graphql.Int},
		},
	})
}
