// Package schema implements the GraphQL type graph, its field
// resolvers and the mutation handlers, on top of the in-memory
// store. Relational fields are resolved lazily, only when the
// incoming operation asks for them.
package schema

import (
	"context"
	"encoding/json"
	"log"

	"github.com/graphql-go/graphql"
	"github.com/moonfeed/moonfeed/database"
	"github.com/moonfeed/moonfeed/helpers"
	"github.com/moonfeed/moonfeed/model"
)

// Core holds the executable schema and the store it resolves
// against. One Core serves any number of concurrent operations
type Core struct {
	db     *database.Database
	events *helpers.Publisher
	schema graphql.Schema
}

// New assembles the schema once; the resolvers close over the store
func New(db *database.Database, events *helpers.Publisher) (*Core, error) {
	c := &Core{db: db, events: events}

	userType, postType, profileType, memberTypeType := c.outputTypes()

	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query:    c.queryType(userType, postType, profileType, memberTypeType),
		Mutation: c.mutationType(userType, postType, profileType, memberTypeType),
	})
	if err != nil {
		return nil, err
	}

	c.schema = schema
	return c, nil
}

// Execute runs one operation document with its variable bindings.
// The result carries resolved data and typed errors, a failing
// field contributes null plus an error entry
func (c *Core) Execute(ctx context.Context, query string, variables map[string]interface{}) *graphql.Result {
	return graphql.Do(graphql.Params{
		Schema:         c.schema,
		RequestString:  query,
		VariableValues: variables,
		Context:        ctx,
	})
}

// publish sends a best-effort entity-change event on NATS
func (c *Core) publish(event string, entity string, id string) {
	if c.events == nil {
		return
	}

	data, err := json.Marshal(model.Message{Type: event, Entity: entity, Id: id})
	if err != nil {
		log.Printf("(publish) Failed to encode %v event: %v", entity, err)
		return
	}

	c.events.Publish("moonfeed."+entity, data)
}
