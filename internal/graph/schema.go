// Package graph 定义 GraphQL schema 并把字段解析委托给 service 层
package graph

import (
	"context"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/graphql-go/graphql/language/parser"
	"github.com/user/filmgraph/internal/service"
)

// Request GraphQL 请求
type Request struct {
	Query         string                 `json:"query" form:"query" binding:"required"`
	OperationName string                 `json:"operationName" form:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// NewSchema 构建 schema
func NewSchema(svc *service.Services) (graphql.Schema, error) {
	r := &resolver{svc: svc}
	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    r.queryType(),
		Mutation: r.mutationType(),
	})
}

// Execute 执行一次请求
func Execute(ctx context.Context, schema graphql.Schema, req Request) *graphql.Result {
	return graphql.Do(graphql.Params{
		Schema:         schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        ctx,
	})
}

// IsMutation 判断请求最终执行的操作是否为 mutation
func IsMutation(query, operationName string) (bool, error) {
	doc, err := parser.Parse(parser.ParseParams{Source: query})
	if err != nil {
		return false, err
	}
	for _, def := range doc.Definitions {
		op, ok := def.(*ast.OperationDefinition)
		if !ok {
			continue
		}
		if operationName != "" && (op.Name == nil || op.Name.Value != operationName) {
			continue
		}
		if op.Operation == ast.OperationTypeMutation {
			return true, nil
		}
		if operationName != "" {
			return false, nil
		}
	}
	return false, nil
}

type resolver struct {
	svc *service.Services
}

func message(msg string) map[string]interface{} {
	return map[string]interface{}{"message": msg}
}

func (r *resolver) queryType() *graphql.Object {
	pageArgs := func(cursorDesc string) graphql.FieldConfigArgument {
		return graphql.FieldConfigArgument{
			"uuid":  &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: "", Description: cursorDesc},
			"next":  &graphql.ArgumentConfig{Type: graphql.Boolean, DefaultValue: false, Description: "true pages forward, false pages backward."},
			"limit": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 10},
		}
	}

	return graphql.NewObject(graphql.ObjectConfig{
		Name:        "Query",
		Description: "Read operations over films, actors and their links.",
		Fields: graphql.Fields{
			"get_films": &graphql.Field{
				Type:        nonNull(graphql.NewList(nonNull(filmTypeBase))),
				Description: "Keyset-paginated list of films ordered by identifier.",
				Args:        pageArgs("Identifier of the boundary film; empty starts from the beginning."),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					cursor, _ := stringArg(p.Args, "uuid")
					next, _ := boolArg(p.Args, "next")
					return r.svc.Film.List(p.Context, cursor, next, intArg(p.Args, "limit", 10))
				},
			},
			"get_film": &graphql.Field{
				Type:        nonNull(filmTypeBase),
				Description: "Single film by exact title, optionally constrained by identifier.",
				Args: graphql.FieldConfigArgument{
					"title":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"film_id": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					title, _ := stringArg(p.Args, "title")
					id, _ := stringArg(p.Args, "film_id")
					return r.svc.Film.Get(p.Context, title, id)
				},
			},
			"get_actors": &graphql.Field{
				Type:        nonNull(graphql.NewList(nonNull(actorTypeBase))),
				Description: "Keyset-paginated list of actors ordered by identifier.",
				Args:        pageArgs("Identifier of the boundary actor; empty starts from the beginning."),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					cursor, _ := stringArg(p.Args, "uuid")
					next, _ := boolArg(p.Args, "next")
					return r.svc.Actor.List(p.Context, cursor, next, intArg(p.Args, "limit", 10))
				},
			},
			"get_actor": &graphql.Field{
				Type:        nonNull(actorTypeBase),
				Description: "Single actor by exact name, optionally constrained by identifier.",
				Args: graphql.FieldConfigArgument{
					"name":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"actor_id": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					name, _ := stringArg(p.Args, "name")
					id, _ := stringArg(p.Args, "actor_id")
					return r.svc.Actor.Get(p.Context, name, id)
				},
			},
			"get_film_actors": &graphql.Field{
				Type:        nonNull(graphql.NewList(nonNull(filmActorTypeBase))),
				Description: "Offset-paginated list of film/actor links.",
				Args: graphql.FieldConfigArgument{
					"skip":  &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 0},
					"limit": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 100},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.svc.FilmActor.List(p.Context, intArg(p.Args, "skip", 0), intArg(p.Args, "limit", 100))
				},
			},
			"get_one_film_combine_actors": &graphql.Field{
				Type:        nonNull(filmType),
				Description: "Film by title with all linked actors.",
				Args: graphql.FieldConfigArgument{
					"title": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					title, _ := stringArg(p.Args, "title")
					return r.svc.Film.GetWithActors(p.Context, title)
				},
			},
			"get_one_actor_combine_films": &graphql.Field{
				Type:        nonNull(actorType),
				Description: "Actor by name with all linked films.",
				Args: graphql.FieldConfigArgument{
					"name": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					name, _ := stringArg(p.Args, "name")
					return r.svc.Actor.GetWithFilms(p.Context, name)
				},
			},
		},
	})
}

func (r *resolver) mutationType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name:        "Mutation",
		Description: "Write operations over films, actors and their links.",
		Fields: graphql.Fields{
			"add_film": &graphql.Field{
				Type: nonNull(filmCreateResponse),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(filmCreateInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					film, msg, err := r.svc.Film.Create(p.Context, toFilmInput(objectArg(p.Args, "input")))
					if err != nil {
						return nil, err
					}
					return map[string]interface{}{"film": film, "response": message(msg)}, nil
				},
			},
			"update_film": &graphql.Field{
				Type: nonNull(filmUpdateResponse),
				Args: graphql.FieldConfigArgument{
					"title": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"data":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(filmUpdateInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					title, _ := stringArg(p.Args, "title")
					film, msg, err := r.svc.Film.Update(p.Context, title, toFilmPatch(objectArg(p.Args, "data")))
					if err != nil {
						return nil, err
					}
					return map[string]interface{}{"film": film, "response": message(msg)}, nil
				},
			},
			"delete_film": &graphql.Field{
				Type: nonNull(responseType),
				Args: graphql.FieldConfigArgument{
					"title": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					title, _ := stringArg(p.Args, "title")
					msg, err := r.svc.Film.Delete(p.Context, title)
					if err != nil {
						return nil, err
					}
					return message(msg), nil
				},
			},
			"add_actor": &graphql.Field{
				Type: nonNull(actorCreateResponse),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(actorCreateInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					actor, msg, err := r.svc.Actor.Create(p.Context, toActorInput(objectArg(p.Args, "input")))
					if err != nil {
						return nil, err
					}
					return map[string]interface{}{"actor": actor, "response": message(msg)}, nil
				},
			},
			"update_actor": &graphql.Field{
				Type: nonNull(actorUpdateResponse),
				Args: graphql.FieldConfigArgument{
					"name": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"data": &graphql.ArgumentConfig{Type: graphql.NewNonNull(actorUpdateInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					name, _ := stringArg(p.Args, "name")
					actor, msg, err := r.svc.Actor.Update(p.Context, name, toActorPatch(objectArg(p.Args, "data")))
					if err != nil {
						return nil, err
					}
					return map[string]interface{}{"actor": actor, "response": message(msg)}, nil
				},
			},
			"delete_actor": &graphql.Field{
				Type: nonNull(responseType),
				Args: graphql.FieldConfigArgument{
					"name": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					name, _ := stringArg(p.Args, "name")
					msg, err := r.svc.Actor.Delete(p.Context, name)
					if err != nil {
						return nil, err
					}
					return message(msg), nil
				},
			},
			"create_film_actor_connection": &graphql.Field{
				Type: nonNull(filmActorResponse),
				Args: graphql.FieldConfigArgument{
					"data": &graphql.ArgumentConfig{Type: graphql.NewNonNull(filmActorInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					link, msg, err := r.svc.FilmActor.Link(p.Context, toFilmActorInput(objectArg(p.Args, "data")))
					if err != nil {
						return nil, err
					}
					return map[string]interface{}{"film_actor": link, "response": message(msg)}, nil
				},
			},
			"delete_film_actor_connection": &graphql.Field{
				Type: nonNull(responseType),
				Args: graphql.FieldConfigArgument{
					"film_actors_id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _ := stringArg(p.Args, "film_actors_id")
					msg, err := r.svc.FilmActor.Unlink(p.Context, id)
					if err != nil {
						return nil, err
					}
					return message(msg), nil
				},
			},
		},
	})
}
