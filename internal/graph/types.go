package graph

import (
	"github.com/graphql-go/graphql"
)

func nonNull(t graphql.Output) graphql.Output {
	return graphql.NewNonNull(t)
}

func filmFields(withID bool) graphql.Fields {
	fields := graphql.Fields{
		"title":       &graphql.Field{Type: nonNull(graphql.String), Description: "Title of the film."},
		"genre":       &graphql.Field{Type: nonNull(graphql.String), Description: "Genre of the film."},
		"language":    &graphql.Field{Type: nonNull(graphql.String), Description: "The language options provided by a film."},
		"release":     &graphql.Field{Type: Date, Description: "The release date of a film."},
		"is_premiere": &graphql.Field{Type: nonNull(graphql.Boolean), Description: "Whether the film is premiered or not."},
		"timestamp":   &graphql.Field{Type: nonNull(graphql.DateTime), Description: "Datetime of film data changes."},
	}
	if withID {
		fields["uuid"] = &graphql.Field{Type: nonNull(graphql.String), Description: "Identifier for film data."}
	}
	return fields
}

func actorFields(withID bool) graphql.Fields {
	fields := graphql.Fields{
		"name":        &graphql.Field{Type: nonNull(graphql.String), Description: "Name of the actor or actress."},
		"birth_date":  &graphql.Field{Type: Date, Description: "Birthdate of the actor or actress."},
		"biography":   &graphql.Field{Type: graphql.String, Description: "Biography of the actor or actress."},
		"nationality": &graphql.Field{Type: graphql.String, Description: "Nationality of the actor or actress."},
		"timestamp":   &graphql.Field{Type: nonNull(graphql.DateTime), Description: "Datetime of actor data changes."},
	}
	if withID {
		fields["uuid"] = &graphql.Field{Type: nonNull(graphql.String), Description: "Identifier for actor data."}
	}
	return fields
}

// 输出类型
var (
	filmTypeBase = graphql.NewObject(graphql.ObjectConfig{
		Name:        "FilmTypeBase",
		Description: "A film without its cast.",
		Fields:      filmFields(true),
	})

	actorTypeBase = graphql.NewObject(graphql.ObjectConfig{
		Name:        "ActorTypeBase",
		Description: "An actor without filmography.",
		Fields:      actorFields(true),
	})

	filmType = graphql.NewObject(graphql.ObjectConfig{
		Name:        "FilmType",
		Description: "A film together with every linked actor.",
		Fields: func() graphql.Fields {
			fields := filmFields(true)
			fields["actors"] = &graphql.Field{Type: nonNull(graphql.NewList(nonNull(actorTypeBase)))}
			return fields
		}(),
	})

	actorType = graphql.NewObject(graphql.ObjectConfig{
		Name:        "ActorType",
		Description: "An actor together with every linked film.",
		Fields: func() graphql.Fields {
			fields := actorFields(true)
			fields["films"] = &graphql.Field{Type: nonNull(graphql.NewList(nonNull(filmTypeBase)))}
			return fields
		}(),
	})

	filmUpdateType = graphql.NewObject(graphql.ObjectConfig{
		Name:        "FilmUpdateType",
		Description: "Film data after an update.",
		Fields:      filmFields(false),
	})

	actorUpdateType = graphql.NewObject(graphql.ObjectConfig{
		Name:        "ActorUpdateType",
		Description: "Actor data after an update.",
		Fields:      actorFields(false),
	})

	filmActorTypeBase = graphql.NewObject(graphql.ObjectConfig{
		Name:        "FilmActorTypeBase",
		Description: "A link between one film and one actor.",
		Fields: graphql.Fields{
			"uuid":      &graphql.Field{Type: nonNull(graphql.String)},
			"film_id":   &graphql.Field{Type: nonNull(graphql.String)},
			"actor_id":  &graphql.Field{Type: nonNull(graphql.String)},
			"timestamp": &graphql.Field{Type: nonNull(graphql.DateTime)},
		},
	})

	responseType = graphql.NewObject(graphql.ObjectConfig{
		Name:        "Response",
		Description: "Representation of the successful response.",
		Fields: graphql.Fields{
			"message": &graphql.Field{Type: nonNull(graphql.String)},
		},
	})
)

func payloadType(name, key string, entity graphql.Output) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: name,
		Fields: graphql.Fields{
			key:        &graphql.Field{Type: nonNull(entity)},
			"response": &graphql.Field{Type: nonNull(responseType)},
		},
	})
}

var (
	filmCreateResponse  = payloadType("FilmCreateResponse", "film", filmTypeBase)
	filmUpdateResponse  = payloadType("FilmUpdateResponse", "film", filmUpdateType)
	actorCreateResponse = payloadType("ActorCreateResponse", "actor", actorTypeBase)
	actorUpdateResponse = payloadType("ActorUpdateResponse", "actor", actorUpdateType)
	filmActorResponse   = payloadType("FilmActorResponse", "film_actor", filmActorTypeBase)
)

// 输入类型
var (
	filmCreateInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name:        "FilmCreateInput",
		Description: "Fields of a new film. The identifier is generated by the server.",
		Fields: graphql.InputObjectConfigFieldMap{
			"title":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String), Description: "max length is 255"},
			"genre":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String), Description: "max length is 255"},
			"language":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String), Description: "max length is 255"},
			"release":     &graphql.InputObjectFieldConfig{Type: Date, Description: "Defaults to 2011-01-01."},
			"is_premiere": &graphql.InputObjectFieldConfig{Type: graphql.Boolean, DefaultValue: false},
			"timestamp":   &graphql.InputObjectFieldConfig{Type: graphql.DateTime, Description: "Defaults to the creation time."},
		},
	})

	filmUpdateInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name:        "FilmUpdateInput",
		Description: "Only the fields that are supplied are changed.",
		Fields: graphql.InputObjectConfigFieldMap{
			"title":       &graphql.InputObjectFieldConfig{Type: graphql.String},
			"genre":       &graphql.InputObjectFieldConfig{Type: graphql.String},
			"language":    &graphql.InputObjectFieldConfig{Type: graphql.String},
			"release":     &graphql.InputObjectFieldConfig{Type: Date},
			"is_premiere": &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
			"timestamp":   &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		},
	})

	actorCreateInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name:        "ActorCreateInput",
		Description: "Fields of a new actor. The identifier is generated by the server.",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":        &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String), Description: "max length is 255"},
			"birth_date":  &graphql.InputObjectFieldConfig{Type: Date, Description: "Defaults to the current date."},
			"biography":   &graphql.InputObjectFieldConfig{Type: graphql.String},
			"nationality": &graphql.InputObjectFieldConfig{Type: graphql.String, Description: "max length is 255"},
			"timestamp":   &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		},
	})

	actorUpdateInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name:        "ActorUpdateInput",
		Description: "Only the fields that are supplied are changed.",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":        &graphql.InputObjectFieldConfig{Type: graphql.String},
			"birth_date":  &graphql.InputObjectFieldConfig{Type: Date},
			"biography":   &graphql.InputObjectFieldConfig{Type: graphql.String},
			"nationality": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"timestamp":   &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		},
	})

	filmActorInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name:        "FilmActorInput",
		Description: "Input for creating connection between Films and Actors table.",
		Fields: graphql.InputObjectConfigFieldMap{
			"film_id":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"actor_id":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"timestamp": &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		},
	})
)
