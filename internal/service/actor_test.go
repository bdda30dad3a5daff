package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/filmgraph/internal/model"
)

func strPtr(s string) *string { return &s }

func TestActorLifecycle(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	created, msg, err := svc.Actor.Create(ctx, model.ActorInput{Name: "Cillian Murphy", Nationality: strPtr("Irish")})
	require.NoError(t, err)
	assert.Equal(t, "Actor 'Cillian Murphy' successfully created.", msg)
	assert.Equal(t, "a001", created.UUID)
	require.NotNil(t, created.BirthDate)
	assert.Equal(t, "2024-03-15", created.BirthDate.Format("2006-01-02"))
	assert.Nil(t, created.Biography)

	got, err := svc.Actor.Get(ctx, "Cillian Murphy", "")
	require.NoError(t, err)
	assert.Equal(t, created.UUID, got.UUID)
	require.NotNil(t, got.Nationality)
	assert.Equal(t, "Irish", *got.Nationality)

	_, err = svc.Actor.Get(ctx, "Cillian Murphy", "zzz")
	assert.True(t, IsKind(err, KindNotFound))
	assert.Equal(t, "Actor 'Cillian Murphy' or ID 'zzz' not found.", err.Error())

	msg, err = svc.Actor.Delete(ctx, "Cillian Murphy")
	require.NoError(t, err)
	assert.Equal(t, "Actor Cillian Murphy successfully deleted.", msg)

	_, err = svc.Actor.Get(ctx, "Cillian Murphy", "")
	assert.True(t, IsKind(err, KindNotFound))
}

func TestActorNamesAreNotUnique(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	_, _, err := svc.Actor.Create(ctx, model.ActorInput{Name: "Chris Evans"})
	require.NoError(t, err)
	_, _, err = svc.Actor.Create(ctx, model.ActorInput{Name: "Chris Evans"})
	require.NoError(t, err)

	actors, err := svc.Actor.List(ctx, "", false, 10)
	require.NoError(t, err)
	assert.Len(t, actors, 2)
}

func TestUpdateActorPatch(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	birth := time.Date(1976, 5, 25, 0, 0, 0, 0, time.UTC)
	_, _, err := svc.Actor.Create(ctx, model.ActorInput{Name: "Cillian Murphy", BirthDate: &birth, Biography: strPtr("Irish actor.")})
	require.NoError(t, err)

	updated, msg, err := svc.Actor.Update(ctx, "Cillian Murphy", model.ActorPatch{Nationality: model.Some("Irish")})
	require.NoError(t, err)
	assert.Equal(t, "Actor 'Cillian Murphy' successfully updated.", msg)
	assert.Equal(t, "Cillian Murphy", updated.Name)
	require.NotNil(t, updated.Nationality)
	assert.Equal(t, "Irish", *updated.Nationality)
	require.NotNil(t, updated.Biography)
	assert.Equal(t, "Irish actor.", *updated.Biography)
	assert.Equal(t, "1976-05-25", updated.BirthDate.Format("2006-01-02"))

	_, _, err = svc.Actor.Update(ctx, "Cillian Murphy", model.ActorPatch{Nationality: model.Some(strings.Repeat("x", 256))})
	assert.True(t, IsKind(err, KindBadInput))

	_, _, err = svc.Actor.Update(ctx, "Nobody", model.ActorPatch{Name: model.Some("Somebody")})
	assert.True(t, IsKind(err, KindNotFound))
	assert.Equal(t, "Actor 'Nobody' not found.", err.Error())
}

func TestActorWithFilms(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	actor, _, err := svc.Actor.Create(ctx, model.ActorInput{Name: "Robert De Niro"})
	require.NoError(t, err)

	withFilms, err := svc.Actor.GetWithFilms(ctx, "Robert De Niro")
	require.NoError(t, err)
	assert.Empty(t, withFilms.Films)

	for _, title := range []string{"Heat", "Ronin"} {
		film, _, err := svc.Film.Create(ctx, model.FilmInput{Title: title, Genre: "Crime", Language: "English"})
		require.NoError(t, err)
		_, _, err = svc.FilmActor.Link(ctx, model.FilmActorInput{FilmID: film.UUID, ActorID: actor.UUID})
		require.NoError(t, err)
	}

	withFilms, err = svc.Actor.GetWithFilms(ctx, "Robert De Niro")
	require.NoError(t, err)
	assert.Equal(t, actor.UUID, withFilms.UUID)
	require.Len(t, withFilms.Films, 2)
	assert.Equal(t, "Heat", withFilms.Films[0].Title)
	assert.Equal(t, "Ronin", withFilms.Films[1].Title)

	_, err = svc.Actor.GetWithFilms(ctx, "Nobody")
	assert.True(t, IsKind(err, KindNotFound))
}
