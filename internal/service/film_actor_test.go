package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/filmgraph/internal/model"
)

func seedCast(t *testing.T, svc *Services) (model.FilmView, model.ActorView) {
	t.Helper()
	ctx := context.Background()
	film, _, err := svc.Film.Create(ctx, model.FilmInput{Title: "Inception", Genre: "Sci-Fi", Language: "English"})
	require.NoError(t, err)
	actor, _, err := svc.Actor.Create(ctx, model.ActorInput{Name: "Elliot Page"})
	require.NoError(t, err)
	return film, actor
}

func TestLinkAndUnlink(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	film, actor := seedCast(t, svc)

	link, msg, err := svc.FilmActor.Link(ctx, model.FilmActorInput{FilmID: film.UUID, ActorID: actor.UUID})
	require.NoError(t, err)
	assert.Equal(t, "Films and Actors successfully connected.", msg)
	assert.Equal(t, "l001", link.UUID)
	assert.Equal(t, film.UUID, link.FilmID)
	assert.Equal(t, actor.UUID, link.ActorID)
	assert.True(t, link.Timestamp.Equal(fixedNow))

	withActors, err := svc.Film.GetWithActors(ctx, "Inception")
	require.NoError(t, err)
	require.Len(t, withActors.Actors, 1)
	assert.Equal(t, "Elliot Page", withActors.Actors[0].Name)

	links, err := svc.FilmActor.List(ctx, 0, 100)
	require.NoError(t, err)
	require.Len(t, links, 1)

	msg, err = svc.FilmActor.Unlink(ctx, link.UUID)
	require.NoError(t, err)
	assert.Equal(t, "Film Actor with Film ID 'f001' and Actor ID 'a001' successfully deleted.", msg)

	_, err = svc.FilmActor.List(ctx, 0, 100)
	assert.True(t, IsKind(err, KindNotFound))

	_, err = svc.FilmActor.Unlink(ctx, link.UUID)
	assert.True(t, IsKind(err, KindNotFound))
	assert.Equal(t, "Film Actor with ID 'l001' not found.", err.Error())
}

func TestLinkWithSuppliedTimestamp(t *testing.T) {
	svc := newTestServices(t)
	film, actor := seedCast(t, svc)

	ts := time.Date(2020, 2, 2, 2, 2, 2, 0, time.UTC)
	link, _, err := svc.FilmActor.Link(context.Background(), model.FilmActorInput{FilmID: film.UUID, ActorID: actor.UUID, Timestamp: &ts})
	require.NoError(t, err)
	assert.True(t, link.Timestamp.Equal(ts))
}

func TestLinkMissingSide(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	film, actor := seedCast(t, svc)

	_, _, err := svc.FilmActor.Link(ctx, model.FilmActorInput{FilmID: film.UUID, ActorID: "missing-actor"})
	require.Error(t, err)
	assert.True(t, IsKind(err, KindNotFound))
	assert.Equal(t, "Actor with ID 'missing-actor' not found.", err.Error())

	_, _, err = svc.FilmActor.Link(ctx, model.FilmActorInput{FilmID: "missing-film", ActorID: actor.UUID})
	assert.True(t, IsKind(err, KindNotFound))
	assert.Equal(t, "Film with ID 'missing-film' not found.", err.Error())

	_, _, err = svc.FilmActor.Link(ctx, model.FilmActorInput{FilmID: "", ActorID: actor.UUID})
	assert.True(t, IsKind(err, KindBadInput))
}

func TestDeleteCascadesToLinks(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	film, actor := seedCast(t, svc)

	other, _, err := svc.Film.Create(ctx, model.FilmInput{Title: "Juno", Genre: "Comedy", Language: "English"})
	require.NoError(t, err)

	_, _, err = svc.FilmActor.Link(ctx, model.FilmActorInput{FilmID: film.UUID, ActorID: actor.UUID})
	require.NoError(t, err)
	_, _, err = svc.FilmActor.Link(ctx, model.FilmActorInput{FilmID: other.UUID, ActorID: actor.UUID})
	require.NoError(t, err)

	_, err = svc.Film.Delete(ctx, "Inception")
	require.NoError(t, err)

	links, err := svc.FilmActor.List(ctx, 0, 100)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, other.UUID, links[0].FilmID)

	_, err = svc.Actor.Delete(ctx, "Elliot Page")
	require.NoError(t, err)

	_, err = svc.FilmActor.List(ctx, 0, 100)
	assert.True(t, IsKind(err, KindNotFound))

	withActors, err := svc.Film.GetWithActors(ctx, "Juno")
	require.NoError(t, err)
	assert.Empty(t, withActors.Actors)
}

func TestListFilmActorsOffset(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	film, actor := seedCast(t, svc)

	for i := 0; i < 3; i++ {
		_, _, err := svc.FilmActor.Link(ctx, model.FilmActorInput{FilmID: film.UUID, ActorID: actor.UUID})
		require.NoError(t, err)
	}

	page, err := svc.FilmActor.List(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "l002", page[0].UUID)

	page, err = svc.FilmActor.List(ctx, -5, 0)
	require.NoError(t, err)
	assert.Len(t, page, 3)

	_, err = svc.FilmActor.List(ctx, 3, 10)
	assert.True(t, IsKind(err, KindNotFound))
}

func TestGetFilmWithActorsMissing(t *testing.T) {
	svc := newTestServices(t)

	_, err := svc.Film.GetWithActors(context.Background(), "Nothing")
	assert.True(t, IsKind(err, KindNotFound))
	assert.Equal(t, "Film 'Nothing' not found.", err.Error())
}
