package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/filmgraph/internal/model"
	"github.com/user/filmgraph/internal/testutil"
)

var fixedNow = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

// sequentialIDs 生成有序的标识，便于断言分页结果
func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s%03d", prefix, n)
	}
}

func newTestServices(t *testing.T) *Services {
	t.Helper()
	svc := NewServices(testutil.NewStore(t))
	for _, e := range []*env{&svc.Film.env, &svc.Actor.env, &svc.FilmActor.env} {
		e.now = func() time.Time { return fixedNow }
	}
	svc.Film.newID = sequentialIDs("f")
	svc.Actor.newID = sequentialIDs("a")
	svc.FilmActor.newID = sequentialIDs("l")
	return svc
}

func assertSameFilm(t *testing.T, want, got model.FilmView) {
	t.Helper()
	assert.Equal(t, want.UUID, got.UUID)
	assert.Equal(t, want.Title, got.Title)
	assert.Equal(t, want.Genre, got.Genre)
	assert.Equal(t, want.Language, got.Language)
	assert.Equal(t, want.IsPremiere, got.IsPremiere)
	require.NotNil(t, got.Release)
	assert.Equal(t, want.Release.Format("2006-01-02"), got.Release.Format("2006-01-02"))
	assert.True(t, want.Timestamp.Equal(got.Timestamp), "timestamp %v != %v", want.Timestamp, got.Timestamp)
}

func TestNewIDFormat(t *testing.T) {
	id := NewID()
	assert.Len(t, id, 32)
	assert.NotContains(t, id, "-")
	assert.NotEqual(t, id, NewID())
}

func TestFilmLifecycle(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	created, msg, err := svc.Film.Create(ctx, model.FilmInput{Title: "Inception", Genre: "Sci-Fi", Language: "English"})
	require.NoError(t, err)
	assert.Equal(t, "Film 'Inception' successfully created.", msg)
	assert.Equal(t, "f001", created.UUID)
	assert.False(t, created.IsPremiere)
	assert.Equal(t, "2011-01-01", created.Release.Format("2006-01-02"))
	assert.True(t, created.Timestamp.Equal(fixedNow))

	got, err := svc.Film.Get(ctx, "Inception", "")
	require.NoError(t, err)
	assertSameFilm(t, created, got)

	got, err = svc.Film.Get(ctx, "Inception", created.UUID)
	require.NoError(t, err)
	assertSameFilm(t, created, got)

	msg, err = svc.Film.Delete(ctx, "Inception")
	require.NoError(t, err)
	assert.Equal(t, "Film Inception successfully deleted.", msg)

	_, err = svc.Film.Get(ctx, "Inception", "")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindNotFound))
	assert.Equal(t, "Film 'Inception' not found.", err.Error())
}

func TestGetFilmWithWrongID(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	_, _, err := svc.Film.Create(ctx, model.FilmInput{Title: "Heat", Genre: "Crime", Language: "English"})
	require.NoError(t, err)

	_, err = svc.Film.Get(ctx, "Heat", "nope")
	assert.True(t, IsKind(err, KindNotFound))
	assert.Equal(t, "Film 'Heat' or ID 'nope' not found.", err.Error())
}

func TestCreateFilmDuplicateTitleConflicts(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	in := model.FilmInput{Title: "Heat", Genre: "Crime", Language: "English"}
	_, _, err := svc.Film.Create(ctx, in)
	require.NoError(t, err)

	_, _, err = svc.Film.Create(ctx, in)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindConflict))
	assert.Equal(t, "Film 'Heat' already exists.", err.Error())
}

func TestCreateFilmValidation(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	_, _, err := svc.Film.Create(ctx, model.FilmInput{Title: "  ", Genre: "Crime", Language: "English"})
	assert.True(t, IsKind(err, KindBadInput))
	assert.Contains(t, err.Error(), "'title'")

	_, _, err = svc.Film.Create(ctx, model.FilmInput{Title: strings.Repeat("x", 256), Genre: "Crime", Language: "English"})
	assert.True(t, IsKind(err, KindBadInput))
	assert.Contains(t, err.Error(), "max length 255")

	_, _, err = svc.Film.Create(ctx, model.FilmInput{Title: strings.Repeat("影", 255), Genre: "Crime", Language: "English"})
	assert.NoError(t, err)
}

func TestUpdateFilmAppliesOnlyPresentFields(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	release := time.Date(2010, 7, 16, 0, 0, 0, 0, time.UTC)
	_, _, err := svc.Film.Create(ctx, model.FilmInput{
		Title: "Inception", Genre: "Sci-Fi", Language: "English", Release: &release, IsPremiere: true,
	})
	require.NoError(t, err)

	later := fixedNow.Add(time.Hour)
	svc.Film.now = func() time.Time { return later }

	updated, msg, err := svc.Film.Update(ctx, "Inception", model.FilmPatch{Genre: model.Some("Thriller")})
	require.NoError(t, err)
	assert.Equal(t, "Film 'Inception' successfully updated.", msg)
	assert.Equal(t, "Thriller", updated.Genre)
	assert.Equal(t, "Inception", updated.Title)
	assert.Equal(t, "English", updated.Language)
	assert.True(t, updated.IsPremiere)
	assert.Equal(t, "2010-07-16", updated.Release.Format("2006-01-02"))
	assert.True(t, updated.Timestamp.Equal(later))

	// 显式提供默认值同样生效
	updated, _, err = svc.Film.Update(ctx, "Inception", model.FilmPatch{IsPremiere: model.Some(false)})
	require.NoError(t, err)
	assert.False(t, updated.IsPremiere)
	assert.Equal(t, "Thriller", updated.Genre)
}

func TestUpdateFilmRename(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	_, _, err := svc.Film.Create(ctx, model.FilmInput{Title: "Heat", Genre: "Crime", Language: "English"})
	require.NoError(t, err)
	_, _, err = svc.Film.Create(ctx, model.FilmInput{Title: "Ronin", Genre: "Action", Language: "English"})
	require.NoError(t, err)

	_, _, err = svc.Film.Update(ctx, "Ronin", model.FilmPatch{Title: model.Some("Heat")})
	assert.True(t, IsKind(err, KindConflict))

	_, _, err = svc.Film.Update(ctx, "Ronin", model.FilmPatch{Title: model.Some("")})
	assert.True(t, IsKind(err, KindBadInput))

	_, _, err = svc.Film.Update(ctx, "Ronin", model.FilmPatch{Title: model.Some("Ronin (1998)")})
	require.NoError(t, err)
	_, err = svc.Film.Get(ctx, "Ronin (1998)", "")
	assert.NoError(t, err)
}

func TestUpdateAndDeleteMissingFilm(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	_, _, err := svc.Film.Update(ctx, "Ghost", model.FilmPatch{Genre: model.Some("Drama")})
	assert.True(t, IsKind(err, KindNotFound))

	_, err = svc.Film.Delete(ctx, "Ghost")
	assert.True(t, IsKind(err, KindNotFound))
	assert.Equal(t, "Film 'Ghost' not found.", err.Error())
}

func TestListFilmsKeyset(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	_, err := svc.Film.List(ctx, "", false, 10)
	assert.True(t, IsKind(err, KindNotFound))

	for i := 1; i <= 5; i++ {
		_, _, err := svc.Film.Create(ctx, model.FilmInput{Title: fmt.Sprintf("Film %d", i), Genre: "Drama", Language: "English"})
		require.NoError(t, err)
	}

	first, err := svc.Film.List(ctx, "", false, 2)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, "f001", first[0].UUID)
	assert.Equal(t, "f002", first[1].UUID)

	next, err := svc.Film.List(ctx, first[len(first)-1].UUID, true, 2)
	require.NoError(t, err)
	require.Len(t, next, 2)
	assert.Equal(t, "f003", next[0].UUID)
	assert.Equal(t, "f004", next[1].UUID)

	back, err := svc.Film.List(ctx, "f003", false, 10)
	require.NoError(t, err)
	require.Len(t, back, 2)
	assert.Equal(t, "f002", back[0].UUID)
	assert.Equal(t, "f001", back[1].UUID)

	all, err := svc.Film.List(ctx, "", false, 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	_, err = svc.Film.List(ctx, "f005", true, 10)
	assert.True(t, IsKind(err, KindNotFound))
}

func TestNormalizeLimit(t *testing.T) {
	assert.Equal(t, 10, normalizeLimit(0))
	assert.Equal(t, 10, normalizeLimit(-3))
	assert.Equal(t, 7, normalizeLimit(7))
	assert.Equal(t, 100, normalizeLimit(1000))
}
