package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jjenkins/resume/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubFetcher struct {
	markup string
	err    error
	calls  int
}

func (f *stubFetcher) FetchAchievementPage(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.markup, f.err
}

func newTestService(t *testing.T, f Fetcher) *ResumeService {
	t.Helper()
	return NewResumeService(f, NewExtractor(zap.NewNop()), NewComposer(testCatalog(t), nil), zap.NewNop())
}

func TestGetResume(t *testing.T) {
	f := &stubFetcher{markup: achievementPage("Hoge Fuga", "Tiamat [Gaia]",
		pageEntry{"Example", 1000 + day},
		pageEntry{"Middle", 0},
	)}
	svc := newTestService(t, f)

	header, body, err := svc.GetResume(context.Background(), "12345", "all")
	require.NoError(t, err)

	assert.Equal(t, "Hoge Fuga @ Tiamat [Gaia]", header)
	assert.Equal(t, ""+
		"Example: 1 days (in minor patch: ○/in major patch: ○)\n"+
		"Middle: 0 days (in minor patch: ○/in major patch: ○)\n", body)
	assert.Equal(t, 1, f.calls)
}

func TestGetResumeSingleCategory(t *testing.T) {
	f := &stubFetcher{markup: achievementPage("A", "B", pageEntry{"Example", 1000}, pageEntry{"Middle", 0})}
	svc := newTestService(t, f)

	_, body, err := svc.GetResume(context.Background(), "1", string(model.CategorySavage))
	require.NoError(t, err)

	assert.Equal(t, "Middle: 0 days (in minor patch: ○/in major patch: ○)\n", body)
	assert.Equal(t, 2, svc.Tracked(string(model.CategorySavage)))
}

func TestGetResumeUnknownType(t *testing.T) {
	f := &stubFetcher{markup: achievementPage("A", "B", pageEntry{"Example", 1000})}
	svc := newTestService(t, f)

	header, body, err := svc.GetResume(context.Background(), "1", "xyz")
	require.NoError(t, err)

	assert.Equal(t, "A @ B", header)
	assert.Empty(t, body)
}

func TestGetResumeEmptyTypeSelectsNothing(t *testing.T) {
	f := &stubFetcher{markup: achievementPage("A", "B", pageEntry{"Example", 1000}, pageEntry{"Middle", 0})}
	svc := newTestService(t, f)

	header, body, err := svc.GetResume(context.Background(), "1", "")
	require.NoError(t, err)

	assert.Equal(t, "A @ B", header)
	assert.Empty(t, body)
	assert.Zero(t, svc.Tracked(""))
}

func TestGetResumePropagatesFetchError(t *testing.T) {
	fetchErr := &FetchError{CharacterID: "1", StatusCode: 503}
	svc := newTestService(t, &stubFetcher{err: fetchErr})

	_, _, err := svc.GetResume(context.Background(), "1", "all")

	assert.ErrorIs(t, err, ErrFetchFailed)
	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	assert.Same(t, fetchErr, fe)
}

func TestGetResumeMalformedDocument(t *testing.T) {
	svc := newTestService(t, &stubFetcher{markup: "garbage"})

	_, _, err := svc.GetResume(context.Background(), "1", "all")

	assert.ErrorIs(t, err, ErrMalformedDocument)
}

func TestGetResumeRejectsBadCharacterID(t *testing.T) {
	f := &stubFetcher{}
	svc := newTestService(t, f)

	for _, id := range []string{"", "abc", "12/../34", "-1"} {
		_, _, err := svc.GetResume(context.Background(), id, "all")
		assert.ErrorIs(t, err, ErrInvalidCharacterID, "id %q", id)
	}
	assert.Zero(t, f.calls)
}
