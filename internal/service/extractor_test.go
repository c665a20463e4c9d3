package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestExtract(t *testing.T) {
	e := NewExtractor(zap.NewNop())

	page := achievementPage("Hoge Fuga", "Tiamat [Gaia]",
		pageEntry{"アチーブメント「絶バハムートを狩りし者」を達成した！", 1510100000},
		pageEntry{"Example", 1000},
	)

	profile, err := e.Extract(page)
	require.NoError(t, err)

	assert.Equal(t, "Hoge Fuga", profile.CharacterName)
	assert.Equal(t, "Tiamat [Gaia]", profile.HomeWorld)
	assert.Equal(t, map[string]int64{
		"アチーブメント「絶バハムートを狩りし者」を達成した！": 1510100000,
		"Example": 1000,
	}, profile.Achieved)
}

func TestExtractMissingElements(t *testing.T) {
	e := NewExtractor(zap.NewNop())

	profile, err := e.Extract(`<html><body><div class="maintenance">メンテナンス中</div></body></html>`)
	require.NoError(t, err)

	assert.Empty(t, profile.CharacterName)
	assert.Empty(t, profile.HomeWorld)
	assert.NotNil(t, profile.Achieved)
	assert.Empty(t, profile.Achieved)
}

func TestExtractEmptyDocuments(t *testing.T) {
	e := NewExtractor(zap.NewNop())

	pages := []string{
		"<!DOCTYPE html><html><head></head><body></body></html>",
		"<html><body>メンテナンス中</body></html>",
		"<!DOCTYPE html>",
	}
	for _, page := range pages {
		profile, err := e.Extract(page)
		require.NoError(t, err, "markup %q", page)

		assert.Empty(t, profile.CharacterName)
		assert.Empty(t, profile.HomeWorld)
		assert.NotNil(t, profile.Achieved)
		assert.Empty(t, profile.Achieved)
	}
}

func TestExtractWorldWithoutIcon(t *testing.T) {
	e := NewExtractor(zap.NewNop())

	profile, err := e.Extract(`<html><body><p class="frame__chara__name">A</p><p class="frame__chara__world">Tiamat</p></body></html>`)
	require.NoError(t, err)

	assert.Equal(t, "A", profile.CharacterName)
	assert.Empty(t, profile.HomeWorld)
}

func TestExtractSkipsIncompleteEntries(t *testing.T) {
	e := NewExtractor(zap.NewNop())

	page := `<html><body><ul>
		<li class="entry"><p class="entry__activity__txt">No time</p></li>
		<li class="entry"><time class="entry__activity__time"><script>ldst_strftime(5, 'YMD');</script></time></li>
		<li class="entry"><p class="entry__activity__txt">Bad script</p><time class="entry__activity__time"><script>strftime(5, 'YMD');</script></time></li>
		<li class="entry"><p class="entry__activity__txt">Overflow</p><time class="entry__activity__time"><script>ldst_strftime(99999999999999999999999, 'YMD');</script></time></li>
		<li class="entry"><p class="entry__activity__txt">Good</p><time class="entry__activity__time"><script>ldst_strftime(42, 'YMD');</script></time></li>
	</ul></body></html>`

	profile, err := e.Extract(page)
	require.NoError(t, err)

	assert.Equal(t, map[string]int64{"Good": 42}, profile.Achieved)
}

func TestExtractLastEntryWins(t *testing.T) {
	e := NewExtractor(zap.NewNop())

	page := achievementPage("A", "B", pageEntry{"Same", 100}, pageEntry{"Same", 200})

	profile, err := e.Extract(page)
	require.NoError(t, err)

	assert.Equal(t, int64(200), profile.Achieved["Same"])
}

func TestExtractMalformed(t *testing.T) {
	e := NewExtractor(zap.NewNop())

	for _, markup := range []string{"", "   \n\t", "not a document at all", "1 < 2 and 3 > 2"} {
		_, err := e.Extract(markup)
		assert.ErrorIs(t, err, ErrMalformedDocument, "markup %q", markup)
	}
}
