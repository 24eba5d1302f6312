package extract

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractFindsDescription(t *testing.T) {
	t.Parallel()

	body := []byte(`<html><body>
		<div class="DetailsLayoutRightParagraph">
			A sweeping tale of adventure and loss.
		</div>
	</body></html>`)

	e := NewDescriptionExtractor()
	text, found := e.Extract(body)
	require.True(t, found)
	require.Equal(t, "A sweeping tale of adventure and loss.", text)
}

func TestExtractUsesFirstRegion(t *testing.T) {
	t.Parallel()

	body := []byte(`<html><body>
		<div class="DetailsLayoutRightParagraph">first</div>
		<div class="DetailsLayoutRightParagraph">second</div>
	</body></html>`)

	text, found := NewDescriptionExtractor().Extract(body)
	require.True(t, found)
	require.Equal(t, "first", text)
}

func TestExtractMissingRegion(t *testing.T) {
	t.Parallel()

	body := []byte(`<html><body><div class="OtherBlock">nothing here</div></body></html>`)
	text, found := NewDescriptionExtractor().Extract(body)
	require.False(t, found)
	require.Empty(t, text)
}

func TestExtractNestedMarkup(t *testing.T) {
	t.Parallel()

	body := []byte(`<html><body>
		<div class="DetailsLayoutRightParagraph"><p>Part one.</p><p>Part two.</p></div>
	</body></html>`)

	text, found := NewDescriptionExtractor().Extract(body)
	require.True(t, found)
	require.Contains(t, text, "Part one.")
	require.Contains(t, text, "Part two.")
}

func TestExtractEmptyBody(t *testing.T) {
	t.Parallel()

	text, found := NewDescriptionExtractor().Extract(nil)
	require.False(t, found)
	require.Empty(t, text)
}
