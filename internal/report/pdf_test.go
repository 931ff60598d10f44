package report

import (
	"bytes"
	"strings"
	"testing"
	"unicode"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/code-review-reporter/internal/config"
)

func defaultLayout() config.ReportConfig {
	return config.ReportConfig{
		PageSize:   "A4",
		Margin:     15,
		Font:       "Arial",
		FontSize:   11,
		LineHeight: 8,
	}
}

func render(t *testing.T, text string) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, NewPDFRenderer(defaultLayout()).Render(text, &buf))
	return buf.Bytes()
}

func extract(t *testing.T, doc []byte) (string, int) {
	t.Helper()
	r, err := pdf.NewReader(bytes.NewReader(doc), int64(len(doc)))
	require.NoError(t, err)

	plain, err := r.GetPlainText()
	require.NoError(t, err)

	var out bytes.Buffer
	_, err = out.ReadFrom(plain)
	require.NoError(t, err)
	return out.String(), r.NumPage()
}

// squash drops whitespace so wrapped lines compare equal to their source.
func squash(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func TestPDFRenderer_RoundTrip(t *testing.T) {
	text := "Summary: ok\nIssues: none\nRecommendations: none"

	doc := render(t, text)
	require.True(t, bytes.HasPrefix(doc, []byte("%PDF-")))

	got, pages := extract(t, doc)
	assert.Equal(t, 1, pages)
	for _, line := range strings.Split(text, "\n") {
		assert.Contains(t, squash(got), squash(line))
	}
}

func TestPDFRenderer_WrapsLongLines(t *testing.T) {
	long := strings.Repeat("the handler ignores the returned error ", 12)
	text := "Issues:\n" + long + "\nRecommendations: check it"

	got, _ := extract(t, render(t, text))
	assert.Contains(t, squash(got), squash(long))
	assert.Contains(t, squash(got), squash("Recommendations: check it"))
}

func TestPDFRenderer_PaginatesOverflow(t *testing.T) {
	lines := make([]string, 0, 120)
	for i := range 120 {
		lines = append(lines, strings.Repeat("x", i%40+1))
	}

	_, pages := extract(t, render(t, strings.Join(lines, "\n")))
	assert.Greater(t, pages, 1)
}

func TestPDFRenderer_SameTextSameContent(t *testing.T) {
	text := "Summary: stable\n\n1. Issue (High): nil map write"

	first, _ := extract(t, render(t, text))
	second, _ := extract(t, render(t, text))
	assert.Equal(t, first, second)
}

func TestPDFRenderer_EmptyText(t *testing.T) {
	doc := render(t, "")
	_, pages := extract(t, doc)
	assert.Equal(t, 1, pages)
}

func TestPDFRenderer_NonLatinText(t *testing.T) {
	var buf bytes.Buffer
	err := NewPDFRenderer(defaultLayout()).Render("Résumé: naïve café → 修正", &buf)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestPDFRenderer_InvalidLayout(t *testing.T) {
	layout := defaultLayout()
	layout.PageSize = "Napkin"

	var buf bytes.Buffer
	err := NewPDFRenderer(layout).Render("Summary: ok", &buf)
	assert.Error(t, err)
}
