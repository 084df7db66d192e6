package client

import (
	"testing"

	"github.com/stretchr/testify/require"

	lcerrors "github.com/VivekYadav7272/leetcode-runner-cli/internal/errors"
)

func editorData(slugs ...Language) *QuestionEditorData {
	d := &QuestionEditorData{QuestionID: "1"}
	for _, s := range slugs {
		d.CodeSnippets = append(d.CodeSnippets, BoilerPlateCode{LangSlug: s, Code: "// " + string(s)})
	}
	return d
}

func TestSelectSnippetSingleSkipsChooser(t *testing.T) {
	chooser := ChooserFunc(func(string, []string) (int, error) {
		t.Fatal("chooser should not be asked")
		return 0, nil
	})
	got, err := SelectSnippet(editorData(Rust, "mysql"), chooser)
	require.NoError(t, err)
	require.Equal(t, Rust, got.LangSlug)
}

func TestSelectSnippetAsksAmongSupported(t *testing.T) {
	var offered []string
	chooser := ChooserFunc(func(_ string, options []string) (int, error) {
		offered = options
		return 1, nil
	})
	got, err := SelectSnippet(editorData(Cpp, "bash", Python3), chooser)
	require.NoError(t, err)
	require.Equal(t, []string{"cpp", "python3"}, offered)
	require.Equal(t, Python3, got.LangSlug)
}

func TestSelectSnippetErrors(t *testing.T) {
	_, err := SelectSnippet(editorData("mysql"), nil)
	require.True(t, lcerrors.Is(err, lcerrors.NoSnippet))

	outOfRange := ChooserFunc(func(string, []string) (int, error) { return 5, nil })
	_, err = SelectSnippet(editorData(Cpp, Java), outOfRange)
	require.True(t, lcerrors.Is(err, lcerrors.InvalidChoice))
}

func TestLanguageLookups(t *testing.T) {
	lang, err := ParseLanguage(" Python3 ")
	require.NoError(t, err)
	require.Equal(t, Python3, lang)
	require.Equal(t, "py", lang.Extension())
	require.Equal(t, "#", lang.CommentPrefix())

	lang, err = LanguageFromExtension(".rs")
	require.NoError(t, err)
	require.Equal(t, Rust, lang)

	_, err = ParseLanguage("brainfuck")
	require.Error(t, err)
	_, err = LanguageFromExtension("txt")
	require.Error(t, err)
}

func TestSnippetForLanguage(t *testing.T) {
	data := editorData(Cpp, Golang, "mysql")

	got, err := SnippetFor(data, Golang)
	require.NoError(t, err)
	require.Equal(t, "// golang", got.Code)

	_, err = SnippetFor(data, Rust)
	require.True(t, lcerrors.Is(err, lcerrors.NoSnippet))
	_, err = SnippetFor(data, "mysql")
	require.True(t, lcerrors.Is(err, lcerrors.NoSnippet))
}
