package client

import (
	lcerrors "github.com/VivekYadav7272/leetcode-runner-cli/internal/errors"
)

// Chooser asks the user to pick one of several options and returns the
// chosen index.
type Chooser interface {
	Choose(prompt string, options []string) (int, error)
}

// ChooserFunc adapts a function to Chooser.
type ChooserFunc func(prompt string, options []string) (int, error)

func (f ChooserFunc) Choose(prompt string, options []string) (int, error) {
	return f(prompt, options)
}

// SelectSnippet picks the starter code to save. A single supported snippet
// is taken as is; with several the chooser decides.
func SelectSnippet(data *QuestionEditorData, chooser Chooser) (BoilerPlateCode, error) {
	snippets := data.SupportedSnippets()
	switch len(snippets) {
	case 0:
		return BoilerPlateCode{}, lcerrors.New(lcerrors.NoSnippet)
	case 1:
		return snippets[0], nil
	}

	options := make([]string, len(snippets))
	for i, s := range snippets {
		options[i] = string(s.LangSlug)
	}
	idx, err := chooser.Choose("Please select a language from the following options", options)
	if err != nil {
		return BoilerPlateCode{}, err
	}
	if idx < 0 || idx >= len(snippets) {
		return BoilerPlateCode{}, lcerrors.Newf(lcerrors.InvalidChoice, "Invalid input! %d is not one of the options", idx)
	}
	return snippets[idx], nil
}

// SnippetFor returns the starter code for lang without asking.
func SnippetFor(data *QuestionEditorData, lang Language) (BoilerPlateCode, error) {
	for _, s := range data.SupportedSnippets() {
		if s.LangSlug == lang {
			return s, nil
		}
	}
	return BoilerPlateCode{}, lcerrors.Newf(lcerrors.NoSnippet, "No boilerplate code available in %s", lang)
}
