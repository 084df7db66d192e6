// Package codefile reads a local solution file back into a client.CodeFile.
//
// Solutions saved by `lc question` start with a header comment naming the
// problem, for example
//
//	// @lc slug=two-sum
//
// The language comes from the file extension.
package codefile

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/VivekYadav7272/leetcode-runner-cli/client"
	lcerrors "github.com/VivekYadav7272/leetcode-runner-cli/internal/errors"
)

// Marker precedes the problem slug in the header comment.
const Marker = "@lc slug="

var slugPattern = regexp.MustCompile(`@lc slug=([a-z0-9-]+)`)

// Header renders the comment line identifying the problem.
func Header(lang client.Language, slug string) string {
	return lang.CommentPrefix() + " " + Marker + slug
}

// Parse builds a CodeFile from the file's name and contents. The header
// line is kept in the code; it is a comment in every supported language.
func Parse(path string, contents []byte) (client.CodeFile, error) {
	lang, err := client.LanguageFromExtension(filepath.Ext(path))
	if err != nil {
		return client.CodeFile{}, lcerrors.Wrap(err, lcerrors.InvalidCodeFile)
	}

	m := slugPattern.FindSubmatch(contents)
	if m == nil {
		return client.CodeFile{}, lcerrors.Newf(lcerrors.InvalidCodeFile,
			"%s has no %q header naming the question", path, Marker)
	}

	return client.CodeFile{
		Language:      lang,
		QuestionTitle: string(m[1]),
		Code:          string(contents),
	}, nil
}

// Read loads and parses a solution file.
func Read(path string) (client.CodeFile, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return client.CodeFile{}, lcerrors.Wrap(err, lcerrors.InvalidCodeFile)
	}
	return Parse(path, contents)
}

// Find picks the solution file in dir when none is given: the only file
// with a supported extension that carries the header.
func Find(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", lcerrors.Wrap(err, lcerrors.InvalidCodeFile)
	}

	var found []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, err := client.LanguageFromExtension(filepath.Ext(e.Name())); err != nil {
			continue
		}
		path := filepath.Join(dir, e.Name())
		contents, err := os.ReadFile(path)
		if err != nil || !slugPattern.Match(contents) {
			continue
		}
		found = append(found, path)
	}

	switch len(found) {
	case 0:
		return "", lcerrors.Newf(lcerrors.InvalidCodeFile, "no solution file found in %s, pass one with --file", dir)
	case 1:
		return found[0], nil
	default:
		return "", lcerrors.Newf(lcerrors.InvalidCodeFile, "several solution files found (%s), pass one with --file",
			strings.Join(found, ", "))
	}
}
