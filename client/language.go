package client

import (
	"fmt"
	"strings"
)

// Language is a judge language identified by its leetcode langSlug.
type Language string

const (
	Cpp        Language = "cpp"
	Java       Language = "java"
	Python     Language = "python"
	Python3    Language = "python3"
	C          Language = "c"
	CSharp     Language = "csharp"
	JavaScript Language = "javascript"
	TypeScript Language = "typescript"
	PHP        Language = "php"
	Swift      Language = "swift"
	Kotlin     Language = "kotlin"
	Dart       Language = "dart"
	Golang     Language = "golang"
	Ruby       Language = "ruby"
	Scala      Language = "scala"
	Rust       Language = "rust"
	Racket     Language = "racket"
	Erlang     Language = "erlang"
	Elixir     Language = "elixir"
)

type languageInfo struct {
	extension string
	comment   string
}

var languages = map[Language]languageInfo{
	Cpp:        {"cpp", "//"},
	Java:       {"java", "//"},
	Python:     {"py2", "#"},
	Python3:    {"py", "#"},
	C:          {"c", "//"},
	CSharp:     {"cs", "//"},
	JavaScript: {"js", "//"},
	TypeScript: {"ts", "//"},
	PHP:        {"php", "//"},
	Swift:      {"swift", "//"},
	Kotlin:     {"kt", "//"},
	Dart:       {"dart", "//"},
	Golang:     {"go", "//"},
	Ruby:       {"rb", "#"},
	Scala:      {"scala", "//"},
	Rust:       {"rs", "//"},
	Racket:     {"rkt", ";"},
	Erlang:     {"erl", "%"},
	Elixir:     {"ex", "#"},
}

// ParseLanguage accepts a langSlug, case-insensitively.
func ParseLanguage(slug string) (Language, error) {
	lang := Language(strings.ToLower(strings.TrimSpace(slug)))
	if _, ok := languages[lang]; !ok {
		return "", fmt.Errorf("unsupported language %q", slug)
	}
	return lang, nil
}

// LanguageFromExtension maps a file extension (with or without the dot)
// back to a language.
func LanguageFromExtension(ext string) (Language, error) {
	ext = strings.TrimPrefix(strings.ToLower(ext), ".")
	for lang, info := range languages {
		if info.extension == ext {
			return lang, nil
		}
	}
	return "", fmt.Errorf("no supported language uses extension %q", ext)
}

// Supported reports whether the judge accepts this language.
func (l Language) Supported() bool {
	_, ok := languages[l]
	return ok
}

func (l Language) Extension() string {
	return languages[l].extension
}

// CommentPrefix is the single-line comment marker of the language.
func (l Language) CommentPrefix() string {
	return languages[l].comment
}

func (l Language) String() string {
	return string(l)
}

// CodeFile is a solution ready to be sent to the judge.
type CodeFile struct {
	Language      Language
	QuestionTitle string
	Code          string
}
