// Package workspace owns the files the CLI leaves in the working directory:
// question statements, starter code and packed solutions.
package workspace

import (
	"archive/tar"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/VivekYadav7272/leetcode-runner-cli/client"
	"github.com/VivekYadav7272/leetcode-runner-cli/internal/codefile"
	lcerrors "github.com/VivekYadav7272/leetcode-runner-cli/internal/errors"
)

// QuestionFile is where a question statement is saved.
func QuestionFile(dir, slug string) string {
	return filepath.Join(dir, slug+".html")
}

// SaveQuestion writes the statement HTML as received from the judge.
func SaveQuestion(dir, slug string, content *client.QuestionContent) (string, error) {
	path := QuestionFile(dir, slug)
	if err := os.WriteFile(path, []byte(content.Content), 0o644); err != nil {
		return "", lcerrors.Wrap(err, lcerrors.FileWrite)
	}
	return path, nil
}

// DefaultCodeFilename is offered when the user does not pick a name.
func DefaultCodeFilename(lang client.Language) string {
	return "main." + lang.Extension()
}

// SaveBoilerplate writes starter code with the header that lets it be read
// back as a CodeFile.
func SaveBoilerplate(path, slug string, snippet client.BoilerPlateCode) error {
	body := codefile.Header(snippet.LangSlug, slug) + "\n\n" + snippet.Code + "\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return lcerrors.Wrap(err, lcerrors.FileWrite)
	}
	return nil
}

// Pack gathers a solution and its saved statement into a <slug> directory
// next to the solution. Returns the directory.
func Pack(solutionPath, slug string) (string, error) {
	dir := filepath.Join(filepath.Dir(solutionPath), slug)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", lcerrors.Wrap(err, lcerrors.FileWrite)
	}
	for _, src := range packMembers(solutionPath, slug) {
		dst := filepath.Join(dir, filepath.Base(src))
		if err := os.Rename(src, dst); err != nil {
			return "", lcerrors.Wrapf(err, lcerrors.FileWrite, "Failed to move %s", src)
		}
	}
	return dir, nil
}

// PackArchive writes the solution and its statement into <slug>.tar.zst
// next to the solution, leaving the originals in place.
func PackArchive(solutionPath, slug string) (path string, err error) {
	path = filepath.Join(filepath.Dir(solutionPath), slug+".tar.zst")
	f, err := os.Create(path)
	if err != nil {
		return "", lcerrors.Wrap(err, lcerrors.FileWrite)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = lcerrors.Wrap(cerr, lcerrors.FileWrite)
		}
	}()

	enc, err := zstd.NewWriter(f)
	if err != nil {
		return "", lcerrors.Wrap(err, lcerrors.FileWrite)
	}
	tw := tar.NewWriter(enc)

	for _, src := range packMembers(solutionPath, slug) {
		if err := addToTar(tw, src, slug); err != nil {
			_ = enc.Close()
			return "", err
		}
	}
	if err := tw.Close(); err != nil {
		_ = enc.Close()
		return "", lcerrors.Wrap(err, lcerrors.FileWrite)
	}
	if err := enc.Close(); err != nil {
		return "", lcerrors.Wrap(err, lcerrors.FileWrite)
	}
	return path, nil
}

func packMembers(solutionPath, slug string) []string {
	members := []string{solutionPath}
	question := QuestionFile(filepath.Dir(solutionPath), slug)
	if _, err := os.Stat(question); err == nil {
		members = append(members, question)
	}
	return members
}

func addToTar(tw *tar.Writer, src, prefix string) error {
	body, err := os.ReadFile(src)
	if err != nil {
		return lcerrors.Wrap(err, lcerrors.FileWrite)
	}
	hdr := &tar.Header{
		Name:    filepath.ToSlash(filepath.Join(prefix, filepath.Base(src))),
		Mode:    0o644,
		Size:    int64(len(body)),
		ModTime: time.Now(),
	}
	if err := tw.WriteHeader(hdr); err != nil {
		return lcerrors.Wrap(err, lcerrors.FileWrite)
	}
	if _, err := tw.Write(body); err != nil {
		return lcerrors.Wrap(err, lcerrors.FileWrite)
	}
	return nil
}
