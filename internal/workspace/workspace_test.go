package workspace

import (
	"archive/tar"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"

	"github.com/VivekYadav7272/leetcode-runner-cli/client"
	"github.com/VivekYadav7272/leetcode-runner-cli/internal/codefile"
)

func seed(t *testing.T) (dir, solution string) {
	t.Helper()
	dir = t.TempDir()

	_, err := SaveQuestion(dir, "two-sum", &client.QuestionContent{Content: "<p>Given nums</p>"})
	require.NoError(t, err)

	solution = filepath.Join(dir, DefaultCodeFilename(client.Cpp))
	require.Equal(t, "main.cpp", filepath.Base(solution))
	require.NoError(t, SaveBoilerplate(solution, "two-sum", client.BoilerPlateCode{
		LangSlug: client.Cpp,
		Code:     "class Solution {};",
	}))
	return dir, solution
}

func TestSaveBoilerplateIsReadableCodeFile(t *testing.T) {
	_, solution := seed(t)

	cf, err := codefile.Read(solution)
	require.NoError(t, err)
	require.Equal(t, "two-sum", cf.QuestionTitle)
	require.Equal(t, client.Cpp, cf.Language)
	require.Contains(t, cf.Code, "class Solution {};")
}

func TestPackMovesFilesIntoSlugDir(t *testing.T) {
	dir, solution := seed(t)

	packed, err := Pack(solution, "two-sum")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "two-sum"), packed)

	require.FileExists(t, filepath.Join(packed, "main.cpp"))
	require.FileExists(t, filepath.Join(packed, "two-sum.html"))
	require.NoFileExists(t, solution)
}

func TestPackWithoutQuestion(t *testing.T) {
	dir := t.TempDir()
	solution := filepath.Join(dir, "main.go")
	require.NoError(t, os.WriteFile(solution, []byte("// @lc slug=x\n"), 0o644))

	packed, err := Pack(solution, "x")
	require.NoError(t, err)
	entries, err := os.ReadDir(packed)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestPackArchiveRoundTrip(t *testing.T) {
	dir, solution := seed(t)

	archive, err := PackArchive(solution, "two-sum")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "two-sum.tar.zst"), archive)
	require.FileExists(t, solution)

	files, err := readArchive(archive)
	require.NoError(t, err)
	require.Len(t, files, 2)
	require.Equal(t, "<p>Given nums</p>", string(files["two-sum/two-sum.html"]))
	require.Contains(t, string(files["two-sum/main.cpp"]), "// @lc slug=two-sum")
}

// readArchive lists the members of a packed archive with their contents.
func readArchive(path string) (map[string][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	files := map[string][]byte{}
	tr := tar.NewReader(dec)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return files, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read archive: %w", err)
		}
		body, err := io.ReadAll(tr)
		if err != nil {
			return nil, fmt.Errorf("read archive member %s: %w", hdr.Name, err)
		}
		files[hdr.Name] = body
	}
}
