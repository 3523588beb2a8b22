package confkit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolvePath(t *testing.T) {
	require.Equal(t, filepath.Join("base", "etc", "x.yaml"), ResolvePath("base", filepath.Join("etc", "x.yaml")))

	abs := string(filepath.Separator) + filepath.Join("tmp", "x.yaml")
	require.Equal(t, abs, ResolvePath("base", abs))
}

func TestResolvePathExpandsEnv(t *testing.T) {
	t.Setenv("CONFKIT_TEST_DIR", "expanded")
	require.Equal(t, filepath.Join("base", "expanded", "x.yaml"), ResolvePath("base", "${CONFKIT_TEST_DIR}/x.yaml"))
}

type sectionPayload struct {
	Name string
}

func TestSectionHydrate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "section.yaml")
	require.NoError(t, os.WriteFile(path, []byte("Name: hello\n"), 0o644))

	section := Section[sectionPayload]{File: "section.yaml"}
	require.NoError(t, section.Hydrate(dir, func(p string) (*sectionPayload, error) {
		return LoadFile[sectionPayload](p, false)
	}))
	require.NotNil(t, section.Value)
	require.Equal(t, "hello", section.Value.Name)
	require.Equal(t, path, section.File)
}

func TestSectionHydrateWithoutFileIsNoOp(t *testing.T) {
	section := Section[sectionPayload]{}
	require.NoError(t, section.Hydrate("base", func(string) (*sectionPayload, error) {
		t.Fatal("loader must not run for an empty section")
		return nil, nil
	}))
	require.Nil(t, section.Value)
}
