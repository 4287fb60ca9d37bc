package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/styletree/styletree/internal/styles"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "app.yml", `
"#app":
  "$":
    color: red
`)

	tree, files, err := Load(path)
	require.NoError(t, err)

	require.Len(t, tree.Children, 1)
	assert.Equal(t, "#app", tree.Children[0].Key)
	require.Len(t, files, 1)
	assert.True(t, filepath.IsAbs(files[0]))
}

func TestLoadSplicesPartialsFirst(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "partials/reset.yml", `
body:
  "$":
    margin: 0
`)
	path := writeFile(t, dir, "app.yml", `
"$use": [partials/reset.yml]
"#app":
  "$":
    color: red
`)

	tree, files, err := Load(path)
	require.NoError(t, err)

	require.Len(t, tree.Children, 2)
	assert.Equal(t, "body", tree.Children[0].Key)
	assert.Equal(t, "#app", tree.Children[1].Key)
	assert.Len(t, files, 2)
}

func TestLoadNestedPartials(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yml", `
"$use": b.yml
".a":
  "$": {color: red}
`)
	writeFile(t, dir, "b.yml", `
"$use": [c.yml]
".b":
  "$": {color: green}
`)
	writeFile(t, dir, "c.yml", `
".c":
  "$": {color: blue}
`)

	tree, files, err := Load(filepath.Join(dir, "a.yml"))
	require.NoError(t, err)

	keys := make([]string, 0, 3)
	for _, c := range tree.Children {
		keys = append(keys, c.Key)
	}
	assert.Equal(t, []string{".c", ".b", ".a"}, keys)
	assert.Len(t, files, 3)
}

func TestLoadCyclicPartialsLoadOnce(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yml", `
"$use": [b.yml]
".a":
  "$": {color: red}
`)
	writeFile(t, dir, "b.yml", `
"$use": [a.yml]
".b":
  "$": {color: green}
`)

	tree, files, err := Load(filepath.Join(dir, "a.yml"))
	require.NoError(t, err)

	assert.Len(t, tree.Children, 2)
	assert.Len(t, files, 2)
}

func TestLoadedTreeCompiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.yml", `
body:
  "$":
    margin: 0
`)
	path := writeFile(t, dir, "app.yml", `
"$use": [base.yml]
"#app":
  "$":
    backgroundColor: black
`)

	tree, _, err := Load(path)
	require.NoError(t, err)

	css := styles.NewCompiler().CompileTree(tree, nil, styles.Options{})
	assert.Equal(t, "body{margin:0;}\n#app{background-color:black;}\n", css)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, _, err := Load(filepath.Join(dir, "nope.yml"))
		assert.Error(t, err)
	})

	t.Run("missing partial", func(t *testing.T) {
		path := writeFile(t, dir, "broken.yml", `{"$use": [gone.yml]}`)
		_, _, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("source is not a mapping", func(t *testing.T) {
		path := writeFile(t, dir, "seq.yml", `[1, 2]`)
		_, _, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("use is not a path list", func(t *testing.T) {
		path := writeFile(t, dir, "baduse.yml", `{"$use": {x: y}}`)
		_, _, err := Load(path)
		assert.Error(t, err)
	})
}
