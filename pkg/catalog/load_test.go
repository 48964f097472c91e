package catalog_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/schemakit/pkg/catalog"
	"github.com/dmitrymomot/schemakit/pkg/kind"
	"github.com/dmitrymomot/schemakit/pkg/schema"
)

const signupYAML = `
signup:
  type: object
  properties:
    email:
      type: string
      required: true
      trim: true
      lowercase: true
      email: true
    age:
      type: [number, "null"]
      coerce: true
      integer: true
      min: 13
    nickname:
      type: string
      sanitize:
        string:
          trim: true
          slugify: true
      maxLength: 20
`

func TestLoadYAML(t *testing.T) {
	t.Parallel()

	t.Run("decodes nodes", func(t *testing.T) {
		t.Parallel()
		nodes, err := catalog.LoadYAML(strings.NewReader(signupYAML))
		require.NoError(t, err)
		require.Contains(t, nodes, "signup")

		signup := nodes["signup"]
		assert.Equal(t, kind.Types{kind.Object}, signup.Type)
		assert.Equal(t, kind.Types{kind.Number, kind.Null}, signup.Properties["age"].Type)
		assert.Equal(t, 13.0, *signup.Properties["age"].Min)
		assert.Equal(t, 20, *signup.Properties["nickname"].MaxLength)

		res := schema.Validate(map[string]any{
			"email":    " Kid@Example.com",
			"age":      "12",
			"nickname": " Cool Kid ",
		}, signup)
		assert.Equal(t, []string{"age"}, res.Errors.Paths())
		out := res.Value.(map[string]any)
		assert.Equal(t, "kid@example.com", out["email"])
		assert.Equal(t, "cool-kid", out["nickname"])
	})

	t.Run("json is yaml", func(t *testing.T) {
		t.Parallel()
		nodes, err := catalog.LoadYAML(strings.NewReader(`{"id": {"type": "string", "uuid": true}}`))
		require.NoError(t, err)
		assert.True(t, nodes["id"].UUID)
	})

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()
		nodes, err := catalog.LoadYAML(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, nodes)
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.LoadYAML(strings.NewReader("x:\n  type: string\n  maxLen: 3\n"))
		assert.ErrorIs(t, err, catalog.ErrInvalidDocument)
	})

	t.Run("unknown type name", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.LoadYAML(strings.NewReader("x:\n  type: text\n"))
		assert.ErrorIs(t, err, catalog.ErrInvalidDocument)
	})

	t.Run("null node", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.LoadYAML(strings.NewReader("x: ~\n"))
		assert.ErrorIs(t, err, catalog.ErrInvalidDocument)
		assert.ErrorIs(t, err, catalog.ErrNilNode)
	})
}

func TestLoadFS(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"schemas/a.yaml":        {Data: []byte("first:\n  type: string\nshared:\n  type: string\n")},
		"schemas/b.json":        {Data: []byte(`{"shared": {"type": "number"}}`)},
		"schemas/notes.txt":     {Data: []byte("ignored")},
		"schemas/nested/c.yml": {Data: []byte("nested:\n  type: string\n")},
	}

	r := catalog.NewRegistry()
	n, err := r.LoadFS(fsys, "schemas")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"first", "shared"}, r.Names())
	assert.Equal(t, kind.Types{kind.Number}, r.MustGet("shared").Type)

	t.Run("bad file stops loading", func(t *testing.T) {
		t.Parallel()
		bad := fstest.MapFS{"s/bad.yaml": {Data: []byte("x: [")}}
		_, err := catalog.NewRegistry().LoadFS(bad, "s")
		assert.ErrorIs(t, err, catalog.ErrInvalidDocument)
		assert.Contains(t, err.Error(), "s/bad.yaml")
	})

	t.Run("missing dir", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.NewRegistry().LoadFS(fsys, "nope")
		assert.Error(t, err)
	})
}

func TestLoadDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "s.yaml"), []byte("slug:\n  type: string\n  pattern: '^[a-z-]+$'\n"), 0o600))

	r := catalog.Default()
	n, err := r.LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.True(t, schema.Validate("ok-slug", r.MustGet("slug")).Valid)

	nodes, err := catalog.LoadFile(filepath.Join(dir, "s.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "^[a-z-]+$", nodes["slug"].Pattern)

	_, err = catalog.LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
