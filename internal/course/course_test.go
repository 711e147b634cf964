package course

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCourse(t *testing.T) {
	c := Default()

	assert.Equal(t, 18, c.Holes())
	assert.Equal(t, []int{4, 4, 3, 4, 5, 4, 3, 4, 4, 4, 3, 4, 5, 4, 3, 4, 4, 4}, c.Pars())
	assert.Equal(t, 70, c.TotalPar())

	par, ok := c.Par(5)
	assert.True(t, ok)
	assert.Equal(t, 5, par)

	_, ok = c.Par(0)
	assert.False(t, ok)
	_, ok = c.Par(19)
	assert.False(t, ok)
}

func TestNewValidatesPars(t *testing.T) {
	_, err := New(&Config{Pars: []int{4, 4, 3}})
	assert.ErrorIs(t, err, ErrWrongHoleCount)

	pars := append([]int{}, DefaultPars[:]...)
	pars[7] = 0
	_, err = New(&Config{Pars: pars})
	assert.ErrorIs(t, err, ErrInvalidPar)
}

func TestParsReturnsCopy(t *testing.T) {
	c := Default()
	pars := c.Pars()
	pars[0] = 99

	par, _ := c.Par(1)
	assert.Equal(t, 4, par)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "course.yaml")
	content := `name: Links
pars: [5, 4, 3, 4, 5, 4, 3, 4, 4, 4, 3, 4, 5, 4, 3, 4, 4, 5]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Links", c.Name())
	par, _ := c.Par(18)
	assert.Equal(t, 5, par)
	assert.Equal(t, 72, c.TotalPar())
}

func TestLoadEmptyPathIsDefault(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Pars(), c.Pars())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
