package filestore

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	l := logrus.New()
	l.SetOutput(io.Discard)
	store, err := New(l, t.TempDir())
	require.NoError(t, err)
	return store
}

func TestSave(t *testing.T) {
	store := newTestStore(t)

	name, err := store.Save([]byte("fake png"), ".PNG")
	require.NoError(t, err)
	assert.Regexp(t, `^[0-9a-f-]{36}\.png$`, name)

	data, err := os.ReadFile(filepath.Join(store.Dir(), name))
	require.NoError(t, err)
	assert.Equal(t, "fake png", string(data))
}

func TestSaveUniqueNames(t *testing.T) {
	store := newTestStore(t)

	a, err := store.Save([]byte("a"), ".jpg")
	require.NoError(t, err)
	b, err := store.Save([]byte("b"), ".jpg")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestSaveRejectsExtension(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Save([]byte("#!/bin/sh"), ".sh")
	assert.ErrorIs(t, err, ErrBadExtension)
}
