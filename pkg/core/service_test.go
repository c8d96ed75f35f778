package core_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notebot/pkg/core"
)

// MockStore implements core.Store in memory.
// Load and Save copy the document so callers cannot alias stored slices.
type MockStore struct {
	data    core.NoteStore
	saves   int
	saveErr error
}

func NewMockStore(initial core.NoteStore) *MockStore {
	m := &MockStore{data: core.NoteStore{}}
	for k, v := range initial {
		m.data[k] = append([]string(nil), v...)
	}
	return m
}

func (m *MockStore) Load(ctx context.Context) (core.NoteStore, error) {
	out := core.NoteStore{}
	for k, v := range m.data {
		out[k] = append([]string(nil), v...)
	}
	return out, nil
}

func (m *MockStore) Save(ctx context.Context, notes core.NoteStore) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.data = core.NoteStore{}
	for k, v := range notes {
		m.data[k] = append([]string(nil), v...)
	}
	return nil
}

// MockExporter records the last exported notes.
type MockExporter struct {
	calls int
	last  []string
	err   error
}

func (m *MockExporter) Export(ctx context.Context, notes []string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.calls++
	m.last = append([]string(nil), notes...)
	return "/tmp/notes_export.txt", nil
}

func TestService_AddKeepsOrder(t *testing.T) {
	store := NewMockStore(nil)
	svc := core.NewService(store, &MockExporter{}, nil)
	ctx := context.Background()

	for _, n := range []string{"first", "second", "third", "second"} {
		require.NoError(t, svc.AddNote(ctx, "42", n))
	}

	notes, err := svc.Notes(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third", "second"}, notes)
}

func TestService_AddRejectsEmpty(t *testing.T) {
	svc := core.NewService(NewMockStore(nil), nil, nil)

	assert.ErrorIs(t, svc.AddNote(context.Background(), "42", ""), core.ErrEmptyNote)
	assert.ErrorIs(t, svc.AddNote(context.Background(), "", "x"), core.ErrEmptyUserID)
}

func TestService_DeleteShiftsIndices(t *testing.T) {
	store := NewMockStore(core.NoteStore{"42": {"a", "b", "c"}})
	svc := core.NewService(store, nil, nil)
	ctx := context.Background()

	removed, err := svc.DeleteNote(ctx, "42", 2)
	require.NoError(t, err)
	assert.Equal(t, "b", removed)

	notes, _ := svc.Notes(ctx, "42")
	assert.Equal(t, []string{"a", "c"}, notes)

	removed, err = svc.DeleteNote(ctx, "42", 2)
	require.NoError(t, err)
	assert.Equal(t, "c", removed)
}

func TestService_DeleteLastRemovesUser(t *testing.T) {
	store := NewMockStore(core.NoteStore{"42": {"only"}, "7": {"other"}})
	svc := core.NewService(store, nil, nil)

	_, err := svc.DeleteNote(context.Background(), "42", 1)
	require.NoError(t, err)

	_, present := store.data["42"]
	assert.False(t, present, "user key should be removed with the last note")
	assert.Equal(t, []string{"other"}, store.data["7"])
}

func TestService_DeleteInvalidIndex(t *testing.T) {
	store := NewMockStore(core.NoteStore{"42": {"a"}})
	svc := core.NewService(store, nil, nil)

	for _, idx := range []int{0, -1, 2, 99} {
		_, err := svc.DeleteNote(context.Background(), "42", idx)
		assert.ErrorIs(t, err, core.ErrInvalidIndex, "index %d", idx)
	}
	assert.Equal(t, 0, store.saves)
	assert.Equal(t, []string{"a"}, store.data["42"])
}

func TestService_ExportEmpty(t *testing.T) {
	exp := &MockExporter{}
	svc := core.NewService(NewMockStore(nil), exp, nil)

	_, err := svc.Export(context.Background(), "42")
	assert.ErrorIs(t, err, core.ErrNoNotes)
	assert.Equal(t, 0, exp.calls, "nothing should be written")
}

func TestService_Export(t *testing.T) {
	exp := &MockExporter{}
	svc := core.NewService(NewMockStore(core.NoteStore{"42": {"a", "b"}}), exp, nil)

	path, err := svc.Export(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/notes_export.txt", path)
	assert.Equal(t, []string{"a", "b"}, exp.last)
}

func TestService_ExportFailure(t *testing.T) {
	exp := &MockExporter{err: errors.New("disk full")}
	svc := core.NewService(NewMockStore(core.NoteStore{"42": {"a"}}), exp, nil)

	_, err := svc.Export(context.Background(), "42")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestService_Clear(t *testing.T) {
	store := NewMockStore(core.NoteStore{"42": {"a", "b"}, "7": {"x"}})
	svc := core.NewService(store, nil, nil)

	require.NoError(t, svc.Clear(context.Background(), "42"))
	assert.NotContains(t, store.data, "42")
	assert.Contains(t, store.data, "7")

	saves := store.saves
	require.NoError(t, svc.Clear(context.Background(), "42"))
	assert.Equal(t, saves, store.saves, "clearing an absent user should not write")
}

func TestService_SaveFailureSurfaces(t *testing.T) {
	store := NewMockStore(nil)
	store.saveErr = errors.New("permission denied")
	svc := core.NewService(store, nil, nil)

	err := svc.AddNote(context.Background(), "42", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
}

func TestService_WatchUnsupported(t *testing.T) {
	svc := core.NewService(NewMockStore(nil), nil, nil)

	_, err := svc.Watch(context.Background(), "*")
	require.Error(t, err)
	assert.Equal(t, "store does not support watching", err.Error())
}
