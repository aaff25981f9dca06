package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khangai-labs/khuvaari-cli/internal/core/domain"
)

func testTimetable() *domain.Timetable {
	return &domain.Timetable{
		Kind:         domain.KindClasses,
		Days:         []string{"Даваа", "Мягмар"},
		Periods:      []string{"1", "2"},
		SectionNames: []string{"Ахлах-10а", "Ахлах-10б"},
		Odd: map[string][][]domain.Entry{
			"Ахлах-10а": {
				{{Subject: "Математик", Secondary: "Б.Бат"}, {}},
				{{}, {Subject: "Физик"}},
			},
			"Ахлах-10б": {
				{{}, {}},
				{{Subject: "Хими"}, {}},
			},
		},
		Even: map[string][][]domain.Entry{
			"Ахлах-10а": {
				{{Subject: "Математик", Secondary: "Б.Бат"}, {}},
				{{}, {}},
			},
			"Ахлах-10б": {
				{{}, {}},
				{{}, {}},
			},
		},
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "timetable.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_SaveTimetable(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveTimetable(ctx, testTimetable()))

	names, err := store.SectionNames(ctx, domain.KindClasses)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ахлах-10а", "Ахлах-10б"}, names)

	odd, err := store.EntryCount(ctx, "Ахлах-10а", domain.WeekOdd)
	require.NoError(t, err)
	assert.Equal(t, 2, odd)

	even, err := store.EntryCount(ctx, "Ахлах-10б", domain.WeekEven)
	require.NoError(t, err)
	assert.Equal(t, 0, even, "empty entries must not be stored")
}

func TestStore_SaveTimetable_ReplacesPreviousSnapshot(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveTimetable(ctx, testTimetable()))

	replacement := testTimetable()
	replacement.SectionNames = []string{"Ахлах-11в"}
	replacement.Odd = map[string][][]domain.Entry{"Ахлах-11в": {{{Subject: "Биологи"}}}}
	replacement.Even = map[string][][]domain.Entry{"Ахлах-11в": {}}
	require.NoError(t, store.SaveTimetable(ctx, replacement))

	names, err := store.SectionNames(ctx, domain.KindClasses)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ахлах-11в"}, names)

	// The replaced sections' entries are gone with them.
	count, err := store.EntryCount(ctx, "Ахлах-10а", domain.WeekOdd)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestStore_SaveTimetable_NilDocument(t *testing.T) {
	store := newTestStore(t)

	err := store.SaveTimetable(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStore_SectionNames_EmptyDatabase(t *testing.T) {
	store := newTestStore(t)

	names, err := store.SectionNames(context.Background(), domain.KindTeachers)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestNewStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timetable.db")

	store, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, store.SaveTimetable(context.Background(), testTimetable()))
	require.NoError(t, store.Close())

	reopened, err := NewStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	names, err := reopened.SectionNames(context.Background(), domain.KindClasses)
	require.NoError(t, err)
	assert.Len(t, names, 2)
}
