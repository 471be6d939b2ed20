// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	// every note operation is synchronous; nothing may be left running
	goleak.VerifyTestMain(m)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type sequenceIDs struct {
	next int
}

func (g *sequenceIDs) Generate() string {
	g.next++
	return "n" + strconv.Itoa(g.next)
}

func newTestNoteService() NoteService {
	return NewNoteService(store.NewMemoryNoteStorage(), &sequenceIDs{})
}

func commitText(t *testing.T, svc NoteService, text string) models.Note {
	t.Helper()
	ctx := context.Background()
	svc.SetInput(ctx, text)
	note, err := svc.Commit(ctx)
	require.NoError(t, err)
	return note
}

func contents(notes []models.Note) []string {
	out := make([]string, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.Content)
	}
	return out
}

// ─────────────────────────────────────────────
// Initial state
// ─────────────────────────────────────────────

func TestNoteService_InitialState(t *testing.T) {
	snap := newTestNoteService().Snapshot(context.Background())

	assert.Empty(t, snap.Notes)
	assert.Empty(t, snap.Input)
	assert.Equal(t, models.Composing, snap.Mode.Kind())
}

// ─────────────────────────────────────────────
// Commit
// ─────────────────────────────────────────────

func TestNoteService_Commit_AppendsInComposing(t *testing.T) {
	ctx := context.Background()
	svc := newTestNoteService()

	first := commitText(t, svc, "Buy milk")
	second := commitText(t, svc, "  call mom ")

	snap := svc.Snapshot(ctx)
	require.Len(t, snap.Notes, 2)
	assert.Equal(t, []string{"Buy milk", "  call mom "}, contents(snap.Notes))
	assert.Equal(t, first, snap.Notes[0])
	assert.Equal(t, second, snap.Notes[1])
	assert.NotEqual(t, first.ID, second.ID)
	assert.Empty(t, snap.Input)
	assert.False(t, snap.Mode.IsEditing())
}

func TestNoteService_Commit_RejectsBlankInput(t *testing.T) {
	inputs := []string{"", " ", "\t", "\n\n", " \t\r\n "}

	for _, in := range inputs {
		t.Run(strconv.Quote(in), func(t *testing.T) {
			ctx := context.Background()
			svc := newTestNoteService()
			commitText(t, svc, "existing")

			svc.SetInput(ctx, in)
			note, err := svc.Commit(ctx)

			require.ErrorIs(t, err, ErrValidation)
			require.ErrorIs(t, err, validators.ErrEmptyContent)
			assert.Zero(t, note)

			snap := svc.Snapshot(ctx)
			assert.Equal(t, []string{"existing"}, contents(snap.Notes))
			assert.Equal(t, in, snap.Input, "input must be left untouched")
		})
	}
}

func TestNoteService_Commit_RejectsBlankInputWhileEditing(t *testing.T) {
	ctx := context.Background()
	svc := newTestNoteService()
	n := commitText(t, svc, "keep me")

	require.True(t, svc.BeginEdit(ctx, n.ID))
	svc.SetInput(ctx, "   ")

	_, err := svc.Commit(ctx)
	require.ErrorIs(t, err, ErrValidation)

	snap := svc.Snapshot(ctx)
	assert.Equal(t, []string{"keep me"}, contents(snap.Notes))
	assert.True(t, snap.Mode.Targets(n.ID), "mode must stay Editing")
}

func TestNoteService_Commit_UpdatesNoteUnderEdit(t *testing.T) {
	ctx := context.Background()
	svc := newTestNoteService()
	a := commitText(t, svc, "A")
	b := commitText(t, svc, "B")
	c := commitText(t, svc, "C")

	require.True(t, svc.BeginEdit(ctx, b.ID))
	svc.SetInput(ctx, "B2")
	updated, err := svc.Commit(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Note{ID: b.ID, Content: "B2"}, updated)

	snap := svc.Snapshot(ctx)
	assert.Equal(t, []models.Note{a, {ID: b.ID, Content: "B2"}, c}, snap.Notes)
	assert.False(t, snap.Mode.IsEditing())
	assert.Empty(t, snap.Input)
}

func TestNoteService_Commit_EditTargetVanished(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	notes := mock.NewMockNoteStorage(ctrl)
	svc := NewNoteService(notes, &sequenceIDs{})

	gomock.InOrder(
		notes.EXPECT().Get("x").Return(models.Note{ID: "x", Content: "old"}, nil),
		notes.EXPECT().Update(models.Note{ID: "x", Content: "new"}).Return(store.ErrNoteNotFound),
		notes.EXPECT().All().Return(nil),
	)

	require.True(t, svc.BeginEdit(ctx, "x"))
	svc.SetInput(ctx, "new")

	note, err := svc.Commit(ctx)
	require.NoError(t, err)
	assert.Zero(t, note)

	snap := svc.Snapshot(ctx)
	assert.False(t, snap.Mode.IsEditing())
	assert.Empty(t, snap.Input)
}

func TestNoteService_Commit_StorageUpdateError(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	boom := errors.New("boom")

	notes := mock.NewMockNoteStorage(ctrl)
	svc := NewNoteService(notes, &sequenceIDs{})

	notes.EXPECT().Get("x").Return(models.Note{ID: "x", Content: "old"}, nil)
	notes.EXPECT().Update(gomock.Any()).Return(boom)
	notes.EXPECT().All().Return([]models.Note{{ID: "x", Content: "old"}})

	require.True(t, svc.BeginEdit(ctx, "x"))
	svc.SetInput(ctx, "new")

	_, err := svc.Commit(ctx)
	require.ErrorIs(t, err, boom)

	snap := svc.Snapshot(ctx)
	assert.True(t, snap.Mode.Targets("x"))
	assert.Equal(t, "new", snap.Input)
}

func TestNoteService_Commit_DuplicateGeneratedID(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	ids := mock.NewMockIDGenerator(ctrl)
	ids.EXPECT().Generate().Return("same").Times(2)

	svc := NewNoteService(store.NewMemoryNoteStorage(), ids)

	commitText(t, svc, "first")

	svc.SetInput(ctx, "second")
	_, err := svc.Commit(ctx)
	require.ErrorIs(t, err, store.ErrDuplicateNoteID)

	snap := svc.Snapshot(ctx)
	assert.Equal(t, []string{"first"}, contents(snap.Notes))
	assert.Equal(t, "second", snap.Input)
}

// ─────────────────────────────────────────────
// Remove
// ─────────────────────────────────────────────

func TestNoteService_Remove_PreservesOrder(t *testing.T) {
	ctx := context.Background()
	svc := newTestNoteService()
	a := commitText(t, svc, "A")
	b := commitText(t, svc, "B")

	assert.True(t, svc.Remove(ctx, a.ID))
	assert.Equal(t, []models.Note{b}, svc.Snapshot(ctx).Notes)
}

func TestNoteService_Remove_UnknownIDIsNoop(t *testing.T) {
	ctx := context.Background()
	svc := newTestNoteService()
	commitText(t, svc, "A")
	svc.SetInput(ctx, "draft")
	before := svc.Snapshot(ctx)

	assert.False(t, svc.Remove(ctx, "missing"))
	assert.Equal(t, before, svc.Snapshot(ctx))
}

func TestNoteService_Remove_AllInAnyOrder(t *testing.T) {
	orders := [][]int{{0, 1, 2}, {2, 1, 0}, {1, 2, 0}}

	for _, order := range orders {
		ctx := context.Background()
		svc := newTestNoteService()
		created := []models.Note{
			commitText(t, svc, "A"),
			commitText(t, svc, "B"),
			commitText(t, svc, "C"),
		}

		for _, i := range order {
			require.True(t, svc.Remove(ctx, created[i].ID))
		}
		assert.Empty(t, svc.Snapshot(ctx).Notes)
		assert.False(t, svc.Remove(ctx, created[0].ID))
		assert.Empty(t, svc.Snapshot(ctx).Notes)
	}
}

func TestNoteService_Remove_NoteUnderEditReturnsToComposing(t *testing.T) {
	ctx := context.Background()
	svc := newTestNoteService()
	a := commitText(t, svc, "A")
	b := commitText(t, svc, "B")

	require.True(t, svc.BeginEdit(ctx, a.ID))
	require.True(t, svc.Remove(ctx, a.ID))

	snap := svc.Snapshot(ctx)
	assert.False(t, snap.Mode.IsEditing())
	assert.Empty(t, snap.Input)
	assert.Equal(t, []models.Note{b}, snap.Notes)

	// the next commit must create a note, not resurrect the deleted one
	c := commitText(t, svc, "C")
	assert.NotEqual(t, a.ID, c.ID)
	assert.Equal(t, []string{"B", "C"}, contents(svc.Snapshot(ctx).Notes))
}

func TestNoteService_Remove_OtherNoteKeepsEditing(t *testing.T) {
	ctx := context.Background()
	svc := newTestNoteService()
	a := commitText(t, svc, "A")
	b := commitText(t, svc, "B")

	require.True(t, svc.BeginEdit(ctx, a.ID))
	svc.SetInput(ctx, "A-draft")
	require.True(t, svc.Remove(ctx, b.ID))

	snap := svc.Snapshot(ctx)
	assert.True(t, snap.Mode.Targets(a.ID))
	assert.Equal(t, "A-draft", snap.Input)
}

// ─────────────────────────────────────────────
// BeginEdit / CancelEdit / SetInput
// ─────────────────────────────────────────────

func TestNoteService_BeginEdit_LoadsContent(t *testing.T) {
	ctx := context.Background()
	svc := newTestNoteService()
	n := commitText(t, svc, "Buy milk")

	svc.SetInput(ctx, "unsent draft")
	require.True(t, svc.BeginEdit(ctx, n.ID))

	snap := svc.Snapshot(ctx)
	assert.Equal(t, "Buy milk", snap.Input)
	id, editing := snap.Mode.EditingID()
	assert.True(t, editing)
	assert.Equal(t, n.ID, id)
}

func TestNoteService_BeginEdit_SwitchesTarget(t *testing.T) {
	ctx := context.Background()
	svc := newTestNoteService()
	a := commitText(t, svc, "A")
	b := commitText(t, svc, "B")

	require.True(t, svc.BeginEdit(ctx, a.ID))
	require.True(t, svc.BeginEdit(ctx, b.ID))

	snap := svc.Snapshot(ctx)
	assert.True(t, snap.Mode.Targets(b.ID))
	assert.Equal(t, "B", snap.Input)
}

func TestNoteService_BeginEdit_UnknownIDIsNoop(t *testing.T) {
	ctx := context.Background()
	svc := newTestNoteService()
	commitText(t, svc, "A")
	svc.SetInput(ctx, "draft")
	before := svc.Snapshot(ctx)

	assert.False(t, svc.BeginEdit(ctx, "missing"))
	assert.Equal(t, before, svc.Snapshot(ctx))
}

func TestNoteService_CancelEdit(t *testing.T) {
	ctx := context.Background()
	svc := newTestNoteService()
	n := commitText(t, svc, "A")

	t.Run("composing is untouched", func(t *testing.T) {
		svc.SetInput(ctx, "draft")
		svc.CancelEdit(ctx)
		assert.Equal(t, "draft", svc.Snapshot(ctx).Input)
	})

	t.Run("editing returns to composing", func(t *testing.T) {
		require.True(t, svc.BeginEdit(ctx, n.ID))
		svc.SetInput(ctx, "changed")
		svc.CancelEdit(ctx)

		snap := svc.Snapshot(ctx)
		assert.False(t, snap.Mode.IsEditing())
		assert.Empty(t, snap.Input)
		assert.Equal(t, []string{"A"}, contents(snap.Notes))
	})
}

func TestNoteService_SetInput_NoValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestNoteService()

	for _, in := range []string{"", "   ", "text"} {
		svc.SetInput(ctx, in)
		assert.Equal(t, in, svc.Snapshot(ctx).Input)
	}
	assert.Empty(t, svc.Snapshot(ctx).Notes)
}

func TestNoteService_Get(t *testing.T) {
	ctx := context.Background()
	svc := newTestNoteService()
	n := commitText(t, svc, "A")

	got, ok := svc.Get(ctx, n.ID)
	assert.True(t, ok)
	assert.Equal(t, n, got)

	_, ok = svc.Get(ctx, "missing")
	assert.False(t, ok)
}

func TestNoteService_SnapshotIsCopy(t *testing.T) {
	ctx := context.Background()
	svc := newTestNoteService()
	commitText(t, svc, "A")

	snap := svc.Snapshot(ctx)
	snap.Notes[0].Content = "mutated"

	assert.Equal(t, "A", svc.Snapshot(ctx).Notes[0].Content)
}

// ─────────────────────────────────────────────
// Scenarios
// ─────────────────────────────────────────────

func TestNoteService_Scenario_BuyMilk(t *testing.T) {
	ctx := context.Background()
	svc := newTestNoteService()

	n := commitText(t, svc, "Buy milk")
	assert.Equal(t, []string{"Buy milk"}, contents(svc.Snapshot(ctx).Notes))

	require.True(t, svc.BeginEdit(ctx, n.ID))
	assert.Equal(t, "Buy milk", svc.Snapshot(ctx).Input)

	svc.SetInput(ctx, "Buy milk and eggs")
	_, err := svc.Commit(ctx)
	require.NoError(t, err)

	snap := svc.Snapshot(ctx)
	assert.Equal(t, []models.Note{{ID: n.ID, Content: "Buy milk and eggs"}}, snap.Notes)
	assert.False(t, snap.Mode.IsEditing())
}

func TestNoteService_Scenario_EmptyCommit(t *testing.T) {
	ctx := context.Background()
	svc := newTestNoteService()

	svc.SetInput(ctx, "")
	_, err := svc.Commit(ctx)

	require.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, svc.Snapshot(ctx).Notes)
}
