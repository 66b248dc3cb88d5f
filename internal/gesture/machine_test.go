package gesture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var signedIn = Input{Authenticated: true, HasImages: true}

func TestMachine_NestedDragLeave(t *testing.T) {
	m := NewMachine()

	assert.Equal(t, []Action{ShowDropOverlay}, m.Fire(DragEnter, signedIn))
	assert.Nil(t, m.Fire(DragEnter, signedIn))
	assert.Equal(t, 2, m.Depth())

	// leaving the inner element keeps the overlay
	assert.Nil(t, m.Fire(DragLeave, signedIn))
	assert.Equal(t, DragActive, m.State())

	assert.Equal(t, []Action{HideDropOverlay}, m.Fire(DragLeave, signedIn))
	assert.Equal(t, Idle, m.State())
	assert.Equal(t, 0, m.Depth())
}

func TestMachine_DropUploadsOnlyImages(t *testing.T) {
	m := NewMachine()
	m.Fire(DragEnter, signedIn)

	assert.Equal(t, []Action{HideDropOverlay, UploadFiles}, m.Fire(Drop, signedIn))
	assert.Equal(t, Idle, m.State())

	m.Fire(DragEnter, signedIn)
	assert.Equal(t, []Action{HideDropOverlay}, m.Fire(Drop, Input{Authenticated: true}))
	assert.Equal(t, Idle, m.State())
}

func TestMachine_SignedOutIgnoresDrag(t *testing.T) {
	m := NewMachine()

	assert.Nil(t, m.Fire(DragEnter, Input{HasImages: true}))
	assert.Nil(t, m.Fire(Drop, Input{HasImages: true}))
	assert.Equal(t, Idle, m.State())
}

func TestMachine_ClickDisambiguation(t *testing.T) {
	m := NewMachine()

	assert.Nil(t, m.Fire(Click, signedIn))
	assert.Equal(t, ClickPending, m.State())
	assert.Equal(t, []Action{CopyURL}, m.Fire(ClickTimeout, signedIn))
	assert.Equal(t, Idle, m.State())

	m.Fire(Click, signedIn)
	m.Fire(Click, signedIn)
	assert.Equal(t, []Action{OpenPreview}, m.Fire(DoubleClick, signedIn))
	assert.Equal(t, Idle, m.State())

	// a timeout with nothing pending is ignored
	assert.Nil(t, m.Fire(ClickTimeout, signedIn))
}

func TestTable_RowsAreReachable(t *testing.T) {
	table := Table()
	require.Len(t, table, 12)

	seen := make(map[State]bool)
	for _, tr := range table {
		seen[tr.From] = true
		seen[tr.To] = true
	}

	assert.True(t, seen[Idle])
	assert.True(t, seen[DragActive])
	assert.True(t, seen[ClickPending])
}
