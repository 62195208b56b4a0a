package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SetFullResetsView(t *testing.T) {
	var s Store
	full := sampleRecords()

	s.SetFull(full)
	s.SetView(full[:2])
	require.Equal(t, 2, s.Len())

	s.SetFull(full[:5])
	assert.Equal(t, 5, s.Total())
	assert.Equal(t, 5, s.Len())
	assert.Equal(t, s.Full(), s.View())
}

func TestStore_SetViewLeavesFull(t *testing.T) {
	var s Store
	s.SetFull(sampleRecords())
	s.SetView(RecordSet{})

	assert.Equal(t, 12, s.Total())
	assert.Equal(t, 0, s.Len())
	_, ok := s.At(0)
	assert.False(t, ok)
}

func TestStore_ReadsAreCopies(t *testing.T) {
	var s Store
	input := sampleRecords()
	s.SetFull(input)

	input[0].FirstName = "Mutated"
	view := s.View()
	view[1].FirstName = "Mutated"
	full := s.Full()
	full[2].FirstName = "Mutated"

	rec, ok := s.At(0)
	require.True(t, ok)
	assert.Equal(t, "Brandon", rec.FirstName)
	rec, _ = s.At(1)
	assert.Equal(t, "Joan", rec.FirstName)
	rec, _ = s.At(2)
	assert.Equal(t, "Kyle", rec.FirstName)
}

func TestStore_AcceptsEmpty(t *testing.T) {
	var s Store
	s.SetFull(nil)
	assert.Equal(t, 0, s.Total())
	assert.NotNil(t, s.View())
}
