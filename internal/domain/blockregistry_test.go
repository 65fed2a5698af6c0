package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDate = "2024-05-10"

func TestToggleDay(t *testing.T) {
	reg := NewBlockRegistry()

	blocked := reg.ToggleDay(testDate)
	state, ok := blocked.State(testDate)
	require.True(t, ok)
	assert.True(t, state.IsFullDay())
	assert.True(t, state.IsBlocked("10:00"))

	// Повторное переключение возвращает исходное состояние
	unblocked := blocked.ToggleDay(testDate)
	_, ok = unblocked.State(testDate)
	assert.False(t, ok)
}

func TestToggleDay_DiscardsPartialBlocks(t *testing.T) {
	reg := NewBlockRegistry().
		ToggleSlot(testDate, "10:00").
		ToggleSlot(testDate, "14:00")

	blocked := reg.ToggleDay(testDate)
	state, ok := blocked.State(testDate)
	require.True(t, ok)
	assert.True(t, state.IsFullDay())

	// Снятие блокировки дня не воскрешает частичные блокировки
	unblocked := blocked.ToggleDay(testDate)
	_, ok = unblocked.State(testDate)
	assert.False(t, ok)
}

func TestToggleSlot(t *testing.T) {
	reg := NewBlockRegistry().ToggleSlot(testDate, "14:00")

	state, ok := reg.State(testDate)
	require.True(t, ok)
	assert.False(t, state.IsFullDay())
	assert.True(t, state.IsBlocked("14:00"))
	assert.False(t, state.IsBlocked("10:00"))

	// Повторное переключение снимает блокировку и схлопывает запись
	next := reg.ToggleSlot(testDate, "14:00")
	_, ok = next.State(testDate)
	assert.False(t, ok)
}

func TestToggleSlot_FullDayIsNoop(t *testing.T) {
	reg := NewBlockRegistry().ToggleDay(testDate)

	next := reg.ToggleSlot(testDate, "10:00")
	state, ok := next.State(testDate)
	require.True(t, ok)
	assert.True(t, state.IsFullDay())
	assert.Empty(t, state.Slots())
}

func TestToggleSlot_DoesNotMutateReceiver(t *testing.T) {
	reg := NewBlockRegistry().ToggleSlot(testDate, "10:00")
	_ = reg.ToggleSlot(testDate, "14:00")

	state, ok := reg.State(testDate)
	require.True(t, ok)
	assert.Equal(t, []SlotLabel{"10:00"}, state.Slots())
}

func TestBlockRegistryFromRecords(t *testing.T) {
	records := []BlockRecord{
		{Date: "2024-05-10", FullDay: true},
		{Date: "2024-05-11", Slots: []SlotLabel{"18:00", "10:00"}},
		{Date: "2024-05-12"}, // пустая запись игнорируется
	}

	reg := BlockRegistryFromRecords(records)

	state, ok := reg.State("2024-05-10")
	require.True(t, ok)
	assert.True(t, state.IsFullDay())

	state, ok = reg.State("2024-05-11")
	require.True(t, ok)
	assert.Equal(t, []SlotLabel{"10:00", "18:00"}, state.Slots())

	_, ok = reg.State("2024-05-12")
	assert.False(t, ok)

	assert.Equal(t, []string{"2024-05-10", "2024-05-11"}, reg.Dates())
}

func TestRecords_RoundTrip(t *testing.T) {
	reg := NewBlockRegistry().
		ToggleDay("2024-05-10").
		ToggleSlot("2024-05-11", "14:00")

	rebuilt := BlockRegistryFromRecords(reg.Records())
	assert.Equal(t, reg.Records(), rebuilt.Records())
}
