package block

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/JMN-BookingService/internal/domain"
)

func TestEncodeSlots_FullDay(t *testing.T) {
	rec := domain.BlockRecord{
		Date:    "2024-03-20",
		FullDay: true,
	}

	assert.Equal(t, []string{domain.BlockAll}, encodeSlots(rec))
}

func TestEncodeSlots_PartialDay(t *testing.T) {
	rec := domain.BlockRecord{
		Date:  "2024-03-20",
		Slots: []domain.SlotLabel{"10:00", "18:00"},
	}

	assert.Equal(t, []string{"10:00", "18:00"}, encodeSlots(rec))
}

func TestDecodeRecord_FullDayMarker(t *testing.T) {
	rec := decodeRecord("2024-03-20", []string{domain.BlockAll})

	assert.True(t, rec.FullDay)
	assert.Empty(t, rec.Slots)
	assert.Equal(t, "2024-03-20", rec.Date)
}

func TestDecodeRecord_SlotList(t *testing.T) {
	rec := decodeRecord("2024-03-20", []string{"14:00", "18:00"})

	assert.False(t, rec.FullDay)
	assert.Equal(t, []domain.SlotLabel{"14:00", "18:00"}, rec.Slots)
}

func TestDecodeRecord_MarkerWins(t *testing.T) {
	// Метка всего дня поглощает отдельные слоты, даже если они записаны рядом
	rec := decodeRecord("2024-03-20", []string{"10:00", domain.BlockAll, "18:00"})

	assert.True(t, rec.FullDay)
	assert.Empty(t, rec.Slots)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	original := domain.BlockRecord{
		Date:  "2024-04-02",
		Slots: []domain.SlotLabel{"10:00"},
	}

	restored := decodeRecord(original.Date, encodeSlots(original))

	assert.Equal(t, original.Date, restored.Date)
	assert.Equal(t, original.FullDay, restored.FullDay)
	assert.Equal(t, original.Slots, restored.Slots)
}

func TestEncodeDecode_RoundTripFullDay(t *testing.T) {
	original := domain.BlockRecord{
		Date:    "2024-04-02",
		FullDay: true,
	}

	restored := decodeRecord(original.Date, encodeSlots(original))

	assert.True(t, restored.FullDay)
	assert.Empty(t, restored.Slots)
}
