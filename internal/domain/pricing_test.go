package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *Catalog {
	return &Catalog{
		Services: []Service{
			{ID: "support", Title: "Маникюр с покрытием", Price: 1000, IsStartPrice: true, DurationMinutes: 240},
			{ID: "cat_eye", Title: "Кошачий глаз", Price: 850, DurationMinutes: 120},
		},
		AddOns: []AddOn{
			{ID: "remove_our", Title: "Снятие нашего покрытия", Price: 150},
			{ID: "remove_other", Title: "Снятие чужого покрытия", Price: 250},
			{ID: "extension", Title: "Наращивание", Price: 80, IsCount: true},
		},
		Slots: []SlotLabel{"10:00", "14:00", "18:00"},
	}
}

func TestQuote(t *testing.T) {
	catalog := testCatalog()
	support, ok := catalog.ServiceByID("support")
	require.True(t, ok)
	catEye, ok := catalog.ServiceByID("cat_eye")
	require.True(t, ok)

	tests := []struct {
		name           string
		service        Service
		addOns         []string
		extensionCount int
		want           int64
	}{
		{
			name:    "base price only",
			service: support,
			want:    1000,
		},
		{
			name:    "toggle add-on added",
			service: support,
			addOns:  []string{"remove_our"},
			want:    1150,
		},
		{
			name:    "other removal add-on",
			service: catEye,
			addOns:  []string{"remove_other"},
			want:    1100,
		},
		{
			name:           "count add-on multiplies per unit",
			service:        support,
			addOns:         []string{"remove_our", "extension"},
			extensionCount: 2,
			want:           1310,
		},
		{
			name:           "extension count without add-on id still charged",
			service:        catEye,
			extensionCount: 10,
			want:           1650,
		},
		{
			name:    "unknown add-on ignored",
			service: support,
			addOns:  []string{"nonexistent"},
			want:    1000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.Quote(tt.service, tt.addOns, tt.extensionCount)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuote_StartPriceDoesNotAffectTotal(t *testing.T) {
	catalog := testCatalog()
	support, _ := catalog.ServiceByID("support")

	marked := catalog.Quote(support, nil, 0)
	support.IsStartPrice = false
	plain := catalog.Quote(support, nil, 0)

	assert.Equal(t, marked, plain)
}

func TestToggleAddOn(t *testing.T) {
	// Добавление
	selected := ToggleAddOn(nil, "remove_our")
	assert.Equal(t, []string{"remove_our"}, selected)

	// Повторный выбор снимает добавку
	selected = ToggleAddOn(selected, "remove_our")
	assert.Empty(t, selected)
}

func TestToggleAddOn_MutualExclusion(t *testing.T) {
	selected := ToggleAddOn(nil, "remove_our")
	selected = ToggleAddOn(selected, "remove_other")

	assert.Equal(t, []string{"remove_other"}, selected)

	// Обратное направление
	selected = ToggleAddOn(selected, "remove_our")
	assert.Equal(t, []string{"remove_our"}, selected)
}

func TestToggleAddOn_PreservesUnrelated(t *testing.T) {
	selected := ToggleAddOn([]string{"extension"}, "remove_our")
	assert.ElementsMatch(t, []string{"extension", "remove_our"}, selected)
}
