package toggle_block

import toggleBlock "github.com/m04kA/JMN-BookingService/internal/usecase/toggle_block"

// ToggleBlockRequest HTTP request model.
// Отсутствующий time означает переключение блокировки всего дня.
type ToggleBlockRequest struct {
	Time string `json:"time,omitempty"`
}

// BlockStateResponse итоговое состояние блокировок даты
type BlockStateResponse struct {
	Date    string   `json:"date"`
	FullDay bool     `json:"fullDay"`
	Slots   []string `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *toggleBlock.Response) *BlockStateResponse {
	slots := resp.Slots
	if slots == nil {
		slots = []string{}
	}

	return &BlockStateResponse{
		Date:    resp.Date,
		FullDay: resp.FullDay,
		Slots:   slots,
	}
}
