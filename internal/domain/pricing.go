package domain

// Quote считает итоговую стоимость заказа:
// базовая цена услуги + цены выбранных добавок-переключателей +
// цена количественной добавки, умноженная на extensionCount.
//
// Опирается на инвариант взаимоисключения добавок снятия (see ToggleAddOn):
// в выборке участвует не более одной из пары remove_our/remove_other.
// IsStartPrice на расчёт не влияет — это пометка "цена от".
func (c *Catalog) Quote(service Service, addOnIDs []string, extensionCount int) int64 {
	total := service.Price

	for _, id := range addOnIDs {
		addOn, ok := c.AddOnByID(id)
		if !ok || addOn.IsCount {
			// Количественная добавка учитывается отдельно через extensionCount
			continue
		}
		total += addOn.Price
	}

	if extensionCount > 0 {
		if countAddOn, ok := c.CountAddOn(); ok {
			total += countAddOn.Price * int64(extensionCount)
		}
	}

	return total
}

// ToggleAddOn переключает добавку в наборе выбранных и возвращает новый набор.
// Выбор одной добавки из взаимоисключающей пары снятия (remove_our/remove_other)
// снимает другую; повторный выбор активной добавки снимает её саму.
func ToggleAddOn(selected []string, id string) []string {
	next := make([]string, 0, len(selected)+1)

	wasActive := false
	counterpart := exclusiveCounterpart(id)

	for _, s := range selected {
		if s == id {
			wasActive = true
			continue
		}
		if counterpart != "" && s == counterpart {
			continue
		}
		next = append(next, s)
	}

	if !wasActive {
		next = append(next, id)
	}

	return next
}

// exclusiveCounterpart возвращает парную взаимоисключающую добавку, если есть
func exclusiveCounterpart(id string) string {
	switch id {
	case AddOnRemoveOur:
		return AddOnRemoveOther
	case AddOnRemoveOther:
		return AddOnRemoveOur
	default:
		return ""
	}
}
