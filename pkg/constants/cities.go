package constants

// Cities - фиксированный справочник городов, из которого равномерно выбирается город филиала.
var Cities = []string{
	"Москва", "Санкт-Петербург", "Новосибирск", "Екатеринбург", "Казань",
	"Нижний Новгород", "Челябинск", "Самара", "Омск", "Ростов-на-Дону",
	"Уфа", "Красноярск", "Воронеж", "Пермь", "Волгоград", "Краснодар",
	"Саратов", "Тюмень", "Тольятти", "Ижевск",
}

// IsKnownCity сообщает, входит ли город в справочник.
func IsKnownCity(city string) bool {
	for _, c := range Cities {
		if c == city {
			return true
		}
	}
	return false
}
