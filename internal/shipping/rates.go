package shipping

import "strings"

// Rate — фиксированная стоимость доставки по штату.
type Rate struct {
	State    string `json:"state"`
	PriceNGN int    `json:"priceNgn"`
}

// DefaultPriceNGN используется для неизвестного или пустого штата.
const DefaultPriceNGN = 5000

// rates — тарифы доставки по всем 36 штатам и столичной территории.
var rates = []Rate{
	{State: "Abia", PriceNGN: 4500},
	{State: "Adamawa", PriceNGN: 6500},
	{State: "Akwa Ibom", PriceNGN: 5200},
	{State: "Anambra", PriceNGN: 4600},
	{State: "Bauchi", PriceNGN: 6500},
	{State: "Bayelsa", PriceNGN: 5200},
	{State: "Benue", PriceNGN: 5800},
	{State: "Borno", PriceNGN: 7200},
	{State: "Cross River", PriceNGN: 5600},
	{State: "Delta", PriceNGN: 4800},
	{State: "Ebonyi", PriceNGN: 5200},
	{State: "Edo", PriceNGN: 4500},
	{State: "Ekiti", PriceNGN: 4300},
	{State: "Enugu", PriceNGN: 4800},
	{State: "Gombe", PriceNGN: 6500},
	{State: "Imo", PriceNGN: 4800},
	{State: "Jigawa", PriceNGN: 6900},
	{State: "Kaduna", PriceNGN: 6200},
	{State: "Kano", PriceNGN: 6700},
	{State: "Katsina", PriceNGN: 6900},
	{State: "Kebbi", PriceNGN: 7200},
	{State: "Kogi", PriceNGN: 5200},
	{State: "Kwara", PriceNGN: 4800},
	{State: "Lagos", PriceNGN: 2500},
	{State: "Nasarawa", PriceNGN: 5200},
	{State: "Niger", PriceNGN: 6200},
	{State: "Ogun", PriceNGN: 3000},
	{State: "Ondo", PriceNGN: 4200},
	{State: "Osun", PriceNGN: 4200},
	{State: "Oyo", PriceNGN: 4000},
	{State: "Plateau", PriceNGN: 6200},
	{State: "Rivers", PriceNGN: 5200},
	{State: "Sokoto", PriceNGN: 7200},
	{State: "Taraba", PriceNGN: 7000},
	{State: "Yobe", PriceNGN: 7200},
	{State: "Zamfara", PriceNGN: 7200},
	{State: "FCT (Abuja)", PriceNGN: 3500},
}

// Rates возвращает полную таблицу тарифов.
func Rates() []Rate {
	return rates
}

// ListStates возвращает список штатов в порядке таблицы тарифов.
func ListStates() []string {
	states := make([]string, 0, len(rates))
	for _, r := range rates {
		states = append(states, r.State)
	}
	return states
}

// PriceForState возвращает тариф для штата без учета регистра.
// Для пустого или неизвестного штата возвращается DefaultPriceNGN.
func PriceForState(state string) int {
	if state == "" {
		return DefaultPriceNGN
	}
	for _, r := range rates {
		if strings.EqualFold(r.State, state) {
			return r.PriceNGN
		}
	}
	return DefaultPriceNGN
}
