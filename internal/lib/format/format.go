package format

import "strconv"

// Naira форматирует целую сумму в найрах с разделителями тысяч: 39500 → "₦39,500".
// Копеек в ценах магазина нет.
func Naira(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := strconv.Itoa(n)
	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}
	return sign + "₦" + string(out)
}
