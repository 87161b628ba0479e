// Package scoring вычисляет баллы лояльности за чек.
//
// Все функции пакета чистые и не хранят состояния, поэтому их можно
// вызывать из нескольких горутин без синхронизации.
package scoring

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/mmeshcher/receipt-processor/internal/model"
	"github.com/mmeshcher/receipt-processor/internal/validation"
)

// InvalidPoints возвращается, если баллы для чека не определены.
const InvalidPoints = -1

const (
	roundTotalPoints    = 50
	quarterTotalPoints  = 25
	itemPairPoints      = 5
	itemPriceMultiplier = 0.2
	oddDayPoints        = 6
	afternoonPoints     = 10

	// maxItemPoints ограничивает баллы за одну позицию, чтобы огромные цены не переполняли int.
	maxItemPoints = math.MaxInt32
)

// CalculatePoints суммирует баллы по всем правилам. Чек должен пройти
// validation.IsValidReceipt до вызова.
func CalculatePoints(r *model.Receipt) int {
	if r == nil {
		return InvalidPoints
	}

	points := RetailerPoints(r.Retailer)
	if total, ok := validation.ParseNumber(r.Total.String()); ok {
		points += TotalPoints(total)
	}
	points += ItemsPoints(r.Items)
	points += DatePoints(r.PurchaseDate)
	points += TimePoints(r.PurchaseTime)

	return points
}

// RetailerPoints начисляет балл за каждый латинский буквенно-цифровой символ в названии магазина.
func RetailerPoints(retailer string) int {
	points := 0
	for i := 0; i < len(retailer); i++ {
		c := retailer[i]
		if ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') {
			points++
		}
	}
	return points
}

// TotalPoints начисляет 50 баллов за сумму без копеек и 25 за сумму, кратную 0.25.
// Отрицательные и нулевые суммы не исключаются.
func TotalPoints(total float64) int {
	if math.IsNaN(total) || math.IsInf(total, 0) {
		return 0
	}

	points := 0
	if isWhole(total) {
		points += roundTotalPoints
	}
	if isWhole(total / 0.25) {
		points += quarterTotalPoints
	}
	return points
}

// ItemsPoints начисляет 5 баллов за каждую пару позиций и ceil(price*0.2)
// за каждую позицию, у которой длина описания без пробелов кратна трём.
func ItemsPoints(items []model.Item) int {
	points := len(items) / 2 * itemPairPoints

	for _, item := range items {
		if utf8.RuneCountInString(strings.TrimSpace(item.ShortDescription))%3 != 0 {
			continue
		}

		price, ok := validation.ParseNumber(item.Price.String())
		if !ok {
			continue
		}

		p := math.Ceil(price * itemPriceMultiplier)
		switch {
		case p <= 0:
		case p >= maxItemPoints:
			points += maxItemPoints
		default:
			points += int(p)
		}
	}

	return points
}

// DatePoints начисляет 6 баллов, если день покупки нечётный.
func DatePoints(date string) int {
	parts := strings.Split(date, "-")
	if len(parts) < 3 {
		return 0
	}

	day, ok := validation.ParseWhole(parts[2])
	if !ok || day%2 == 0 {
		return 0
	}

	return oddDayPoints
}

// TimePoints начисляет 10 баллов за покупку строго после 14:00 и строго до 16:00.
func TimePoints(t string) int {
	parts := strings.Split(t, ":")
	if len(parts) < 2 {
		return 0
	}

	hour, ok := validation.ParseWhole(parts[0])
	if !ok {
		return 0
	}
	minute, ok := validation.ParseWhole(parts[1])
	if !ok {
		return 0
	}

	if hour < 16 && (hour > 14 || (hour == 14 && minute > 0)) {
		return afternoonPoints
	}

	return 0
}

func isWhole(v float64) bool {
	return v == math.Trunc(v)
}
