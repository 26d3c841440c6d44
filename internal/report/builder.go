// Package report renders the per-venue order report delivered to managers.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/corpeats/lunchbot/internal/storage"
)

// Build renders one immutable report over a snapshot of a venue's orders:
// a per-dish quantity/subtotal block, a per-employee count/subtotal block
// and a grand total. nameOf resolves a user id to a display name; an empty
// result falls back to the numeric id.
//
// Rounding rule: per-dish and per-employee subtotals are truncated toward
// zero to whole currency units for display; the grand total line renders
// the raw sum. Build has no side effects and is idempotent: the same input
// produces byte-identical output.
func Build(venueName string, orders []storage.Order, nameOf func(int64) string) string {
	type dishKey struct {
		title string
		price float64
	}
	type dishAgg struct {
		key   dishKey
		count int
	}
	type userAgg struct {
		id     int64
		orders int
		sum    float64
	}

	var (
		dishes     []*dishAgg
		dishIndex  = make(map[dishKey]*dishAgg)
		users      []*userAgg
		userIndex  = make(map[int64]*userAgg)
		grandTotal float64
	)

	for _, order := range orders {
		user, ok := userIndex[order.UserID]
		if !ok {
			user = &userAgg{id: order.UserID}
			userIndex[order.UserID] = user
			users = append(users, user)
		}
		user.orders++

		for _, item := range order.Items {
			key := dishKey{title: item.Title, price: item.Price}
			dish, ok := dishIndex[key]
			if !ok {
				dish = &dishAgg{key: key}
				dishIndex[key] = dish
				dishes = append(dishes, dish)
			}
			dish.count++
			user.sum += item.Price
			grandTotal += item.Price
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📦 Отчёт по кафе *%s*:\n\n", venueName)

	b.WriteString("Блюда:\n")
	for _, dish := range dishes {
		sub := float64(dish.count) * dish.key.price
		fmt.Fprintf(&b, "  • %s — %s₽ × %d = %s₽\n",
			dish.key.title, formatAmount(dish.key.price), dish.count, truncAmount(sub))
	}

	b.WriteString("\nСотрудники:\n")
	for _, user := range users {
		name := nameOf(user.id)
		if name == "" {
			name = strconv.FormatInt(user.id, 10)
		}
		fmt.Fprintf(&b, "  👤 %s (id %d) — заказов: %d, итого %s₽\n",
			name, user.id, user.orders, truncAmount(user.sum))
	}

	fmt.Fprintf(&b, "\nВсего по кафе: %s₽", formatAmount(grandTotal))
	return b.String()
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func truncAmount(v float64) string {
	return strconv.FormatInt(int64(v), 10)
}
