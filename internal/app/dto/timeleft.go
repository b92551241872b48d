package dto

import (
	"fmt"
	"time"

	"paperhelp/internal/app/ds"
)

const DeadlinePassed = "Deadline Passed"

// TimeLeft форматирует обратный отсчёт до дедлайна: "2d 3h 4m 5s".
// Для выполненных заказов отсчёта нет, возвращается пустая строка.
func TimeLeft(deadline, now time.Time, status string) string {
	if status == ds.StatusCompleted {
		return ""
	}

	left := deadline.Sub(now)
	if left <= 0 {
		return DeadlinePassed
	}

	total := int64(left / time.Second)
	days := total / 86400
	hours := total % 86400 / 3600
	minutes := total % 3600 / 60
	seconds := total % 60

	return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
}
