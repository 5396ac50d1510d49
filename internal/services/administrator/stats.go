package administrator

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/mystic-bots/gadalka-bot/internal/model"
)

// SendStatsReport assembles and sends the full usage report.
func (a *Admin) SendStatsReport(s *model.Situation) error {
	report, err := a.buildStatsReport(time.Now().UTC())
	if err != nil {
		return err
	}

	return a.msgs.NewParseMessage(s.User.ID, report)
}

func (a *Admin) buildStatsReport(now time.Time) (string, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekAgo := today.AddDate(0, 0, -7)
	monthAgo := today.AddDate(0, 0, -30)
	tomorrow := today.Add(24 * time.Hour)

	totalUsers, err := a.users.CountAll()
	if err != nil {
		return "", errors.Wrap(err, "count users")
	}
	newToday, err := a.users.CountCreatedSince(today)
	if err != nil {
		return "", errors.Wrap(err, "count new users")
	}

	totalRequests, err := a.history.CountAll()
	if err != nil {
		return "", errors.Wrap(err, "count requests")
	}
	requestsToday, err := a.history.CountAllBetween(today, tomorrow)
	if err != nil {
		return "", errors.Wrap(err, "count today's requests")
	}
	requestsWeek, err := a.history.CountAllBetween(weekAgo, tomorrow)
	if err != nil {
		return "", errors.Wrap(err, "count week's requests")
	}
	requestsMonth, err := a.history.CountAllBetween(monthAgo, tomorrow)
	if err != nil {
		return "", errors.Wrap(err, "count month's requests")
	}
	activeWeek, err := a.history.ActiveUsersBetween(weekAgo, tomorrow)
	if err != nil {
		return "", errors.Wrap(err, "count active users")
	}

	var b strings.Builder
	b.WriteString("<b>📊 Статистика бота</b>\n\n")
	fmt.Fprintf(&b, "Пользователей: %d (+%d сегодня)\n", totalUsers, newToday)
	fmt.Fprintf(&b, "Запросов всего: %d\n", totalRequests)
	fmt.Fprintf(&b, "Сегодня: %d, за 7 дней: %d, за 30 дней: %d\n", requestsToday, requestsWeek, requestsMonth)
	fmt.Fprintf(&b, "Активных за 7 дней: %d\n", activeWeek)

	if err := a.writeCategoryBreakdown(&b); err != nil {
		return "", err
	}
	if err := a.writeTopVariants(&b); err != nil {
		return "", err
	}
	if err := a.writeTopUsers(&b); err != nil {
		return "", err
	}
	if err := a.writeDailyActivity(&b, weekAgo, tomorrow); err != nil {
		return "", err
	}

	return b.String(), nil
}

func (a *Admin) writeCategoryBreakdown(b *strings.Builder) error {
	byCategory, err := a.history.CountByCategory()
	if err != nil {
		return errors.Wrap(err, "count by category")
	}
	if len(byCategory) == 0 {
		return nil
	}

	b.WriteString("\n<b>По категориям:</b>\n")
	for _, item := range byCategory {
		fmt.Fprintf(b, "  %s: %d\n", item.Category, item.Count)
	}
	return nil
}

func (a *Admin) writeTopVariants(b *strings.Builder) error {
	topVariants, err := a.history.TopVariants(5)
	if err != nil {
		return errors.Wrap(err, "top variants")
	}
	if len(topVariants) == 0 {
		return nil
	}

	b.WriteString("\n<b>Популярные запросы:</b>\n")
	for _, item := range topVariants {
		fmt.Fprintf(b, "  %s / %s: %d\n", item.Category, item.Variant, item.Count)
	}
	return nil
}

func (a *Admin) writeTopUsers(b *strings.Builder) error {
	topUsers, err := a.history.TopUsers(5)
	if err != nil {
		return errors.Wrap(err, "top users")
	}
	if len(topUsers) == 0 {
		return nil
	}

	b.WriteString("\n<b>Самые активные:</b>\n")
	for _, item := range topUsers {
		name := item.Username
		if name == "" {
			name = item.FirstName
		}
		fmt.Fprintf(b, "  %s (%d): %d\n", name, item.UserID, item.Count)
	}
	return nil
}

func (a *Admin) writeDailyActivity(b *strings.Builder, from, to time.Time) error {
	daily, err := a.history.DailyActivity(from, to)
	if err != nil {
		return errors.Wrap(err, "daily activity")
	}
	if len(daily) == 0 {
		return nil
	}

	b.WriteString("\n<b>Активность по дням:</b>\n")
	for _, item := range daily {
		fmt.Fprintf(b, "  %s: %d\n", item.Day.Format("02.01"), item.Count)
	}
	return nil
}
