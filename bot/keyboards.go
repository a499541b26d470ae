package bot

import (
	"fmt"
	"html"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/notaneet/rasp43/model"
	"github.com/notaneet/rasp43/users"
)

// Данные кнопок
const (
	cbGroup         = "group_"
	cbDay           = "day_"
	cbShowDay       = "show_day_"
	cbWeek          = "week"
	cbSelectDay     = "select_day"
	cbPrevPage      = "prev_page"
	cbNextPage      = "next_page"
	cbBackToGroups  = "back_to_group_selection"
	cbBackToOptions = "back_to_schedule_options"
	cbBackToDays    = "back_to_day_selection"
	cbUsersPrev     = "list_users_prev_page"
	cbUsersNext     = "list_users_next_page"
	cbSearch        = "start_search"
	cbSearchTeacher = "search_teacher_prompt"
)

const (
	recentMark = "★ "
	backText   = "Назад 🔙"
	prevText   = "⬅️ Назад"
	nextText   = "Вперед ➡️"
	noDate     = "Н/Д"
)

// Лимит Telegram на длину сообщения
const messageLimit = 4096

// sortGroups недавние группы пользователя сверху, внутри - по алфавиту
func sortGroups(groups, recent []string) []string {
	isRecent := make(map[string]bool, len(recent))
	for _, g := range recent {
		isRecent[g] = true
	}

	ret := append([]string(nil), groups...)
	sort.SliceStable(ret, func(i, j int) bool {
		if isRecent[ret[i]] != isRecent[ret[j]] {
			return isRecent[ret[i]]
		}
		return ret[i] < ret[j]
	})
	return ret
}

// pageCount кол-во страниц, минимум одна
func pageCount(n, perPage int) int {
	if n <= 0 || perPage <= 0 {
		return 1
	}
	return (n + perPage - 1) / perPage
}

func clampPage(page, n, perPage int) int {
	if last := pageCount(n, perPage) - 1; page > last {
		return last
	}
	if page < 0 {
		return 0
	}
	return page
}

// pageSlice элементы страницы page
func pageSlice[T any](items []T, page, perPage int) []T {
	start := page * perPage
	if start >= len(items) {
		return nil
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// groupKeyboard меню выбора группы
func groupKeyboard(groups, recent []string, page, perPage int) (string, tgbotapi.InlineKeyboardMarkup) {
	sorted := sortGroups(groups, recent)
	page = clampPage(page, len(sorted), perPage)
	pages := pageCount(len(sorted), perPage)

	isRecent := make(map[string]bool, len(recent))
	for _, g := range recent {
		isRecent[g] = true
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, g := range pageSlice(sorted, page, perPage) {
		text := g
		if isRecent[g] {
			text = recentMark + g
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(text, cbGroup+g)))
	}
	rows = append(rows,
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Поиск 🔍", cbSearch)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Поиск преподавателя 🔍", cbSearchTeacher)),
	)

	var nav []tgbotapi.InlineKeyboardButton
	if page > 0 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData(prevText, cbPrevPage))
	}
	if page < pages-1 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData(nextText, cbNextPage))
	}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}

	text := fmt.Sprintf("Выберите группу или начните поиск (%d/%d):", page+1, pages)
	return text, tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// foundGroupsKeyboard результаты поиска группы
func foundGroupsKeyboard(groups []string) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(g, cbGroup+g)))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func optionsKeyboard(start, end string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("На неделю (%s - %s)", start, end), cbWeek)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Выбрать день", cbSelectDay)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(backText, cbBackToGroups)),
	)
}

// daysKeyboard дни группы, в кнопке номер дня
func daysKeyboard(labels []string) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(labels)+1)
	for i, label := range labels {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(label, cbDay+strconv.Itoa(i))))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(backText, cbBackToOptions)))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// teacherDaysKeyboard дни преподавателя; в кнопке номер в отсортированном списке,
// метка дня в 64 байта данных кнопки может не влезть
func teacherDaysKeyboard(labels []string) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(labels))
	for i, label := range labels {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(label, cbShowDay+strconv.Itoa(i))))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func backKeyboard(data string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(backText, data)),
	)
}

// usersPage страница /list_users; клавиатура nil, если страница одна
func usersPage(list []users.User, page, perPage int) (string, *tgbotapi.InlineKeyboardMarkup) {
	page = clampPage(page, len(list), perPage)
	pages := pageCount(len(list), perPage)

	var b strings.Builder
	fmt.Fprintf(&b, "Список пользователей (%d/%d):\n\n", page+1, pages)
	for _, u := range pageSlice(list, page, perPage) {
		login := u.Login
		if login == "" {
			login = strconv.FormatInt(u.ID, 10)
		}
		fmt.Fprintf(&b, "@%s: %s\n", html.EscapeString(login), html.EscapeString(strings.Join(u.RecentGroups(), ", ")))
	}

	var nav []tgbotapi.InlineKeyboardButton
	if page > 0 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData(prevText, cbUsersPrev))
	}
	if page < pages-1 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData(nextText, cbUsersNext))
	}
	if len(nav) == 0 {
		return b.String(), nil
	}
	markup := tgbotapi.NewInlineKeyboardMarkup(nav)
	return b.String(), &markup
}

// splitMessage разбить текст по строкам на куски не длиннее limit символов
func splitMessage(text string, limit int) []string {
	if utf8.RuneCountInString(text) <= limit {
		return []string{text}
	}

	var ret []string
	var cur strings.Builder
	curLen := 0
	for _, line := range strings.SplitAfter(text, "\n") {
		n := utf8.RuneCountInString(line)
		if curLen > 0 && curLen+n > limit {
			ret = append(ret, cur.String())
			cur.Reset()
			curLen = 0
		}
		// строка длиннее лимита режется как есть
		for n > limit {
			r := []rune(line)
			ret = append(ret, string(r[:limit]))
			line = string(r[limit:])
			n -= limit
		}
		cur.WriteString(line)
		curLen += n
	}
	if curLen > 0 {
		ret = append(ret, cur.String())
	}
	return ret
}

// groupTitle название группы для HTML-сообщения
func groupTitle(group string) string {
	return html.EscapeString(model.DisplayName(group))
}
