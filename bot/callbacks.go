package bot

import (
	"context"
	"html"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/notaneet/rasp43/query"
	"go.uber.org/zap"
)

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		b.logger.Warn("не удалось ответить на callback", zap.Error(err))
	}
	if cb.Message == nil || cb.Message.Chat == nil || cb.From == nil {
		return
	}

	chatID, messageID := cb.Message.Chat.ID, cb.Message.MessageID
	data := cb.Data

	switch {
	case data == cbSearchTeacher:
		b.edit(chatID, messageID, "Введите команду в формате: /search_teacher &lt;Фамилия преподавателя&gt;", nil)
	case data == cbSearch:
		b.edit(chatID, messageID, "Введите название для поиска:", nil)
	case strings.HasPrefix(data, cbShowDay):
		b.showTeacherDay(chatID, messageID, strings.TrimPrefix(data, cbShowDay))
	case strings.HasPrefix(data, cbGroup):
		group := strings.TrimPrefix(data, cbGroup)
		b.states.with(chatID, func(st *chatState) { st.group = group })
		b.remember(ctx, cb.From, group)
		b.showOptions(chatID, messageID)
	case data == cbWeek:
		b.showWeek(chatID, messageID)
	case strings.HasPrefix(data, cbDay):
		offset, err := strconv.Atoi(strings.TrimPrefix(data, cbDay))
		if err != nil {
			b.edit(chatID, messageID, "Неизвестная команда.", nil)
			return
		}
		b.showDay(chatID, messageID, offset)
	case data == cbPrevPage || data == cbNextPage:
		n := b.schedule.Current().Len()
		b.states.with(chatID, func(st *chatState) {
			if data == cbPrevPage {
				st.page = clampPage(st.page-1, n, b.cfg.GroupsPerPage)
			} else {
				st.page = clampPage(st.page+1, n, b.cfg.GroupsPerPage)
			}
		})
		b.showGroups(ctx, chatID, messageID, cb.From.ID)
	case data == cbBackToGroups:
		b.showGroups(ctx, chatID, messageID, cb.From.ID)
	case data == cbBackToOptions:
		b.showOptions(chatID, messageID)
	case data == cbSelectDay || data == cbBackToDays:
		b.showDays(chatID, messageID)
	case data == cbUsersPrev || data == cbUsersNext:
		b.pageUsers(ctx, chatID, messageID, cb.From.ID, data == cbUsersNext)
	default:
		b.edit(chatID, messageID, "Неизвестная команда.", nil)
	}
}

func (b *Bot) showGroups(ctx context.Context, chatID int64, messageID int, userID int64) {
	if b.schedule.Current().Empty() {
		b.edit(chatID, messageID, query.NoTimetableText, nil)
		return
	}
	text, markup := b.groupMenu(ctx, chatID, userID)
	b.edit(chatID, messageID, text, &markup)
}

// selectedGroup выбранная группа или сообщение, что её нет
func (b *Bot) selectedGroup(chatID int64, messageID int) (string, bool) {
	group := b.states.get(chatID).group
	if group == "" {
		b.edit(chatID, messageID, "Не выбрана группа.", nil)
		return "", false
	}
	return group, true
}

func (b *Bot) showOptions(chatID int64, messageID int) {
	group, ok := b.selectedGroup(chatID, messageID)
	if !ok {
		return
	}
	tt := b.schedule.Current()
	if _, found := tt.Group(group); !found {
		b.edit(chatID, messageID, query.GroupNotFoundText, nil)
		return
	}

	start, end := query.WeekRange(tt, group, noDate)
	markup := optionsKeyboard(start, end)
	b.edit(chatID, messageID, "Расписание для группы "+groupTitle(group)+". Выберите опцию расписания:", &markup)
}

func (b *Bot) showWeek(chatID int64, messageID int) {
	group, ok := b.selectedGroup(chatID, messageID)
	if !ok {
		return
	}
	text := "Расписание на неделю для группы " + groupTitle(group) + ":\n\n" + query.WeekView(b.schedule.Current(), group)
	markup := backKeyboard(cbBackToOptions)
	b.edit(chatID, messageID, text, &markup)
}

func (b *Bot) showDays(chatID int64, messageID int) {
	group, ok := b.selectedGroup(chatID, messageID)
	if !ok {
		return
	}
	markup := daysKeyboard(b.schedule.Current().DaysFor(group))
	b.edit(chatID, messageID, "Выберите день для группы "+groupTitle(group)+":", &markup)
}

func (b *Bot) showDay(chatID int64, messageID int, offset int) {
	group, ok := b.selectedGroup(chatID, messageID)
	if !ok {
		return
	}
	text := "Расписание на день для группы " + groupTitle(group) + ":\n\n" + query.DayView(b.schedule.Current(), group, offset)
	markup := backKeyboard(cbBackToDays)
	b.edit(chatID, messageID, text, &markup)
}

// showTeacherDay день из последнего поиска преподавателя в этом чате
func (b *Bot) showTeacherDay(chatID int64, messageID int, index string) {
	days := b.states.get(chatID).teacher
	labels := days.Labels()

	i, err := strconv.Atoi(index)
	if err != nil || i < 0 || i >= len(labels) {
		b.edit(chatID, messageID, query.NoTeacherClassesText, nil)
		return
	}
	b.edit(chatID, messageID, "<b>"+html.EscapeString(labels[i])+":</b>\n"+query.TeacherDaySchedule(days, labels[i]), nil)
}
