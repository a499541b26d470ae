// Package bot телеграм-бот расписания: меню групп, просмотр дня и недели,
// поиск преподавателя, загрузка нового файла и рассылка для администраторов.
package bot

import (
	"context"
	"strings"
	"sync/atomic"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/notaneet/rasp43/config"
	"github.com/notaneet/rasp43/query"
	"github.com/notaneet/rasp43/service"
	"github.com/notaneet/rasp43/users"
	"go.uber.org/zap"
)

// sender то, что нужно от *tgbotapi.BotAPI
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetFileDirectURL(fileID string) (string, error)
}

// userStore хранилище пользователей, см. users.Repository
type userStore interface {
	AddOrUpdate(ctx context.Context, id int64, login string, group string) error
	Get(ctx context.Context, id int64) (users.User, error)
	All(ctx context.Context) ([]users.User, error)
	AllIDs(ctx context.Context) ([]int64, error)
}

type Bot struct {
	api      sender
	schedule *service.Schedule
	users    userStore
	cfg      config.BotConfig
	logger   *zap.Logger

	states *states
	// Разрешена ли /message, переключается /toggle_message
	broadcast atomic.Bool
}

func New(api sender, schedule *service.Schedule, store userStore, cfg config.BotConfig, logger *zap.Logger) *Bot {
	b := &Bot{
		api:      api,
		schedule: schedule,
		users:    store,
		cfg:      cfg,
		logger:   logger.Named("bot"),
		states:   newStates(),
	}
	b.broadcast.Store(true)
	return b
}

// Run обрабатывать обновления по одному, пока не закончится канал или ctx
func (b *Bot) Run(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.HandleUpdate(ctx, update)
		}
	}
}

func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.Chat == nil || msg.From == nil {
		return
	}

	if msg.Document != nil {
		b.handleDocument(ctx, msg)
		return
	}

	if !msg.IsCommand() {
		b.searchGroups(msg)
		return
	}

	b.logger.Debug("команда", zap.String("command", msg.Command()), zap.Int64("user", msg.From.ID))
	switch msg.Command() {
	case "start":
		b.start(ctx, msg)
	case "search_teacher":
		b.searchTeacher(msg)
	case "list_users":
		b.listUsers(ctx, msg)
	case "message":
		b.messageAll(ctx, msg)
	case "toggle_message":
		b.toggleMessage(msg)
	default:
		b.reply(msg.Chat.ID, "Команда не распознана.", nil)
	}
}

func (b *Bot) start(ctx context.Context, msg *tgbotapi.Message) {
	b.remember(ctx, msg.From, "")

	if b.schedule.Current().Empty() {
		b.reply(msg.Chat.ID, query.NoTimetableText, nil)
		return
	}

	b.states.with(msg.Chat.ID, func(st *chatState) { st.page = 0 })
	text, markup := b.groupMenu(ctx, msg.Chat.ID, msg.From.ID)
	b.reply(msg.Chat.ID, text, &markup)
}

// searchGroups любой текст без команды - поиск группы
func (b *Bot) searchGroups(msg *tgbotapi.Message) {
	tt := b.schedule.Current()
	if tt.Empty() {
		b.reply(msg.Chat.ID, query.NoTimetableText, nil)
		return
	}

	found := query.FilterGroups(msg.Text, tt.GroupNames())
	if len(found) == 0 {
		b.reply(msg.Chat.ID, "Группы не найдены.", nil)
		return
	}
	markup := foundGroupsKeyboard(found)
	b.reply(msg.Chat.ID, "Выберите группу из найденных:", &markup)
}

func (b *Bot) searchTeacher(msg *tgbotapi.Message) {
	name := strings.TrimSpace(msg.CommandArguments())
	if name == "" {
		b.reply(msg.Chat.ID, "Введите команду в формате: /search_teacher &lt;Фамилия преподавателя&gt;", nil)
		return
	}

	days := query.FindTeacherDays(b.schedule.Current(), name)
	b.states.with(msg.Chat.ID, func(st *chatState) { st.teacher = days })

	labels := days.Labels()
	if len(labels) == 0 {
		b.reply(msg.Chat.ID, "Для этого преподавателя занятий не найдено.", nil)
		return
	}
	markup := teacherDaysKeyboard(labels)
	b.reply(msg.Chat.ID, "Выберите день:", &markup)
}

// remember записать пользователя; group не пустая - она становится последней выбранной
func (b *Bot) remember(ctx context.Context, from *tgbotapi.User, group string) {
	if err := b.users.AddOrUpdate(ctx, from.ID, from.UserName, group); err != nil {
		b.logger.Error("не удалось сохранить пользователя", zap.Int64("user", from.ID), zap.Error(err))
	}
}

func (b *Bot) groupMenu(ctx context.Context, chatID, userID int64) (string, tgbotapi.InlineKeyboardMarkup) {
	var recent []string
	if u, err := b.users.Get(ctx, userID); err == nil {
		recent = u.RecentGroups()
	}

	st := b.states.get(chatID)
	return groupKeyboard(b.schedule.Current().GroupNames(), recent, st.page, b.cfg.GroupsPerPage)
}

// reply новое сообщение; длинный текст уходит несколькими, клавиатура у последнего
func (b *Bot) reply(chatID int64, text string, markup *tgbotapi.InlineKeyboardMarkup) {
	parts := splitMessage(text, messageLimit)
	for i, part := range parts {
		m := tgbotapi.NewMessage(chatID, part)
		m.ParseMode = tgbotapi.ModeHTML
		if i == len(parts)-1 && markup != nil {
			m.ReplyMarkup = *markup
		}
		b.send(m)
	}
}

// edit заменить сообщение с кнопками; не влезающий текст досылается новыми сообщениями
func (b *Bot) edit(chatID int64, messageID int, text string, markup *tgbotapi.InlineKeyboardMarkup) {
	parts := splitMessage(text, messageLimit)

	e := tgbotapi.NewEditMessageText(chatID, messageID, parts[0])
	e.ParseMode = tgbotapi.ModeHTML
	if len(parts) == 1 {
		e.ReplyMarkup = markup
	}
	b.send(e)

	if len(parts) > 1 {
		b.reply(chatID, strings.Join(parts[1:], ""), markup)
	}
}

func (b *Bot) send(c tgbotapi.Chattable) {
	if _, err := b.api.Send(c); err != nil {
		b.logger.Warn("не удалось отправить сообщение", zap.Error(err))
	}
}
