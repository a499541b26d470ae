package bot

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const adminOnlyText = "Команда доступна только администраторам."

// handleDocument новый файл расписания. Файл публикуется только если из него собралось расписание,
// иначе остаётся прежнее
func (b *Bot) handleDocument(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	if !b.cfg.IsAdmin(msg.From.ID) {
		b.reply(chatID, adminOnlyText, nil)
		return
	}

	want := filepath.Ext(b.cfg.ScheduleFile)
	if !strings.EqualFold(filepath.Ext(msg.Document.FileName), want) {
		b.reply(chatID, "Нужен файл "+want+".", nil)
		return
	}

	link, err := b.api.GetFileDirectURL(msg.Document.FileID)
	if err != nil {
		b.uploadFailed(chatID, err)
		return
	}

	tmp, err := b.download(ctx, link, want)
	if err != nil {
		b.uploadFailed(chatID, err)
		return
	}
	defer os.Remove(tmp)

	tt, err := b.schedule.Reload(tmp)
	if err != nil {
		b.uploadFailed(chatID, err)
		return
	}

	if err := os.Rename(tmp, b.cfg.ScheduleFile); err != nil {
		b.logger.Warn("файл расписания не сохранён, после перезапуска будет старый",
			zap.String("path", b.cfg.ScheduleFile), zap.Error(err))
	}

	b.logger.Info("расписание обновлено", zap.Int64("user", msg.From.ID), zap.String("file", msg.Document.FileName))
	b.reply(chatID, fmt.Sprintf("Расписание успешно обновлено. Групп: %d.", tt.Len()), nil)
}

func (b *Bot) uploadFailed(chatID int64, err error) {
	b.logger.Error("ошибка загрузки файла", zap.Error(err))
	b.reply(chatID, "Ошибка загрузки файла: "+html.EscapeString(err.Error())+"\nРасписание не изменилось.", nil)
}

// download скачать файл рядом с файлом расписания, чтобы потом переименовать без копирования
func (b *Bot) download(ctx context.Context, link, ext string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return "", err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download: %s", resp.Status)
	}

	f, err := os.CreateTemp(filepath.Dir(b.cfg.ScheduleFile), "upload-*"+ext)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

func (b *Bot) listUsers(ctx context.Context, msg *tgbotapi.Message) {
	if !b.cfg.IsAdmin(msg.From.ID) {
		b.reply(msg.Chat.ID, adminOnlyText, nil)
		return
	}

	list, err := b.users.All(ctx)
	if err != nil {
		b.logger.Error("список пользователей", zap.Error(err))
		b.reply(msg.Chat.ID, "Не удалось получить список пользователей.", nil)
		return
	}

	b.states.with(msg.Chat.ID, func(st *chatState) { st.userPage = 0 })
	text, markup := usersPage(list, 0, b.cfg.UsersPerPage)
	b.reply(msg.Chat.ID, text, markup)
}

func (b *Bot) pageUsers(ctx context.Context, chatID int64, messageID int, userID int64, next bool) {
	if !b.cfg.IsAdmin(userID) {
		b.edit(chatID, messageID, adminOnlyText, nil)
		return
	}

	list, err := b.users.All(ctx)
	if err != nil {
		b.logger.Error("список пользователей", zap.Error(err))
		return
	}

	var page int
	b.states.with(chatID, func(st *chatState) {
		if next {
			st.userPage++
		} else {
			st.userPage--
		}
		st.userPage = clampPage(st.userPage, len(list), b.cfg.UsersPerPage)
		page = st.userPage
	})

	text, markup := usersPage(list, page, b.cfg.UsersPerPage)
	b.edit(chatID, messageID, text, markup)
}

// messageAll разослать текст всем пользователям бота
func (b *Bot) messageAll(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	if !b.cfg.IsAdmin(msg.From.ID) {
		b.reply(chatID, adminOnlyText, nil)
		return
	}
	if !b.broadcast.Load() {
		b.reply(chatID, "Команда /message отключена.", nil)
		return
	}

	text := strings.TrimSpace(msg.CommandArguments())
	if text == "" {
		b.reply(chatID, "Введите команду в формате: /message &lt;текст&gt;", nil)
		return
	}

	ids, err := b.users.AllIDs(ctx)
	if err != nil {
		b.logger.Error("рассылка", zap.Error(err))
		b.reply(chatID, "Не удалось получить список пользователей.", nil)
		return
	}

	failed := 0
	for _, id := range ids {
		if _, err := b.api.Send(tgbotapi.NewMessage(id, text)); err != nil {
			failed++
			b.logger.Warn("рассылка: не доставлено", zap.Int64("user", id), zap.Error(err))
			b.reply(chatID, fmt.Sprintf("Ошибка при отправке сообщения пользователю %d: %s", id, html.EscapeString(err.Error())), nil)
		}
	}

	b.logger.Info("рассылка", zap.Int("users", len(ids)), zap.Int("failed", failed))
	b.reply(chatID, "Сообщение разослано всем участникам бота.", nil)
}

func (b *Bot) toggleMessage(msg *tgbotapi.Message) {
	if !b.cfg.IsAdmin(msg.From.ID) {
		b.reply(msg.Chat.ID, adminOnlyText, nil)
		return
	}

	for {
		old := b.broadcast.Load()
		if b.broadcast.CompareAndSwap(old, !old) {
			if !old {
				b.reply(msg.Chat.ID, "Теперь команда /message включена.", nil)
			} else {
				b.reply(msg.Chat.ID, "Теперь команда /message отключена.", nil)
			}
			return
		}
	}
}
