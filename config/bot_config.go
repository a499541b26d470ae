package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// BotConfig настройки телеграм-бота, читаются из окружения (и .env, если есть)
type BotConfig struct {
	Token        string
	ScheduleFile string
	UsersDB      string
	LayoutFile   string
	AdminIDs     []int64

	GroupsPerPage int
	UsersPerPage  int
	RecentGroups  int
}

var ErrNoToken = errors.New("TELEGRAM_BOT_TOKEN is not set")

// LoadBotConfig загрузить .env (если есть) и прочитать переменные окружения
func LoadBotConfig(envFiles ...string) (BotConfig, error) {
	// Отсутствие .env не ошибка, переменные могут прийти из окружения
	_ = godotenv.Load(envFiles...)

	cfg := BotConfig{
		Token:         os.Getenv("TELEGRAM_BOT_TOKEN"),
		ScheduleFile:  getenv("SCHEDULE_FILE", "schedule_file.xlsx"),
		UsersDB:       getenv("USERS_DB", "users.db"),
		LayoutFile:    os.Getenv("LAYOUT_FILE"),
		GroupsPerPage: 5,
		UsersPerPage:  10,
		RecentGroups:  3,
	}
	if cfg.Token == "" {
		return cfg, ErrNoToken
	}

	ids, err := parseIDs(os.Getenv("ADMIN_IDS"))
	if err != nil {
		return cfg, err
	}
	cfg.AdminIDs = ids
	return cfg, nil
}

// IsAdmin пустой список админов - администрировать может любой
func (c BotConfig) IsAdmin(id int64) bool {
	if len(c.AdminIDs) == 0 {
		return true
	}
	for _, admin := range c.AdminIDs {
		if admin == id {
			return true
		}
	}
	return false
}

func parseIDs(raw string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("ADMIN_IDS: %q is not a telegram id: %w", part, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func getenv(key, or string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return or
}
