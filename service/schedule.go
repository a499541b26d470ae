// Package service хранит текущее расписание бота и перезагружает его из файла.
package service

import (
	"sync/atomic"

	"github.com/notaneet/rasp43/config"
	"github.com/notaneet/rasp43/model"
	"github.com/notaneet/rasp43/plugin"
	"go.uber.org/zap"
)

// Schedule текущее расписание. Заменяется целиком одной записью указателя,
// кто уже взял старое расписание, дочитывает его
type Schedule struct {
	current atomic.Pointer[model.Timetable]
	layout  config.Layout
	plugin  string
	logger  *zap.Logger
}

func NewSchedule(layout config.Layout, pluginName string, logger *zap.Logger) *Schedule {
	return &Schedule{layout: layout, plugin: pluginName, logger: logger.Named("schedule")}
}

// Current текущее расписание или nil, если ещё не загружено
func (s *Schedule) Current() *model.Timetable {
	return s.current.Load()
}

// Set заменить расписание готовым
func (s *Schedule) Set(tt *model.Timetable) {
	s.current.Store(tt)
}

// Reload собрать расписание из файла. При ошибке прежнее расписание остаётся
func (s *Schedule) Reload(path string) (*model.Timetable, error) {
	p := plugin.NewPlugin(s.plugin, config.ParserConfig{Source: path, Layout: s.layout}, s.logger)
	if p == nil {
		return nil, plugin.ErrUnknownPlugin
	}

	tt, err := p.GetTimetable()
	if err != nil {
		s.logger.Error("не удалось загрузить расписание", zap.String("path", path), zap.Error(err))
		return nil, err
	}

	s.Set(tt)
	s.logger.Info("расписание загружено", zap.String("path", path), zap.Int("groups", tt.Len()))
	return tt, nil
}
