package plugin

import (
	"errors"

	"github.com/notaneet/rasp43/config"
	"github.com/notaneet/rasp43/plugin/vyatsu"
	"go.uber.org/zap"
)

// DefaultPlugin учебное заведение по умолчанию
const DefaultPlugin = "ВятГУ"

var ErrUnknownPlugin = errors.New("unknown plugin")

func NewPlugin(name string, cfg config.ParserConfig, logger *zap.Logger) Plugin {
	switch name {
	case DefaultPlugin, "vyatsu":
		return vyatsu.GetPlugin(cfg, logger)
	default:
		return nil
	}
}
