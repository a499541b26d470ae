package vyatsu

import (
	"strings"

	"github.com/notaneet/rasp43/config"
	"github.com/notaneet/rasp43/model"
	"go.uber.org/zap"
)

type collegePlugin struct {
	config config.ParserConfig
	logger *zap.Logger
}

func GetPlugin(cfg config.ParserConfig, logger *zap.Logger) *collegePlugin {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &collegePlugin{config: cfg, logger: logger.Named("vyatsu")}
}

func (p collegePlugin) GetInstitution() string {
	return "Колледж ВятГУ"
}

// GetTimetable собрать расписание из файла или со страницы колледжа.
// Ошибка означает, что публиковать нечего: прошлое расписание остаётся в силе
func (p *collegePlugin) GetTimetable() (*model.Timetable, error) {
	if err := p.config.Init(); err != nil {
		return nil, err
	}

	if isURL(p.config.Source) {
		name, data, err := p.scrap()
		if err != nil {
			return nil, err
		}
		return p.parseBytes(name, data)
	}
	return p.parseFile(p.config.Source)
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
