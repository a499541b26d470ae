package config

// ParserConfig настройки извлечения расписания
type ParserConfig struct {
	GroupMatcher Matcher
	// По какой ссылке на странице искать файл (текст или адрес ссылки)
	LinkMatcher Matcher

	// Путь к файлу или адрес страницы, где лежит ссылка на файл
	Source string

	Layout Layout
}

// Init дополнить конфиг значениями по умолчанию и проверить его
func (cfg *ParserConfig) Init() error {
	if cfg.Layout.SheetName == "" {
		cfg.Layout = DefaultLayout()
	}
	if err := cfg.Layout.Validate(); err != nil {
		return err
	}
	if err := cfg.LinkMatcher.Compile(); err != nil {
		return err
	}
	return cfg.GroupMatcher.Compile()
}
