package main

import (
	"errors"
	"fmt"

	"github.com/notaneet/rasp43/config"
	"github.com/notaneet/rasp43/converter"
	"github.com/notaneet/rasp43/plugin"
	"github.com/spf13/cobra"
)

var errSource = errors.New("нужен ровно один из --source и --url")

func newParseCommand(debug *bool) *cobra.Command {
	var (
		cfg = config.ParserConfig{}

		url,
		layoutFile,
		output,
		pluginName,
		converterName string
	)

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Извлечь расписание из таблицы и сохранить в выбранном формате",
		RunE: func(cmd *cobra.Command, args []string) error {
			if (cfg.Source == "") == (url == "") {
				return errSource
			}
			if url != "" {
				cfg.Source = url
			}

			logger, err := newLogger(*debug)
			if err != nil {
				return err
			}
			defer logger.Sync()

			if cfg.Layout, err = config.LoadLayout(layoutFile); err != nil {
				return err
			}
			if err := cfg.Init(); err != nil {
				return err
			}

			plug := plugin.NewPlugin(pluginName, cfg, logger)
			if plug == nil {
				fmt.Println(pluginName + " не найден. ")
				return plugin.ErrUnknownPlugin
			}

			timetable, err := plug.GetTimetable()
			if err != nil {
				fmt.Println("Ошибка при парсинге расписания, ", err)
				return err
			}

			c := converter.Converter(converterName)
			if err := c.Write(timetable, output); err != nil {
				fmt.Println("Ошибка в сохранении расписания, ", err)
				return err
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.Source, "source", "", "Файл с расписанием (.xlsx или .xls)")
	flags.StringVar(&url, "url", "", "Страница, на которой лежит ссылка на файл с расписанием")
	flags.Var(&cfg.GroupMatcher.MatchRaw, "group", "Требуемые группы (~ в начале - регулярка)")
	flags.Var(&cfg.LinkMatcher.MatchRaw, "link", "Какую ссылку на странице брать (текст или адрес)")
	flags.StringVar(&layoutFile, "layout", "", "YAML с раскладкой листа, по умолчанию шаблон колледжа")
	flags.StringVar(&output, "output", "data.out", "Файл, куда будет записываться результат (для pgsql - строка подключения)")
	flags.StringVar(&pluginName, "plugin", plugin.DefaultPlugin, "Требуемое учебное учреждение")
	flags.StringVar(&converterName, "converter", "pjson", "Тип выходных данных: json, pjson, csv, xlsx, pgsql")

	return cmd
}
