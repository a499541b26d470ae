package vyatsu

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/gocolly/colly"
	"go.uber.org/zap"
)

// ErrNoTimetableLink на странице нет подходящей ссылки на таблицу
var ErrNoTimetableLink = errors.New("timetable link not found")

var linkSelector = "a[href]"

// Найти на странице колледжа ссылку на расписание и скачать файл
func (p *collegePlugin) scrap() (string, []byte, error) {
	c := colly.NewCollector()

	var link string
	c.OnHTML(linkSelector, func(e *colly.HTMLElement) {
		if link != "" {
			return
		}
		href := e.Request.AbsoluteURL(e.Attr("href"))
		if !isSpreadsheet(href) {
			return
		}
		if !p.config.LinkMatcher.Match(strings.TrimSpace(e.Text)) && !p.config.LinkMatcher.Match(href) {
			return
		}
		link = href
	})

	var err error
	c.OnError(func(r *colly.Response, _err error) {
		err = fmt.Errorf("%s: %w", r.Request.URL, _err)
	})

	if _err := c.Visit(p.config.Source); _err != nil {
		return "", nil, _err
	}
	if err != nil {
		return "", nil, err
	}
	if link == "" {
		return "", nil, fmt.Errorf("%w: %s", ErrNoTimetableLink, p.config.Source)
	}
	p.logger.Info("найдено расписание", zap.String("link", link))

	return p.download(c.Clone(), link)
}

func (p *collegePlugin) download(c *colly.Collector, link string) (string, []byte, error) {
	var data []byte
	var err error
	c.OnResponse(func(r *colly.Response) {
		data = r.Body
	})
	c.OnError(func(r *colly.Response, _err error) {
		err = fmt.Errorf("%s: %w", link, _err)
	})

	if _err := c.Visit(link); _err != nil {
		return "", nil, _err
	}
	if err != nil {
		return "", nil, err
	}

	p.logger.Debug("файл скачан", zap.String("link", link), zap.Int("bytes", len(data)))
	return fileName(link), data, nil
}

func isSpreadsheet(link string) bool {
	ext := strings.ToLower(path.Ext(fileName(link)))
	return ext == ".xlsx" || ext == ".xls"
}

func fileName(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return path.Base(link)
	}
	return path.Base(u.Path)
}
