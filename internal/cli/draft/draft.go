// Package draft — разбор черновика закладки, который пользователь
// правит в редакторе командой "bk new".
package draft

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Template — заготовка, открываемая в редакторе.
const Template = `# insert bookmark url here
url:

title:

# insert tags here
tags:

# everything after are comments
comment:`

// ErrNoURL — в черновике не заполнен url, без него закладка невалидна.
var ErrNoURL = errors.New("draft has no url")

// Draft — разобранный черновик закладки.
type Draft struct {
	URL     string
	Title   string
	Tags    []string
	Comment string
}

// Parse читает черновик построчно. Строки с '#' и пустые игнорируются,
// теги разделяются запятыми, всё после "comment:" уходит в комментарий.
func Parse(r io.Reader) (*Draft, error) {
	d := &Draft{}
	inComments := false

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if inComments {
			d.Comment += "\n" + line
			continue
		}
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}

		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		switch key {
		case "url":
			d.URL = value
		case "title":
			d.Title = value
		case "tags":
			for _, t := range strings.Split(value, ",") {
				t = strings.TrimSpace(t)
				if t != "" {
					d.Tags = append(d.Tags, t)
				}
			}
		case "comment":
			d.Comment = value
			inComments = true
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if d.URL == "" {
		return nil, ErrNoURL
	}
	return d, nil
}
