package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/pokerbots/internal/config"
)

func newLogger(settings *config.LogSettings, w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
	})

	switch settings.Level {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}

	if settings.JSON {
		logger.SetFormatter(log.JSONFormatter)
		return logger
	}
	if settings.NoColor {
		logger.SetColorProfile(termenv.Ascii)
		return logger
	}
	logger.SetStyles(levelStyles())
	return logger
}

// levelStyles shortens level labels to four letters in fixed colours.
func levelStyles() *log.Styles {
	styles := log.DefaultStyles()
	labels := map[log.Level]struct {
		text  string
		color string
	}{
		log.DebugLevel: {"DEBU", "63"},
		log.InfoLevel:  {"INFO", "86"},
		log.WarnLevel:  {"WARN", "192"},
		log.ErrorLevel: {"ERRO", "204"},
	}
	for level, l := range labels {
		styles.Levels[level] = lipgloss.NewStyle().
			SetString(l.text).
			Bold(true).
			Foreground(lipgloss.Color(l.color))
	}
	styles.Keys["round"] = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	styles.Keys["err"] = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))
	return styles
}
