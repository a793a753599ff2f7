package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger define a interface para logging estruturado.
// As camadas da aplicação (Client, Repository, Service, CLI) devem depender
// apenas desta interface, nunca da implementação concreta.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error)
	Fatal(msg string, err error)
}

// ZerologLogger é a implementação concreta da interface Logger sobre zerolog.
type ZerologLogger struct {
	zl zerolog.Logger
}

// NewLogger cria e retorna uma nova instância do Logger.
// Em development usa saída legível no console; caso contrário, JSON puro.
// Esta função é chamada no main.go.
func NewLogger(level string, env string) Logger {
	w := zerolog.MultiLevelWriter(os.Stderr)
	if env == "development" {
		w = zerolog.MultiLevelWriter(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	zl := zerolog.New(w).Level(parseLevel(level)).With().Timestamp().Logger()
	return &ZerologLogger{zl: zl}
}

// parseLevel traduz o nível textual da config para o nível do zerolog.
func parseLevel(s string) zerolog.Level {
	switch s {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Implementações da Interface Logger

func (l *ZerologLogger) Debug(msg string, fields map[string]interface{}) {
	l.zl.Debug().Fields(fields).Msg(msg)
}

func (l *ZerologLogger) Info(msg string, fields map[string]interface{}) {
	l.zl.Info().Fields(fields).Msg(msg)
}

func (l *ZerologLogger) Warn(msg string, fields map[string]interface{}) {
	l.zl.Warn().Fields(fields).Msg(msg)
}

func (l *ZerologLogger) Error(msg string, err error) {
	l.zl.Error().Err(err).Msg(msg)
}

// Fatal registra o erro e encerra o processo (comportamento do zerolog).
func (l *ZerologLogger) Fatal(msg string, err error) {
	l.zl.Fatal().Err(err).Msg(msg)
}
