package logger

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log = NewLogger()

// Properties mirrors logger.properties.
type Properties struct {
	LogFilename string
	MaxSize     int
	MaxBackups  int
	MaxAge      int
	Compress    bool
	Level       string
}

func DefaultProperties() Properties {
	return Properties{
		LogFilename: "./logs/contribpong.log",
		MaxSize:     10,
		MaxBackups:  3,
		MaxAge:      28,
		Compress:    false,
		Level:       "Info",
	}
}

// Logger writes JSON lines through logrus. Every entry carries the session id
// of the current run. The terminal owns stdout, so nothing is echoed there.
type Logger struct {
	base    *logrus.Logger
	entry   *logrus.Entry
	session string
}

func NewLogger() *Logger {
	base := logrus.New()
	session := uuid.NewString()
	return &Logger{
		base:    base,
		entry:   base.WithField("session", session),
		session: session,
	}
}

// ReadLoggerProperties loads logger.properties from dir. Keys missing from the
// file keep their defaults; a missing file is reported but still yields the
// defaults.
func ReadLoggerProperties(dir string) (Properties, error) {
	def := DefaultProperties()

	v := viper.New()
	v.SetConfigName("logger")
	v.SetConfigType("properties")
	v.AddConfigPath(dir)

	v.SetDefault("logFilename", def.LogFilename)
	v.SetDefault("maxSize", def.MaxSize)
	v.SetDefault("maxBackups", def.MaxBackups)
	v.SetDefault("maxAge", def.MaxAge)
	v.SetDefault("compress", def.Compress)
	v.SetDefault("level", def.Level)

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return def, fmt.Errorf("read logger properties: %w", err)
		}
		err = fmt.Errorf("logger properties not found in %s: %w", dir, err)
	}

	return Properties{
		LogFilename: cast.ToString(v.Get("logFilename")),
		MaxSize:     cast.ToInt(v.Get("maxSize")),
		MaxBackups:  cast.ToInt(v.Get("maxBackups")),
		MaxAge:      cast.ToInt(v.Get("maxAge")),
		Compress:    cast.ToBool(v.Get("compress")),
		Level:       cast.ToString(v.Get("level")),
	}, err
}

// Init configures the logger from ./logger.properties.
func (l *Logger) Init() {
	props, err := ReadLoggerProperties("./")
	l.InitWith(props)
	if err != nil {
		l.Warn(err.Error())
	}
}

func (l *Logger) InitWith(props Properties) {
	loggerConfig := &lumberjack.Logger{
		Filename:   props.LogFilename,
		MaxSize:    props.MaxSize,
		MaxBackups: props.MaxBackups,
		MaxAge:     props.MaxAge,
		Compress:   props.Compress,
	}

	l.base.SetFormatter(&logrus.JSONFormatter{})
	l.base.SetOutput(loggerConfig)
	l.base.SetLevel(ParseLevel(props.Level))
}

func ParseLevel(level string) logrus.Level {
	switch cast.ToString(level) {

	case "Trace":
		return logrus.TraceLevel

	case "Info":
		return logrus.InfoLevel

	case "Warn":
		return logrus.WarnLevel

	case "Error":
		return logrus.ErrorLevel

	case "Fatal":
		return logrus.FatalLevel

	default:
		return logrus.DebugLevel
	}
}

func (l *Logger) Session() string {
	return l.session
}

func (l *Logger) Info(message string) {
	l.entry.Info(message)
}

func (l *Logger) Error(message string) {
	l.entry.Error(message)
}

func (l *Logger) Debug(message string) {
	l.entry.Debug(message)
}

func (l *Logger) Warn(message string) {
	l.entry.Warn(message)
}

func (l *Logger) Fatal(message string) {
	l.entry.Fatal(message)
}
