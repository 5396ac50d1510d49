package log

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/mbndr/figlet4go"
)

type Logger interface {
	Prefix(prefix string) Logger
	Ok(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Fatal(format string, args ...interface{})
}

type defaultLogger struct {
	prefix string
}

func NewDefaultLogger() Logger {
	return &defaultLogger{}
}

func (l *defaultLogger) Prefix(prefix string) Logger {
	return &defaultLogger{prefix: prefix}
}

func (l *defaultLogger) Ok(format string, args ...interface{}) {
	l.print(color.New(color.FgGreen).Sprint(" OK "), format, args...)
}

func (l *defaultLogger) Info(format string, args ...interface{}) {
	l.print(color.New(color.FgCyan).Sprint("INFO"), format, args...)
}

func (l *defaultLogger) Warn(format string, args ...interface{}) {
	l.print(color.New(color.FgYellow).Sprint("WARN"), format, args...)
}

func (l *defaultLogger) Fatal(format string, args ...interface{}) {
	l.print(color.New(color.FgRed).Sprint("FATL"), format, args...)
	os.Exit(1)
}

func (l *defaultLogger) print(level, format string, args ...interface{}) {
	stamp := time.Now().Format("2006-01-02 15:04:05")
	msg := fmt.Sprintf(format, args...)
	if l.prefix != "" {
		msg = l.prefix + " // " + msg
	}
	fmt.Printf("%s [%s] %s\n", stamp, level, msg)
}

// PrintLogo renders the bot name as a figlet banner on startup.
func PrintLogo(name string) {
	render := figlet4go.NewAsciiRender()

	options := figlet4go.NewRenderOptions()
	options.FontColor = []figlet4go.Color{
		figlet4go.ColorMagenta,
		figlet4go.ColorCyan,
	}

	banner, err := render.RenderOpts(name, options)
	if err != nil {
		fmt.Println(name)
		return
	}
	fmt.Print(banner)
}
