// histogram-visual - Histogram visual axis engine and tooling
// Authors: Guillaume Lefranc <guillaume@signal18.io>
//          Stephane Varoqui  <svaroqui@gmail.com>
// This source code is licensed under the GNU General Public License, version 3.

package logging

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/juju/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	mu         sync.Mutex
	file       *lumberjack.Logger
	maxSize    = 5
	maxBackups = 7
	maxAge     = 7
)

// SetLevel sets the level of the standard logger. Unknown names fall back to
// error and are reported.
func SetLevel(name string) error {
	lvl, err := log.ParseLevel(name)
	if err != nil {
		log.SetLevel(log.ErrorLevel)
		return errors.NotValidf("log level %q", name)
	}
	log.SetLevel(lvl)
	return nil
}

// SetRotation configures the rotation of files opened by later SetFile calls.
// Sizes are in megabytes, ages in days.
func SetRotation(size, backups, age int) {
	mu.Lock()
	defer mu.Unlock()
	maxSize, maxBackups, maxAge = size, backups, age
}

// SetFile sends the standard logger to a rotating file, or back to stderr
// when path is empty.
func SetFile(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if file != nil {
		if err := file.Close(); err != nil {
			return errors.Trace(err)
		}
		file = nil
	}
	if path == "" {
		log.SetOutput(os.Stderr)
		return nil
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		return errors.Annotatef(err, "opening log file %s", path)
	}
	f.Close()

	file = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
	}
	log.SetOutput(file)
	return nil
}

// Rotate forces a rotation of the current log file.
func Rotate() error {
	mu.Lock()
	defer mu.Unlock()
	if file == nil {
		return nil
	}
	return errors.Trace(file.Rotate())
}

// TestOut collects what was logged during Test.
type TestOut interface {
	io.Writer
	String() string
}

type testBuffer struct {
	sync.Mutex
	buf bytes.Buffer
}

func (b *testBuffer) Write(p []byte) (int, error) {
	b.Lock()
	defer b.Unlock()
	return b.buf.Write(p)
}

func (b *testBuffer) String() string {
	b.Lock()
	defer b.Unlock()
	return b.buf.String()
}

// Test captures the standard logger at info level while callable runs.
func Test(callable func(TestOut)) {
	TestWithLevel("info", callable)
}

// TestWithLevel captures the standard logger at level while callable runs.
func TestWithLevel(level string, callable func(TestOut)) {
	mu.Lock()
	defer mu.Unlock()

	std := log.StandardLogger()
	out, lvl := std.Out, std.GetLevel()
	defer func() {
		log.SetOutput(out)
		log.SetLevel(lvl)
	}()

	buf := &testBuffer{}
	log.SetOutput(buf)
	SetLevel(level)
	callable(buf)
}
