// histogram-visual - Histogram visual axis engine and tooling
// Copyright 2017 Signal 18 SARL
// Authors: Guillaume Lefranc <guillaume@signal18.io>
//          Stephane Varoqui  <svaroqui@gmail.com>
// This source code is licensed under the GNU General Public License, version 3.
// Redistribution/Reuse of this code is permitted under the GNU v3 license, as
// an additional term, ALL code must carry the original Author(s) credit in comment form.
// See LICENSE in this directory for the integral text.

package logging

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// Collection of the most recent log messages, newest first
type HttpLog struct {
	Buffer []HttpMessage `json:"buffer"`
	Len    int           `json:"len"`
	L      sync.Mutex    `json:"-"`
}

// Log message
type HttpMessage struct {
	Group     string `json:"group"`
	Level     string `json:"level"`
	Timestamp string `json:"timestamp"`
	Text      string `json:"text"`
}

func NewHttpLog(sz int) *HttpLog {
	return &HttpLog{Len: sz, Buffer: make([]HttpMessage, 0, sz)}
}

func (tl *HttpLog) Add(s HttpMessage) {
	tl.L.Lock()
	tl.Shift(s)
	tl.L.Unlock()
}

func (tl *HttpLog) Shift(e HttpMessage) {
	if tl.Len <= 0 {
		return
	}
	keep := len(tl.Buffer)
	if keep >= tl.Len {
		keep = tl.Len - 1
	}
	tl.Buffer = append([]HttpMessage{e}, tl.Buffer[:keep]...)
}

// Messages returns a copy of the buffer, newest first.
func (tl *HttpLog) Messages() []HttpMessage {
	tl.L.Lock()
	defer tl.L.Unlock()
	return append([]HttpMessage{}, tl.Buffer...)
}

// Levels makes HttpLog a logrus hook.
func (tl *HttpLog) Levels() []log.Level {
	return []log.Level{log.PanicLevel, log.FatalLevel, log.ErrorLevel, log.WarnLevel, log.InfoLevel}
}

func (tl *HttpLog) Fire(e *log.Entry) error {
	group, _ := e.Data["group"].(string)
	tl.Add(HttpMessage{
		Group:     group,
		Level:     e.Level.String(),
		Timestamp: e.Time.Format(time.RFC3339),
		Text:      e.Message,
	})
	return nil
}
