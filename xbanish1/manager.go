// SPDX-FileCopyrightText: 2026 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package xbanish

import (
	"errors"
	"sync"

	"github.com/davecgh/go-spew/spew"
	"github.com/linuxdeepin/dde-xbanish/common/modmask"
	"github.com/linuxdeepin/go-lib/dbusutil"
	"github.com/linuxdeepin/go-lib/log"
	x "github.com/linuxdeepin/go-x11-client"
)

var ErrEventStreamClosed = errors.New("X event stream closed")

type Manager struct {
	conn    xConn
	root    x.Window
	ignored modmask.Mask

	rawMotion    bool
	xiFirstEvent uint8
	xiOpcode     uint8

	// owned by the event loop
	visibility Visibility

	service *dbusutil.Service
	//nolint
	signals *struct {
		CursorHide struct{}
		CursorShow struct{}
	}

	PropsMu          sync.RWMutex
	Hidden           bool
	RawMotion        bool
	IgnoredModifiers []string
}

func newManager(conn xConn, ignored modmask.Mask) *Manager {
	names := ignored.Names()
	if names == nil {
		names = []string{}
	}
	return &Manager{
		conn:             conn,
		root:             conn.rootWindow(),
		ignored:          ignored,
		visibility:       VisibilityShown,
		IgnoredModifiers: names,
	}
}

// init negotiates the extensions and selects every event the state machine
// consumes.
func (m *Manager) init() error {
	err := m.checkXFixes()
	if err != nil {
		return err
	}

	m.rawMotion, err = m.negotiateRawMotion()
	if err != nil {
		return err
	}
	if m.rawMotion {
		logger.Info("using xinput2 raw motion events")
	} else {
		logger.Info("xinput2 unavailable, using legacy per-device events")
	}
	m.PropsMu.Lock()
	m.RawMotion = m.rawMotion
	m.PropsMu.Unlock()

	m.xiFirstEvent, m.xiOpcode = m.conn.inputExtData()

	err = m.subscribeAllDevices()
	if err != nil {
		return err
	}

	return m.watchPresence()
}

// Run blocks until the event stream ends or a request fails.
func (m *Manager) Run() error {
	for ge := range m.conn.events() {
		ev := decodeEvent(ge, m.xiFirstEvent, m.xiOpcode)
		err := m.handleEvent(ev)
		if err != nil {
			return err
		}
	}
	return ErrEventStreamClosed
}

func (m *Manager) handleEvent(ev *Event) error {
	switch ev.Kind {
	case EventDevicePresence:
		err := m.handlePresence(ev)
		if err != nil {
			// the other devices keep their selections
			logger.Warning("subscribe hot-plugged device failed:", err)
		}
	case EventMapping:
	case EventUnknown:
		logger.Info("unexpected event:", ev)
		if logger.GetLogLevel() == log.LevelDebug {
			logger.Debug(spew.Sdump(ev.Raw))
		}
	}

	return m.applyVisibility(nextVisibility(m.visibility, ev, m.ignored))
}

// applyVisibility sends the show or hide command when want differs from the
// current state. The state only changes once the server accepted the command.
func (m *Manager) applyVisibility(want Visibility) error {
	if want == m.visibility {
		return nil
	}

	var err error
	if want == VisibilityHidden {
		err = m.hideCursor()
	} else {
		err = m.showCursor()
	}
	if err != nil {
		return err
	}

	m.visibility = want
	m.emitVisibilityChanged(want)
	return nil
}
