// SPDX-FileCopyrightText: 2026 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package xbanish

import (
	"github.com/godbus/dbus/v5"
	"github.com/linuxdeepin/go-lib/dbusutil"
)

const (
	dbusServiceName = "org.deepin.dde.XBanish1"
	dbusPath        = "/org/deepin/dde/XBanish1"
	dbusInterface   = dbusServiceName
)

func (*Manager) GetInterfaceName() string {
	return dbusInterface
}

// GetStatus returns the pointer visibility together with the event mode in
// one call.
func (m *Manager) GetStatus(sender dbus.Sender) (hidden bool, rawMotion bool, busErr *dbus.Error) {
	logger.Debug("GetStatus sender:", sender)
	m.PropsMu.RLock()
	defer m.PropsMu.RUnlock()
	return m.Hidden, m.RawMotion, nil
}

func (m *Manager) exportDBus(service *dbusutil.Service) error {
	err := service.Export(dbusPath, m)
	if err != nil {
		return err
	}

	err = service.RequestName(dbusServiceName)
	if err != nil {
		_ = service.StopExport(m)
		return err
	}
	m.service = service
	return nil
}

// emitVisibilityChanged publishes a transition on the session bus. Failures
// are only logged, the bus never feeds back into the state machine.
func (m *Manager) emitVisibilityChanged(v Visibility) {
	hidden := v == VisibilityHidden
	m.PropsMu.Lock()
	changed := m.setHidden(hidden)
	m.PropsMu.Unlock()
	if !changed || m.service == nil {
		return
	}

	signal := "CursorShow"
	if hidden {
		signal = "CursorHide"
	}
	err := m.service.Emit(m, signal)
	if err != nil {
		logger.Warning("Emit error:", err)
	}
}

// return is changed?
func (m *Manager) setHidden(val bool) bool {
	if m.Hidden == val {
		return false
	}
	m.Hidden = val
	if m.service != nil {
		err := m.service.EmitPropertyChanged(m, "Hidden", val)
		if err != nil {
			logger.Warning("EmitPropertyChanged error:", err)
		}
	}
	return true
}
