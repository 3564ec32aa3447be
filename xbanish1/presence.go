// SPDX-FileCopyrightText: 2026 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package xbanish

import (
	"github.com/linuxdeepin/dde-xbanish/common/xi1"
	"github.com/linuxdeepin/go-x11-client/ext/input"
	"golang.org/x/xerrors"
)

func (m *Manager) watchPresence() error {
	err := m.conn.selectExtensionEvent(m.root, []input.EventClass{xi1.DevicePresenceClass})
	if err != nil {
		return xerrors.Errorf("select device presence: %w", err)
	}
	return nil
}

// handlePresence subscribes a newly enabled device. Ids are reused by the
// server with possibly different classes, so the device is always classified
// again.
//
// TODO: disabled devices keep their selection; check whether the server
// drops it on its own or whether this leaks.
func (m *Manager) handlePresence(ev *Event) error {
	if ev.DevChange != input.DeviceChangeEnabled {
		logger.Debugf("device %d presence change %d ignored", ev.DeviceId, ev.DevChange)
		return nil
	}

	logger.Debugf("device %d enabled", ev.DeviceId)
	return m.subscribeDevice(ev.DeviceId)
}
