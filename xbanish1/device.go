// SPDX-FileCopyrightText: 2026 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package xbanish

import (
	"github.com/linuxdeepin/dde-xbanish/common/xi1"
	"github.com/linuxdeepin/go-x11-client/ext/input"
	"golang.org/x/xerrors"
)

// classifyDevice computes the event classes to select for one device.
//
// Key presses are never selected, activity is evaluated on release so that a
// bare modifier tap can be told apart. With raw motion available the raw XI2
// events replace the valuator and button classes.
func classifyDevice(deviceId uint8, classes []input.ClassInfo, rawMotion bool) []input.EventClass {
	eventClasses := make([]input.EventClass, 0, len(classes)+1)
	for _, class := range classes {
		switch class.ClassId {
		case input.InputClassKey:
			// EventTypeBase is DeviceKeyPress, release is the next one
			eventClasses = append(eventClasses,
				xi1.MakeEventClass(deviceId, class.EventTypeBase+1))

		case input.InputClassValuator:
			if rawMotion {
				continue
			}
			eventClasses = append(eventClasses,
				xi1.MakeEventClass(deviceId, class.EventTypeBase))

		case input.InputClassButton:
			if rawMotion {
				continue
			}
			eventClasses = append(eventClasses,
				xi1.MakeEventClass(deviceId, class.EventTypeBase),
				xi1.MakeEventClass(deviceId, class.EventTypeBase+1))
		}
	}
	return eventClasses
}

// subscribeDevice opens the device only to read its input classes, then
// selects the matching events on the root window. The select request is sent
// even when no class applies.
func (m *Manager) subscribeDevice(deviceId uint8) error {
	classes, err := m.conn.openDevice(deviceId)
	if err != nil {
		return xerrors.Errorf("open device %d: %w", deviceId, err)
	}

	eventClasses := classifyDevice(deviceId, classes, m.rawMotion)

	err = m.conn.closeDevice(deviceId)
	if err != nil {
		return xerrors.Errorf("close device %d: %w", deviceId, err)
	}

	err = m.conn.selectExtensionEvent(m.root, eventClasses)
	if err != nil {
		return xerrors.Errorf("select events of device %d: %w", deviceId, err)
	}
	logger.Debugf("device %d: selected %d event classes", deviceId, len(eventClasses))
	return nil
}

func (m *Manager) subscribeAllDevices() error {
	devices, err := m.conn.listInputDevices()
	if err != nil {
		return xerrors.Errorf("list input devices: %w", err)
	}

	for i := range devices {
		dev := &devices[i]
		if !dev.IsExtensionDevice() {
			logger.Debugf("skip device %d %q (%s)", dev.Id, dev.Name, xi1.UseName(dev.Use))
			continue
		}
		logger.Debugf("subscribe device %d %q (%s)", dev.Id, dev.Name, xi1.UseName(dev.Use))
		err = m.subscribeDevice(dev.Id)
		if err != nil {
			return err
		}
	}
	return nil
}
