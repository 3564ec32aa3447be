// SPDX-FileCopyrightText: 2026 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package xi1 fills the XInput 1 gaps of go-x11-client's input extension:
// device listing and event class packing for SelectExtensionEvent.
package xi1

import (
	x "github.com/linuxdeepin/go-x11-client"
	"github.com/linuxdeepin/go-x11-client/ext/input"
)

// DevicePresenceClass is the DevicePresence() class from XInput.h. It is not
// derived from any device, so it cannot be built with MakeEventClass.
const DevicePresenceClass input.EventClass = 0x10000

// MakeEventClass packs a device id and an absolute event type the way the
// DeviceKeyRelease()/DeviceMotionNotify() C macros do.
func MakeEventClass(deviceId, eventType uint8) input.EventClass {
	return input.EventClass(uint32(deviceId)<<8 | uint32(eventType))
}

// SplitEventClass is the inverse of MakeEventClass.
func SplitEventClass(class input.EventClass) (deviceId, eventType uint8) {
	return uint8(class >> 8), uint8(class)
}

// size: 8b
type DeviceInfo struct {
	Type         x.Atom
	Id           uint8
	NumClassInfo uint8
	Use          uint8
	Name         string
}

func (info *DeviceInfo) IsExtensionDevice() bool {
	return info.Use == input.DeviceUseIsXExtensionKeyboard ||
		info.Use == input.DeviceUseIsXExtensionPointer
}

func UseName(use uint8) string {
	switch use {
	case input.DeviceUseIsXPointer:
		return "core-pointer"
	case input.DeviceUseIsXKeyboard:
		return "core-keyboard"
	case input.DeviceUseIsXExtensionDevice:
		return "extension-device"
	case input.DeviceUseIsXExtensionKeyboard:
		return "extension-keyboard"
	case input.DeviceUseIsXExtensionPointer:
		return "extension-pointer"
	}
	return "unknown"
}
