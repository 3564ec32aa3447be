// SPDX-FileCopyrightText: 2026 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package xbanish

import (
	"fmt"

	x "github.com/linuxdeepin/go-x11-client"
	"github.com/linuxdeepin/go-x11-client/ext/input"
)

type EventKind int

const (
	EventUnknown EventKind = iota
	EventRawMotion
	EventRawButtonPress
	EventDeviceKeyRelease
	EventDeviceMotion
	EventDeviceButtonPress
	EventDeviceButtonRelease
	EventDevicePresence
	EventMapping
)

var eventKindNames = map[EventKind]string{
	EventUnknown:             "Unknown",
	EventRawMotion:           "RawMotion",
	EventRawButtonPress:      "RawButtonPress",
	EventDeviceKeyRelease:    "DeviceKeyRelease",
	EventDeviceMotion:        "DeviceMotion",
	EventDeviceButtonPress:   "DeviceButtonPress",
	EventDeviceButtonRelease: "DeviceButtonRelease",
	EventDevicePresence:      "DevicePresence",
	EventMapping:             "Mapping",
}

func (k EventKind) String() string {
	name, ok := eventKindNames[k]
	if !ok {
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
	return name
}

// Event is a decoded X event, only the fields the cursor hider looks at are
// filled.
type Event struct {
	Kind     EventKind
	DeviceId uint8
	// State is the modifier state of a device key release.
	State uint16
	// DevChange is the change type of a device presence notification.
	DevChange uint8
	Raw       x.GenericEvent
}

func (ev *Event) String() string {
	switch ev.Kind {
	case EventDeviceKeyRelease:
		return fmt.Sprintf("%s{device: %d, state: %#x}", ev.Kind, ev.DeviceId, ev.State)
	case EventDevicePresence:
		return fmt.Sprintf("%s{device: %d, change: %d}", ev.Kind, ev.DeviceId, ev.DevChange)
	case EventUnknown:
		if len(ev.Raw) > 0 {
			return fmt.Sprintf("%s{code: %d}", ev.Kind, ev.Raw.GetEventCode())
		}
	}
	return ev.Kind.String()
}

// decodeEvent maps a wire event to an Event. firstEvent and xiOpcode come
// from the input extension data, a zero xiOpcode means XInput is missing.
func decodeEvent(ge x.GenericEvent, firstEvent, xiOpcode uint8) *Event {
	ev := &Event{Raw: ge}
	if len(ge) == 0 {
		return ev
	}

	code := ge.GetEventCode()
	switch code {
	case x.MappingNotifyEventCode:
		ev.Kind = EventMapping
		return ev
	case x.GeGenericEventCode:
		decodeGenericEvent(ev, xiOpcode)
		return ev
	}

	if xiOpcode == 0 || code < firstEvent {
		return ev
	}

	switch code - firstEvent {
	case input.DeviceKeyReleaseEventCode:
		e, err := input.NewDeviceKeyReleaseEvent(ge)
		if err != nil {
			return ev
		}
		ev.Kind = EventDeviceKeyRelease
		ev.DeviceId = e.DeviceId
		ev.State = e.State

	case input.DeviceMotionNotifyEventCode, input.DeviceValuatorEventCode:
		ev.Kind = EventDeviceMotion

	case input.DeviceButtonPressEventCode:
		ev.Kind = EventDeviceButtonPress

	case input.DeviceButtonReleaseEventCode:
		ev.Kind = EventDeviceButtonRelease

	case input.DevicePresenceNotifyEventCode:
		e, err := input.NewDevicePresenceNotifyEvent(ge)
		if err != nil {
			return ev
		}
		ev.Kind = EventDevicePresence
		ev.DeviceId = e.DeviceId
		ev.DevChange = e.DevChange

	case input.DeviceMappingNotifyEventCode:
		ev.Kind = EventMapping
	}
	return ev
}

func decodeGenericEvent(ev *Event, xiOpcode uint8) {
	geEvent, err := x.NewGeGenericEvent(ev.Raw)
	if err != nil {
		return
	}
	if xiOpcode == 0 || geEvent.Extension != xiOpcode {
		return
	}

	switch geEvent.EventType {
	case input.RawMotionEventCode:
		ev.Kind = EventRawMotion
	case input.RawButtonPressEventCode:
		ev.Kind = EventRawButtonPress
	}
}
