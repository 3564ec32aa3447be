// SPDX-FileCopyrightText: 2026 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package xbanish

import (
	"errors"
	"fmt"

	"github.com/linuxdeepin/dde-xbanish/common/xi1"
	x "github.com/linuxdeepin/go-x11-client"
	"github.com/linuxdeepin/go-x11-client/ext/input"
	"github.com/linuxdeepin/go-x11-client/ext/xfixes"
)

const (
	testRoot       x.Window = 0x1e3
	testFirstEvent uint8    = 66
	testXIOpcode   uint8    = 131
)

var errFake = errors.New("fake request failed")

type selectCall struct {
	win     x.Window
	classes []input.EventClass
}

// fakeConn records the requests the manager sends.
type fakeConn struct {
	xfixesMajor uint32
	xfixesErr   error
	geErr       error
	xiErr       error
	rawErr      error
	listErr     error
	openErr     map[uint8]error
	closeErr    error
	selectErr   error
	cursorErr   error

	devices []xi1.DeviceInfo
	classes map[uint8][]input.ClassInfo

	eventChan chan x.GenericEvent

	calls       []string
	rawMask     uint32
	opened      []uint8
	closed      []uint8
	selects     []selectCall
	shows       int
	hides       int
	cursorCalls []string
}

func newFakeConn() *fakeConn {
	return &fakeConn{
		xfixesMajor: 5,
		openErr:     make(map[uint8]error),
		classes:     make(map[uint8][]input.ClassInfo),
		eventChan:   make(chan x.GenericEvent, 64),
	}
}

func (c *fakeConn) rootWindow() x.Window { return testRoot }

func (c *fakeConn) inputExtData() (uint8, uint8) { return testFirstEvent, testXIOpcode }

func (c *fakeConn) events() <-chan x.GenericEvent { return c.eventChan }

func (c *fakeConn) queryXFixesVersion(major, minor uint32) (*xfixes.QueryVersionReply, error) {
	c.calls = append(c.calls, fmt.Sprintf("XFixesQueryVersion %d.%d", major, minor))
	if c.xfixesErr != nil {
		return nil, c.xfixesErr
	}
	return &xfixes.QueryVersionReply{MajorVersion: c.xfixesMajor}, nil
}

func (c *fakeConn) queryGEVersion(major, minor uint16) error {
	c.calls = append(c.calls, "GEQueryVersion")
	return c.geErr
}

func (c *fakeConn) queryXIVersion(major, minor uint16) (*input.XIQueryVersionReply, error) {
	c.calls = append(c.calls, fmt.Sprintf("XIQueryVersion %d.%d", major, minor))
	if c.xiErr != nil {
		return nil, c.xiErr
	}
	return &input.XIQueryVersionReply{MajorVersion: major, MinorVersion: minor}, nil
}

func (c *fakeConn) selectRawEvents(win x.Window, mask uint32) error {
	c.calls = append(c.calls, "XISelectEvents")
	c.rawMask = mask
	return c.rawErr
}

func (c *fakeConn) listInputDevices() ([]xi1.DeviceInfo, error) {
	c.calls = append(c.calls, "ListInputDevices")
	if c.listErr != nil {
		return nil, c.listErr
	}
	return c.devices, nil
}

func (c *fakeConn) openDevice(deviceId uint8) ([]input.ClassInfo, error) {
	c.calls = append(c.calls, fmt.Sprintf("OpenDevice %d", deviceId))
	if err := c.openErr[deviceId]; err != nil {
		return nil, err
	}
	c.opened = append(c.opened, deviceId)
	return c.classes[deviceId], nil
}

func (c *fakeConn) closeDevice(deviceId uint8) error {
	c.calls = append(c.calls, fmt.Sprintf("CloseDevice %d", deviceId))
	c.closed = append(c.closed, deviceId)
	return c.closeErr
}

func (c *fakeConn) selectExtensionEvent(win x.Window, classes []input.EventClass) error {
	c.calls = append(c.calls, "SelectExtensionEvent")
	c.selects = append(c.selects, selectCall{win: win, classes: classes})
	return c.selectErr
}

func (c *fakeConn) showCursor(win x.Window) error {
	c.cursorCalls = append(c.cursorCalls, "show")
	if c.cursorErr != nil {
		return c.cursorErr
	}
	c.shows++
	return nil
}

func (c *fakeConn) hideCursor(win x.Window) error {
	c.cursorCalls = append(c.cursorCalls, "hide")
	if c.cursorErr != nil {
		return c.cursorErr
	}
	c.hides++
	return nil
}

// wire event builders, little endian like the reader in go-x11-client

func makeDeviceKeyEvent(code uint8, deviceId uint8, state uint16) x.GenericEvent {
	w := x.NewWriter()
	w.Write1b(code)
	w.Write1b(38) // detail
	w.Write2b(1)  // sequence
	w.Write4b(0)  // time
	w.Write4b(uint32(testRoot))
	w.Write4b(uint32(testRoot))
	w.Write4b(0) // child
	w.WritePad(8)
	w.Write2b(state)
	w.Write1b(1) // same screen
	w.Write1b(deviceId)
	return x.GenericEvent(w.Bytes())
}

func makeKeyRelease(deviceId uint8, state uint16) x.GenericEvent {
	return makeDeviceKeyEvent(testFirstEvent+input.DeviceKeyReleaseEventCode, deviceId, state)
}

func makePresence(deviceId uint8, change uint8) x.GenericEvent {
	w := x.NewWriter()
	w.Write1b(testFirstEvent + input.DevicePresenceNotifyEventCode)
	w.WritePad(1)
	w.Write2b(1)
	w.Write4b(0)
	w.Write1b(change)
	w.Write1b(deviceId)
	w.Write2b(0)
	w.WritePad(20)
	return x.GenericEvent(w.Bytes())
}

func makeGenericEvent(extension uint8, eventType uint16) x.GenericEvent {
	w := x.NewWriter()
	w.Write1b(x.GeGenericEventCode)
	w.Write1b(extension)
	w.Write2b(1)
	w.Write4b(0) // length
	w.Write2b(eventType)
	w.WritePad(22)
	return x.GenericEvent(w.Bytes())
}

func makeRawMotion() x.GenericEvent {
	return makeGenericEvent(testXIOpcode, input.RawMotionEventCode)
}

func makeRawButtonPress() x.GenericEvent {
	return makeGenericEvent(testXIOpcode, input.RawButtonPressEventCode)
}

func makeCoreEvent(code uint8) x.GenericEvent {
	ev := make(x.GenericEvent, 32)
	ev[0] = code
	return ev
}
