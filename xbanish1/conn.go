// SPDX-FileCopyrightText: 2026 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package xbanish

import (
	"github.com/linuxdeepin/dde-xbanish/common/xi1"
	x "github.com/linuxdeepin/go-x11-client"
	"github.com/linuxdeepin/go-x11-client/ext/ge"
	"github.com/linuxdeepin/go-x11-client/ext/input"
	"github.com/linuxdeepin/go-x11-client/ext/xfixes"
)

// xConn is the part of the X connection the cursor hider needs. Every
// request is a blocking round trip.
type xConn interface {
	rootWindow() x.Window
	// inputExtData returns the first event code and the major opcode of the
	// input extension.
	inputExtData() (firstEvent, majorOpcode uint8)
	events() <-chan x.GenericEvent

	queryXFixesVersion(major, minor uint32) (*xfixes.QueryVersionReply, error)
	queryGEVersion(major, minor uint16) error
	queryXIVersion(major, minor uint16) (*input.XIQueryVersionReply, error)
	selectRawEvents(win x.Window, mask uint32) error

	listInputDevices() ([]xi1.DeviceInfo, error)
	openDevice(deviceId uint8) ([]input.ClassInfo, error)
	closeDevice(deviceId uint8) error
	selectExtensionEvent(win x.Window, classes []input.EventClass) error

	showCursor(win x.Window) error
	hideCursor(win x.Window) error
}

type realConn struct {
	conn      *x.Conn
	eventChan chan x.GenericEvent
}

func newRealConn(conn *x.Conn) *realConn {
	return &realConn{
		conn:      conn,
		eventChan: conn.MakeAndAddEventChan(50),
	}
}

func (c *realConn) rootWindow() x.Window {
	return c.conn.GetDefaultScreen().Root
}

func (c *realConn) inputExtData() (firstEvent, majorOpcode uint8) {
	data := c.conn.GetExtensionData(input.Ext())
	if data == nil || !data.Present {
		return 0, 0
	}
	return data.FirstEvent, data.MajorOpcode
}

func (c *realConn) events() <-chan x.GenericEvent {
	return c.eventChan
}

func (c *realConn) queryXFixesVersion(major, minor uint32) (*xfixes.QueryVersionReply, error) {
	return xfixes.QueryVersion(c.conn, major, minor).Reply(c.conn)
}

func (c *realConn) queryGEVersion(major, minor uint16) error {
	_, err := ge.QueryVersion(c.conn, major, minor).Reply(c.conn)
	return err
}

func (c *realConn) queryXIVersion(major, minor uint16) (*input.XIQueryVersionReply, error) {
	return input.XIQueryVersion(c.conn, major, minor).Reply(c.conn)
}

func (c *realConn) selectRawEvents(win x.Window, mask uint32) error {
	return input.XISelectEventsChecked(c.conn, win, []input.EventMask{
		{
			DeviceId: input.DeviceAllMaster,
			Mask:     []uint32{mask},
		},
	}).Check(c.conn)
}

func (c *realConn) listInputDevices() ([]xi1.DeviceInfo, error) {
	reply, err := xi1.ListInputDevices(c.conn).Reply(c.conn)
	if err != nil {
		return nil, err
	}
	return reply.Devices, nil
}

func (c *realConn) openDevice(deviceId uint8) ([]input.ClassInfo, error) {
	reply, err := input.OpenDevice(c.conn, deviceId).Reply(c.conn)
	if err != nil {
		return nil, err
	}
	return reply.ClassInfos, nil
}

func (c *realConn) closeDevice(deviceId uint8) error {
	return input.CloseDeviceChecked(c.conn, deviceId).Check(c.conn)
}

func (c *realConn) selectExtensionEvent(win x.Window, classes []input.EventClass) error {
	return input.SelectExtensionEventChecked(c.conn, win, classes).Check(c.conn)
}

func (c *realConn) showCursor(win x.Window) error {
	return xfixes.ShowCursorChecked(c.conn, win).Check(c.conn)
}

func (c *realConn) hideCursor(win x.Window) error {
	return xfixes.HideCursorChecked(c.conn, win).Check(c.conn)
}
