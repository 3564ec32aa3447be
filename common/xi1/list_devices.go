// SPDX-FileCopyrightText: 2026 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package xi1

import (
	x "github.com/linuxdeepin/go-x11-client"
	"github.com/linuxdeepin/go-x11-client/ext/input"
)

type ListInputDevicesCookie x.SeqNum

func ListInputDevices(conn *x.Conn) ListInputDevicesCookie {
	req := &x.ProtocolRequest{
		Ext: input.Ext(),
		Header: x.RequestHeader{
			Data: input.ListInputDevicesOpcode,
		},
	}
	seq := conn.SendRequest(x.RequestChecked, req)
	return ListInputDevicesCookie(seq)
}

func (cookie ListInputDevicesCookie) Reply(conn *x.Conn) (*ListInputDevicesReply, error) {
	replyBuf, err := conn.WaitForReply(x.SeqNum(cookie))
	if err != nil {
		return nil, err
	}
	r := x.NewReaderFromData(replyBuf)
	var reply ListInputDevicesReply
	err = readListInputDevicesReply(r, &reply)
	if err != nil {
		return nil, err
	}
	return &reply, nil
}

type ListInputDevicesReply struct {
	XIReplyType uint8
	Devices     []DeviceInfo
}

func readListInputDevicesReply(r *x.Reader, v *ListInputDevicesReply) error {
	if !r.RemainAtLeast4b(8) {
		return x.ErrDataLenShort
	}

	v.XIReplyType, _ = r.ReadReplyHeader()

	devicesLen := int(r.Read1b())

	r.ReadPad(23) // 8

	if devicesLen == 0 {
		return nil
	}

	if !r.RemainAtLeast4b(2 * devicesLen) {
		return x.ErrDataLenShort
	}
	v.Devices = make([]DeviceInfo, devicesLen)
	numClassInfos := 0
	for i := 0; i < devicesLen; i++ {
		v.Devices[i] = readDeviceInfo(r)
		numClassInfos += int(v.Devices[i].NumClassInfo)
	}

	// the class infos are variable length, only their sizes matter here
	for i := 0; i < numClassInfos; i++ {
		if !r.RemainAtLeast(2) {
			return x.ErrDataLenShort
		}
		r.ReadPad(1) // class id
		infoLen := int(r.Read1b())
		if infoLen < 2 || !r.RemainAtLeast(infoLen-2) {
			return x.ErrDataLenShort
		}
		r.ReadPad(infoLen - 2)
	}

	for i := 0; i < devicesLen; i++ {
		if !r.RemainAtLeast(1) {
			return x.ErrDataLenShort
		}
		nameLen := int(r.Read1b())
		name, err := r.ReadString(nameLen)
		if err != nil {
			return err
		}
		v.Devices[i].Name = name
	}

	return nil
}

func readDeviceInfo(r *x.Reader) DeviceInfo {
	var v DeviceInfo
	v.Type = x.Atom(r.Read4b())
	v.Id = r.Read1b()
	v.NumClassInfo = r.Read1b()
	v.Use = r.Read1b()
	r.ReadPad(1)
	return v
}
