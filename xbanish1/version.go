// SPDX-FileCopyrightText: 2026 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package xbanish

import (
	"errors"

	"github.com/linuxdeepin/go-x11-client/ext/ge"
	"github.com/linuxdeepin/go-x11-client/ext/input"
	"golang.org/x/xerrors"
)

const (
	xfixesMajorVersion = 4
	xfixesMinorVersion = 0

	// raw events need XInput 2.0
	xiMajorVersion = 2
	xiMinorVersion = 0

	rawEventMask uint32 = input.XIEventMaskRawMotion | input.XIEventMaskRawButtonPress
)

var ErrXFixesTooOld = errors.New("no compatible XFixes version available")

// checkXFixes makes sure HideCursor and ShowCursor are usable. The query is
// also required before the server accepts any other XFixes request.
func (m *Manager) checkXFixes() error {
	reply, err := m.conn.queryXFixesVersion(xfixesMajorVersion, xfixesMinorVersion)
	if err != nil {
		return xerrors.Errorf("query XFixes version: %w", err)
	}
	if reply.MajorVersion < xfixesMajorVersion {
		return xerrors.Errorf("server has XFixes %d.%d, need %d.%d: %w",
			reply.MajorVersion, reply.MinorVersion,
			xfixesMajorVersion, xfixesMinorVersion, ErrXFixesTooOld)
	}
	logger.Debugf("XFixes version %d.%d", reply.MajorVersion, reply.MinorVersion)
	return nil
}

// negotiateRawMotion reports whether XInput 2 raw events are available and,
// if so, selects raw motion and raw button press for all master devices.
// Only a failed select is an error, a failed version query just means the
// legacy per-device events are used.
func (m *Manager) negotiateRawMotion() (bool, error) {
	err := m.conn.queryGEVersion(ge.MajorVersion, ge.MinorVersion)
	if err != nil {
		logger.Warning("query GE version failed:", err)
		return false, nil
	}

	reply, err := m.conn.queryXIVersion(xiMajorVersion, xiMinorVersion)
	if err != nil {
		logger.Debug("query XInput version failed:", err)
		return false, nil
	}
	logger.Debugf("XInput version %d.%d", reply.MajorVersion, reply.MinorVersion)

	err = m.conn.selectRawEvents(m.root, rawEventMask)
	if err != nil {
		return false, xerrors.Errorf("select raw events: %w", err)
	}
	return true, nil
}
