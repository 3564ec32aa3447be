// SPDX-FileCopyrightText: 2026 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package xbanish

import (
	"golang.org/x/xerrors"
)

func (m *Manager) showCursor() error {
	logger.Info("showing pointer")
	err := m.conn.showCursor(m.root)
	if err != nil {
		return xerrors.Errorf("xfixes show cursor: %w", err)
	}
	return nil
}

func (m *Manager) hideCursor() error {
	logger.Info("hiding pointer")
	err := m.conn.hideCursor(m.root)
	if err != nil {
		return xerrors.Errorf("xfixes hide cursor: %w", err)
	}
	return nil
}
