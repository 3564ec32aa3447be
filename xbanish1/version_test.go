// SPDX-FileCopyrightText: 2026 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package xbanish

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"
)

func TestCheckXFixes(t *testing.T) {
	conn := newFakeConn()
	m := newManager(conn, 0)
	assert.NoError(t, m.checkXFixes())

	conn.xfixesMajor = 4
	assert.NoError(t, m.checkXFixes())

	conn.xfixesMajor = 2
	err := m.checkXFixes()
	require.Error(t, err)
	assert.True(t, xerrors.Is(err, ErrXFixesTooOld))
	assert.Contains(t, err.Error(), "server has XFixes 2.0, need 4.0")

	conn.xfixesErr = errFake
	err = m.checkXFixes()
	assert.True(t, xerrors.Is(err, errFake))
	assert.False(t, xerrors.Is(err, ErrXFixesTooOld))
}

func TestNegotiateRawMotion(t *testing.T) {
	conn := newFakeConn()
	m := newManager(conn, 0)
	ok, err := m.negotiateRawMotion()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, rawEventMask, conn.rawMask)
	assert.Equal(t, []string{"GEQueryVersion", "XIQueryVersion 2.0", "XISelectEvents"}, conn.calls)
}

func TestNegotiateRawMotionFallback(t *testing.T) {
	conn := newFakeConn()
	conn.geErr = errFake
	ok, err := newManager(conn, 0).negotiateRawMotion()
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []string{"GEQueryVersion"}, conn.calls)

	conn = newFakeConn()
	conn.xiErr = errFake
	ok, err = newManager(conn, 0).negotiateRawMotion()
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []string{"GEQueryVersion", "XIQueryVersion 2.0"}, conn.calls)
	assert.Zero(t, conn.rawMask)
}

func TestNegotiateRawMotionSelectFails(t *testing.T) {
	conn := newFakeConn()
	conn.rawErr = errFake
	ok, err := newManager(conn, 0).negotiateRawMotion()
	assert.False(t, ok)
	assert.True(t, xerrors.Is(err, errFake))
	assert.Equal(t, "select raw events: fake request failed", err.Error())
}

func TestInitLegacyMode(t *testing.T) {
	conn := newFakeConn()
	conn.xiErr = errFake
	m := newManager(conn, 0)
	require.NoError(t, m.init())
	assert.False(t, m.rawMotion)
	assert.False(t, m.RawMotion)
}
