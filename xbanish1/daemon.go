// SPDX-FileCopyrightText: 2026 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package xbanish

import (
	"github.com/linuxdeepin/dde-xbanish/common/modmask"
	"github.com/linuxdeepin/go-lib/dbusutil"
	"github.com/linuxdeepin/go-lib/log"
	x "github.com/linuxdeepin/go-x11-client"
	"golang.org/x/xerrors"
)

const moduleName = "xbanish"

var logger = log.NewLogger(moduleName)

func SetLogLevel(level log.Priority) {
	logger.SetLogLevel(level)
}

type Options struct {
	Ignored modmask.Mask
	// DBus exports the visibility state on the session bus.
	DBus bool
}

// Run connects to the X server and hides the pointer while typing until the
// connection is lost. It only returns on fatal errors.
func Run(opts Options) error {
	conn, err := x.NewConn()
	if err != nil {
		return xerrors.Errorf("connect to X server: %w", err)
	}
	defer conn.Close()

	logger.Infof("ignored modifiers: %s", opts.Ignored)

	m := newManager(newRealConn(conn), opts.Ignored)
	err = m.init()
	if err != nil {
		return err
	}

	if opts.DBus {
		service, err := dbusutil.NewSessionService()
		if err != nil {
			return xerrors.Errorf("connect to session bus: %w", err)
		}
		err = m.exportDBus(service)
		if err != nil {
			return xerrors.Errorf("export %s: %w", dbusPath, err)
		}
	}

	return m.Run()
}
