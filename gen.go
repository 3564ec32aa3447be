// SPDX-FileCopyrightText: 2026 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package xbanish

//go:generate go build -o target/ github.com/linuxdeepin/dde-xbanish/bin/dde-xbanish
