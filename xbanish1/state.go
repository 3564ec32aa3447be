// SPDX-FileCopyrightText: 2026 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package xbanish

import (
	"github.com/linuxdeepin/dde-xbanish/common/modmask"
)

type Visibility int

const (
	VisibilityShown Visibility = iota
	VisibilityHidden
)

func (v Visibility) String() string {
	if v == VisibilityHidden {
		return "hidden"
	}
	return "shown"
}

// nextVisibility decides the wanted pointer visibility after ev. It has no
// side effects, device presence handling lives in the manager.
func nextVisibility(cur Visibility, ev *Event, ignored modmask.Mask) Visibility {
	switch ev.Kind {
	case EventRawMotion, EventRawButtonPress,
		EventDeviceMotion, EventDeviceButtonPress, EventDeviceButtonRelease:
		return VisibilityShown

	case EventDeviceKeyRelease:
		// a bare tap of an ignored modifier must not hide the pointer
		if ignored.Intersects(ev.State) {
			return cur
		}
		return VisibilityHidden
	}
	return cur
}
