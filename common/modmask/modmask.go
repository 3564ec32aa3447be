// SPDX-FileCopyrightText: 2026 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package modmask

import (
	"errors"
	"strings"

	x "github.com/linuxdeepin/go-x11-client"
	"golang.org/x/xerrors"
)

var ErrUnknownMod = errors.New("unknown modifier")

// Mod names a modifier key that must not hide the pointer when tapped.
type Mod int

const (
	Shift Mod = iota
	Caps
	Ctrl
	Mod1
	Mod2
	Mod3
	Mod4
	All
)

// Mask is a set of core protocol KeyButMask modifier bits.
type Mask uint16

var modNames = []string{
	Shift: "shift",
	Caps:  "caps",
	Ctrl:  "ctrl",
	Mod1:  "mod1",
	Mod2:  "mod2",
	Mod3:  "mod3",
	Mod4:  "mod4",
	All:   "all",
}

// All only covers key modifiers, the Button1..Button5 bits stay clear.
var modMasks = []Mask{
	Shift: x.KeyButMaskShift,
	Caps:  x.KeyButMaskLock,
	Ctrl:  x.KeyButMaskControl,
	Mod1:  x.KeyButMaskMod1,
	Mod2:  x.KeyButMaskMod2,
	Mod3:  x.KeyButMaskMod3,
	Mod4:  x.KeyButMaskMod4,
	All: x.KeyButMaskShift | x.KeyButMaskLock | x.KeyButMaskControl |
		x.KeyButMaskMod1 | x.KeyButMaskMod2 | x.KeyButMaskMod3 | x.KeyButMaskMod4,
}

// Names returns the accepted modifier tokens in declaration order.
func Names() []string {
	names := make([]string, len(modNames))
	copy(names, modNames)
	return names
}

func ParseMod(name string) (Mod, error) {
	token := strings.ToLower(strings.TrimSpace(name))
	for i, n := range modNames {
		if n == token {
			return Mod(i), nil
		}
	}
	return 0, xerrors.Errorf("%q: %w", name, ErrUnknownMod)
}

func (m Mod) String() string {
	if m < 0 || int(m) >= len(modNames) {
		return "unknown"
	}
	return modNames[m]
}

func (m Mod) Mask() Mask {
	if m < 0 || int(m) >= len(modMasks) {
		return 0
	}
	return modMasks[m]
}

func Combine(mods ...Mod) Mask {
	var mask Mask
	for _, m := range mods {
		mask |= m.Mask()
	}
	return mask
}

// ParseAll parses every token and combines them. The first unknown token
// aborts parsing.
func ParseAll(names []string) (Mask, error) {
	var mask Mask
	for _, name := range names {
		m, err := ParseMod(name)
		if err != nil {
			return 0, err
		}
		mask |= m.Mask()
	}
	return mask, nil
}

// Intersects reports whether any modifier bit of state is in the mask.
func (mask Mask) Intersects(state uint16) bool {
	return uint16(mask)&state != 0
}

// Names lists the individual modifiers contained in the mask, never "all".
func (mask Mask) Names() []string {
	var names []string
	for m := Shift; m < All; m++ {
		if mask&m.Mask() != 0 {
			names = append(names, m.String())
		}
	}
	return names
}

func (mask Mask) String() string {
	if mask == 0 {
		return "none"
	}
	return strings.Join(mask.Names(), "|")
}
