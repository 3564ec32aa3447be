// SPDX-FileCopyrightText: 2026 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package xbanish

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/linuxdeepin/dde-xbanish/common/modmask"
	"github.com/linuxdeepin/go-lib/xdg/basedir"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	IgnoreMods []string `yaml:"ignore_mods"`
	LogLevel   string   `yaml:"log_level"`
	DBus       bool     `yaml:"dbus"`
}

func DefaultConfigFile() string {
	return filepath.Join(basedir.GetUserConfigDir(), "deepin", "dde-xbanish", "config.yaml")
}

// LoadConfig reads filename. When optional is true a missing file yields an
// empty config instead of an error.
func LoadConfig(filename string, optional bool) (*Config, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, xerrors.Errorf("read config: %w", err)
	}
	return parseConfig(content)
}

func parseConfig(content []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	err := dec.Decode(&cfg)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, xerrors.Errorf("parse config: %w", err)
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *Config) Validate() error {
	_, err := cfg.IgnoredMask()
	return err
}

func (cfg *Config) IgnoredMask() (modmask.Mask, error) {
	return modmask.ParseAll(cfg.IgnoreMods)
}
