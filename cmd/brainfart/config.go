// This file is part of brainfart - https://github.com/daddinuz/brainfart
//
// Copyright 2024 The brainfart Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

const configName = ".brainfart.toml"

// config holds the settings read from the configuration file. Command line
// flags take precedence over it.
type config struct {
	Prompt      string `toml:"prompt"`
	InputPrompt string `toml:"input_prompt"`
	HistoryFile string `toml:"history_file"`
	Raw         bool   `toml:"raw"`
	LogFile     string `toml:"log_file"`
	LogLevel    string `toml:"log_level"`
}

func defaultConfig() *config {
	return &config{
		Prompt:      "> ",
		InputPrompt: "? ",
		HistoryFile: "~/.brainfart_history",
		Raw:         true,
		LogLevel:    "warn",
	}
}

// loadConfig loads the configuration from fileName. If fileName is empty,
// $HOME/.brainfart.toml is used if it exists, otherwise the defaults are
// returned.
func loadConfig(fileName string) (*config, error) {
	c := defaultConfig()
	if fileName == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return c.expand(), nil
		}
		fileName = filepath.Join(home, configName)
		if _, err = os.Stat(fileName); err != nil {
			return c.expand(), nil
		}
	}
	md, err := toml.DecodeFile(fileName, c)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", fileName)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		names := make([]string, len(keys))
		for n, k := range keys {
			names[n] = k.String()
		}
		return nil, errors.Errorf("config %s: unknown keys: %s", fileName, strings.Join(names, ", "))
	}
	return c.expand(), nil
}

// expand replaces a leading ~ in file names with the user's home directory.
func (c *config) expand() *config {
	c.HistoryFile = expandHome(c.HistoryFile)
	c.LogFile = expandHome(c.LogFile)
	return c
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[1:])
}
