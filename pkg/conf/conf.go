// Copyright 2025 Arcade Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package conf

import (
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/go-arcade/ordered/pkg/hasher"
	"github.com/go-arcade/ordered/pkg/log"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

/**
 * @file: conf.go
 * @description: ordmap configuration, toml file plus ORDMAP_* env overrides
 */

const EnvPrefix = "ORDMAP"

// AppConfig holds all configuration settings.
type AppConfig struct {
	Map MapConf  `mapstructure:"map"`
	Log log.Conf `mapstructure:"log"`
}

// MapConf configures the maps built by the command line tool.
type MapConf struct {
	Capacity int    `mapstructure:"capacity"` // preallocated entries, 0 allocates lazily
	Hasher   string `mapstructure:"hasher"`   // see hasher.ByName
}

// Validate checks the configuration.
func (c *AppConfig) Validate() error {
	if c.Map.Capacity < 0 {
		return errors.Errorf("map.capacity must not be negative, got %d", c.Map.Capacity)
	}
	if _, err := hasher.ByName(c.Map.Hasher); err != nil {
		return errors.Wrap(err, "map.hasher")
	}
	return errors.Wrap(c.Log.Validate(), "log")
}

// Loader reads AppConfig from an optional toml file and the environment.
type Loader struct {
	v    *viper.Viper
	path string
}

// NewLoader returns a Loader for the file at path. An empty path uses
// defaults and environment variables only.
func NewLoader(path string) *Loader {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
	}
	return &Loader{v: v, path: path}
}

func setDefaults(v *viper.Viper) {
	d := log.SetDefaults()
	v.SetDefault("map.capacity", 0)
	v.SetDefault("map.hasher", hasher.Default)
	v.SetDefault("log.output", d.Output)
	v.SetDefault("log.path", d.Path)
	v.SetDefault("log.filename", d.Filename)
	v.SetDefault("log.level", d.Level)
	v.SetDefault("log.keepDays", d.KeepDays)
	v.SetDefault("log.rotateSize", d.RotateSize)
	v.SetDefault("log.rotateNum", d.RotateNum)
}

// SetDefault overrides the built-in default for key. Values from the file
// and the environment still take precedence.
func (l *Loader) SetDefault(key string, value any) {
	l.v.SetDefault(key, value)
}

// Load reads and validates the configuration.
func (l *Loader) Load() (AppConfig, error) {
	var cfg AppConfig
	if l.path != "" {
		if err := l.v.ReadInConfig(); err != nil {
			return cfg, errors.Wrap(err, "failed to read configuration file")
		}
	}
	return l.unmarshal()
}

func (l *Loader) unmarshal() (AppConfig, error) {
	var cfg AppConfig
	if err := l.v.Unmarshal(&cfg); err != nil {
		return cfg, errors.Wrap(err, "failed to unmarshal configuration file")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

// Watch calls fn with the reloaded configuration every time the file
// changes. It must be called after a successful Load.
func (l *Loader) Watch(fn func(AppConfig, error)) {
	if l.path == "" {
		return
	}
	l.v.OnConfigChange(func(e fsnotify.Event) {
		log.Infow("configuration changed, reloading", "file", e.Name, "op", e.Op.String())
		fn(l.unmarshal())
	})
	l.v.WatchConfig()
}

// Load is a shortcut for NewLoader(path).Load().
func Load(path string) (AppConfig, error) {
	return NewLoader(path).Load()
}
