// Package config loads the keymap configuration from a TOML file, filling in
// defaults for anything the file leaves out.
package config

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
)

// Keymap names the key bound to each action. Keys are written as a single
// printable rune or the word "space".
type Keymap struct {
	Override         string `toml:"override"`
	Brush            string `toml:"brush"`
	Eraser           string `toml:"eraser"`
	Picker           string `toml:"picker"`
	Move             string `toml:"move"`
	ToggleBoxVisible string `toml:"toggle_box_visible"`
	ToggleBoxLock    string `toml:"toggle_box_lock"`
	Quit             string `toml:"quit"`
}

// Config is the full configuration file.
type Config struct {
	Keys Keymap `toml:"keys"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Keys: Keymap{
			Override:         "space",
			Brush:            "b",
			Eraser:           "e",
			Picker:           "p",
			Move:             "m",
			ToggleBoxVisible: "v",
			ToggleBoxLock:    "l",
			Quit:             "q",
		},
	}
}

// Load reads a config file, applies defaults for absent fields, and
// validates the result. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var file Config
	if err := toml.Unmarshal(data, &file); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	merge(&cfg.Keys, file.Keys)

	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// merge overlays any keys the file actually set onto the defaults.
func merge(dst *Keymap, src Keymap) {
	for name, field := range bindings(&src) {
		if *field != "" {
			*bindings(dst)[name] = *field
		}
	}
}

// bindings returns the named fields of a keymap.
func bindings(k *Keymap) map[string]*string {
	return map[string]*string{
		"override":           &k.Override,
		"brush":              &k.Brush,
		"eraser":             &k.Eraser,
		"picker":             &k.Picker,
		"move":               &k.Move,
		"toggle_box_visible": &k.ToggleBoxVisible,
		"toggle_box_lock":    &k.ToggleBoxLock,
		"quit":               &k.Quit,
	}
}

// Names lists the keymap actions in display order.
func Names() []string {
	return []string{
		"override", "brush", "eraser", "picker", "move",
		"toggle_box_visible", "toggle_box_lock", "quit",
	}
}

// Binding returns the key name bound to the given action.
func (k Keymap) Binding(action string) string {
	if field, ok := bindings(&k)[action]; ok {
		return *field
	}
	return ""
}

// Validate checks every binding is a legal key name and no two actions share
// a key. Duplicates are detected on the parsed rune, so "space" and " " count
// as the same key.
func Validate(cfg Config) error {
	used := make(map[rune]string)
	k := cfg.Keys
	for _, name := range Names() {
		key := k.Binding(name)
		r, err := ParseKey(key)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if prev, ok := used[r]; ok {
			return fmt.Errorf("key %q bound to both %s and %s", key, prev, name)
		}
		used[r] = name
	}
	return nil
}

// ParseKey converts a key name to the rune it stands for. Legal names are
// "space" and any single printable rune.
func ParseKey(name string) (rune, error) {
	if name == "space" {
		return ' ', nil
	}
	if utf8.RuneCountInString(name) != 1 {
		return 0, fmt.Errorf("invalid key name %q", name)
	}
	r, _ := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return 0, fmt.Errorf("invalid key name %q", name)
	}
	return r, nil
}
