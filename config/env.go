package config

import (
	"fmt"
	"os"
	"strings"
)

var (
	TrueValues  = []string{"1", "yes", "true", "on"}  // TrueValues are the environment values considered "true", compared case-insensitive.
	FalseValues = []string{"0", "no", "false", "off"} // FalseValues are the environment values considered "false", compared case-insensitive.
)

type environment map[string]string

func readEnv() environment {
	env := environment{}
	for _, kv := range os.Environ() {
		key, val, found := strings.Cut(kv, "=")
		if !found {
			continue
		}
		env[strings.ToLower(key)] = val
	}
	return env
}

// lookup returns the trimmed value of a variable, reporting false if it's unset or blank.
func (e environment) lookup(key string) (string, bool) {
	val, ok := e[strings.ToLower(key)]
	if !ok {
		return "", false
	}
	val = strings.TrimSpace(val)
	return val, len(val) > 0
}

func (e environment) bool(key string, target *bool) error {
	val, ok := e.lookup(key)
	if !ok {
		return nil
	}
	for _, t := range TrueValues {
		if strings.EqualFold(val, t) {
			*target = true
			return nil
		}
	}
	for _, f := range FalseValues {
		if strings.EqualFold(val, f) {
			*target = false
			return nil
		}
	}
	return fmt.Errorf("environment variable '%s' has value '%s', which is not a boolean", key, val)
}

func (e environment) string(key string, target *string) {
	if val, ok := e.lookup(key); ok {
		*target = val
	}
}

// ApplyEnv overrides settings from environment variables named with the given prefix.
// Variable names are compared case-insensitive, and blank values are ignored.
//
//   - <PREFIX>_HELP_ENABLED
//   - <PREFIX>_HELP_FLAGS, comma separated
//   - <PREFIX>_APP_NAME
//   - <PREFIX>_FORM_CONFIRM
//   - <PREFIX>_LOG_LEVEL
//   - <PREFIX>_LOG_FILE
//   - <PREFIX>_COLOR
//
// Boolean values may be spelled as any of [TrueValues] or [FalseValues].
// Every value that can't be applied is reported in the returned [Problems].
func (c *Config) ApplyEnv(prefix string) error {
	env := readEnv()
	key := func(name string) string {
		if len(prefix) == 0 {
			return name
		}
		return prefix + "_" + name
	}
	var problems Problems
	problems.Add(env.bool(key("HELP_ENABLED"), &c.Help.Enabled))
	if val, ok := env.lookup(key("HELP_FLAGS")); ok {
		var flags []string
		for _, flag := range strings.Split(val, ",") {
			if flag = strings.TrimSpace(flag); len(flag) > 0 {
				flags = append(flags, flag)
			}
		}
		c.Help.Flags = flags
	}
	env.string(key("APP_NAME"), &c.Help.AppName)
	problems.Add(env.bool(key("FORM_CONFIRM"), &c.Form.Confirm))
	env.string(key("LOG_LEVEL"), &c.Log.Level)
	env.string(key("LOG_FILE"), &c.Log.File)
	problems.Add(env.bool(key("COLOR"), &c.Color.Enabled))
	return problems.Result()
}
