// Package greeting builds the line printed by the task.
package greeting

import (
	"strings"

	"github.com/samber/lo"
)

const (
	// NameEnv is the environment variable holding the name to greet.
	NameEnv = "NAME"
	// DefaultName is greeted when no usable name is given.
	DefaultName = "World"
)

// Format returns "Hello <name>!". The name is raw with leading and trailing
// white space removed, or DefaultName if raw is nil or blank.
func Format(raw *string) string {
	name := lo.CoalesceOrEmpty(strings.TrimSpace(lo.FromPtr(raw)), DefaultName)
	return "Hello " + name + "!"
}

// FromEnv formats the value of NameEnv as seen by lookupEnv.
func FromEnv(lookupEnv func(key string) (string, bool)) string {
	value, ok := lookupEnv(NameEnv)
	if !ok {
		return Format(nil)
	}
	return Format(&value)
}
