package keymap

import "strings"

// Platform selects which concrete modifier the logical Primary
// modifier resolves to. It is plain data; resolution logic never
// consults the build target.
type Platform string

const (
	PlatformLinux   Platform = "linux"
	PlatformWindows Platform = "windows"
	PlatformMac     Platform = "mac"
)

// metaPrimaryPlatforms lists the platforms where Primary means Meta.
// Everywhere else Primary means Ctrl.
var metaPrimaryPlatforms = map[Platform]bool{
	PlatformMac: true,
}

// MetaPrimary reports whether Primary resolves to Meta on p.
func (p Platform) MetaPrimary() bool {
	return metaPrimaryPlatforms[p]
}

// ParsePlatform normalizes a platform name. Unrecognized names fall
// back to PlatformLinux.
func ParsePlatform(name string) Platform {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "mac", "macos", "darwin":
		return PlatformMac
	case "windows", "win":
		return PlatformWindows
	default:
		return PlatformLinux
	}
}
