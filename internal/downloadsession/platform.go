package downloadsession

// Platform is the build variant a download targets. The catalog card view
// uses the zero value (no explicit platform); the detail view offers explicit
// windows and linux variants.
type Platform string

const (
	PlatformAny     Platform = ""
	PlatformWindows Platform = "windows"
	PlatformLinux   Platform = "linux"
)

func (p Platform) String() string {
	return string(p)
}

// defaultAvailability mirrors the current release policy: the implicit
// variant and the windows build are dispatchable, the linux build is not yet
// published. An unavailable platform never leaves Idle; its trigger is meant
// to be disabled at the interface level.
func defaultAvailability() map[Platform]bool {
	return map[Platform]bool{
		PlatformAny:     true,
		PlatformWindows: true,
		PlatformLinux:   false,
	}
}
