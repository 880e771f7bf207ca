package bootstrap

// Target is the platform family an artifact was compiled for.
type Target int

const (
	DesktopTarget Target = iota
	MobileTarget
)

func (t Target) String() string {
	if t == MobileTarget {
		return "mobile"
	}
	return "desktop"
}
