package domain

// LaunchProfile is a loaded launch-file: which hardware dimensions to
// declare and which argument values to override. Overrides are applied
// after declaration and are validated against the declared choice sets.
type LaunchProfile struct {
	Hardware  HardwareOptions
	Overrides map[string]string
}

// DefaultProfile declares every dimension with no overrides.
func DefaultProfile() LaunchProfile {
	return LaunchProfile{Hardware: AllHardware()}
}
