package domain

// SuffixOptions selects which hardware dimensions the suffix includes.
type SuffixOptions struct {
	Arm         bool
	WristModel  bool
	EndEffector bool
	FTSensor    bool
	CameraModel bool
}

// HardwareSuffix returns a deferred expression that joins the resolved
// values of the selected dimensions with underscores and wraps the result in
// single quotes. Field order is fixed (arm, wrist_model, end_effector,
// ft_sensor, camera_model); disabled dimensions are omitted without leaving
// a dangling separator. With nothing selected the expression evaluates to
// the two quote characters.
//
// Typical use is disambiguating file or topic names per hardware variant,
// e.g. 'right-arm_wrist-2017_pal-gripper'.
func HardwareSuffix(opts SuffixOptions) Substitution {
	parts := Concat{Text("'")}
	for _, field := range []struct {
		enabled bool
		name    string
	}{
		{opts.Arm, ArgArm},
		{opts.WristModel, ArgWristModel},
		{opts.EndEffector, ArgEndEffector},
		{opts.FTSensor, ArgFTSensor},
		{opts.CameraModel, ArgCameraModel},
	} {
		if field.enabled {
			parts = append(parts, Configuration(field.name), Text("_"))
		}
	}
	// Drop the separator after the last field.
	if len(parts) > 1 {
		parts = parts[:len(parts)-1]
	}
	parts = append(parts, Text("'"))
	return parts
}
