package domain

// Argument names declared by the stock base-hardware provider.
const (
	ArgWheelModel  = "wheel_model"
	ArgLaserModel  = "laser_model"
	ArgRGBDSensors = "rgbd_sensors"
)

// BaseProvider supplies the launch argument declarations for the underlying
// mobile base platform. The TIAGo layer treats it as opaque: whatever it
// returns is declared ahead of the TIAGo-specific arguments.
type BaseProvider func(BaseOptions) []Argument

// BaseOptions selects which base-platform dimensions the stock provider
// declares, with optional default overrides.
type BaseOptions struct {
	WheelModel  bool
	LaserModel  bool
	RGBDSensors bool

	DefaultWheelModel  string
	DefaultLaserModel  string
	DefaultRGBDSensors string
}

// AllBase enables every base dimension with built-in defaults.
func AllBase() BaseOptions {
	return BaseOptions{WheelModel: true, LaserModel: true, RGBDSensors: true}
}

// BaseArguments is the stock BaseProvider for the PMB-2 mobile base. Order
// is fixed: wheel_model, laser_model, rgbd_sensors, skipping disabled
// dimensions.
func BaseArguments(opts BaseOptions) []Argument {
	var args []Argument
	if opts.WheelModel {
		args = append(args, Argument{
			Name:        ArgWheelModel,
			Default:     orDefault(opts.DefaultWheelModel, "moog"),
			Description: "Wheel model.",
			Choices:     []string{"moog", "nadia"},
		})
	}
	if opts.LaserModel {
		args = append(args, Argument{
			Name:        ArgLaserModel,
			Default:     orDefault(opts.DefaultLaserModel, "sick-571"),
			Description: "Base laser model.",
			Choices:     []string{"sick-571", "sick-561", "hokuyo", "no-laser"},
		})
	}
	if opts.RGBDSensors {
		args = append(args, Argument{
			Name:        ArgRGBDSensors,
			Default:     orDefault(opts.DefaultRGBDSensors, "false"),
			Description: "Whether the base carries RGBD sensors.",
			Choices:     []string{"true", "false"},
		})
	}
	return args
}
