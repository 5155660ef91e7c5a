package domain

// Fixed argument names for the TIAGo-specific hardware dimensions.
const (
	ArgArm         = "arm"
	ArgWristModel  = "wrist_model"
	ArgEndEffector = "end_effector"
	ArgFTSensor    = "ft_sensor"
	ArgCameraModel = "camera_model"
)

// Built-in defaults for the hardware dimensions. Each can be overridden per
// call through HardwareOptions.
const (
	DefaultArm         = "no-arm"
	DefaultWristModel  = "wrist-2010"
	DefaultEndEffector = "no-end-effector"
	DefaultFTSensor    = "schunk-ft"
	DefaultCameraModel = "orbbec-astra"
)

// HardwareOptions selects which hardware dimensions to declare and
// optionally overrides their defaults. An empty Default* field means the
// built-in default. Base is passed through to the base-hardware provider
// untouched.
type HardwareOptions struct {
	Arm         bool
	WristModel  bool
	EndEffector bool
	FTSensor    bool
	CameraModel bool

	DefaultArm         string
	DefaultWristModel  string
	DefaultEndEffector string
	DefaultFTSensor    string
	DefaultCameraModel string

	Base BaseOptions
}

// AllHardware enables every TIAGo hardware dimension and every base
// dimension, with built-in defaults. The description generator needs all of
// them declared.
func AllHardware() HardwareOptions {
	return HardwareOptions{
		Arm:         true,
		WristModel:  true,
		EndEffector: true,
		FTSensor:    true,
		CameraModel: true,
		Base:        AllBase(),
	}
}

// HardwareArguments returns the launch argument declarations for the
// requested TIAGo hardware dimensions, layered on top of the declarations
// produced by the base-hardware provider. Base arguments come first; the
// TIAGo dimensions follow in fixed order (arm, wrist_model, end_effector,
// ft_sensor, camera_model), skipping disabled ones.
//
// The provider may be nil, in which case no base arguments are declared.
func HardwareArguments(base BaseProvider, opts HardwareOptions) []Argument {
	var args []Argument
	if base != nil {
		args = base(opts.Base)
	}
	if opts.Arm {
		args = append(args, Argument{
			Name:        ArgArm,
			Default:     orDefault(opts.DefaultArm, DefaultArm),
			Description: "Which type of arm TIAGo has.",
			Choices:     []string{"no-arm", "left-arm", "right-arm"},
		})
	}
	if opts.WristModel {
		args = append(args, Argument{
			Name:        ArgWristModel,
			Default:     orDefault(opts.DefaultWristModel, DefaultWristModel),
			Description: "Wrist model.",
			Choices:     []string{"wrist-2010", "wrist-2017"},
		})
	}
	if opts.EndEffector {
		args = append(args, Argument{
			Name:        ArgEndEffector,
			Default:     orDefault(opts.DefaultEndEffector, DefaultEndEffector),
			Description: "End effector model.",
			Choices: []string{
				"pal-gripper", "pal-hey5", "schunk-wsg", "custom", "no-end-effector",
			},
		})
	}
	if opts.FTSensor {
		args = append(args, Argument{
			Name:        ArgFTSensor,
			Default:     orDefault(opts.DefaultFTSensor, DefaultFTSensor),
			Description: "FT sensor model.",
			Choices:     []string{"schunk-ft", "no-ft-sensor"},
		})
	}
	if opts.CameraModel {
		args = append(args, Argument{
			Name:        ArgCameraModel,
			Default:     orDefault(opts.DefaultCameraModel, DefaultCameraModel),
			Description: "Head camera model.",
			Choices: []string{
				"no-camera", "orbbec-astra", "orbbec-astra-pro", "asus-xtion",
			},
		})
	}
	return args
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
