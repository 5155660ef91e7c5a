package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tiago/internal/core/domain"
)

func TestHardwareArguments_AllDimensions(t *testing.T) {
	args := domain.HardwareArguments(nil, domain.HardwareOptions{
		Arm:         true,
		WristModel:  true,
		EndEffector: true,
		FTSensor:    true,
		CameraModel: true,
	})

	require.Len(t, args, 5)

	wantNames := []string{"arm", "wrist_model", "end_effector", "ft_sensor", "camera_model"}
	wantDefaults := []string{"no-arm", "wrist-2010", "no-end-effector", "schunk-ft", "orbbec-astra"}
	for i, arg := range args {
		assert.Equal(t, wantNames[i], arg.Name)
		assert.Equal(t, wantDefaults[i], arg.Default)
		assert.Contains(t, arg.Choices, arg.Default, "default must be a declared choice")
	}

	assert.Equal(t, []string{"no-arm", "left-arm", "right-arm"}, args[0].Choices)
	assert.Equal(t, []string{"wrist-2010", "wrist-2017"}, args[1].Choices)
	assert.Equal(t,
		[]string{"pal-gripper", "pal-hey5", "schunk-wsg", "custom", "no-end-effector"},
		args[2].Choices)
	assert.Equal(t, []string{"schunk-ft", "no-ft-sensor"}, args[3].Choices)
	assert.Equal(t,
		[]string{"no-camera", "orbbec-astra", "orbbec-astra-pro", "asus-xtion"},
		args[4].Choices)
}

func TestHardwareArguments_Subsets(t *testing.T) {
	cases := []struct {
		name string
		opts domain.HardwareOptions
		want []string
	}{
		{"none", domain.HardwareOptions{}, nil},
		{"arm only", domain.HardwareOptions{Arm: true}, []string{"arm"}},
		{"camera only", domain.HardwareOptions{CameraModel: true}, []string{"camera_model"}},
		{
			"arm and ft_sensor keep fixed order",
			domain.HardwareOptions{FTSensor: true, Arm: true},
			[]string{"arm", "ft_sensor"},
		},
		{
			"wrist, end effector, camera",
			domain.HardwareOptions{WristModel: true, EndEffector: true, CameraModel: true},
			[]string{"wrist_model", "end_effector", "camera_model"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			args := domain.HardwareArguments(nil, tc.opts)
			names := make([]string, 0, len(args))
			for _, arg := range args {
				names = append(names, arg.Name)
			}
			if len(tc.want) == 0 {
				assert.Empty(t, names)
				return
			}
			assert.Equal(t, tc.want, names)
		})
	}
}

func TestHardwareArguments_DefaultOverrides(t *testing.T) {
	args := domain.HardwareArguments(nil, domain.HardwareOptions{
		Arm:         true,
		CameraModel: true,
		DefaultArm:  "right-arm",
		// Camera default not overridden, keeps built-in.
	})

	require.Len(t, args, 2)
	assert.Equal(t, "right-arm", args[0].Default)
	assert.Equal(t, "orbbec-astra", args[1].Default)
}

func TestHardwareArguments_BaseProviderFirst(t *testing.T) {
	base := func(opts domain.BaseOptions) []domain.Argument {
		return []domain.Argument{{Name: "laser_model", Default: "sick-571"}}
	}

	args := domain.HardwareArguments(base, domain.HardwareOptions{Arm: true})

	require.Len(t, args, 2)
	assert.Equal(t, "laser_model", args[0].Name, "base arguments come first")
	assert.Equal(t, "arm", args[1].Name)
}

func TestBaseArguments(t *testing.T) {
	args := domain.BaseArguments(domain.AllBase())

	require.Len(t, args, 3)
	assert.Equal(t, "wheel_model", args[0].Name)
	assert.Equal(t, "laser_model", args[1].Name)
	assert.Equal(t, "rgbd_sensors", args[2].Name)
	assert.Equal(t, "sick-571", args[1].Default)

	overridden := domain.BaseArguments(domain.BaseOptions{
		LaserModel:        true,
		DefaultLaserModel: "hokuyo",
	})
	require.Len(t, overridden, 1)
	assert.Equal(t, "hokuyo", overridden[0].Default)
}
