// Package config provides the launch-file loader for tiago.
package config

import (
	"os"

	"go.trai.ch/tiago/internal/core/domain"
	"go.trai.ch/tiago/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*FileLoader)(nil)

// FileLoader implements ports.ConfigLoader using a YAML file.
type FileLoader struct{}

// Launchfile represents the structure of the tiago.yaml launch file.
// Hardware dimensions default to enabled; set one to false to drop its
// declaration. Arguments holds value overrides keyed by argument name;
// names are validated against the declarations at Set time, not here.
type Launchfile struct {
	Hardware  HardwareDTO       `yaml:"hardware"`
	Arguments map[string]string `yaml:"arguments"`
}

// HardwareDTO mirrors the hardware section of the launch file. Pointers
// distinguish "absent" (keep default) from an explicit false.
type HardwareDTO struct {
	Arm         *bool `yaml:"arm"`
	WristModel  *bool `yaml:"wrist_model"`
	EndEffector *bool `yaml:"end_effector"`
	FTSensor    *bool `yaml:"ft_sensor"`
	CameraModel *bool `yaml:"camera_model"`
	WheelModel  *bool `yaml:"wheel_model"`
	LaserModel  *bool `yaml:"laser_model"`
	RGBDSensors *bool `yaml:"rgbd_sensors"`
}

// Load reads the launch file at path and returns the launch profile.
func (l *FileLoader) Load(path string) (domain.LaunchProfile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return domain.LaunchProfile{}, zerr.Wrap(err, "failed to read launch file")
	}

	var file Launchfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.LaunchProfile{}, zerr.Wrap(err, "failed to parse launch file")
	}

	profile := domain.DefaultProfile()
	hw := &profile.Hardware
	applyFlag(&hw.Arm, file.Hardware.Arm)
	applyFlag(&hw.WristModel, file.Hardware.WristModel)
	applyFlag(&hw.EndEffector, file.Hardware.EndEffector)
	applyFlag(&hw.FTSensor, file.Hardware.FTSensor)
	applyFlag(&hw.CameraModel, file.Hardware.CameraModel)
	applyFlag(&hw.Base.WheelModel, file.Hardware.WheelModel)
	applyFlag(&hw.Base.LaserModel, file.Hardware.LaserModel)
	applyFlag(&hw.Base.RGBDSensors, file.Hardware.RGBDSensors)
	profile.Overrides = file.Arguments

	return profile, nil
}

func applyFlag(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
