package ports

import "go.trai.ch/tiago/internal/core/domain"

// ConfigLoader loads a launch profile (enabled hardware dimensions and
// argument overrides) from a launch file.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the launch file at path. A missing file is an error;
	// callers that treat the file as optional check for fs.ErrNotExist.
	Load(path string) (domain.LaunchProfile, error)
}
