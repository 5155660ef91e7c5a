package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/tiago/internal/core/domain"
	"go.trai.ch/zerr"
)

var suffixFieldNames = []string{
	domain.ArgArm,
	domain.ArgWristModel,
	domain.ArgEndEffector,
	domain.ArgFTSensor,
	domain.ArgCameraModel,
}

func (c *CLI) newSuffixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suffix",
		Short: "Print the hardware suffix for the selected dimensions",
		Long: "Resolves the selected hardware arguments and joins their values " +
			"with underscores, e.g. 'right-arm_wrist-2017_pal-gripper'. " +
			"Useful for disambiguating file or topic names per hardware variant.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names, err := cmd.Flags().GetStringSlice("fields")
			if err != nil {
				return err
			}
			fields, err := suffixFields(names)
			if err != nil {
				return err
			}

			values, err := overrides(cmd)
			if err != nil {
				return err
			}

			suffix, err := c.app.Suffix(launchFile(cmd), fields, values)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), suffix)
			return nil
		},
	}

	cmd.Flags().StringSlice("fields", suffixFieldNames,
		"Hardware dimensions to include, in fixed order")

	return cmd
}

// suffixFields maps field names to the suffix selection. Field order in the
// suffix is fixed regardless of the order given here.
func suffixFields(names []string) (domain.SuffixOptions, error) {
	var fields domain.SuffixOptions
	for _, name := range names {
		switch name {
		case domain.ArgArm:
			fields.Arm = true
		case domain.ArgWristModel:
			fields.WristModel = true
		case domain.ArgEndEffector:
			fields.EndEffector = true
		case domain.ArgFTSensor:
			fields.FTSensor = true
		case domain.ArgCameraModel:
			fields.CameraModel = true
		default:
			return domain.SuffixOptions{}, zerr.With(zerr.New("unknown suffix field"), "field", name)
		}
	}
	return fields, nil
}
