package cmd

import (
	"github.com/spf13/cobra"

	e "github.com/cloudposse/chronometer/internal/exec"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Short:   "Print the chronometer version",
	Long:    `This command prints the chronometer version, operating system and architecture.`,
	Example: "chronometer version\nchronometer version --format json",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := cmd.Flags().GetString("format")
		if err != nil {
			return err
		}
		return e.NewVersionExec(cmd.OutOrStdout(), chronoConfig.UI.Banner).Execute(format)
	},
}

func init() {
	versionCmd.Flags().StringP("format", "f", "", "Output format: json or yaml")
	RootCmd.AddCommand(versionCmd)
}
