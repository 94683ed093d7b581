package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"armory/core/logger"
	"armory/feature/bones"

	"github.com/spf13/cobra"
)

// resolveCmd represents the resolve command
var resolveCmd = &cobra.Command{
	Use:   "resolve [target]",
	Short: "Resolve a bone name against a skeleton",
	Long: `Resolves a requested bone (e.g. 'WristR') against the bone names of a rig
and prints the tier trace. Bones are given in skeleton order.`,
	Example: `  armory resolve WristR --bones Hips,Spine,Hand_R
  armory resolve righthand --bones RHand_Custom --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		boneList, _ := cmd.Flags().GetString("bones")
		jsonOutput, _ := cmd.Flags().GetBool("json")
		verbose, _ := cmd.Flags().GetBool("verbose")

		level := "warn"
		if verbose {
			level = "debug"
		}
		logg, err := logger.New(&logger.Config{Level: level, Format: "console"})
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		sk := bones.NewSkeleton(splitBones(boneList))
		res := bones.NewResolver(nil, logg).Resolve(sk, args[0])

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}

		fmt.Printf("\n=== Bone Resolution: %s ===\n", res.Target)
		for _, a := range res.Attempts {
			mark := "miss"
			if a.Matched {
				mark = "hit"
			}
			fmt.Printf("  %-10s %-4s %s\n", a.Tier, mark, a.Detail)
		}
		if res.Found {
			fmt.Printf("Resolved: %s (%s)\n", res.Bone, res.Tier)
		} else {
			fmt.Printf("Not found among %d bones\n", sk.Len())
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().String("bones", "", "Comma separated skeleton bone names, in skeleton order")
	resolveCmd.Flags().Bool("json", false, "Print the resolution as JSON")
	resolveCmd.Flags().BoolP("verbose", "v", false, "Log every tier at debug level")
}

func splitBones(list string) []string {
	var names []string
	for _, name := range strings.Split(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}
