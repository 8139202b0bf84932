package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "gh-firstmatch",
	Short: "Good-first-issue recommender",
	Long: `gh-firstmatch recommends beginner-friendly GitHub issues for a developer
profile. It searches the GitHub issue search API by keyword, embeds the
candidates and the profile text into a shared vector space, and ranks the
candidates by similarity.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")

	rootCmd.AddCommand(newMatchCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("gh-firstmatch version %s\n", version)
		},
	}
}
