package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jjenkins/resume/internal/catalog"
	"github.com/spf13/cobra"
)

var resumeType string

var resumeCmd = &cobra.Command{
	Use:   "show <character-id>",
	Short: "Print a character's achievement résumé",
	Long: `Show fetches the character's Lodestone achievement page and prints the résumé.

Résumé types:
  all  every category (default)
  u    ultimate raids
  s    savage raids
  bm   blue mage
  ad   another dungeons
  pd   public raids
  dd   deep dungeons

Examples:
  ./resume show 12345678
  ./resume show 12345678 --type u`,
	Args: cobra.ExactArgs(1),
	RunE: runResume,
}

func init() {
	rootCmd.AddCommand(resumeCmd)
	resumeCmd.Flags().StringVarP(&resumeType, "type", "t", catalog.SelectorAll, "Résumé type (all/u/s/bm/ad/pd/dd)")
}

func runResume(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	report, err := a.resume.Report(ctx, args[0], resumeType)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), report.Text())
	return nil
}
