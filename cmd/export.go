package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/oceaniq/oceaniq/internal/progress"
	"github.com/oceaniq/oceaniq/internal/web"
)

var exportCmd = &cobra.Command{
	Use:   "export <dir>",
	Short: "Pre-render the site into a static directory",
	Long: `Renders every page with its default state, every chart image and the stylesheets and scripts into <dir>.

The exported pages switch insights charts, select map floats and check the
sign-in and registration forms in the browser. Export requests and the chat
assistant need the live server and are disabled in the export.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		defer logger.Sync()

		site, err := web.New(cfg.Site, logger)
		if err != nil {
			return fmt.Errorf("loading pages: %w", err)
		}

		n, err := site.Export(args[0], progress.NewReporter("Exporting site"))
		if err != nil {
			return fmt.Errorf("exporting to %s: %w", args[0], err)
		}
		logger.Info("export complete", zap.String("dir", args[0]), zap.Int("files", n))
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d files to %s\n", n, args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
