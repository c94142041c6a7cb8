package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mamix14/SystemInfoTool/internal/collect"
	"github.com/mamix14/SystemInfoTool/internal/config"
	"github.com/mamix14/SystemInfoTool/internal/present"
	"github.com/mamix14/SystemInfoTool/internal/report"
	"github.com/mamix14/SystemInfoTool/internal/ui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgFile string
		debug   bool
		noColor bool
	)

	root := &cobra.Command{
		Use:   "sysinfotool",
		Short: "Interactive hardware and OS inventory tool",
		Long: `sysinfotool collects CPU, memory, GPU, storage, motherboard, network
and OS details into tabbed reports. Run it without arguments for an
interactive session, or use the scan subcommand for one-shot output.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgFile, debug)
			if err != nil {
				return err
			}
			return runInteractive(cmd, cfg, !noColor)
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultFile, "config file path")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "log probe failures to stderr")
	root.Flags().BoolVar(&noColor, "no-color", false, "disable ANSI colors")

	root.AddCommand(newScanCmd(&cfgFile, &debug))
	root.AddCommand(newVersionCmd())
	return root
}

func loadConfig(path string, debug bool) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if debug {
		cfg.Debug = true
	}
	cfg.SetupLogging()
	return cfg, nil
}

func runInteractive(cmd *cobra.Command, cfg config.Config, color bool) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	collector := collect.New(collect.Options{
		CommandTimeout: cfg.CommandTimeout,
		SampleWindow:   cfg.SampleWindow,
	})
	term := ui.NewTerminal(cmd.OutOrStdout(), color)
	p := present.New(collector, term)
	go p.Run(ctx)

	return term.Session(ctx, p, cfg.ExportDir, cmd.InOrStdin())
}

func newScanCmd(cfgFile *string, debug *bool) *cobra.Command {
	var output string

	scan := &cobra.Command{
		Use:   "scan",
		Short: "Run one scan and print the full report",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*cfgFile, *debug)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			collector := collect.New(collect.Options{
				CommandTimeout: cfg.CommandTimeout,
				SampleWindow:   cfg.SampleWindow,
			})

			slots := make(map[report.Category]string, len(report.Order))
			collector.Scan(ctx, func(s report.Section) {
				slots[s.Category] = s.Text
			})

			if output == "" {
				fmt.Fprint(cmd.OutOrStdout(), present.Render(slots))
				return nil
			}
			if err := os.WriteFile(output, []byte(present.Render(slots)), 0o644); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Exported to", output)
			return nil
		},
	}

	scan.Flags().StringVarP(&output, "output", "o", "", "write the report to a file instead of stdout")
	return scan
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sysinfotool %s\n", config.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", config.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", config.BuildDate)
		},
	}
}
