package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/frederic-klein/transient/internal/config"
	"github.com/frederic-klein/transient/internal/logging"
	"github.com/frederic-klein/transient/internal/pip"
	"github.com/frederic-klein/transient/internal/pymeta"
	"github.com/frederic-klein/transient/internal/transient"
	"github.com/frederic-klein/transient/internal/version"
	"github.com/frederic-klein/transient/internal/wheel"
)

var (
	sourceName    string
	sourceVersion string
	targetName    string
	targetVersion string
	outputDir     string
	tag           string
	requires      []string
	python        string
	verbosity     int
)

func main() {
	cfg, cfgErr := config.Load()

	rootCmd := &cobra.Command{
		Use:   "transient",
		Short: "Create and manage transient placeholder packages",
		Long: `transient builds zero-code placeholder wheels whose only purpose is to
depend on a different "target" package, redirecting installations of a
"source" package without touching the consumer's dependency declarations.
Placeholders carry a marker so they can later be removed safely.`,
		Version:      version.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(verbosity)
			if cfgErr != nil {
				fmt.Fprintf(os.Stderr, "warning: %v\n", cfgErr)
			}
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG)")
	rootCmd.PersistentFlags().StringVar(&python, "python", cfg.Python, "Python interpreter driving the package manager")

	rootCmd.AddCommand(newCreateCmd(cfg))
	rootCmd.AddCommand(newInstallCmd())
	rootCmd.AddCommand(newUninstallCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSpecFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&sourceName, "source", "s", "", "Name of the transient package to be created")
	cmd.Flags().StringVar(&sourceVersion, "source-version", "", "Version of the transient package to be created")
	cmd.Flags().StringVarP(&targetName, "target", "t", "", "Name of the target package the transient package will depend on")
	cmd.Flags().StringVar(&targetVersion, "target-version", "", "Version of the target package the transient package will depend on")
	cmd.Flags().StringVar(&tag, "tag", wheel.DefaultTag, "Wheel platform tag")
	cmd.Flags().StringArrayVar(&requires, "requires", nil, "Additional requirement, e.g. \"numpy (>=1.26)\" (repeatable)")
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("target")
}

func newOrchestrator() *transient.Orchestrator {
	return transient.New(pip.NewClient(python), wheel.NewBuilder(tag))
}

func spec() pymeta.Spec {
	return pymeta.Spec{
		Source:        sourceName,
		SourceVersion: sourceVersion,
		Target:        targetName,
		TargetVersion: targetVersion,
		Extras:        requires,
	}
}

func newCreateCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Generate a transient package",
		Long: `Generate a transient package: an empty wheel that depends on the target
package in place of the source package.

If the source package is installed, its version is used; otherwise the
version defaults to "` + pymeta.DefaultVersion + `". If the target version is not given and
the source version was detected, the target is pinned to it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := newOrchestrator().Create(spec(), outputDir)
			if err != nil {
				return err
			}
			fmt.Printf("Created %s\n", path)
			return nil
		},
	}

	addSpecFlags(cmd)
	cmd.Flags().StringVarP(&outputDir, "output-directory", "o", cfg.OutputDirectory, "Directory where the wheel will be written")
	return cmd
}

func newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Generate and install a transient package",
		Long: `Generate a transient package and install it.

The source package is uninstalled before the placeholder is installed.
This removal happens even for a genuine, non-transient package of the
same name, and is not undone if a later step fails.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newOrchestrator().Install(spec())
		},
	}

	addSpecFlags(cmd)
	return cmd
}

func newUninstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall <package>",
		Short: "Uninstall a transient package",
		Long: `Uninstall a transient package.

Packages without the transient marker are left untouched and the
command fails, so a genuine package sharing the name is never removed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return newOrchestrator().Uninstall(args[0])
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("transient version %s\n", version.Version)
			if version.Commit != "unknown" {
				fmt.Printf("Commit: %s\n", version.Commit)
			}
			if version.Date != "unknown" {
				fmt.Printf("Built:  %s\n", version.Date)
			}
		},
	}
}
