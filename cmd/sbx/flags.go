package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sbx/internal/project"
)

// readUseColor решает, красить ли вывод: явный --color сильнее автодетекта.
func readUseColor(cmd *cobra.Command) (bool, error) {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout)), nil
}

func readQuiet(cmd *cobra.Command) (bool, error) {
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return false, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	return quiet, nil
}

// effectiveMaxDiagnostics согласует лимит диагностик: явно заданный флаг
// сильнее манифеста, манифест сильнее умолчания флага.
func effectiveMaxDiagnostics(cmd *cobra.Command, manifest *project.Manifest) (int, error) {
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return 0, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if cmd.Root().PersistentFlags().Changed("max-diagnostics") {
		return maxDiagnostics, nil
	}
	return manifest.DiagnosticLimit(maxDiagnostics), nil
}
