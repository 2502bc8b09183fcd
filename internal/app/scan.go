package app

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/jbinventory/internal/output"
	"github.com/blackwell-systems/jbinventory/internal/product"
	"github.com/blackwell-systems/jbinventory/internal/scanner"
)

var (
	scanJSON bool

	scanCmd = &cobra.Command{
		Use:   "scan",
		Short: "List installed JetBrains IDEs and their license status",
		Example: `  # Table output
  jbinventory scan

  # JSON output
  jbinventory scan --json`,
		RunE: runScan,
	}
)

func init() {
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "print installs as JSON")
}

type installJSON struct {
	Product       string `json:"product"`
	Version       string `json:"version"`
	ConfigPath    string `json:"config_path"`
	DataPath      string `json:"data_path"`
	Status        string `json:"status"`
	DaysRemaining *uint  `json:"days_remaining,omitempty"`
}

func runScan(cmd *cobra.Command, args []string) error {
	roots, err := resolveRoots()
	if err != nil {
		return err
	}

	installs, err := scanner.New(roots).Scan()
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}
	scanner.SortInstalls(installs)

	out := cmd.OutOrStdout()
	if !scanJSON {
		fmt.Fprint(out, output.RenderInstallTable(installs, output.IsColorEnabled()))
		return nil
	}

	rows := make([]installJSON, len(installs))
	for i, inst := range installs {
		rows[i] = installJSON{
			Product:    inst.Product.DisplayName(),
			Version:    inst.Version,
			ConfigPath: inst.ConfigPath,
			DataPath:   inst.DataPath,
			Status:     inst.TrialStatus.String(),
		}
		if inst.TrialStatus.Kind == product.StatusActive {
			days := inst.TrialStatus.DaysRemaining
			rows[i].DaysRemaining = &days
		}
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
