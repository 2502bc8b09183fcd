// Package output renders installs and backups for the terminal.
package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/blackwell-systems/jbinventory/internal/backup"
	"github.com/blackwell-systems/jbinventory/internal/product"
)

const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorGray   = "\033[90m"
)

// IsColorEnabled returns true if ANSI color codes should be emitted.
func IsColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// RenderInstallTable renders one row per install in the given order.
func RenderInstallTable(installs []product.Install, color bool) string {
	if len(installs) == 0 {
		return "No installs found.\n"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-3s %-16s %-8s %-18s %s\n", "", "Product", "Version", "Status", "Config"))
	sb.WriteString(strings.Repeat("─", 72))
	sb.WriteString("\n")

	for _, inst := range installs {
		version := inst.Version
		if version == "" {
			version = "-"
		}
		sb.WriteString(fmt.Sprintf("%-3s %-16s %-8s %s %s\n",
			inst.Product.Icon(),
			truncate(inst.Product.DisplayName(), 16),
			version,
			statusCell(inst.TrialStatus, color),
			inst.ConfigPath))
	}
	return sb.String()
}

// RenderBackupTable renders snapshots with their relative age.
func RenderBackupTable(backups []backup.Info) string {
	if len(backups) == 0 {
		return "No backups found.\n"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-44s %-16s\n", "Backup", "Created"))
	sb.WriteString(strings.Repeat("─", 62))
	sb.WriteString("\n")
	for _, b := range backups {
		sb.WriteString(fmt.Sprintf("%-44s %-16s\n", truncate(b.Name, 44), humanize.Time(b.Created)))
	}
	return sb.String()
}

// statusCell pads before coloring so escape codes do not skew alignment.
func statusCell(s product.Status, color bool) string {
	cell := fmt.Sprintf("%-18s", s.String())
	if !color {
		return cell
	}
	switch s.Kind {
	case product.StatusLicensed:
		return colorGreen + cell + colorReset
	case product.StatusActive:
		return colorYellow + cell + colorReset
	case product.StatusExpired:
		return colorRed + cell + colorReset
	default:
		return colorGray + cell + colorReset
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
