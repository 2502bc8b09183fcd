// Package status infers the license or trial state of an install from the
// text of its options/other.xml file.
package status

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/blackwell-systems/jbinventory/internal/product"
)

// DefaultTrialDays is reported when a trial is present but no day counter
// can be parsed.
const DefaultTrialDays = 30

const (
	licenseMarker     = "license"
	licensedMarker    = "Licensed"
	evalMarker        = "evlsprt"
	dayCounterMarker  = "evlsprt3"
	trialStateMarker  = "trial.state"
	trialStateExpired = `"EXPIRED"`
	trialStateActive  = `"ACTIVE"`
)

// OptionsFile returns the path of the status file for a config directory.
func OptionsFile(configPath string) string {
	return filepath.Join(configPath, "options", "other.xml")
}

// Infer reads the options file under configPath and classifies it.
// A missing file yields NotStarted; other read failures are returned.
func Infer(configPath string) (product.Status, error) {
	data, err := os.ReadFile(OptionsFile(configPath))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return product.NotStarted(), nil
		}
		return product.Unknown(), fmt.Errorf("failed to read options file: %w", err)
	}
	return Classify(string(data)), nil
}

// Classify applies the marker checks to content in precedence order:
// license, eval support counters, trial state.
func Classify(content string) product.Status {
	if strings.Contains(content, licenseMarker) || strings.Contains(content, licensedMarker) {
		return product.Licensed()
	}

	if strings.Contains(content, evalMarker) {
		days := trialDays(content)
		if days == 0 {
			return product.Expired()
		}
		return product.Active(days)
	}

	if strings.Contains(content, trialStateMarker) {
		if strings.Contains(content, trialStateExpired) {
			return product.Expired()
		}
		if strings.Contains(content, trialStateActive) {
			return product.Active(trialDays(content))
		}
	}

	return product.Unknown()
}

// trialDays returns the first parsable day counter, or DefaultTrialDays.
func trialDays(content string) uint {
	for _, line := range strings.Split(content, "\n") {
		if !strings.Contains(line, dayCounterMarker) {
			continue
		}
		_, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		value = strings.Trim(strings.TrimSpace(value), `",`)
		value = strings.TrimSpace(value)
		days, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			continue
		}
		return uint(days)
	}
	return DefaultTrialDays
}
