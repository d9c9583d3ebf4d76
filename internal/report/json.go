// # internal/report/json.go
package report

import (
	"encoding/json"
	"fmt"
)

func renderJSON(scan *Scan) (string, error) {
	data, err := json.MarshalIndent(scan, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode scan: %w", err)
	}
	return string(data) + "\n", nil
}
