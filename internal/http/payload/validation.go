package payload

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/validation"
)

const (
	MaxPageSize     = 100
	DefaultPageSize = 20
	MaxAddresses    = 100
)

var (
	addressRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	hexDataRegex = regexp.MustCompile(`^0x([0-9a-fA-F]{2})+$`)
)

func validatePayload(object any) error {
	t, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}

	if err := t.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}

	return nil
}

// toAddresses assumes its input already passed addressRegex. Duplicates
// are dropped, keeping first-seen order.
func toAddresses(hexes []string) []common.Address {
	seen := make(map[common.Address]struct{}, len(hexes))
	out := make([]common.Address, 0, len(hexes))
	for _, h := range hexes {
		a := common.HexToAddress(strings.TrimSpace(h))
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}
