package tasks

import (
	"fmt"
	"io"
	"math/big"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/tinom9/morpho-token-l0/pkg/endpoint"
	"github.com/tinom9/morpho-token-l0/pkg/ratelimit"
	"github.com/tinom9/morpho-token-l0/pkg/topology"
)

const secondsPerDay = 24 * 60 * 60

// RenderReport writes one row per network and destination comparing the
// on-chain rate limit with the desired one.
func RenderReport(w io.Writer, results []*SyncResult) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Network", "Destination", "On-chain limit", "On-chain window", "Desired limit", "Desired window", "Status"})
	table.SetAutoWrapText(false)

	for _, r := range results {
		if r == nil {
			continue
		}
		mismatched := make(map[endpoint.ID]bool, len(r.Mismatches))
		for _, m := range r.Mismatches {
			mismatched[m.Destination] = true
		}
		for _, d := range r.Desired {
			state := r.OnChain[d.Destination]
			status := "ok"
			if mismatched[d.Destination] {
				status = "mismatch"
			}
			table.Append([]string{
				r.Network,
				d.Destination.Name(),
				FormatLimit(state.Limit),
				FormatWindow(state.Window),
				FormatLimit(d.Limit),
				FormatWindow(d.Window),
				status,
			})
		}
	}
	table.Render()
}

// FormatLimit renders a limit in whole tokens when it is a round amount.
// The unlimited default renders as "max".
func FormatLimit(v *big.Int) string {
	switch {
	case v == nil:
		return "-"
	case v.Cmp(ratelimit.MaxLimit()) == 0:
		return "max"
	}
	tokens, rem := new(big.Int).QuoRem(v, weiPerToken, new(big.Int))
	if rem.Sign() == 0 && tokens.Sign() > 0 {
		return humanize.BigComma(tokens) + " tokens"
	}
	return humanize.BigComma(v)
}

// FormatWindow renders a window in days when it is a whole number of days.
func FormatWindow(v *big.Int) string {
	if v == nil {
		return "-"
	}
	if v.IsUint64() && v.Uint64() > 0 && v.Uint64()%secondsPerDay == 0 {
		return fmt.Sprintf("%dd", v.Uint64()/secondsPerDay)
	}
	return v.String() + "s"
}

var weiPerToken = topology.ToUnit(1)
