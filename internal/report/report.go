// Package report renders node and host readings into chat messages.
package report

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // Etc/GMT zones must resolve on hosts without a zoneinfo database

	"github.com/Roma7-7-7/node-notifier/internal/host"
	"github.com/Roma7-7-7/node-notifier/internal/status"
)

// en-US locale with a 12 hour clock.
const timestampLayout = "1/2/2006, 3:04:05 PM"

// Timestamp renders t in the given zone. An empty or unknown zone falls back to UTC.
func Timestamp(t time.Time, region string) string {
	loc := time.UTC
	if region != "" {
		if l, err := time.LoadLocation(region); err == nil {
			loc = l
		}
	}
	return t.In(loc).Format(timestampLayout)
}

func Status(r status.Report, region string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Moniker: %s\n", r.Moniker)
	fmt.Fprintf(&b, "Network: %s\n", r.Network)
	fmt.Fprintf(&b, "Latest Block Height: %d\n", r.LatestBlockHeight)
	fmt.Fprintf(&b, "Latest Block Time: %s\n", Timestamp(r.LatestBlockTime, region))
	fmt.Fprintf(&b, "Catching Up: %t\n", r.CatchingUp)
	fmt.Fprintf(&b, "Address: %s\n", r.Address)
	fmt.Fprintf(&b, "Voting Power: %d\n", r.VotingPower)
	return b.String()
}

func Server(s host.Stats) string {
	var b strings.Builder
	b.WriteString("Server Stats:\n\n")

	b.WriteString("💿 Disk Usage:\n")
	fmt.Fprintf(&b, "Total: %s\n", GB(s.DiskTotal))
	fmt.Fprintf(&b, "Used: %s\n", GB(s.DiskUsed))
	fmt.Fprintf(&b, "Free: %s\n\n", GB(s.DiskFree))

	b.WriteString("🖥️ Memory Usage:\n")
	fmt.Fprintf(&b, "Total: %s\n", GB(s.MemTotal))
	fmt.Fprintf(&b, "Used: %s\n", GB(s.MemUsed))
	fmt.Fprintf(&b, "Free: %s\n\n", GB(s.MemFree))

	b.WriteString("🔄 CPU Usage:\n")
	fmt.Fprintf(&b, "Total CPUs: %d\n", s.CPUs)
	fmt.Fprintf(&b, "Current Usage: %.2f%%", s.LoadAvg1m)
	return b.String()
}

// GB renders a byte count in decimal gigabytes with two decimals.
func GB(bytes uint64) string {
	return fmt.Sprintf("%.2f GB", float64(bytes)/1e9)
}
