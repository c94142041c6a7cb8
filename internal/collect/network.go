package collect

import (
	"context"
	"fmt"
	"net"
	"strings"

	gnet "github.com/shirou/gopsutil/v3/net"

	"github.com/mamix14/SystemInfoTool/internal/report"
)

// NetworkReport builds the interface detail block: per-interface addresses
// and the machine-wide traffic totals since boot.
func (c *Collector) NetworkReport(ctx context.Context) string {
	var b strings.Builder
	b.WriteString(title("NETWORK INFORMATION"))

	interfaces, err := gnet.InterfacesWithContext(ctx)
	if err != nil {
		c.log.WithError(err).Debug("interface enumeration failed")
	}
	for _, iface := range interfaces {
		fmt.Fprintf(&b, "%s:\n", iface.Name)
		for _, addr := range iface.Addrs {
			ip, ipnet, err := net.ParseCIDR(addr.Addr)
			if err != nil {
				continue
			}
			if v4 := ip.To4(); v4 != nil {
				fmt.Fprintf(&b, "  IPv4: %s\n", v4)
				fmt.Fprintf(&b, "  Netmask: %s\n", net.IP(ipnet.Mask).String())
			} else {
				fmt.Fprintf(&b, "  IPv6: %s\n", ip)
			}
		}
		b.WriteString("\n")
	}

	if counters, err := gnet.IOCountersWithContext(ctx, false); err == nil && len(counters) > 0 {
		b.WriteString("Total Network I/O:\n")
		fmt.Fprintf(&b, "  Sent: %s\n", report.HumanBytes(counters[0].BytesSent))
		fmt.Fprintf(&b, "  Received: %s\n", report.HumanBytes(counters[0].BytesRecv))
	}

	return b.String()
}
