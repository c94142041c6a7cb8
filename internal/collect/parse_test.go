package collect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wmicMemorySample = `Capacity=17179869184
DeviceLocator=DIMM_A1
Manufacturer=Corsair
PartNumber=CMK32GX4M2B3200C16
Speed=3200

Capacity=17179869184
DeviceLocator=DIMM_B1
Manufacturer=Corsair
PartNumber=CMK32GX4M2B3200C16
Speed=3200
`

const dmidecodeMemorySample = `# dmidecode 3.3
Getting SMBIOS data from sysfs.

Handle 0x0041, DMI type 17, 40 bytes
Memory Device
	Size: 16 GB
	Form Factor: DIMM
	Locator: DIMM_A1
	Speed: 3200 MT/s
	Manufacturer: Kingston
	Part Number: KF3200C16D4/16GX

Handle 0x0042, DMI type 17, 40 bytes
Memory Device
	Size: No Module Installed
	Locator: DIMM_A2
	Manufacturer: Not Specified
`

func TestParseKeyValueList(t *testing.T) {
	records := parseKeyValueList(wmicMemorySample)
	require.Len(t, records, 2)
	assert.Equal(t, "DIMM_A1", records[0]["DeviceLocator"])
	assert.Equal(t, "DIMM_B1", records[1]["DeviceLocator"])
	assert.Equal(t, "Corsair", records[0]["Manufacturer"])
}

func TestParseWmicModules(t *testing.T) {
	modules := parseWmicModules(wmicMemorySample)
	require.Len(t, modules, 2)
	assert.Equal(t, uint64(17179869184), modules[0].CapacityBytes)
	assert.Equal(t, uint64(3200), modules[0].SpeedMHz)
	assert.Equal(t, "CMK32GX4M2B3200C16", modules[0].PartNumber)
}

func TestParseDmidecodeModules(t *testing.T) {
	modules := parseDmidecodeModules(dmidecodeMemorySample)
	require.Len(t, modules, 1, "empty bank must be dropped")
	assert.Equal(t, uint64(16)<<30, modules[0].CapacityBytes)
	assert.Equal(t, uint64(3200), modules[0].SpeedMHz)
	assert.Equal(t, "Kingston", modules[0].Manufacturer)
	assert.Equal(t, "DIMM_A1", modules[0].Slot)
}

func TestParseDmidecodeSize(t *testing.T) {
	assert.Equal(t, uint64(8)<<30, parseDmidecodeSize("8 GB"))
	assert.Equal(t, uint64(8192)<<20, parseDmidecodeSize("8192 MB"))
	assert.Zero(t, parseDmidecodeSize("No Module Installed"))
	assert.Zero(t, parseDmidecodeSize("weird"))
}

func TestParseDmidecodeBaseboard(t *testing.T) {
	out := `Base Board Information
	Manufacturer: ASUSTeK COMPUTER INC.
	Product Name: ROG STRIX B550-F GAMING
	Version: Rev 1.xx
	Serial Number: Default string
`
	board := parseDmidecodeBaseboard(out)
	assert.Equal(t, "ASUSTeK COMPUTER INC.", board.Manufacturer)
	assert.Equal(t, "ROG STRIX B550-F GAMING", board.Product)
	assert.Equal(t, "Rev 1.xx", board.Version)
	assert.Empty(t, board.SerialNumber, "filler serial must be dropped")
}

func TestGPUFromCSV(t *testing.T) {
	line := "NVIDIA GeForce RTX 3080, 535.54.03, 45, 10240, 1024, 9216, 3"
	block := gpuFromCSV(0, line)
	assert.Contains(t, block, "GPU 0: NVIDIA GeForce RTX 3080\n")
	assert.Contains(t, block, "  Temperature: 45°C\n")
	assert.Contains(t, block, "  Memory Total: 10240 MB\n")
	assert.Contains(t, block, "  GPU Utilization: 3%\n")

	assert.Empty(t, gpuFromCSV(0, "short, row"))
}

func TestFormatModulesSkipsEmptyFields(t *testing.T) {
	out := formatModules([]MemoryModule{
		{CapacityBytes: 8 << 30, Slot: "DIMM 0"},
		{CapacityBytes: 0},
	})
	assert.Contains(t, out, "Module 1:\n")
	assert.Contains(t, out, "  Capacity: 8.00GB\n")
	assert.Contains(t, out, "  Slot: DIMM 0\n")
	assert.NotContains(t, out, "Manufacturer")
	assert.NotContains(t, out, "Module 2")
}

func TestOSName(t *testing.T) {
	assert.Equal(t, "Linux", osName("linux"))
	assert.Equal(t, "Windows", osName("windows"))
	assert.Equal(t, "Plan9", osName("plan9"))
	assert.Equal(t, "Unknown", osName(""))
}

func TestFormatUptime(t *testing.T) {
	assert.Equal(t, "0h 5m", formatUptime(5*60))
	assert.Equal(t, "3h 20m", formatUptime(3*3600+20*60))
	assert.Equal(t, "2d 1h 0m", formatUptime(2*86400+3600))
}
