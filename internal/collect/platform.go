package collect

// MemoryModule describes one installed RAM module.
type MemoryModule struct {
	CapacityBytes uint64
	SpeedMHz      uint64
	Manufacturer  string
	PartNumber    string
	Slot          string
}

// VideoController describes one display adapter.
type VideoController struct {
	Name          string
	DriverVersion string
	MemoryBytes   uint64
}

// PhysicalDisk describes one physical storage device, as opposed to a
// mounted partition.
type PhysicalDisk struct {
	Model     string
	SizeBytes uint64
	Interface string
}

// Baseboard identifies the motherboard.
type Baseboard struct {
	Manufacturer string
	Product      string
	Version      string
	SerialNumber string
}

// BIOSInfo identifies the firmware.
type BIOSInfo struct {
	Vendor  string
	Version string
	Date    string
}

// Platform supplies best-effort host-specific detail that has no portable
// API. Each method either returns data or an error meaning "this host
// cannot answer"; callers degrade to the next strategy or a placeholder.
//
// The Windows implementation queries WMI and the registry; other systems
// use ghw and DMI sysfs files. A platform with no answer for a field simply
// errors and the scan carries on.
type Platform interface {
	CPUName() (string, error)
	MemoryModules() ([]MemoryModule, error)
	VideoControllers() ([]VideoController, error)
	PhysicalDisks() ([]PhysicalDisk, error)
	Baseboard() (Baseboard, error)
	BIOS() (BIOSInfo, error)
	// ThermalZoneCelsius reads the ACPI thermal zone where the host sensor
	// API exposes nothing (Windows).
	ThermalZoneCelsius() (float64, error)
}
