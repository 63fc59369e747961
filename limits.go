package mdexport

// zipFieldCap is the largest value a 32-bit ZIP header field can carry.
// Entries above it cannot be represented in a single-segment archive.
const zipFieldCap = 1<<32 - 1

// Limits bound what the exporter and archive writer accept.
//
// Zero fields take defaults. MaxEntrySize and MaxNameLen are additionally
// clamped to the ZIP header field capacities, which the stored format cannot
// exceed regardless of configuration.
type Limits struct {
	MaxEntries    int
	MaxEntrySize  uint64
	MaxNameLen    int
	MaxContentLen uint64 // Markdown input bytes accepted by the exporters
}

func defaultLimits() Limits {
	return Limits{
		MaxEntries:    1<<16 - 1, // 16-bit end-of-central-directory entry count
		MaxEntrySize:  zipFieldCap,
		MaxNameLen:    1<<16 - 1,
		MaxContentLen: 256 << 20, // 256 MiB
	}
}

func (l Limits) withDefaults() Limits {
	d := defaultLimits()
	if l.MaxEntries == 0 || l.MaxEntries > d.MaxEntries {
		l.MaxEntries = d.MaxEntries
	}
	if l.MaxEntrySize == 0 || l.MaxEntrySize > d.MaxEntrySize {
		l.MaxEntrySize = d.MaxEntrySize
	}
	if l.MaxNameLen == 0 || l.MaxNameLen > d.MaxNameLen {
		l.MaxNameLen = d.MaxNameLen
	}
	if l.MaxContentLen == 0 {
		l.MaxContentLen = d.MaxContentLen
	}
	return l
}
