package wire

import (
	"encoding/binary"
	"fmt"
)

// HGVersionSize is the packed size in bytes.
const HGVersionSize = 5

// HGVersion identifies a base station's firmware and the protocol it
// speaks. ProtocolsMajor is compared against ConstProtocolVersionMajor to
// decide whether a connected base station is compatible with this client;
// ProtocolsMinor is not compared.
type HGVersion struct {
	Major          byte
	Minor          byte
	Patch          byte
	ProtocolsMajor byte
	ProtocolsMinor byte
}

func (v HGVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func (v HGVersion) ProtocolString() string {
	return fmt.Sprintf("%d.%d", v.ProtocolsMajor, v.ProtocolsMinor)
}

// ProtocolCompatible reports whether this version's protocol matches the
// one this client implements. Only the major version must match; a minor
// mismatch is tolerated as backward-compatible.
func (v HGVersion) ProtocolCompatible() bool {
	return v.ProtocolsMajor == ConstProtocolVersionMajor
}

func (v HGVersion) Bytes() []byte {
	return []byte{v.Major, v.Minor, v.Patch, v.ProtocolsMajor, v.ProtocolsMinor}
}

func HGVersionFromBytes(b []byte) (HGVersion, bool) {
	if len(b) != HGVersionSize {
		return HGVersion{}, false
	}
	return HGVersion{
		Major:          b[0],
		Minor:          b[1],
		Patch:          b[2],
		ProtocolsMajor: b[3],
		ProtocolsMinor: b[4],
	}, true
}

// BaseInformationSize is the packed size in bytes: Version(5) +
// RadioChannel(1) + pad[2] + UptimeMs u32(4) = 12. This must stay distinct
// from MessageWrapperSize so the frame dispatcher can tell the two apart
// by length alone (spec.md §4.2).
const BaseInformationSize = HGVersionSize + 1 + 2 + 4

// BaseInformation is the base station's own identity and health, reported
// independently of any robot slot.
type BaseInformation struct {
	Version      HGVersion
	RadioChannel byte
	UptimeMs     uint32
}

func (i BaseInformation) Bytes() []byte {
	b := make([]byte, BaseInformationSize)
	copy(b[0:5], i.Version.Bytes())
	b[5] = i.RadioChannel
	// b[6:8] padding, left zero
	binary.LittleEndian.PutUint32(b[8:12], i.UptimeMs)
	return b
}

func BaseInformationFromBytes(b []byte) (BaseInformation, bool) {
	if len(b) != BaseInformationSize {
		return BaseInformation{}, false
	}
	if b[6] != 0 || b[7] != 0 {
		return BaseInformation{}, false
	}
	ver, ok := HGVersionFromBytes(b[0:5])
	if !ok {
		return BaseInformation{}, false
	}
	return BaseInformation{
		Version:      ver,
		RadioChannel: b[5],
		UptimeMs:     binary.LittleEndian.Uint32(b[8:12]),
	}, true
}
