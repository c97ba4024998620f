package main

import (
	"errors"
	"fmt"
	"log"
	"strings"

	protostream "github.com/OrionOS-Project/frameworks-base-sub001"
)

// Field keys for the demo device report. In a generated setup these constants
// would come from tooling; here they are declared by hand.
const (
	reportName    = protostream.TypeString | protostream.CountSingle | 1
	reportUptime  = protostream.TypeInt32 | protostream.CountSingle | 2
	reportBattery = protostream.TypeObject | protostream.CountSingle | 3
	reportNetwork = protostream.TypeObject | protostream.CountRepeated | 4
	reportLevels  = protostream.TypeInt32 | protostream.CountPacked | 5
	reportTags    = protostream.TypeString | protostream.CountRepeated | 6
	reportCrash   = protostream.TypeObject | protostream.CountSingle | 7
	reportEvents  = protostream.TypeObject | protostream.CountRepeated | 8

	batteryLevel    = protostream.TypeInt32 | protostream.CountSingle | 1
	batteryCharging = protostream.TypeBool | protostream.CountSingle | 2
	batteryVoltage  = protostream.TypeDouble | protostream.CountSingle | 3

	netName    = protostream.TypeString | protostream.CountSingle | 1
	netRxBytes = protostream.TypeUInt64 | protostream.CountSingle | 2
	netTxBytes = protostream.TypeUInt64 | protostream.CountSingle | 3
)

func main() {
	fmt.Println("🚀 Protostream Sample Application")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Println("Encoding a device status report without precomputing any sizes")
	fmt.Println(strings.Repeat("=", 70))

	demoBasicReport()
	demoEmptyObjects()
	demoErrorRecovery()

	fmt.Println("\n" + strings.Repeat("=", 70))
	fmt.Println("✅ All demos completed successfully!")
	fmt.Println(strings.Repeat("=", 70))
}

// demoBasicReport builds a full report with nested objects, repeated
// objects, packed numbers and repeated strings, then prints the wire bytes.
func demoBasicReport() {
	fmt.Println("\n📦 Demo 1: Device status report")
	fmt.Println(strings.Repeat("-", 70))

	s := protostream.New()

	check(s.WriteString(reportName, "shoreline"))
	check(s.WriteInt32(reportUptime, 86400000))

	// Nested battery object. The length header is back-filled when the
	// object ends, so the caller never supplies a size.
	token, err := s.StartObject(reportBattery)
	check(err)
	check(s.WriteInt32(batteryLevel, 87))
	check(s.WriteBool(batteryCharging, true))
	check(s.WriteDouble(batteryVoltage, 4.35))
	check(s.EndObject(token))

	// Two repeated network interfaces.
	for _, iface := range []struct {
		name   string
		rx, tx uint64
	}{
		{"wlan0", 48_211_004, 9_441_120},
		{"rmnet0", 1_002_393, 85_611},
	} {
		token, err := s.StartRepeatedObject(reportNetwork)
		check(err)
		check(s.WriteString(netName, iface.name))
		check(s.WriteUInt64(netRxBytes, iface.rx))
		check(s.WriteUInt64(netTxBytes, iface.tx))
		check(s.EndRepeatedObject(token))
	}

	check(s.WritePackedInt32(reportLevels, []int32{3, 270, 86942}))

	for _, tag := range []string{"prod", "arm64", "nightly"} {
		check(s.WriteRepeatedString(reportTags, tag))
	}

	data, err := s.Bytes()
	check(err)

	fmt.Printf("Report encoded: %d bytes\n", len(data))
	fmt.Printf("Wire bytes:     % x\n", data)
	fmt.Println("Fields written: name, uptime, battery{3}, network{2x3}, levels[3], tags[3]")
}

// demoEmptyObjects shows the asymmetry between empty singular and empty
// repeated objects: a singular object with no content disappears from the
// wire entirely, while a repeated element survives as a zero-length entry.
func demoEmptyObjects() {
	fmt.Println("\n📦 Demo 2: Empty object handling")
	fmt.Println(strings.Repeat("-", 70))

	s := protostream.New()
	check(s.WriteInt32(reportUptime, 1))

	token, err := s.StartObject(reportCrash)
	check(err)
	check(s.EndObject(token))

	data, err := s.Bytes()
	check(err)
	fmt.Printf("Empty singular object:  % x  (crash field elided, tag and all)\n", data)

	s = protostream.New()
	check(s.WriteInt32(reportUptime, 1))

	token, err = s.StartRepeatedObject(reportEvents)
	check(err)
	check(s.EndRepeatedObject(token))

	data, err = s.Bytes()
	check(err)
	fmt.Printf("Empty repeated element: % x  (zero-length entry kept)\n", data)
}

// demoErrorRecovery finalizes a stream with an object still open, shows the
// error, closes the object and finalizes again.
func demoErrorRecovery() {
	fmt.Println("\n📦 Demo 3: Recovering from unbalanced nesting")
	fmt.Println(strings.Repeat("-", 70))

	s := protostream.New()
	token, err := s.StartObject(reportBattery)
	check(err)
	check(s.WriteInt32(batteryLevel, 44))

	_, err = s.Bytes()
	var unbalanced *protostream.UnbalancedNestingError
	if !errors.As(err, &unbalanced) {
		log.Fatalf("Expected UnbalancedNestingError, got %v", err)
	}
	fmt.Printf("First finalize failed:  %v\n", err)

	check(s.EndObject(token))
	data, err := s.Bytes()
	check(err)
	fmt.Printf("After EndObject:        % x\n", data)
}

func check(err error) {
	if err != nil {
		log.Fatalf("❌ Demo failed: %v", err)
	}
}
