// Command bitcraftctl exercises the bitcraft codec from the shell:
// it encodes and decodes the example protocol blocks and keeps a
// sqlite-backed history of what it has run.
package main

import (
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/alboratech/bitcraft/internal/protocols"
)

var errLog = log.New(os.Stderr, "", 0)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: %s [-db path] [-color=false] <command> ...

Commands:
  ipv4 decode <hex>
  ipv4 encode <hlen> <ttl> <protocol> <src-ip> <dst-ip> <payload>
  telemetry decode <hex>
  telemetry encode <sensor-id> <sample1,sample2,...>
  history [n]
`, os.Args[0])
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			errLog.Printf("internal error: %v", r)
			os.Exit(1)
		}
	}()

	cfg, args := parseConfig(os.Args[1:])
	colorOutput = cfg.Color && stdoutIsTerminal()

	if len(args) < 1 {
		usage()
		os.Exit(1)
	}

	hist, err := OpenHistory(cfg.DBPath)
	if err != nil {
		errLog.Printf("opening history database: %s", err)
		os.Exit(1)
	}
	defer func() { _ = hist.Close() }()

	var cmdErr error
	switch args[0] {
	case "ipv4":
		cmdErr = runIPv4(hist, args[1:])
	case "telemetry":
		cmdErr = runTelemetry(hist, args[1:])
	case "history":
		cmdErr = runHistory(hist, args[1:])
	case "-help", "--help", "help":
		usage()
		return
	default:
		usage()
		os.Exit(1)
	}

	if cmdErr != nil {
		errLog.Printf("%s", cmdErr)
		os.Exit(1)
	}
}

func runIPv4(hist *History, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: ipv4 decode|encode ...")
	}
	switch args[0] {
	case "decode":
		if len(args) != 2 {
			return fmt.Errorf("usage: ipv4 decode <hex>")
		}
		raw, err := hex.DecodeString(args[1])
		if err != nil {
			return fmt.Errorf("invalid hex: %w", err)
		}
		datagram, err := protocols.DecodeIPv4(bitsFromBytes(raw))
		op := Operation{
			Block:   "ipv4",
			BlockID: protocols.IPv4Block.ID.String(),
			Action:  "decode",
			Success: err == nil,
		}
		if err != nil {
			op.Summary = err.Error()
			_ = hist.Record(op)
			return err
		}
		printIPv4(os.Stdout, datagram)
		op.ByteSize = len(raw)
		op.Summary = fmt.Sprintf("hlen=%d proto=%d payload=%s", datagram.HeaderLength, datagram.Protocol, byteSizeString(len(datagram.Payload)))
		return hist.Record(op)

	case "encode":
		if len(args) != 7 {
			return fmt.Errorf("usage: ipv4 encode <hlen> <ttl> <protocol> <src-ip> <dst-ip> <payload>")
		}
		hlen, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid header length: %w", err)
		}
		ttl, err := strconv.ParseUint(args[2], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid ttl: %w", err)
		}
		proto, err := strconv.ParseUint(args[3], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid protocol: %w", err)
		}
		srcIP, err := parseIPv4Literal(args[4])
		if err != nil {
			return fmt.Errorf("invalid source ip: %w", err)
		}
		dstIP, err := parseIPv4Literal(args[5])
		if err != nil {
			return fmt.Errorf("invalid destination ip: %w", err)
		}
		payload := []byte(args[6])

		datagram := protocols.IPv4Datagram{
			Version:       4,
			HeaderLength:  hlen,
			TotalLength:   hlen*4 + uint64(len(payload)),
			TTL:           ttl,
			Protocol:      proto,
			SourceIP:      srcIP,
			DestinationIP: dstIP,
			Payload:       payload,
		}
		encoded, err := protocols.EncodeIPv4(datagram)
		op := Operation{
			Block:   "ipv4",
			BlockID: protocols.IPv4Block.ID.String(),
			Action:  "encode",
			Success: err == nil,
		}
		if err != nil {
			op.Summary = err.Error()
			_ = hist.Record(op)
			return err
		}
		out := encoded.Bytes()
		fmt.Println(hex.EncodeToString(out))
		op.ByteSize = len(out)
		op.Summary = fmt.Sprintf("hlen=%d proto=%d payload=%s", hlen, proto, byteSizeString(len(payload)))
		return hist.Record(op)

	default:
		return fmt.Errorf("unknown ipv4 subcommand %q", args[0])
	}
}

func runTelemetry(hist *History, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: telemetry decode|encode ...")
	}
	switch args[0] {
	case "decode":
		if len(args) != 2 {
			return fmt.Errorf("usage: telemetry decode <hex>")
		}
		raw, err := hex.DecodeString(args[1])
		if err != nil {
			return fmt.Errorf("invalid hex: %w", err)
		}
		frame, err := protocols.DecodeTelemetry(bitsFromBytes(raw))
		op := Operation{
			Block:   "telemetry",
			BlockID: protocols.TelemetryBlock.ID.String(),
			Action:  "decode",
			Success: err == nil,
		}
		if err != nil {
			op.Summary = err.Error()
			_ = hist.Record(op)
			return err
		}
		printTelemetry(os.Stdout, frame)
		op.ByteSize = len(raw)
		op.Summary = fmt.Sprintf("sensor=%d samples=%d", frame.SensorID, frame.SampleCount)
		return hist.Record(op)

	case "encode":
		if len(args) != 3 {
			return fmt.Errorf("usage: telemetry encode <sensor-id> <sample1,sample2,...>")
		}
		sensorID, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid sensor id: %w", err)
		}
		var samples []int64
		if args[2] != "" {
			for _, tok := range strings.Split(args[2], ",") {
				v, err := strconv.ParseInt(strings.TrimSpace(tok), 10, 64)
				if err != nil {
					return fmt.Errorf("invalid sample %q: %w", tok, err)
				}
				samples = append(samples, v)
			}
		}
		frame := protocols.TelemetryFrame{SensorID: sensorID, Samples: samples}
		encoded, err := protocols.EncodeTelemetry(frame)
		op := Operation{
			Block:   "telemetry",
			BlockID: protocols.TelemetryBlock.ID.String(),
			Action:  "encode",
			Success: err == nil,
		}
		if err != nil {
			op.Summary = err.Error()
			_ = hist.Record(op)
			return err
		}
		out := encoded.Bytes()
		fmt.Println(hex.EncodeToString(out))
		op.ByteSize = len(out)
		op.Summary = fmt.Sprintf("sensor=%d samples=%d", sensorID, len(samples))
		return hist.Record(op)

	default:
		return fmt.Errorf("unknown telemetry subcommand %q", args[0])
	}
}

func runHistory(hist *History, args []string) error {
	n := 20
	if len(args) == 1 {
		v, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid count: %w", err)
		}
		n = v
	}
	ops, err := hist.Recent(n)
	if err != nil {
		return err
	}
	if len(ops) == 0 {
		fmt.Println("no operations recorded yet")
		return nil
	}
	for _, op := range ops {
		status := "ok"
		if !op.Success {
			status = "FAILED"
		}
		fmt.Printf("%s  %-10s %-7s %-7s %-8s %s\n", relativeTimeString(op), op.Block, op.Action, status, byteSizeString(op.ByteSize), op.Summary)
	}
	return nil
}
