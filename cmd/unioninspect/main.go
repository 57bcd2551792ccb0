// Command unioninspect prints the layout of a sample union schema and
// round-trips one value of every alternative through a frame.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/safeunion"
	"github.com/rawbytedev/safeunion/endian"
	"github.com/rawbytedev/safeunion/frame"
)

// Sample is the aggregate alternative of the demo schema.
type Sample struct {
	Lo, Hi uint32
}

func main() {
	order := flag.String("order", "big", "wire byte order: little, big or native")
	mode := flag.String("mode", "per-element", "composite swap mode: per-element or whole-value")
	debug := flag.Bool("debug", false, "verbose logging")
	flag.Parse()

	log, err := newLogger(*debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(os.Stdout, log, *order, *mode); err != nil {
		log.Error("inspect failed", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(w io.Writer, log *zap.Logger, orderName, modeName string) error {
	order, err := endian.ParseOrder(orderName)
	if err != nil {
		return err
	}
	mode, err := endian.ParseMode(modeName)
	if err != nil {
		return err
	}
	safeunion.SetLogger(log)

	s, err := safeunion.Define(order,
		[]any{uint64(0), float64(0), [8]byte{}, [2]uint32{}, Sample{}},
		safeunion.WithName("sample"), safeunion.WithMode(mode))
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s.Describe()); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}

	values := []any{
		uint64(0x0102030405060708),
		float64(3.5),
		[8]byte{1, 2, 3, 4, 5, 6, 7, 8},
		[2]uint32{0x01020304, 0x05060708},
		Sample{Lo: 0x01020304, Hi: 0x05060708},
	}
	for i, v := range values {
		u := s.New()
		if err := u.Set(v); err != nil {
			return err
		}
		data, err := frame.Marshal(u)
		if err != nil {
			return err
		}
		back, err := frame.Unmarshal(s, data)
		if err != nil {
			return err
		}
		got, err := back.Value()
		if err != nil {
			return err
		}
		log.Debug("round trip",
			zap.Int("alternative", i),
			zap.String("raw", hex.EncodeToString(u.Raw())),
			zap.String("frame", hex.EncodeToString(data)))
		if got != v {
			return fmt.Errorf("alternative %d: sent %v, got %v", i, v, got)
		}
		fmt.Fprintf(w, "#%d %-10T % x\n", i, v, data)
	}
	return nil
}
