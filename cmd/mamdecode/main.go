// mamdecode decompresses single-block MAM containers.
//
// Usage:
//
//	mamdecode [-o out] [-allow-short] [-permissive] [-no-crc] [-v] <file>
//
// Options:
//
//	-o, --output       Write decompressed data to this file
//	    --allow-short  Accept output shorter than the declared size
//	    --permissive   Skip code length validation
//	    --no-crc       Do not verify the container checksum
//	-v, --verbose      Debug logging
//	    --version      Print version information
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/op/go-logging"
	"github.com/spf13/afero"
	"github.com/woozymasta/xpress"
	"github.com/woozymasta/xpress/mam"
)

const version = "1.0.0"

var log = logging.MustGetLogger("mamdecode")

var (
	output     string
	allowShort bool
	permissive bool
	noCRC      bool
	verbose    bool
	showVer    bool
)

func init() {
	flag.StringVar(&output, "o", "", "output file")
	flag.StringVar(&output, "output", "", "output file")
	flag.BoolVar(&allowShort, "allow-short", false, "accept short output")
	flag.BoolVar(&permissive, "permissive", false, "skip code length validation")
	flag.BoolVar(&noCRC, "no-crc", false, "do not verify checksum")
	flag.BoolVar(&verbose, "v", false, "verbose mode")
	flag.BoolVar(&verbose, "verbose", false, "verbose mode")
	flag.BoolVar(&showVer, "version", false, "print version information")
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [-o out] [-allow-short] [-permissive] [-no-crc] [-v] <file>\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Decompress a single-block MAM container\n\n")
	flag.PrintDefaults()
}

func setupLogging() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	format := logging.MustStringFormatter(`%{time:15:04:05.000} %{level:.4s} %{message}`)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, format))
	if verbose {
		leveled.SetLevel(logging.DEBUG, "")
	} else {
		leveled.SetLevel(logging.INFO, "")
	}
	logging.SetBackend(leveled)
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if showVer {
		fmt.Printf("mamdecode %s\n", version)
		return
	}
	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	setupLogging()

	if err := run(afero.NewOsFs(), flag.Arg(0)); err != nil {
		log.Errorf("%s: %v", flag.Arg(0), err)
		os.Exit(1)
	}
}

func run(fs afero.Fs, path string) error {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return err
	}

	h, err := mam.ParseHeader(data)
	if err != nil {
		return err
	}
	log.Debugf("MAM header: format=%d size=%d checksum=%t", h.Format, h.Size, h.HasChecksum)

	opts := mam.DefaultOptions()
	opts.VerifyChecksum = !noCRC
	opts.Decoder = &xpress.Options{AllowShort: allowShort, Permissive: permissive}

	out, err := mam.Decompress(data, opts)
	if err != nil {
		return err
	}

	if uint32(len(out)) < h.Size { // #nosec G115 -- len(out) <= h.Size
		log.Warningf("short output: %d of %d bytes", len(out), h.Size)
	} else {
		log.Infof("decompressed %d -> %d bytes", len(data), len(out))
	}
	if mam.HasPrefetchSignature(out) {
		log.Debugf("SCCA signature found")
	} else {
		log.Warningf("SCCA signature missing")
	}

	if output == "" {
		return nil
	}

	return afero.WriteFile(fs, output, out, 0o644)
}
