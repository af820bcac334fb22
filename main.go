// Command goNTSKEM is an interactive front end to the GF(2^m) polynomial
// core: it samples polynomials, computes GCDs and formal derivatives.
// Polynomials are entered and printed as hex of the 12-bit packed encoding.
//
// Usage:
//
//	goNTSKEM [flags]
//
// Flags:
//
//	-m          Field degree (default: 12)
//	-modulus    Field modulus (default: 0x1009)
//	-capacity   Coefficient slots of sampled polynomials (default: 129)
//	-seed       Sampler seed (default: goNTSKEM)
//	-verbosity  Log level 0-5 (default: 3)
//	-version    Print version and exit
package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	gontskem "github.com/Rohith04MVK/goNTSKEM/goNTSKEM"
	"github.com/Rohith04MVK/goNTSKEM/log"
)

var version = "v0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

// session carries what the menu handlers need between prompts.
type session struct {
	cfg    Config
	ff     *gontskem.GF2m
	reader *bufio.Reader
	out    io.Writer
	logger *log.Logger
}

// run is the actual entry point, returning an exit code. Accepts CLI
// arguments (without the program name) so it can be tested in isolation.
func run(args []string, stdin io.Reader, stdout io.Writer) int {
	cfg, exit, code := parseFlags(args, stdout)
	if exit {
		return code
	}

	log.SetDefault(log.NewText(os.Stderr, log.VerbosityToLevel(cfg.Verbosity)))
	logger := log.Default().Module("cli")

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "err", err)
		return 1
	}
	ff, err := gontskem.NewField(cfg.FieldDegree, cfg.FieldModulus)
	if err != nil {
		logger.Error("cannot build field", "err", err)
		return 1
	}
	logger.Info("goNTSKEM starting", "version", version, "m", cfg.FieldDegree,
		"modulus", fmt.Sprintf("%#x", cfg.FieldModulus), "capacity", cfg.Capacity)

	s := &session{
		cfg:    cfg,
		ff:     ff,
		reader: bufio.NewReader(stdin),
		out:    stdout,
		logger: logger,
	}

	for {
		fmt.Fprintln(s.out, "\nOptions: (1) Sample Polynomial, (2) GCD, (3) Formal Derivative, (4) Exit")
		fmt.Fprint(s.out, "Enter choice: ")
		choice, err := s.readLine()
		if err != nil {
			// EOF on stdin ends the session like an explicit exit.
			return 0
		}

		switch choice {
		case "1":
			s.samplePolynomial()
		case "2":
			s.gcd()
		case "3":
			s.derivative()
		case "4":
			fmt.Fprintln(s.out, "Exiting.")
			return 0
		default:
			fmt.Fprintln(s.out, "Invalid choice.")
		}
	}
}

// parseFlags parses CLI arguments into a Config. Returns the config, whether
// the caller should exit immediately, and the exit code.
func parseFlags(args []string, stdout io.Writer) (Config, bool, int) {
	cfg := DefaultConfig()
	fs := newFlagSet(&cfg)

	showVersion := fs.Bool("version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cfg, true, 2
	}

	if *showVersion {
		fmt.Fprintf(stdout, "goNTSKEM %s\n", version)
		return cfg, true, 0
	}

	return cfg, false, 0
}

// newFlagSet creates a flagSet that binds all CLI flags to the given Config.
func newFlagSet(cfg *Config) *flagSet {
	fs := newCustomFlagSet("goNTSKEM")
	fs.IntVar(&cfg.FieldDegree, "m", cfg.FieldDegree, "field degree m of GF(2^m)")
	fs.Uint32Var(&cfg.FieldModulus, "modulus", cfg.FieldModulus, "irreducible field modulus")
	fs.IntVar(&cfg.Capacity, "capacity", cfg.Capacity, "coefficient slots of sampled polynomials")
	fs.StringVar(&cfg.Seed, "seed", cfg.Seed, "sampler seed")
	fs.IntVar(&cfg.Verbosity, "verbosity", cfg.Verbosity, "log level 0-5 (0=silent, 5=debug)")
	return fs
}

func (s *session) readLine() (string, error) {
	line, err := s.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *session) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	return s.readLine()
}

func (s *session) readPolynomial(label string) (*gontskem.Polynomial, error) {
	text, err := s.prompt(label)
	if err != nil {
		return nil, err
	}
	raw, err := hex.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("invalid hex: %w", err)
	}
	p, err := gontskem.UnpackPolynomial(raw)
	if err != nil {
		return nil, err
	}
	for i := 0; i <= p.Degree(); i++ {
		if !s.ff.Contains(p.Coefficient(i)) {
			p.Release()
			return nil, fmt.Errorf("coefficient %d = %#x outside GF(2^%d)", i, p.Coefficient(i), s.ff.Degree())
		}
	}
	return p, nil
}

func (s *session) printPolynomial(label string, p *gontskem.Polynomial) {
	enc, err := gontskem.PackPolynomial(p)
	if err != nil {
		fmt.Fprintln(s.out, "Error encoding polynomial:", err)
		return
	}
	fmt.Fprintf(s.out, "%s (degree %d): %x\n", label, p.Degree(), enc)
}

func (s *session) samplePolynomial() {
	nonceText, err := s.prompt("Enter nonce (0-255): ")
	if err != nil {
		return
	}
	nonce, err := strconv.ParseUint(nonceText, 10, 8)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid nonce:", err)
		return
	}
	degreeText, err := s.prompt("Enter degree: ")
	if err != nil {
		return
	}
	degree, err := strconv.Atoi(degreeText)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid degree:", err)
		return
	}

	p, err := gontskem.SamplePolynomial(s.ff, []byte(s.cfg.Seed), byte(nonce), s.cfg.Capacity, degree)
	if err != nil {
		fmt.Fprintln(s.out, "Error sampling polynomial:", err)
		return
	}
	defer p.Release()
	s.logger.Debug("sampled polynomial", "nonce", nonce, "degree", degree)
	s.printPolynomial("p(x)", p)
}

func (s *session) gcd() {
	a, err := s.readPolynomial("Enter a(x) (hex): ")
	if err != nil {
		fmt.Fprintln(s.out, "Invalid polynomial:", err)
		return
	}
	defer a.Release()
	b, err := s.readPolynomial("Enter b(x) (hex): ")
	if err != nil {
		fmt.Fprintln(s.out, "Invalid polynomial:", err)
		return
	}
	defer b.Release()

	n := a.Cap()
	if b.Cap() > n {
		n = b.Cap()
	}
	g, err := gontskem.NewPolynomial(n)
	if err != nil {
		fmt.Fprintln(s.out, "Error allocating result:", err)
		return
	}
	defer g.Release()

	if err := gontskem.GCD(s.ff, a, b, g); err != nil {
		fmt.Fprintln(s.out, "Error computing GCD:", err)
		return
	}
	s.printPolynomial("g(x)", g)
}

func (s *session) derivative() {
	f, err := s.readPolynomial("Enter f(x) (hex): ")
	if err != nil {
		fmt.Fprintln(s.out, "Invalid polynomial:", err)
		return
	}
	defer f.Release()

	d, err := gontskem.NewPolynomial(f.Cap())
	if err != nil {
		fmt.Fprintln(s.out, "Error allocating result:", err)
		return
	}
	defer d.Release()

	if err := gontskem.FormalDerivative(f, d); err != nil {
		fmt.Fprintln(s.out, "Error computing derivative:", err)
		return
	}
	s.printPolynomial("f'(x)", d)
}
