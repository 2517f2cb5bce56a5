// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"math/big"
	"os"

	"github.com/ezrec/teleporter/evaluator"
	"github.com/ezrec/teleporter/sweep"
	"github.com/ezrec/teleporter/translate"
)

var f = translate.From

func parseRegister(name string, text string) *big.Int {
	val, ok := new(big.Int).SetString(text, 0)
	if !ok || val.Sign() < 0 {
		log.Fatalf("%v: -%v %v: %v", os.Args[0], name, text, f("not a register value"))
	}
	return val
}

func main() {
	var r0 string
	var r1 string
	var r7 string
	var maxStep int
	var debug bool
	var seq7 string
	var seq1 string
	var shortcut int
	var cache bool
	var modulus string
	var match string

	flag.StringVar(&r0, "r0", "4", "Initial r0")
	flag.StringVar(&r1, "r1", "1", "Initial r1")
	flag.StringVar(&r7, "r7", "1", "Value of the hidden register r7")
	flag.IntVar(&maxStep, "n", 0, "Step budget (0 is unlimited)")
	flag.BoolVar(&debug, "d", false, "Trace every invocation")
	flag.StringVar(&seq7, "s7", "", "Sweep r7 over start:stop")
	flag.StringVar(&seq1, "s1", "", "Sweep r1 over start:stop")
	flag.IntVar(&shortcut, "x", 0, "Closed forms for r0 up to this (0..3)")
	flag.BoolVar(&cache, "y", false, "Memoize depth-neutral calls")
	flag.StringVar(&modulus, "M", "32768", "Modulus (0 is unbounded)")
	flag.StringVar(&match, "m", "", "Only report results matching this expression")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	cfg := evaluator.Config{
		MaxStep:  maxStep,
		Shortcut: shortcut,
		Cache:    cache,
		Modulus:  parseRegister("M", modulus),
		Verbose:  debug,
	}

	ev, err := evaluator.NewEvaluator(cfg)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	sw := &sweep.Sweep{Evaluator: ev}

	if len(seq7) != 0 && len(seq1) != 0 {
		log.Fatalf("%v: %v", os.Args[0], f("-s7 and -s1 are exclusive"))
	}

	for _, seq := range []struct {
		text string
		reg  sweep.Register
	}{{seq7, sweep.SWEEP_R7}, {seq1, sweep.SWEEP_R1}} {
		if len(seq.text) == 0 {
			continue
		}
		sw.Register = seq.reg
		sw.Range, err = sweep.ParseRange(seq.text)
		if err != nil {
			log.Fatalf("%v: -s%v: %v", os.Args[0], seq.reg.String()[1:], err)
		}
	}

	if len(match) != 0 {
		sw.Match, err = sweep.NewMatch(match)
		if err != nil {
			log.Fatalf("%v: %v", os.Args[0], err)
		}
	}

	log.SetFlags(0)
	log.Print(f("teleporter register confirmation"))

	for rep, err := range sw.Run(parseRegister("r0", r0), parseRegister("r1", r1), parseRegister("r7", r7)) {
		if err != nil {
			log.Fatal(err)
		}
		log.Print(rep.String())
	}
}
