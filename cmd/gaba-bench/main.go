// Copyright © 2024 Wei Shen <shenwei356@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Command gaba-bench drives the banded fill engine over one or more sequence
// pairs and reports the fill status (and, with -d, the tail's reconstructed
// score), adapted from the teacher's
// benchmark/wfa-go.go CLI. It does not emit CIGAR or any other traceback
// product: that lives in an external consumer of the persisted Block layout
// (spec §1, Out-of-scope), not in this core module.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/profile"
	"github.com/shenwei356/gaba"
)

var version = "0.1.0"

func main() {
	app := filepath.Base(os.Args[0])
	usage := fmt.Sprintf(`
gaba: banded affine-gap sequence alignment in Golang

   Code: https://github.com/shenwei356/gaba
Version: v%s

Input file format: one pair of FASTA-style records per two lines, '>'-prefixed
query then '<'-prefixed target, matching the WFA-paper benchmark convention.

Usage:
  1. Align two sequences from the positional arguments.

        %s [options] <query seq> <target seq>

  2. Align sequence pairs from the input file.

        %s [options] -i input.txt

Options/Flags:
`, version, app, app)

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}

	help := flag.Bool("h", false, "print help message")
	infile := flag.String("i", "", "input file")
	xdrop := flag.Int("x", int(gaba.DefaultXDrop), "X-drop threshold")
	dump := flag.Bool("d", false, "dump the final tail's p, mp, mq, psum and max")

	pprofCPU := flag.Bool("p", false, "cpu pprof. go tool pprof -http=:8080 cpu.pprof")
	pprofMem := flag.Bool("m", false, "mem pprof. go tool pprof -http=:8080 mem.pprof")

	flag.Parse()

	if *help {
		flag.Usage()
		return
	}

	if *pprofCPU {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	} else if *pprofMem {
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	}

	outfh := bufio.NewWriter(os.Stdout)
	defer outfh.Flush()

	cfg := gaba.NewConfig(gaba.WithXDrop(int16(*xdrop)))

	alignTwo := func(q, t string) {
		sc, err := gaba.Init(cfg)
		checkError(err)

		dp := gaba.NewDPContext(sc)
		defer dp.Close()

		sec, err := gaba.NewSectionPair([]byte(q), []byte(t))
		checkError(err)

		result := gaba.Fill(dp, dp.Root(), sec, int64(len(q)+len(t)))

		fmt.Fprintf(outfh, "query   %s\n", q)
		fmt.Fprintf(outfh, "target  %s\n", t)
		fmt.Fprintf(outfh, "status  %v\n", result.Status)

		if *dump {
			result.Tail.Dump(outfh)
		}
		fmt.Fprintln(outfh)
	}

	if *infile == "" {
		if flag.NArg() != 2 {
			checkError(fmt.Errorf("if flag -i not given, please give me two sequences"))
		}
		alignTwo(flag.Arg(0), flag.Arg(1))
		return
	}

	fh, err := os.Open(*infile)
	checkError(err)
	defer fh.Close()

	scanner := bufio.NewScanner(fh)
	for scanner.Scan() {
		q := scanner.Text()
		if !scanner.Scan() {
			break
		}
		t := scanner.Text()
		alignTwo(trimMark(q), trimMark(t))
	}
	checkError(scanner.Err())
}

func trimMark(s string) string {
	if len(s) > 0 && (s[0] == '>' || s[0] == '<') {
		return s[1:]
	}
	return s
}

func checkError(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
