// Package aoc holds the shared plumbing for the daily puzzle solvers: a
// runner that self-checks samples before touching real input, total
// parsing helpers, and a handful of generic containers.
// (forked from bradfitz/aoc)
package aoc

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/maps"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		return sample{want: m[1], input: m[2]}, true
	}
	return sample{}, false
}

// extractSamples returns the want= samples found in the doc comments of
// the funcs declared in src, keyed by func name. A sample without input
// reuses the input of the previous one.
func extractSamples(src []byte) map[string]sample {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "main.go", src, parser.ParseComments)
	if err != nil {
		logger.Fatalf("parsing source to extract samples: %v", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[fd.Name.Name] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples
}

// Puzzle is embedded (as a pointer) in solver structs. The runner fills it
// in before each part runs.
type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	solver  partSolver
	samples map[string]sample
	input   []byte // real input, nil until loaded
}

func (p *Puzzle) inputPath() string {
	return filepath.Join(flagInputs, strconv.Itoa(p.year), fmt.Sprintf("%d.input", p.day.day))
}

// loadInput reads the real puzzle input from disk. It reports false if
// the file is not there.
func (p *Puzzle) loadInput() bool {
	if p.input != nil {
		return true
	}
	b, err := os.ReadFile(p.inputPath())
	if err != nil {
		logger.Warnw("no puzzle input; skipping real run", "year", p.year, "day", p.day.day, "err", err)
		return false
	}
	p.input = b
	logger.Debugw("loaded input", "path", p.inputPath(), "bytes", len(b), "sum", Fingerprint(&b))
	return true
}

// Input returns the text the current part should solve: the sample in
// sample mode, the real input otherwise.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		s, _ := p.Sample()
		return []byte(s.input)
	}
	return p.input
}

// InputString is Input as a string.
func (p *Puzzle) InputString() string {
	return string(p.Input())
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	return bufio.NewScanner(bytes.NewReader(p.Input()))
}

// ForLinesY calls onLine for each line of input.
// The y value is the row number, starting with 0.
func (p *Puzzle) ForLinesY(onLine func(int, string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	MustDo(s.Err())
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

// Debugf logs only while solving the sample; real inputs are too big.
func (p *Puzzle) Debugf(format string, args ...any) {
	if p.SampleMode {
		logger.Debugf(format, args...)
	}
}

// Sample returns the sample attached to the running part.
func (p *Puzzle) Sample() (sample, bool) {
	s, ok := p.samples[p.solver.Name]
	return s, ok
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods finds the methods of x named D{day}p{part}. The methods
// must have the signature func() any.
func extractMethods(x any) map[int]day {
	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		logger.Fatalf("Run: got %T; want pointer to struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		if _, ok := v.Method(i).Interface().(func() any); !ok {
			logger.Fatalf("%s: got %v; want func() any", mn, v.Method(i).Type())
		}
		d := Int(matches[1])
		byDays[d] = append(byDays[d], partSolver{
			Part: matches[2],
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days
}

var (
	flagCurDay     int
	flagPart       string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
	flagInputs     string
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run")
	flag.StringVar(&flagInputs, "inputs", ".", "directory containing <year>/<day>.input files")
}

var initFlags = sync.OnceFunc(flag.Parse)

var logger = zap.NewNop().Sugar()

func newLogger(debug bool) *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}
	return MustGet(cfg.Build()).Sugar()
}

type titler interface {
	Title(day int) string
}

func header(slvr any, year, d int) string {
	if t, ok := slvr.(titler); ok {
		if title := t.Title(d); title != "" {
			return fmt.Sprintf("- Day %d of %d: %s -", d, year, title)
		}
	}
	return fmt.Sprintf("Running day %d", d)
}

// runDay runs every part of day, sample first. It reports false if a
// sample did not produce its wanted answer.
func runDay(slvr any, year int, day day, samples map[string]sample) bool {
	p := Puzzle{
		year:    year,
		day:     day,
		samples: samples,
	}
	fmt.Println(header(slvr, year, day.day))
	sr := reflect.ValueOf(slvr)
	sr.Elem().FieldByName("Puzzle").Set(reflect.ValueOf(&p))
	for _, ps := range day.parts {
		p.solver = ps
		if flagPart != "" && ps.Part != flagPart {
			continue
		}
		fn := sr.MethodByName(ps.Name).Interface().(func() any)

		for _, sm := range []bool{true, false} {
			if !sm && flagOnlySample {
				continue
			} else if sm && flagSkipSample {
				continue
			}
			p.SampleMode = sm
			if sm {
				if _, ok := p.Sample(); !ok {
					logger.Debugw("no sample", "func", ps.Name)
					continue
				}
			} else if !p.loadInput() {
				continue
			}
			t0 := time.Now()
			got := fn()
			if sm {
				s, _ := p.Sample()
				if fmt.Sprint(got) != s.want {
					fmt.Printf("part %s: %v ❌; want %v\n", ps.Part, got, s.want)
					return false
				}
				fmt.Printf("part %s sample: %v ✅ (%v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			} else {
				fmt.Printf("part %s: %v (took %v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			}
		}
	}
	return true
}

// Run solves the days registered on slvr for year. slvr must be a pointer
// to a struct embedding *Puzzle whose methods are named D{day}p{part}.
// src is the source of the file declaring those methods; want= comments
// on them are used as samples.
func Run(year int, src []byte, slvr any) {
	initFlags()
	logger = newLogger(flagDebug)
	defer logger.Sync()

	samples := extractSamples(src)
	days := extractMethods(slvr)

	if flagCurDay != -1 {
		day, ok := days[flagCurDay]
		if !ok {
			logger.Fatalf("no day %d", flagCurDay)
		}
		runDay(slvr, year, day, samples)
		return
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, day := range dayNums {
		runDay(slvr, year, days[day], samples)
		fmt.Println()
	}
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}
