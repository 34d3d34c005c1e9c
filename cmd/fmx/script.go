package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/maxima"
	"github.com/npillmayer/maxima/format"
	"github.com/npillmayer/maxima/watch"
	"github.com/npillmayer/schuko/gtrace"
)

// options controls how a script's output is rendered.
type options struct {
	html   bool           // print tables as HTML
	watch  bool           // report every committed change
	config *format.Config // console configuration
}

// interpreter executes scripts of function commands, one command per line:
//
//	set A V    set the value at argument A to V
//	erase A    remove argument A
//	get A      print the value at argument A
//	print      print all points, maxima flagged
//	maxima     print the local maxima
//	dot        print the domain index in Graphviz DOT format
//
// Arguments and values are 64-bit integers. Empty lines and lines starting
// with '#' are skipped.
type interpreter struct {
	f       *maxima.Function[int64, int64]
	out     io.Writer
	opts    options
	feed    *watch.Feed[int64, int64]
	changes <-chan maxima.Change[int64, int64]
	pending int // changes committed but not yet reported
}

func newInterpreter(ctx context.Context, out io.Writer, opts options) (*interpreter, func(), error) {
	ip := &interpreter{out: out, opts: opts}
	cfg := maxima.OrderedConfig[int64, int64]()
	teardown := func() {}
	if opts.watch {
		ip.feed = watch.NewFeed[int64, int64](ctx)
		changes, cancel, err := ip.feed.Subscribe(ctx, 16)
		if err != nil {
			ip.feed.Close()
			return nil, teardown, err
		}
		ip.changes = changes
		publish := ip.feed.Hook()
		cfg.OnCommit = func(c maxima.Change[int64, int64]) {
			ip.pending++
			publish(c)
		}
		teardown = func() {
			cancel()
			ip.feed.Close()
		}
	}
	f, err := maxima.New(cfg)
	if err != nil {
		teardown()
		return nil, func() {}, err
	}
	ip.f = f
	return ip, teardown, nil
}

// run executes a script. It stops at the first failing command.
func (ip *interpreter) run(script io.Reader) error {
	scanner := bufio.NewScanner(script)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		gtrace.CoreTracer.Debugf("fmx: [%3d] %s", lineno, line)
		if err := ip.exec(strings.Fields(line)); err != nil {
			return fmt.Errorf("line %d: %w", lineno, err)
		}
		if err := ip.report(); err != nil {
			return fmt.Errorf("line %d: %w", lineno, err)
		}
	}
	return scanner.Err()
}

func (ip *interpreter) exec(fields []string) error {
	cmd, args := fields[0], fields[1:]
	var nums []int64
	switch cmd {
	case "set":
		nums = make([]int64, 2)
	case "erase", "get":
		nums = make([]int64, 1)
	case "print", "maxima", "dot":
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	if len(args) != len(nums) {
		return fmt.Errorf("%s: expected %d arguments, have %d", cmd, len(nums), len(args))
	}
	for i, a := range args {
		n, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", cmd, err)
		}
		nums[i] = n
	}
	switch cmd {
	case "set":
		return ip.f.SetValue(nums[0], nums[1])
	case "erase":
		return ip.f.Erase(nums[0])
	case "get":
		v, err := ip.f.ValueAt(nums[0])
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(ip.out, v)
		return err
	case "print":
		if ip.opts.html {
			if err := format.HTMLTable(ip.out, ip.f); err != nil {
				return err
			}
			_, err := fmt.Fprintln(ip.out)
			return err
		}
		return format.Table(ip.out, ip.f, ip.opts.config)
	case "maxima":
		return format.MaximaList(ip.out, ip.f, ip.opts.config)
	case "dot":
		maxima.Function2Dot(ip.f, ip.out)
	}
	return nil
}

// report prints the changes committed by the last command. Changes travel
// through the feed asynchronously, so report waits for every pending one.
func (ip *interpreter) report() error {
	for ; ip.pending > 0; ip.pending-- {
		c, ok := <-ip.changes
		if !ok {
			return watch.ErrClosed
		}
		line := fmt.Sprintf("~ %s %v", c.Kind, c.Point)
		if len(c.Gained) > 0 {
			line += fmt.Sprintf(" +%v", c.Gained)
		}
		if len(c.Lost) > 0 {
			line += fmt.Sprintf(" -%v", c.Lost)
		}
		if _, err := fmt.Fprintln(ip.out, line); err != nil {
			return err
		}
	}
	return nil
}
