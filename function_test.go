package maxima

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type xy = [2]int

func pointsOf(seq func(func(Point[int, int]) bool)) []xy {
	var out []xy
	for p := range seq {
		out = append(out, xy{p.Arg(), p.Value()})
	}
	return out
}

func expectMaxima(t *testing.T, f *Function[int, int], want ...xy) {
	t.Helper()
	got := pointsOf(f.Maxima())
	if !slices.Equal(got, want) {
		t.Fatalf("expected maxima %v, got %v", want, got)
	}
	if err := f.Check(); err != nil {
		t.Fatalf("unexpected invariant violation: %v", err)
	}
}

func mustSet(t *testing.T, f *Function[int, int], a, v int) {
	t.Helper()
	if err := f.SetValue(a, v); err != nil {
		t.Fatalf("SetValue(%d, %d): unexpected error: %v", a, v, err)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(Config[int, int]{ArgLess: Less[int]()})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	_, err = New(Config[int, int]{ValueLess: Less[int]()})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestSetValueOverwrites(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	f := NewOrdered[int, int]()
	mustSet(t, f, 0, 1)
	if got := pointsOf(f.Points()); !slices.Equal(got, []xy{{0, 1}}) {
		t.Fatalf("unexpected points %v", got)
	}
	expectMaxima(t, f, xy{0, 1})
	mustSet(t, f, 0, 0)
	if got := pointsOf(f.Points()); !slices.Equal(got, []xy{{0, 0}}) {
		t.Fatalf("unexpected points %v", got)
	}
	expectMaxima(t, f, xy{0, 0})
	v, err := f.ValueAt(0)
	if err != nil || v != 0 {
		t.Fatalf("expected value 0 at 0, got %d, %v", v, err)
	}
}

func TestMaximaScenario(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	f := NewOrdered[int, int]()
	// plateau
	mustSet(t, f, 0, 0)
	mustSet(t, f, 1, 0)
	mustSet(t, f, 2, 0)
	if got := pointsOf(f.Points()); !slices.Equal(got, []xy{{0, 0}, {1, 0}, {2, 0}}) {
		t.Fatalf("unexpected points %v", got)
	}
	expectMaxima(t, f, xy{0, 0}, xy{1, 0}, xy{2, 0})
	// narrowing
	mustSet(t, f, 1, 1)
	expectMaxima(t, f, xy{1, 1})
	// shift
	mustSet(t, f, 2, 2)
	expectMaxima(t, f, xy{2, 2})
	mustSet(t, f, 0, 2)
	mustSet(t, f, 1, 3)
	expectMaxima(t, f, xy{1, 3})
	if _, err := f.ValueAt(4); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for argument 4, got %v", err)
	}
	// erase re-evaluation
	if err := f.Erase(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, found, _ := f.Find(1); found {
		t.Fatalf("expected 1 to be erased")
	}
	expectMaxima(t, f, xy{0, 2}, xy{2, 2})
	mustSet(t, f, -2, 0)
	mustSet(t, f, -1, -1)
	expectMaxima(t, f, xy{0, 2}, xy{2, 2}, xy{-2, 0})
	if f.Len() != 4 {
		t.Fatalf("expected 4 points, have %d", f.Len())
	}
}

func TestEraseAbsentIsNoop(t *testing.T) {
	calls := 0
	f, _ := New(Config[int, int]{
		ArgLess:   Less[int](),
		ValueLess: Less[int](),
		OnCommit:  func(Change[int, int]) { calls++ },
	})
	mustSet(t, f, 1, 1)
	if err := f.Erase(7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Len() != 1 || calls != 1 {
		t.Fatalf("expected unchanged function, len=%d, commits=%d", f.Len(), calls)
	}
	if err := f.Erase(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectMaxima(t, f)
	if f.Len() != 0 {
		t.Fatalf("expected empty function, len=%d", f.Len())
	}
}

type secret struct {
	value int
}

func TestPointsOutliveFunction(t *testing.T) {
	less := Infallible(func(x, y secret) bool { return x.value < y.value })
	var kept []Point[secret, secret]
	{
		f, err := New(Config[secret, secret]{ArgLess: less, ValueLess: less})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		f.SetValue(secret{1}, secret{10})
		f.SetValue(secret{2}, secret{20})
		for p := range f.Points() {
			kept = append(kept, p)
			break
		}
		for p := range f.Maxima() {
			kept = append(kept, p)
			break
		}
	}
	if kept[0].Arg().value != 1 || kept[0].Value().value != 10 {
		t.Errorf("unexpected first point %v", kept[0])
	}
	if kept[1].Arg().value != 2 || kept[1].Value().value != 20 {
		t.Errorf("unexpected first maximum %v", kept[1])
	}
}

func TestBumpsKeepSingleMaximum(t *testing.T) {
	n := 100000
	if testing.Short() {
		n = 1000
	}
	f := NewOrdered[int, int]()
	for i := 1; i <= n; i++ {
		mustSet(t, f, i, i)
	}
	counter := 0
	for i := 1; i <= n; i++ {
		v, err := f.ValueAt(i)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		mustSet(t, f, i, v+1)
		for range f.Maxima() {
			counter++
		}
	}
	if counter != 2*n-1 {
		t.Fatalf("expected %d maxima observations, got %d", 2*n-1, counter)
	}
}

func TestIsMaximumAndCount(t *testing.T) {
	f := NewOrdered[int, int]()
	for a, v := range []int{1, 3, 2, 2, 5} {
		mustSet(t, f, a, v)
	}
	want := map[int]bool{0: false, 1: true, 2: false, 3: false, 4: true}
	for a, expected := range want {
		isMax, err := f.IsMaximum(a)
		if err != nil || isMax != expected {
			t.Errorf("IsMaximum(%d) = %v, %v; expected %v", a, isMax, err, expected)
		}
	}
	if isMax, _ := f.IsMaximum(9); isMax {
		t.Errorf("expected absent argument not to be a maximum")
	}
	if f.MaximaCount() != 2 {
		t.Errorf("expected 2 maxima, have %d", f.MaximaCount())
	}
	expectMaxima(t, f, xy{4, 5}, xy{1, 3})
}

func TestOnCommitReportsMaximaDelta(t *testing.T) {
	var changes []Change[int, int]
	f, err := New(Config[int, int]{
		ArgLess:   Less[int](),
		ValueLess: Less[int](),
		OnCommit:  func(c Change[int, int]) { changes = append(changes, c) },
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mustSet(t, f, 0, 0)
	mustSet(t, f, 1, 0)
	mustSet(t, f, 1, 0) // no-op
	mustSet(t, f, 1, 1)
	if len(changes) != 3 {
		t.Fatalf("expected 3 commits, got %d", len(changes))
	}
	last := changes[2]
	if last.Kind != Updated || last.Prior.Value() != 0 || last.Point.Value() != 1 {
		t.Fatalf("unexpected change %+v", last)
	}
	if got := pointsOf(slices.Values(last.Gained)); !slices.Equal(got, []xy{{1, 1}}) {
		t.Errorf("expected (1,1) gained, got %v", got)
	}
	lost := pointsOf(slices.Values(last.Lost))
	slices.SortFunc(lost, func(x, y xy) int { return x[0] - y[0] })
	if !slices.Equal(lost, []xy{{0, 0}, {1, 0}}) {
		t.Errorf("expected (0,0) and (1,0) lost, got %v", lost)
	}
	if err := f.Erase(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	erased := changes[3]
	if erased.Kind != Erased || erased.Point.Arg() != 1 {
		t.Fatalf("unexpected change %+v", erased)
	}
	if got := pointsOf(slices.Values(erased.Gained)); !slices.Equal(got, []xy{{0, 0}}) {
		t.Errorf("expected (0,0) gained, got %v", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	f := NewOrdered[int, int]()
	for a, v := range []int{1, 3, 2, 4} {
		mustSet(t, f, a, v)
	}
	c := f.Clone()
	if err := c.Check(); err != nil {
		t.Fatalf("clone: unexpected invariant violation: %v", err)
	}
	mustSet(t, c, 2, 9)
	if err := f.Erase(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectMaxima(t, f, xy{3, 4})
	expectMaxima(t, c, xy{2, 9})
	if f.Len() != 3 || c.Len() != 4 {
		t.Fatalf("unexpected sizes %d, %d", f.Len(), c.Len())
	}
}

func TestFunction2Dot(t *testing.T) {
	f := NewOrdered[int, int]()
	for a, v := range []int{1, 3, 2} {
		mustSet(t, f, a, v)
	}
	var bf bytes.Buffer
	Function2Dot(f, &bf)
	out := bf.String()
	if !strings.Contains(out, "digraph") || !strings.Contains(out, "1\\n3") {
		t.Fatalf("unexpected DOT output:\n%s", out)
	}
}

func TestFunction2DotQuotesLabels(t *testing.T) {
	f := NewOrdered[string, string]()
	if err := f.SetValue(`say "hi"`, `C:\tmp`); err != nil {
		t.Fatal(err)
	}
	var bf bytes.Buffer
	Function2Dot(f, &bf)
	out := bf.String()
	t.Logf("\n%s", out)
	if !strings.Contains(out, `[label="say \"hi\"\nC:\\tmp" `) {
		t.Errorf("label not escaped for DOT:\n%s", out)
	}
}
