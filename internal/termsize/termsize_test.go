package termsize

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/creack/pty"
)

func fixedQuery(cols int, err error) func() (int, error) {
	return func() (int, error) { return cols, err }
}

func fixedStty(out string, err error) func(context.Context) (string, error) {
	return func(context.Context) (string, error) { return out, err }
}

func env(vals map[string]string) func(string) string {
	return func(k string) string { return vals[k] }
}

var errBroken = errors.New("broken")

func TestWidthSourcePriority(t *testing.T) {
	tests := []struct {
		name  string
		probe Probe
		want  int
	}{
		{
			name: "query wins",
			probe: Probe{
				Query:  fixedQuery(120, nil),
				Stty:   fixedStty("24 100\n", nil),
				Getenv: env(map[string]string{"COLUMNS": "90"}),
			},
			want: 120,
		},
		{
			name: "stty when query fails",
			probe: Probe{
				Query:  fixedQuery(0, errBroken),
				Stty:   fixedStty("24 100\n", nil),
				Getenv: env(map[string]string{"COLUMNS": "90"}),
			},
			want: 100,
		},
		{
			name: "stty when query reports zero columns",
			probe: Probe{
				Query:  fixedQuery(0, nil),
				Stty:   fixedStty("12 64", nil),
				Getenv: env(nil),
			},
			want: 64,
		},
		{
			name: "env when stty missing",
			probe: Probe{
				Query:  fixedQuery(0, errBroken),
				Stty:   fixedStty("", errBroken),
				Getenv: env(map[string]string{"COLUMNS": "90"}),
			},
			want: 90,
		},
		{
			name: "env when stty output malformed",
			probe: Probe{
				Query:  fixedQuery(0, errBroken),
				Stty:   fixedStty("garbage", nil),
				Getenv: env(map[string]string{"COLUMNS": " 72 "}),
			},
			want: 72,
		},
		{
			name: "default when everything fails",
			probe: Probe{
				Query:  fixedQuery(0, errBroken),
				Stty:   fixedStty("", errBroken),
				Getenv: env(map[string]string{"COLUMNS": "wide"}),
			},
			want: DefaultWidth,
		},
		{
			name: "default when env is negative",
			probe: Probe{
				Query:  fixedQuery(-1, nil),
				Stty:   fixedStty("24 0", nil),
				Getenv: env(map[string]string{"COLUMNS": "-40"}),
			},
			want: DefaultWidth,
		},
		{
			name:  "default when every source is nil",
			probe: Probe{},
			want:  DefaultWidth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.probe.Width(); got != tt.want {
				t.Errorf("Width() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWidthAlwaysPositive(t *testing.T) {
	queries := []func() (int, error){fixedQuery(0, errBroken), fixedQuery(0, nil), fixedQuery(-5, nil), fixedQuery(33, nil), nil}
	sttys := []func(context.Context) (string, error){fixedStty("", errBroken), fixedStty("1 2 3", nil), fixedStty("24 -1", nil), fixedStty("24 50", nil), nil}
	envs := []func(string) string{env(nil), env(map[string]string{"COLUMNS": "x"}), env(map[string]string{"COLUMNS": "0"}), env(map[string]string{"COLUMNS": "61"}), nil}

	for _, q := range queries {
		for _, s := range sttys {
			for _, e := range envs {
				p := Probe{Query: q, Stty: s, Getenv: e}
				if got := p.Width(); got <= 0 {
					t.Fatalf("Width() = %d, want positive", got)
				}
			}
		}
	}
}

func TestSttyTimeoutApplied(t *testing.T) {
	p := Probe{
		Stty: func(ctx context.Context) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		},
		SttyTimeout: 20 * time.Millisecond,
	}

	start := time.Now()
	if got := p.Width(); got != DefaultWidth {
		t.Errorf("Width() = %d, want %d", got, DefaultWidth)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("stty timeout not honored: took %v", elapsed)
	}
}

func TestParseSttySize(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"24 80\n", 80, false},
		{"  50   132  ", 132, false},
		{"", 0, true},
		{"80", 0, true},
		{"24 80 extra", 0, true},
		{"rows 80", 0, true},
		{"24 cols", 0, true},
		{"24 0", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseSttySize(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSttySize(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSttySize(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestReportListsEverySource(t *testing.T) {
	p := Probe{
		Query:  fixedQuery(100, nil),
		Stty:   fixedStty("", errBroken),
		Getenv: env(map[string]string{"COLUMNS": "90"}),
	}
	results := p.Report()
	if len(results) != 3 {
		t.Fatalf("Report() returned %d results, want 3", len(results))
	}
	wantNames := []string{"terminal query", "stty size", "COLUMNS"}
	for i, r := range results {
		if r.Source != wantNames[i] {
			t.Errorf("results[%d].Source = %q, want %q", i, r.Source, wantNames[i])
		}
	}
	if results[0].Err != nil || results[0].Width != 100 {
		t.Errorf("query result = %+v, want width 100", results[0])
	}
	if results[1].Err == nil {
		t.Errorf("stty result = %+v, want error", results[1])
	}
	if results[2].Err != nil || results[2].Width != 90 {
		t.Errorf("env result = %+v, want width 90", results[2])
	}
}

func TestQueryFdOnPseudoTerminal(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	if err := pty.Setsize(ptmx, &pty.Winsize{Rows: 12, Cols: 53}); err != nil {
		t.Fatalf("Setsize: %v", err)
	}

	p := Probe{Query: QueryFd(int(tty.Fd()))}
	if got := p.Width(); got != 53 {
		t.Errorf("Width() = %d, want 53", got)
	}
}

func TestQueryFdOnNonTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "notatty")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	p := Probe{Query: QueryFd(int(f.Fd())), Getenv: env(map[string]string{"COLUMNS": "77"})}
	if got := p.Width(); got != 77 {
		t.Errorf("Width() = %d, want 77", got)
	}
}
