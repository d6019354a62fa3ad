package pipeline

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/jobtimeline/pkg/config"
	"github.com/matzehuels/jobtimeline/pkg/errors"
	"github.com/matzehuels/jobtimeline/pkg/observability"
	"github.com/matzehuels/jobtimeline/pkg/render"
)

const sampleCSV = `worker,begin,end,group
w1,0,4,build
w1,1,3,test
w2,2,6,build
w1,5,8,deploy
`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jobs.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func quietRunner() *Runner {
	return NewRunner(log.NewWithOptions(io.Discard, log.Options{}))
}

func TestRunner_Execute(t *testing.T) {
	opts := DefaultOptions()
	opts.Input = writeSample(t)
	opts.Formats = []string{FormatSVG, FormatJSON}

	result, err := quietRunner().Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if result.Stats.Jobs != 4 || result.Stats.Workers != 2 || result.Stats.Partitions != 3 {
		t.Errorf("Stats = %+v, want 4 jobs, 2 workers, 3 partitions", result.Stats)
	}

	svg := string(result.Artifacts[FormatSVG])
	if !strings.HasPrefix(svg, "<svg") {
		t.Errorf("SVG artifact does not start with <svg: %.40q", svg)
	}
	if n := strings.Count(svg, `class="job `); n != 4 {
		t.Errorf("SVG has %d job lines, want 4", n)
	}

	var doc struct {
		YTicks []string `json:"y_ticks"`
		Series []struct {
			Label string `json:"label"`
		} `json:"series"`
	}
	if err := json.Unmarshal(result.Artifacts[FormatJSON], &doc); err != nil {
		t.Fatalf("JSON artifact: %v", err)
	}
	if strings.Join(doc.YTicks, ",") != "w1,w2" {
		t.Errorf("y_ticks = %v, want [w1 w2]", doc.YTicks)
	}
	if len(doc.Series) != 3 {
		t.Errorf("got %d series, want 3", len(doc.Series))
	}
}

func TestRunner_ExecuteMissingFile(t *testing.T) {
	opts := DefaultOptions()
	opts.Input = filepath.Join(t.TempDir(), "missing.csv")

	_, err := quietRunner().Execute(context.Background(), opts)
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Execute() error = %v, want %s", err, errors.ErrCodeFileNotFound)
	}
}

func TestRunner_ExecuteInvalidOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.Input = writeSample(t)
	opts.GroupNum = 0

	_, err := quietRunner().Execute(context.Background(), opts)
	if !errors.Is(err, errors.ErrCodeInvalidGroupNum) {
		t.Errorf("Execute() error = %v, want %s", err, errors.ErrCodeInvalidGroupNum)
	}
}

func TestRunner_ExecuteTableRejectsNaNRadius(t *testing.T) {
	opts := DefaultOptions()
	opts.GroupRadius = math.NaN()
	opts.Formats = []string{FormatSVG, FormatJSON}

	_, err := quietRunner().ExecuteTable(context.Background(), readTable(t, sampleCSV), opts)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("ExecuteTable() error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
}

func TestRunner_ExecuteTableCanceled(t *testing.T) {
	tbl := readTable(t, sampleCSV)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := quietRunner().ExecuteTable(ctx, tbl, DefaultOptions())
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("ExecuteTable() error = %v, want context.Canceled", err)
	}
}

func TestRunner_Layout(t *testing.T) {
	opts := DefaultOptions()
	opts.Input = writeSample(t)
	opts.GroupNum = 1

	rep, err := quietRunner().Layout(context.Background(), opts)
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	// group_num 1 cycles 0, 1, 0, -1
	want := []int{0, 1, 0, 0}
	for i, p := range rep.Placements {
		if p.Offset != want[i] {
			t.Errorf("placement %d: Offset = %d, want %d", i, p.Offset, want[i])
		}
	}
}

type recordingHooks struct {
	observability.NoopPipelineHooks
	mu     sync.Mutex
	events []string
}

func (h *recordingHooks) record(e string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, e)
}

func (h *recordingHooks) OnLoadComplete(_ context.Context, _ string, jobs int, _ time.Duration, err error) {
	if err == nil && jobs == 4 {
		h.record("load")
	}
}

func (h *recordingHooks) OnLayoutComplete(_ context.Context, workers, partitions int, _ time.Duration, err error) {
	if err == nil && workers == 2 && partitions == 3 {
		h.record("layout")
	}
}

func (h *recordingHooks) OnRenderComplete(_ context.Context, formats []string, _ time.Duration, err error) {
	if err == nil && len(formats) == 1 {
		h.record("render")
	}
}

func TestRunner_EmitsHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	t.Cleanup(observability.Reset)

	opts := DefaultOptions()
	opts.Input = writeSample(t)
	if _, err := quietRunner().Execute(context.Background(), opts); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if got := strings.Join(hooks.events, ","); got != "load,layout,render" {
		t.Errorf("hook events = %s, want load,layout,render", got)
	}
}

func TestRender_Handdrawn(t *testing.T) {
	tbl := readTable(t, sampleCSV)
	opts := DefaultOptions()
	opts.Style = StyleHanddrawn
	opts.Background = "#ffffff"

	fig, err := Draw(tbl, opts)
	if err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	artifacts, err := Render(context.Background(), fig, opts)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	svg := string(artifacts[FormatSVG])
	if !strings.Contains(svg, "hd-wobble") {
		t.Error("handdrawn SVG should define the wobble filter")
	}
	if !strings.Contains(svg, `class="background"`) {
		t.Error("SVG should draw the background")
	}

	again, err := Render(context.Background(), fig, opts)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if string(again[FormatSVG]) != svg {
		t.Error("handdrawn output should be deterministic for a fixed seed")
	}
}

func TestRender_PNG(t *testing.T) {
	if !render.Available() {
		t.Skip("rsvg-convert not installed")
	}
	tbl := readTable(t, sampleCSV)
	opts := DefaultOptions()
	opts.Formats = []string{FormatPNG, FormatPDF}

	fig, err := Draw(tbl, opts)
	if err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	artifacts, err := Render(context.Background(), fig, opts)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.HasPrefix(string(artifacts[FormatPNG]), "\x89PNG") {
		t.Error("PNG artifact has no PNG signature")
	}
	if !strings.HasPrefix(string(artifacts[FormatPDF]), "%PDF") {
		t.Error("PDF artifact has no PDF signature")
	}
}

func TestRunner_ExecuteExamples(t *testing.T) {
	cfg, err := config.Load(filepath.Join("..", "..", "examples", "timeline.toml"))
	if err != nil {
		t.Fatalf("config.Load() error = %v", err)
	}

	for _, input := range []string{"jobs.csv", "jobs.json"} {
		t.Run(input, func(t *testing.T) {
			opts := FromConfig(cfg)
			opts.Input = filepath.Join("..", "..", "examples", input)

			result, err := quietRunner().Execute(context.Background(), opts)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if len(result.Artifacts) != 2 {
				t.Errorf("artifacts = %d, want svg and json", len(result.Artifacts))
			}
			if !strings.Contains(string(result.Artifacts[FormatSVG]), "stage ingest") {
				t.Error("legend should use the configured label template")
			}
		})
	}
}
