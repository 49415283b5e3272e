package service_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"sort"
	"strings"
	"testing"

	"wordvis/internal/chart"
	"wordvis/internal/contextutil"
	"wordvis/internal/indexer"
	"wordvis/internal/selection"
	"wordvis/internal/service"
	"wordvis/internal/service/mocks"

	"go.uber.org/mock/gomock"
)

func init() {
	// Set default logger to discard output for cleaner test output
	// This suppresses logs from slog.Default() used in the service layer
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// testContext returns a context for testing.
// The default logger is already set to discard in init().
func testContext() context.Context {
	return context.Background()
}

func TestNewExplorerService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.NewExplorerService(mocks.NewMockCorpus(ctrl), chart.DefaultTheme())
	if svc == nil {
		t.Fatal("NewExplorerService() returned nil")
	}
}

func TestExplorerService_Vocabulary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCorpus := mocks.NewMockCorpus(ctrl)
	mockCorpus.EXPECT().Vocabulary().Return([]string{"abortion", "border", "economy"}).AnyTimes()
	svc := service.NewExplorerService(mockCorpus, chart.DefaultTheme())

	tests := []struct {
		name  string
		query string
		limit int
		want  []string
	}{
		{"no query", "", 0, []string{"abortion", "border", "economy"}},
		{"limit", "", 2, []string{"abortion", "border"}},
		{"fuzzy query", "bor", 0, []string{"abortion", "border"}},
		{"no match", "zzz", 0, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Vocabulary(testContext(), tt.query, tt.limit)
			sorted := append([]string{}, got...)
			sort.Strings(sorted)
			if !reflect.DeepEqual(sorted, tt.want) {
				t.Errorf("Vocabulary(%q, %d) = %v, want %v", tt.query, tt.limit, got, tt.want)
			}
		})
	}
}

func TestExplorerService_Overview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rows := []indexer.WordCount{{Word: "fraud", Count: 9}, {Word: "border", Count: 4}, {Word: "tax", Count: 1}}
	mockCorpus := mocks.NewMockCorpus(ctrl)
	mockCorpus.EXPECT().Overview().Return(rows).Times(2)
	svc := service.NewExplorerService(mockCorpus, chart.DefaultTheme())

	if got := svc.Overview(testContext(), 0); len(got) != 3 {
		t.Errorf("Overview(0) returned %d rows, want 3", len(got))
	}
	got := svc.Overview(testContext(), 2)
	if !reflect.DeepEqual(got, rows[:2]) {
		t.Errorf("Overview(2) = %v, want %v", got, rows[:2])
	}
}

func TestExplorerService_UpdateTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCorpus := mocks.NewMockCorpus(ctrl)
	mockCorpus.EXPECT().TotalChunks().Return(4).AnyTimes()
	svc := service.NewExplorerService(mockCorpus, chart.DefaultTheme())

	existing := selection.Table{{Chunk: 1, Word: "fraud", Count: 2}}

	tests := []struct {
		name         string
		req          service.TableRequest
		mockSetup    func()
		wantErr      bool
		wantTable    selection.Table
		checkErrType func(error) bool
	}{
		{
			name: "new word appended",
			req:  service.TableRequest{Selected: []string{"fraud", "border"}, Table: existing},
			mockSetup: func() {
				mockCorpus.EXPECT().Counts("border").
					Return([]indexer.Occurrence{{Chunk: 2, Count: 1}, {Chunk: 4, Count: 3}})
			},
			wantTable: selection.Table{
				{Chunk: 1, Word: "fraud", Count: 2},
				{Chunk: 2, Word: "border", Count: 1},
				{Chunk: 4, Word: "border", Count: 3},
			},
		},
		{
			name:      "already indexed word",
			req:       service.TableRequest{Selected: []string{"fraud"}, Table: existing},
			mockSetup: func() {},
			wantTable: existing,
		},
		{
			name:      "empty selection",
			req:       service.TableRequest{},
			mockSetup: func() {},
			wantTable: selection.Table{},
		},
		{
			name: "word absent from corpus",
			req:  service.TableRequest{Selected: []string{"zebra"}},
			mockSetup: func() {
				mockCorpus.EXPECT().Counts("zebra").Return(nil)
			},
			wantTable: selection.Table{},
		},
		{
			name:      "chunk out of range",
			req:       service.TableRequest{Selected: []string{"x"}, Table: selection.Table{{Chunk: 5, Word: "fraud", Count: 1}}},
			mockSetup: func() {},
			wantErr:   true,
			checkErrType: func(err error) bool {
				var validationErr *service.ValidationError
				return errors.As(err, &validationErr) &&
					validationErr.Field == "table" &&
					strings.HasPrefix(err.Error(), "failed to update table: ")
			},
		},
		{
			name:      "non-positive amount",
			req:       service.TableRequest{Table: selection.Table{{Chunk: 1, Word: "fraud", Count: 0}}},
			mockSetup: func() {},
			wantErr:   true,
			checkErrType: func(err error) bool {
				return errors.Is(err, service.ErrInvalidInput)
			},
		},
		{
			name: "duplicate row",
			req: service.TableRequest{Table: selection.Table{
				{Chunk: 1, Word: "fraud", Count: 1},
				{Chunk: 1, Word: "fraud", Count: 2},
			}},
			mockSetup: func() {},
			wantErr:   true,
			checkErrType: func(err error) bool {
				return errors.Is(err, service.ErrInvalidInput)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			resp, err := svc.UpdateTable(testContext(), tt.req)

			if (err != nil) != tt.wantErr {
				t.Errorf("UpdateTable() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if tt.checkErrType != nil && !tt.checkErrType(err) {
					t.Errorf("UpdateTable() error type check failed: %v", err)
				}
				return
			}
			if !reflect.DeepEqual(resp.Table, tt.wantTable) {
				t.Errorf("UpdateTable() table = %v, want %v", resp.Table, tt.wantTable)
			}
		})
	}
}

func TestExplorerService_ClickCell(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.NewExplorerService(mocks.NewMockCorpus(ctrl), chart.DefaultTheme())

	tests := []struct {
		name string
		req  service.ClickRequest
		want []string
	}{
		{"append clicked word", service.ClickRequest{Selection: []string{"fraud"}, Cell: selection.NewCell("border")}, []string{"fraud", "border"}},
		{"empty selection", service.ClickRequest{Cell: selection.NewCell("tax")}, []string{"tax"}},
		{"no click", service.ClickRequest{Selection: []string{"fraud"}}, []string{"fraud"}},
		{"click without value", service.ClickRequest{Selection: []string{"fraud"}, Cell: &selection.Cell{}}, []string{"fraud"}},
		{"nothing at all", service.ClickRequest{}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.ClickCell(testContext(), tt.req)
			if err != nil {
				t.Fatalf("ClickCell() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(resp.Selection, tt.want) {
				t.Errorf("ClickCell() selection = %v, want %v", resp.Selection, tt.want)
			}
		})
	}
}

func TestExplorerService_Chart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCorpus := mocks.NewMockCorpus(ctrl)
	mockCorpus.EXPECT().TotalChunks().Return(3).AnyTimes()
	mockCorpus.EXPECT().ChunkCount().Return(2).AnyTimes()
	svc := service.NewExplorerService(mockCorpus, chart.DefaultTheme())

	table := selection.Table{
		{Chunk: 1, Word: "fraud", Count: 2},
		{Chunk: 3, Word: "border", Count: 1},
	}

	fig, err := svc.Chart(testContext(), service.ChartRequest{Selected: []string{"border"}, Table: table})
	if err != nil {
		t.Fatalf("Chart() unexpected error: %v", err)
	}
	if fig.XRange != [2]int{0, 3} {
		t.Errorf("Chart() XRange = %v, want [0 3]", fig.XRange)
	}
	if len(fig.Series) != 1 || fig.Series[0].Word != "border" {
		t.Errorf("Chart() series = %+v, want only border", fig.Series)
	}

	_, err = svc.Chart(testContext(), service.ChartRequest{Table: selection.Table{{Chunk: 1, Word: "", Count: 1}}})
	if !errors.Is(err, service.ErrInvalidInput) {
		t.Errorf("Chart() error = %v, want ErrInvalidInput", err)
	}
	if err != nil && !strings.HasPrefix(err.Error(), "failed to build chart: ") {
		t.Errorf("Chart() error = %q, want failed to build chart prefix", err)
	}
}

func TestExplorerService_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	want := indexer.Stats{Tokens: 250, ChunkSize: 100, ChunkCount: 2, TotalChunks: 3}
	mockCorpus := mocks.NewMockCorpus(ctrl)
	mockCorpus.EXPECT().Stats().Return(want)
	svc := service.NewExplorerService(mockCorpus, chart.DefaultTheme())

	if got := svc.Stats(testContext()); !reflect.DeepEqual(got, want) {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
}

func TestExplorerService_LogsThroughContextLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCorpus := mocks.NewMockCorpus(ctrl)
	mockCorpus.EXPECT().Vocabulary().Return([]string{"border", "fraud"})
	mockCorpus.EXPECT().Overview().Return([]indexer.WordCount{{Word: "fraud", Count: 3}})
	mockCorpus.EXPECT().Stats().Return(indexer.Stats{Tokens: 3, TotalChunks: 1})
	svc := service.NewExplorerService(mockCorpus, chart.DefaultTheme())

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := contextutil.WithLogger(context.Background(), logger)

	svc.Vocabulary(ctx, "fr", 0)
	svc.Overview(ctx, 1)
	svc.Stats(ctx)

	out := buf.String()
	for _, want := range []string{
		`msg="vocabulary listed" query=fr limit=0 words=1`,
		`msg="overview listed" limit=1 rows=1`,
		`msg="stats requested" tokens=3 chunks=1`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
