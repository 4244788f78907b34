package analyzer_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/limbo/calai/internal/analyzer"
	errorvalues "github.com/limbo/calai/internal/error_values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		timeout time.Duration
		want    *analyzer.Analysis
		wantErr error
	}{
		{
			name: "full response",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"mealName":"Chicken salad","calories":420,"protein":35,"carbs":12,"fat":24,"fiber":5,"sugar":4,"sodium":610,"healthScore":8}`))
			},
			want: &analyzer.Analysis{MealName: "Chicken salad", Calories: 420, Protein: 35, Carbs: 12, Fat: 24, Fiber: 5, Sugar: 4, Sodium: 610, HealthScore: ptr(8.0)},
		},
		{
			name: "optional nutrients missing",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"mealName":"Toast","calories":180,"protein":6,"carbs":30,"fat":3}`))
			},
			want: &analyzer.Analysis{MealName: "Toast", Calories: 180, Protein: 6, Carbs: 30, Fat: 3},
		},
		{
			name: "upstream failure",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte("workflow crashed"))
			},
			wantErr: errorvalues.ErrAnalyzerStatus,
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`not json`))
			},
			wantErr: errorvalues.ErrAnalyzerPayload,
		},
		{
			name: "no meal name",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"calories":100}`))
			},
			wantErr: errorvalues.ErrAnalyzerPayload,
		},
		{
			name: "connection dropped mid body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Length", "200")
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{"mealName":"Ramen",`))
			},
			wantErr: errorvalues.ErrAnalyzerStatus,
		},
		{
			name: "slow upstream",
			handler: func(w http.ResponseWriter, r *http.Request) {
				select {
				case <-time.After(time.Second):
				case <-r.Context().Done():
				}
			},
			timeout: 50 * time.Millisecond,
			wantErr: errorvalues.ErrAnalyzerTimeout,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()
			timeout := tc.timeout
			if timeout == 0 {
				timeout = time.Second
			}
			c := analyzer.New(srv.URL, timeout)
			result, err := c.Analyze(context.Background(), "meal.jpg", strings.NewReader("fake-jpeg"))
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, result)
		})
	}
}

func TestAnalyzeSendsImageField(t *testing.T) {
	var (
		gotName string
		gotBody string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("image")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()
		data, _ := io.ReadAll(file)
		gotName, gotBody = header.Filename, string(data)
		w.Write([]byte(`{"mealName":"Rice","calories":200,"protein":4,"carbs":44,"fat":1}`))
	}))
	defer srv.Close()

	c := analyzer.New(srv.URL, time.Second)
	_, err := c.Analyze(context.Background(), "lunch.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "lunch.png", gotName)
	assert.Equal(t, "png-bytes", gotBody)
}

func ptr[T any](v T) *T {
	return &v
}
