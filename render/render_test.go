package render

import (
	"bytes"
	"encoding/json"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sushantpadha/restaurant-sales/engine"
)

var testMatrix = &engine.Matrix{
	Axis:      engine.AxisHour,
	IndexName: "hour",
	Rows:      []string{"9", "10", "11"},
	Columns:   []string{"dine", "delivery"},
	Cells:     [][]float64{{3, 0}, {1.5, 2}, {0, 4}},
}

func testResult(chart engine.ChartKind) *engine.Result {
	sel := engine.Selection{Axis: engine.AxisHour, Group: engine.GroupKey{Kind: engine.GroupOrderType}, Chart: chart}
	return &engine.Result{
		RunID:     "run-1",
		Selection: sel,
		Matrix:    testMatrix,
		Table:     engine.BuildTable(testMatrix),
		Chart:     engine.BuildChart(testMatrix, sel),
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, testMatrix))
	assert.Equal(t, "hour,dine,delivery\n9,3,0\n10,1.50,2\n11,0,4\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, testResult(engine.ChartLine)))

	var decoded struct {
		RunID  string `json:"runId"`
		Matrix struct {
			Rows []string `json:"rows"`
		} `json:"matrix"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "run-1", decoded.RunID)
	assert.Equal(t, testMatrix.Rows, decoded.Matrix.Rows)
}

func TestExportFile(t *testing.T) {
	dir := t.TempDir()
	res := testResult(engine.ChartLine)

	csvPath := filepath.Join(dir, "out.csv")
	require.NoError(t, ExportFile(res, csvPath))
	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hour,dine,delivery")

	jsonPath := filepath.Join(dir, "out.JSON")
	require.NoError(t, ExportFile(res, jsonPath))
	data, err = os.ReadFile(jsonPath)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))

	assert.Error(t, ExportFile(res, filepath.Join(dir, "missing", "out.csv")))
}

func TestColor(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 255, A: 255}, Color("red"))
	assert.Equal(t, color.Black, Color("mauve"))
	for _, name := range engine.Palette {
		assert.NotEqual(t, color.Black, Color(name), name)
	}
}

func TestNewPlot(t *testing.T) {
	for _, kind := range []engine.ChartKind{engine.ChartLine, engine.ChartBar} {
		cfg := testResult(kind).Chart
		p, err := NewPlot(cfg, 576)
		require.NoError(t, err, kind.String())

		assert.Equal(t, "Sales Analysis", p.Title.Text)
		assert.Equal(t, "Hour", p.X.Label.Text)
		assert.InDelta(t, 8.7, p.X.Min, 1e-9)
		assert.InDelta(t, -0.1, p.Y.Min, 1e-9)
		assert.GreaterOrEqual(t, p.X.Max, 11.0)
	}
}

func TestNewPlotNothingToPlot(t *testing.T) {
	_, err := NewPlot(nil, 576)
	assert.Error(t, err)
	_, err = NewPlot(&engine.ChartConfig{}, 576)
	assert.Error(t, err)
}

func TestSaveChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.png")
	require.NoError(t, SaveChart(testResult(engine.ChartBar).Chart, path, 4, 3))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
