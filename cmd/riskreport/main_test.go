package main

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"riskprofile/internal/report"
)

const answersYAML = `clientName: Jane Doe
clientEmail: jane@example.com
tolerance: [0, 0, 1, 1, 2, 2, 3, 3]
capacity: [4, 4, 4, 4, 3, 3, 3, 3]
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, data, 0o644))
	return p
}

func TestQuestionsCommand(t *testing.T) {
	out, err := run(t, "questions")
	require.NoError(t, err)

	var sections []struct {
		ID        string `yaml:"id"`
		Questions []struct {
			Options []string `yaml:"options"`
		} `yaml:"questions"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &sections))
	require.Len(t, sections, 2)
	assert.Equal(t, "tolerance", sections[0].ID)
	assert.Len(t, sections[1].Questions, 8)
}

func TestScoreCommand(t *testing.T) {
	path := writeFile(t, t.TempDir(), "answers.yaml", []byte(answersYAML))

	out, err := run(t, "score", "-f", path)
	require.NoError(t, err)

	var a struct {
		Tolerance struct {
			TotalScore int    `yaml:"totalScore"`
			LevelLabel string `yaml:"levelLabel"`
		} `yaml:"tolerance"`
		Capacity struct {
			TotalScore int `yaml:"totalScore"`
		} `yaml:"capacity"`
		Reconciliation struct {
			Kind          string `yaml:"kind"`
			CombinedLabel string `yaml:"combinedLabel"`
		} `yaml:"reconciliation"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &a))
	assert.Equal(t, 28, a.Tolerance.TotalScore)
	assert.Equal(t, "Moderately Aggressive", a.Tolerance.LevelLabel)
	assert.Equal(t, 12, a.Capacity.TotalScore)
	assert.Equal(t, "tolerance_exceeds_capacity", a.Reconciliation.Kind)
	assert.Equal(t, "Conservative", a.Reconciliation.CombinedLabel)
}

func TestScoreCommandReadsJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "answers.json", []byte(
		`{"clientName":"Jane","tolerance":[0,0,0,0,0,0,0,null],"capacity":[0,0,0,0,0,0,0,0]}`))

	_, err := run(t, "score", "-f", path)
	assert.ErrorContains(t, err, "incomplete")
}

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	var img bytes.Buffer
	require.NoError(t, png.Encode(&img, image.NewGray(image.Rect(0, 0, 10, 5))))
	writeFile(t, dir, report.ChartAssetKey+".png", img.Bytes())
	path := writeFile(t, dir, "answers.yaml", []byte(answersYAML))
	outPath := filepath.Join(dir, "report.pdf")

	out, err := run(t, "generate", "-f", path, "--assets", dir, "-o", outPath)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+outPath)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestGenerateCommandMissingChart(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "answers.yaml", []byte(answersYAML))

	_, err := run(t, "generate", "-f", path, "--assets", dir, "-o", filepath.Join(dir, "out.pdf"))
	assert.ErrorContains(t, err, "missing asset")
	assert.NoFileExists(t, filepath.Join(dir, "out.pdf"))
}

func TestFileFlagRequired(t *testing.T) {
	_, err := run(t, "score")
	assert.Error(t, err)
}
