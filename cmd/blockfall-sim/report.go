package main

import (
	"io"
	"text/template"
	"time"
)

type Report struct {
	// Configuration
	Games      int
	Seed       uint64
	Randomizer string
	MaxPieces  int
	FrameStep  time.Duration

	// Results
	Results    []GameResult
	Lines      Stats[int]
	Pieces     Stats[int]
	PlayTime   Stats[time.Duration]
	WallTime   time.Duration
	ClearSizes [5]int
}

type GameResult struct {
	Seed       uint64
	Lines      int
	Clears     int
	Pieces     int
	ClearSizes [5]int
	PlayTime   time.Duration
	ToppedOut  bool
}

type Stats[T ~int | ~int64] struct {
	Min     T
	Max     T
	Avg     T
	Samples []T
}

func (s *Stats[T]) Add(v T) {
	s.Samples = append(s.Samples, v)
}

func (s *Stats[T]) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total T
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / T(len(s.Samples))
}

// Add folds one game into the report.
func (r *Report) Add(g GameResult) {
	r.Results = append(r.Results, g)
	r.Lines.Add(g.Lines)
	r.Pieces.Add(g.Pieces)
	r.PlayTime.Add(g.PlayTime)
	for i, n := range g.ClearSizes {
		r.ClearSizes[i] += n
	}
}

func (r *Report) Finalize() {
	r.Lines.Finalize()
	r.Pieces.Finalize()
	r.PlayTime.Finalize()
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Self-Play Report

## Configuration
- **Games:** {{.Games}}
- **Seed:** {{.Seed}}
- **Randomizer:** {{.Randomizer}}
- **Piece Limit:** {{.MaxPieces}}
- **Frame Step:** {{.FrameStep}}

## Results
- **Lines:** avg {{.Lines.Avg}}, min {{.Lines.Min}}, max {{.Lines.Max}}
- **Pieces Locked:** avg {{.Pieces.Avg}}, min {{.Pieces.Min}}, max {{.Pieces.Max}}
- **Game Time:** avg {{.PlayTime.Avg}}, min {{.PlayTime.Min}}, max {{.PlayTime.Max}}
- **Wall Time:** {{.WallTime}}

## Clears By Size
| Rows | Count |
|------|-------|
{{- range $i, $n := .ClearSizes}}{{if $i}}
| {{$i}} | {{$n}} |{{end}}{{end}}

## Games
| # | Seed | Lines | Clears | Pieces | Game Time | Ended |
|---|------|-------|--------|--------|-----------|-------|
{{- range $i, $g := .Results}}
| {{inc $i}} | {{$g.Seed}} | {{$g.Lines}} | {{$g.Clears}} | {{$g.Pieces}} | {{$g.PlayTime}} | {{if $g.ToppedOut}}game over{{else}}piece limit{{end}} |
{{- end}}
`

	fm := template.FuncMap{
		"inc": func(i int) int {
			return i + 1
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
