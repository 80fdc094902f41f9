package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/play"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Games    int
	Seed     uint64
	Step     float64

	// Results
	GamesFinished int
	BestScore     int
	MeanScore     float64
	TotalLines    int
	TotalLocks    int
	TotalUpdates  int64
	TotalTime     time.Duration
	UpdateTime    Stats
	Systems       []loop.SystemStats
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
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
	s.Avg = total / time.Duration(len(s.Samples))
}

// addGames summarises finished games. Lines of the unfinished game are not counted.
func (r *Report) addGames(summaries []play.Summary, locks int) {
	r.GamesFinished = len(summaries)
	r.TotalLocks = locks

	total := 0
	for _, s := range summaries {
		total += s.Score
		r.TotalLines += s.Lines
		if s.Score > r.BestScore {
			r.BestScore = s.Score
		}
	}
	if len(summaries) > 0 {
		r.MeanScore = float64(total) / float64(len(summaries))
	}
}

// LocksPerSecond is the wall-clock rate at which pieces locked.
func (r *Report) LocksPerSecond() float64 {
	if r.TotalTime <= 0 {
		return 0
	}
	return float64(r.TotalLocks) / r.TotalTime.Seconds()
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Soak Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Game Limit:** {{if .Games}}{{.Games}}{{else}}none{{end}}
- **Seed:** {{.Seed}}
- **Step:** {{printf "%.4f" .Step}}s

## Games
- **Finished:** {{.GamesFinished}}
- **Best Score:** {{.BestScore}}
- **Mean Score:** {{printf "%.1f" .MeanScore}}
- **Lines (finished games):** {{.TotalLines}}
- **Pieces Locked:** {{.TotalLocks}} ({{printf "%.0f" .LocksPerSecond}}/s)

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

## Systems
| System | Executions | Avg | Max |
|---|---|---|---|
{{range .Systems}}| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MaxDuration}} |
{{end}}
## Memory Usage (MB)
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} (start) -> {{mb .MemStatsEnd.HeapAlloc}} (end)
- Total Alloc:    {{mb .MemStatsStart.TotalAlloc}} (start) -> {{mb .MemStatsEnd.TotalAlloc}} (end)
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

	fm := template.FuncMap{
		"mb": func(v uint64) string {
			return fmt.Sprintf("%.2f", float64(v)/1024/1024)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
