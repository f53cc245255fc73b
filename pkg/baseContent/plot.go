package baseContent

import (
	"fmt"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

func (bc *BaseContent) lineXYs(j int) plotter.XYs {
	var points = plotter.XYs{}
	for i, freq := range bc.Freq {
		points = append(points, plotter.XY{X: float64(bc.position(i)), Y: freq[j]})
	}
	return points
}

// percentage labels at every 5th position, stacked per base
func (bc *BaseContent) percentLabels() *plotter.Labels {
	var xyl plotter.XYLabels
	for i, freq := range bc.Freq {
		if bc.Positions == nil && (i+1)%5 != 0 {
			continue
		}
		for j, v := range freq {
			xyl.XYs = append(xyl.XYs, plotter.XY{X: float64(bc.position(i)), Y: v})
			xyl.Labels = append(xyl.Labels, fmt.Sprintf("%c%.0f%%", Bases[j], v))
		}
	}
	return simpleUtil.HandleError(plotter.NewLabels(xyl))
}

// PlotPNG saves a static line chart, one series per base.
func (bc *BaseContent) PlotPNG(path string, addPercentage bool) {
	p := plot.New()
	p.Title.Text = bc.Title()
	p.X.Label.Text = "Base Position"
	p.Y.Label.Text = "Frequency (%)"
	p.Y.Min = 0
	p.Add(plotter.NewGrid())

	for j := 0; j < len(Bases); j++ {
		var line = simpleUtil.HandleError(plotter.NewLine(bc.lineXYs(j)))
		line.Color = plotutil.Color(j)
		p.Add(line)
		p.Legend.Add(string(Bases[j]), line)
	}
	p.Legend.Top = true

	if addPercentage {
		p.Add(bc.percentLabels())
	}
	if bc.Positions != nil {
		// one tick per selected position
		var ticks []plot.Tick
		for _, pos := range bc.Positions {
			ticks = append(ticks, plot.Tick{Value: float64(pos), Label: strconv.Itoa(pos)})
		}
		p.X.Tick.Marker = plot.ConstantTicks(ticks)
	}

	simpleUtil.CheckErr(p.Save(16*vg.Inch, 9*vg.Inch, path))
}

// PlotHTML renders an interactive line chart.
func (bc *BaseContent) PlotHTML(path string) {
	var (
		line   = charts.NewLine()
		xaxis  []int
		output = osUtil.Create(path)
	)
	defer simpleUtil.DeferClose(output)

	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Base Content",
			Subtitle: bc.Title(),
		}))

	for i := range bc.Freq {
		xaxis = append(xaxis, bc.position(i))
	}

	line.SetXAxis(xaxis).
		AddSeries("A", bc.generateLineItems(0)).
		AddSeries("C", bc.generateLineItems(1)).
		AddSeries("G", bc.generateLineItems(2)).
		AddSeries("T", bc.generateLineItems(3)).
		AddSeries("N", bc.generateLineItems(4))
	simpleUtil.CheckErr(line.Render(output))
}

func (bc *BaseContent) generateLineItems(j int) []opts.LineData {
	var items = make([]opts.LineData, 0)
	for _, freq := range bc.Freq {
		items = append(items, opts.LineData{Value: freq[j]})
	}
	return items
}
