package generation

// Chart configuration in the shape Chart.js consumes. Only the options the
// generation chart sets are modeled.

type AxisType string

const (
	CategoryAxis AxisType = "category"
	LinearAxis   AxisType = "linear"
)

type InteractionMode string

const (
	ModePoint   InteractionMode = "point"
	ModeIndex   InteractionMode = "index"
	ModeNearest InteractionMode = "nearest"
)

const (
	ChartTitle   = "Monthly Solar Energy Production (kWhac)"
	SeriesLabel  = "Solar Output (Monthly)"
	lineColor    = "rgb(75, 192, 192)"
	fillColor    = "rgba(75, 192, 192, 0.2)"
	tooltipColor = "rgba(0, 0, 0, 0.8)"
)

// MonthLabels are the x-axis categories, January first.
var MonthLabels = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sept", "Oct", "Nov", "Dec"}

type ChartConfig struct {
	Type    string       `json:"type"`
	Data    ChartData    `json:"data"`
	Options ChartOptions `json:"options"`
}

type ChartData struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

type Dataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	Fill            bool      `json:"fill"`
	BackgroundColor string    `json:"backgroundColor"`
	BorderColor     string    `json:"borderColor"`
}

type ChartOptions struct {
	Responsive  bool        `json:"responsive"`
	Interaction Interaction `json:"interaction"`
	Scales      Scales      `json:"scales"`
	Plugins     Plugins     `json:"plugins"`
}

// Interaction with Intersect false makes hover resolve to the nearest
// category even when the cursor is not on a point.
type Interaction struct {
	Mode      InteractionMode `json:"mode"`
	Intersect bool            `json:"intersect"`
}

type Scales struct {
	X Axis `json:"x"`
	Y Axis `json:"y"`
}

type Axis struct {
	Type        AxisType `json:"type"`
	BeginAtZero bool     `json:"beginAtZero"`
}

type Plugins struct {
	Title   Title   `json:"title"`
	Tooltip Tooltip `json:"tooltip"`
}

type Title struct {
	Display bool    `json:"display"`
	Text    string  `json:"text"`
	Align   string  `json:"align"`
	Font    Font    `json:"font"`
	Padding Padding `json:"padding"`
}

type Font struct {
	Size int `json:"size"`
}

type Padding struct {
	Top    int `json:"top"`
	Bottom int `json:"bottom"`
}

type Tooltip struct {
	Enabled         bool            `json:"enabled"`
	Mode            InteractionMode `json:"mode"`
	Intersect       bool            `json:"intersect"`
	BackgroundColor string          `json:"backgroundColor"`
	TitleColor      string          `json:"titleColor"`
	BodyColor       string          `json:"bodyColor"`
	BorderColor     string          `json:"borderColor"`
	BorderWidth     int             `json:"borderWidth"`
}

// Point is one month of the series paired with its label.
type Point struct {
	Label string
	Value float64
}

// MonthlyChart builds the generation line chart for a monthly AC series.
func MonthlyChart(series []float64) ChartConfig {
	data := make([]float64, len(series))
	copy(data, series)
	labels := MonthLabels

	return ChartConfig{
		Type: "line",
		Data: ChartData{
			Labels: labels[:],
			Datasets: []Dataset{
				{
					Label:           SeriesLabel,
					Data:            data,
					Fill:            false,
					BackgroundColor: lineColor,
					BorderColor:     fillColor,
				},
			},
		},
		Options: ChartOptions{
			Responsive:  true,
			Interaction: Interaction{Mode: ModeIndex, Intersect: false},
			Scales: Scales{
				X: Axis{Type: CategoryAxis, BeginAtZero: true},
				Y: Axis{Type: LinearAxis, BeginAtZero: true},
			},
			Plugins: Plugins{
				Title: Title{
					Display: true,
					Text:    ChartTitle,
					Align:   "center",
					Font:    Font{Size: 24},
					Padding: Padding{Top: 10, Bottom: 30},
				},
				Tooltip: Tooltip{
					Enabled:         true,
					Mode:            ModeIndex,
					Intersect:       false,
					BackgroundColor: tooltipColor,
					TitleColor:      "#fff",
					BodyColor:       "#fff",
					BorderColor:     "#ddd",
					BorderWidth:     1,
				},
			},
		},
	}
}

// Points pairs each label with the dataset value at the same index. Labels
// without a value are dropped.
func (c ChartConfig) Points() []Point {
	if len(c.Data.Datasets) == 0 {
		return nil
	}
	values := c.Data.Datasets[0].Data
	n := min(len(c.Data.Labels), len(values))
	points := make([]Point, n)
	for i := 0; i < n; i++ {
		points[i] = Point{Label: c.Data.Labels[i], Value: values[i]}
	}
	return points
}
