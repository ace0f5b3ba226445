package ocean

// Status is the reported state of an ARGO float.
type Status string

const (
	StatusActive   Status = "active"
	StatusDiving   Status = "diving"
	StatusSurfaced Status = "surfaced"
)

// Color returns the marker colour class used for the status badge.
func (s Status) Color() string {
	switch s {
	case StatusActive:
		return "green"
	case StatusDiving:
		return "yellow"
	case StatusSurfaced:
		return "blue"
	default:
		return "gray"
	}
}

// ArgoFloat is a mock autonomous ocean sensor record.
type ArgoFloat struct {
	ID          string  `json:"id"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Status      Status  `json:"status"`
	Temperature float64 `json:"temperature"` // °C
	Salinity    float64 `json:"salinity"`    // PSU
	LastUpdate  string  `json:"last_update"`
}

// Point is a position on the flat map, in percent of width and height.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DepthSample is one reading of a vertical profile.
type DepthSample struct {
	Depth float64 `json:"depth"` // metres
	Value float64 `json:"value"`
}

// LabeledSample is a sample whose X axis is categorical (e.g. a month).
type LabeledSample struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// KPI is one dashboard headline card.
type KPI struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Change string `json:"change"`
	Color  string `json:"color"` // gradient class pair
}

// Positive reports whether the change figure is an increase.
func (k KPI) Positive() bool {
	return len(k.Change) > 0 && k.Change[0] == '+'
}

// Activity is one row of the dashboard's recent activity feed.
type Activity struct {
	FloatID  string `json:"float_id"`
	Location string `json:"location"`
	Status   string `json:"status"`
	Time     string `json:"time"`
}

// Stat is a headline figure with a label, used on the landing, insights and about pages.
type Stat struct {
	Title       string `json:"title,omitempty"`
	Value       string `json:"value"`
	Label       string `json:"label,omitempty"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
}

// Feature is a titled marketing card.
type Feature struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Milestone is one entry of the about page timeline.
type Milestone struct {
	Year        string `json:"year"`
	Event       string `json:"event"`
	Description string `json:"description"`
}

// TeamMember is one card of the about page team grid.
type TeamMember struct {
	Name string `json:"name"`
	Role string `json:"role"`
	Icon string `json:"icon"`
}
